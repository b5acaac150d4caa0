package options

// Backing selects the concrete map implementation behind object values.
//
// This is a configuration-time policy: it is decided once when a parser or
// a programmatic tree is set up, never per value.
type Backing string

const (
	// HashBacking stores object members in a builtin map. Iteration order
	// is unspecified.
	HashBacking Backing = "hash"
	// OrderedBacking stores object members in a linked hash map, so
	// iteration follows insertion order.
	OrderedBacking Backing = "ordered"
)

// DefaultMaxDepth is the container nesting depth allowed when no explicit
// MaxDepth option is given. Deeply nested pathological input fails with a
// depth-exceeded error instead of exhausting the call stack.
const DefaultMaxDepth = 10000

// Options is the wrapper of bourne params.
// Options follow the design of Functional Options (https://github.com/tmrts/go-patterns/blob/master/idiom/functional-options.md).
type Options struct {
	// Backing map policy for parsed objects: "hash" or "ordered".
	// Default: "ordered".
	Backing Backing `yaml:"backing"`
	// Maximum container nesting depth. Values <= 0 disable the guard.
	// Default: DefaultMaxDepth.
	MaxDepth int `yaml:"maxDepth"`

	Log *LogOption `yaml:"log"` // Log options.
}

type LogOption struct {
	// Log level: DEBUG, INFO, WARN, ERROR.
	// Default: "INFO".
	Level string `yaml:"level"`
	// Log mode: SIMPLE, FULL.
	// Default: "FULL".
	Mode string `yaml:"mode"`
	// Log filename: set this if you want to write log messages to files.
	// Default: "".
	Filename string `yaml:"filename"`
	// Log sink: CONSOLE, FILE, and MULTI.
	// Default: "CONSOLE".
	Sink string `yaml:"sink"`
}

// Option is the functional option type.
type Option func(*Options)

// ObjectBacking sets the backing map policy for parsed objects.
func ObjectBacking(b Backing) Option {
	return func(opts *Options) {
		opts.Backing = b
	}
}

// MaxDepth sets the maximum container nesting depth. Values <= 0 disable
// the guard entirely.
func MaxDepth(depth int) Option {
	return func(opts *Options) {
		opts.MaxDepth = depth
	}
}

// Log sets LogOption.
func Log(o *LogOption) Option {
	return func(opts *Options) {
		opts.Log = o
	}
}

// NewDefault returns a default Options.
func NewDefault() *Options {
	return &Options{
		Backing:  OrderedBacking,
		MaxDepth: DefaultMaxDepth,
		Log: &LogOption{
			Mode:  "FULL",
			Level: "INFO",
		},
	}
}

// ParseOptions parses functional options and merge them to default Options.
func ParseOptions(setters ...Option) *Options {
	// Default Options
	opts := NewDefault()
	for _, setter := range setters {
		setter(opts)
	}
	return opts
}
