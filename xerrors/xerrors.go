package xerrors

import (
	"fmt"

	"github.com/bournejson/bourne/log"
	"github.com/pkg/errors"
)

// KV keys for bookkeeping parse failures at the facade and CLI boundary.
const (
	KeyFile   = "File"   // input file path
	KeyIndex  = "Index"  // offending byte index
	KeyCode   = "Code"   // parse error code
	KeyReason = "Reason" // underlying error
)

// WithStack annotates err with a stack trace at the point WithStack was
// called. If err is nil, WithStack returns nil.
func WithStack(err error) error {
	if err == nil {
		return nil
	}
	return errors.WithStack(err)
}

// Wrapf returns an error annotating err with a stack trace at the point
// Wrapf is called, and the format specifier. If err is nil, Wrapf
// returns nil.
func Wrapf(err error, format string, args ...any) error {
	return errors.Wrapf(err, format, args...)
}

// ErrorKV formats the key-value pairs as `[|key: value]...` string and
// returns the string as a value that satisfies error.
// ErrorKV also records the stack trace at the point it was called.
func ErrorKV(err error, keysAndValues ...any) error {
	msg := CombineKV(keysAndValues...) + CombineKV(KeyReason, err)
	return errors.New(msg)
}

// WithMessageKV annotates err with the key-value pairs as
// `[|key: value]...` string. If err is nil, WithMessageKV returns nil.
func WithMessageKV(err error, keysAndValues ...any) error {
	if err == nil {
		return nil
	}
	return errors.WithMessage(err, CombineKV(keysAndValues...))
}

func CombineKV(keysAndValues ...any) string {
	var msg string
	for i := 0; i < len(keysAndValues); i += 2 {
		if i == len(keysAndValues)-1 {
			log.DPanicf("invalid Key-Value pairs: odd number")
			break
		}
		key, val := keysAndValues[i], keysAndValues[i+1]
		msg += fmt.Sprintf("|%v: %v", key, val)
	}
	return msg
}

// Cause returns the underlying cause of the error, if possible.
func Cause(err error) error {
	return errors.Cause(err)
}
