package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStringValues(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "empty", src: `""`, want: ""},
		{name: "plain", src: `"hello, world"`, want: "hello, world"},
		{name: "escaped quote", src: `"say \"hi\""`, want: `say "hi"`},
		{name: "escaped backslash", src: `"a\\b"`, want: `a\b`},
		{name: "control escapes", src: `"\n\r\t\b\f"`, want: "\n\r\t\b\f"},
		{name: "unicode escape", src: `"\u0041\u00e9"`, want: "Aé"},
		{name: "unicode uppercase hex", src: `"\u00E9"`, want: "é"},
		{name: "unicode bmp", src: `"\u2603"`, want: "☃"},
		{name: "permissive solidus", src: `"\/"`, want: "/"},
		{name: "permissive single quote", src: `"\'"`, want: "'"},
		{name: "permissive unknown escape", src: `"\x"`, want: "x"},
		{name: "raw utf8 passes through", src: `"héllo"`, want: "héllo"},
		{name: "escaped tab allowed", src: "\"a\\\tb\"", want: "a\tb"},
		// The backslash skips the next byte before the line-break check,
		// so an escaped newline decodes permissively instead of failing.
		{name: "escaped newline", src: "\"ab\\\ncd\"", want: "ab\ncd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val, err := Parse(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, val.GetString())
		})
	}
}

// Decoding the escaped form of a string written with the documented
// escape set reproduces the original exactly.
func TestUnescapeRoundTrip(t *testing.T) {
	tests := []struct {
		escaped string
		want    string
	}{
		{escaped: `line1\nline2`, want: "line1\nline2"},
		{escaped: `col1\tcol2`, want: "col1\tcol2"},
		{escaped: `\r\b\f`, want: "\r\b\f"},
		{escaped: `hello`, want: "hello"},
		{escaped: `mixed A and \t raw`, want: "mixed A and \t raw"},
	}
	for _, tt := range tests {
		got, err := Unescape(tt.escaped)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestUnescapeErrors(t *testing.T) {
	tests := []struct {
		name string
		s    string
		code Code
	}{
		{name: "dangling backslash", s: `abc\`, code: CodeUnexpectedEOF},
		{name: "truncated unicode escape", s: `\u00`, code: CodeUnexpectedEOF},
		{name: "non-hex digit", s: `\u00zz`, code: CodeInvalidHex},
		{name: "lone high surrogate", s: `\ud800`, code: CodeInvalidEscapeSequence},
		{name: "lone low surrogate", s: `\udfff`, code: CodeInvalidEscapeSequence},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unescape(tt.s)
			require.Error(t, err)
			assert.ErrorIs(t, err, &ParseError{Code: tt.code})
		})
	}
}

func TestParseStringLineBreak(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		wantIndex int
	}{
		{name: "raw newline", src: "\"ab\ncd\"", wantIndex: 3},
		{name: "raw carriage return", src: "\"\rx\"", wantIndex: 1},
		{name: "newline in object key", src: "{\"a\nb\": 1}", wantIndex: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src)
			require.Error(t, err)
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, CodeLineBreakWhileParsingString, perr.Code)
			assert.Equal(t, tt.wantIndex, perr.Index)
		})
	}
}

func TestParseStringUnterminated(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		wantStart int
	}{
		{name: "top level", src: `"abc`, wantStart: 1},
		{name: "escape hides closing quote", src: `"abc\"`, wantStart: 1},
		{name: "inside array", src: `[1, "x`, wantStart: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src)
			require.Error(t, err)
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, CodeUnexpectedEOFWhileParsingString, perr.Code)
			assert.Equal(t, tt.wantStart, perr.Index)
		})
	}
}

func TestParseStringKeyEscapes(t *testing.T) {
	// Object keys run through the same scanner and unescaper as values.
	val, err := Parse(`{"a\tb": "value", "c": 1}`)
	require.NoError(t, err)
	member, ok := val.Get("a\tb")
	require.True(t, ok)
	assert.Equal(t, "value", member.GetString())
	member, ok = val.Get("c")
	require.True(t, ok)
	assert.Equal(t, int64(1), member.GetInt64())
}

func TestHexValue(t *testing.T) {
	for b, want := range map[byte]uint16{
		'0': 0, '9': 9, 'a': 10, 'f': 15, 'A': 10, 'F': 15,
	} {
		got, ok := hexValue(b)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	for _, b := range []byte{'g', 'G', ' ', '-', 0} {
		_, ok := hexValue(b)
		assert.False(t, ok, "byte %q", b)
	}
}
