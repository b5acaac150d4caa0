package json

import "fmt"

// Code identifies a kind of parse failure.
type Code int

const (
	codeUnknown Code = iota
	// CodeInvalidCharacter reports a byte that no grammar rule accepts at
	// its position.
	CodeInvalidCharacter
	// CodeUnexpectedEOF reports input that ends in the middle of a value.
	CodeUnexpectedEOF
	// CodeUnexpectedEOFWhileParsingString reports a quoted string with no
	// closing quote. Index is the opening quote's content start.
	CodeUnexpectedEOFWhileParsingString
	// CodeLineBreakWhileParsingString reports a raw '\n' or '\r' inside a
	// quoted string.
	CodeLineBreakWhileParsingString
	// CodeParseInt reports an integer literal that does not fit in int64.
	CodeParseInt
	// CodeParseFloat reports a float literal that strconv rejects.
	CodeParseFloat
	// CodeInvalidEscapeSequence reports a \u escape whose value is not a
	// valid Unicode scalar, e.g. a lone surrogate.
	CodeInvalidEscapeSequence
	// CodeInvalidHex reports a non-hex digit inside a \u escape.
	CodeInvalidHex
	// CodeUnexpectedCommaOrClose reports a stray ',' or close delimiter
	// where an element or member was required.
	CodeUnexpectedCommaOrClose
	// CodeDepthExceeded reports container nesting past the configured
	// maximum depth.
	CodeDepthExceeded
)

func (c Code) String() string {
	switch c {
	case CodeInvalidCharacter:
		return "invalid character"
	case CodeUnexpectedEOF:
		return "unexpected end of input"
	case CodeUnexpectedEOFWhileParsingString:
		return "unexpected end of input while parsing string"
	case CodeLineBreakWhileParsingString:
		return "line break while parsing string"
	case CodeParseInt:
		return "invalid integer literal"
	case CodeParseFloat:
		return "invalid float literal"
	case CodeInvalidEscapeSequence:
		return "invalid escape sequence"
	case CodeInvalidHex:
		return "invalid hex digit in \\u escape"
	case CodeUnexpectedCommaOrClose:
		return "unexpected comma or close delimiter"
	case CodeDepthExceeded:
		return "maximum nesting depth exceeded"
	default:
		return "unknown"
	}
}

// ParseError is the error type returned by all parse entry points. Index
// is the byte offset the failure is attributed to, or -1 when the grammar
// allows no attribution (plain end-of-input).
type ParseError struct {
	Code  Code
	Index int
	cause error
}

func (e *ParseError) Error() string {
	msg := "json: " + e.Code.String()
	if e.Index >= 0 {
		msg += fmt.Sprintf(" at index %d", e.Index)
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

// Unwrap exposes the wrapped cause, e.g. the strconv error behind a
// numeric conversion failure.
func (e *ParseError) Unwrap() error { return e.cause }

// Is matches by Code so callers can test errors.Is(err, json.ErrParseInt)
// without knowing the offending index.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && e.Code == t.Code
}

// Code-matching sentinels for use with errors.Is.
var (
	ErrInvalidCharacter                = &ParseError{Code: CodeInvalidCharacter, Index: -1}
	ErrUnexpectedEOF                   = &ParseError{Code: CodeUnexpectedEOF, Index: -1}
	ErrUnexpectedEOFWhileParsingString = &ParseError{Code: CodeUnexpectedEOFWhileParsingString, Index: -1}
	ErrLineBreakWhileParsingString     = &ParseError{Code: CodeLineBreakWhileParsingString, Index: -1}
	ErrParseInt                        = &ParseError{Code: CodeParseInt, Index: -1}
	ErrParseFloat                      = &ParseError{Code: CodeParseFloat, Index: -1}
	ErrInvalidEscapeSequence           = &ParseError{Code: CodeInvalidEscapeSequence, Index: -1}
	ErrInvalidHex                      = &ParseError{Code: CodeInvalidHex, Index: -1}
	ErrUnexpectedCommaOrClose          = &ParseError{Code: CodeUnexpectedCommaOrClose, Index: -1}
	ErrDepthExceeded                   = &ParseError{Code: CodeDepthExceeded, Index: -1}
)

func errInvalidCharacter(index int) error {
	return &ParseError{Code: CodeInvalidCharacter, Index: index}
}

func errUnexpectedEOF() error {
	return &ParseError{Code: CodeUnexpectedEOF, Index: -1}
}

func errUnexpectedEOFString(start int) error {
	return &ParseError{Code: CodeUnexpectedEOFWhileParsingString, Index: start}
}

func errLineBreak(index int) error {
	return &ParseError{Code: CodeLineBreakWhileParsingString, Index: index}
}

func errParseInt(index int, cause error) error {
	return &ParseError{Code: CodeParseInt, Index: index, cause: cause}
}

func errParseFloat(index int, cause error) error {
	return &ParseError{Code: CodeParseFloat, Index: index, cause: cause}
}

func errInvalidEscape() error {
	return &ParseError{Code: CodeInvalidEscapeSequence, Index: -1}
}

func errInvalidHex() error {
	return &ParseError{Code: CodeInvalidHex, Index: -1}
}

func errStrayCommaOrClose(index int) error {
	return &ParseError{Code: CodeUnexpectedCommaOrClose, Index: index}
}

func errDepthExceeded(index int) error {
	return &ParseError{Code: CodeDepthExceeded, Index: index}
}
