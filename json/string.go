package json

import (
	"strings"
	"unicode/utf16"
)

// hexValue converts one hexadecimal digit byte into its value.
func hexValue(b byte) (uint16, bool) {
	switch {
	case b >= '0' && b <= '9':
		return uint16(b - '0'), true
	case b >= 'a' && b <= 'f':
		return uint16(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return uint16(b-'A') + 10, true
	}
	return 0, false
}

// Unescape decodes the escape sequences of a raw (still-escaped) string
// body. The known single-character escapes \f \b \n \r \t map to their
// control characters. \u must be followed by exactly four hex digits,
// whose 16-bit value is taken directly as a Unicode scalar: lone
// surrogates are rejected and surrogate pairs are not combined, so code
// points above U+FFFF cannot be written as \u escapes. Any other escaped
// character, \/ and \' included, passes through as itself.
func Unescape(s string) (string, error) {
	var buf strings.Builder
	buf.Grow(len(s))
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b != '\\' {
			buf.WriteByte(b)
			continue
		}
		i++
		if i >= len(s) {
			return "", errUnexpectedEOF()
		}
		switch s[i] {
		case 'f':
			buf.WriteByte('\f')
		case 'b':
			buf.WriteByte('\b')
		case 'n':
			buf.WriteByte('\n')
		case 'r':
			buf.WriteByte('\r')
		case 't':
			buf.WriteByte('\t')
		case 'u':
			var hex uint16
			for k := 0; k < 4; k++ {
				i++
				if i >= len(s) {
					return "", errUnexpectedEOF()
				}
				v, ok := hexValue(s[i])
				if !ok {
					return "", errInvalidHex()
				}
				hex = hex<<4 | v
			}
			if utf16.IsSurrogate(rune(hex)) {
				return "", errInvalidEscape()
			}
			buf.WriteRune(rune(hex))
		default:
			// Permissive beyond the strict JSON escape set: the escaped
			// byte stands for itself.
			buf.WriteByte(s[i])
		}
	}
	return buf.String(), nil
}

// parseString scans a double-quoted string at the cursor and returns its
// unescaped content. A raw line break inside the quotes is rejected at
// its index; input ending before the closing quote is rejected with the
// string's start index.
func (p *parser) parseString() (string, error) {
	b, ok := p.cur.peek()
	switch {
	case !ok:
		return "", errUnexpectedEOF()
	case b != '"':
		return "", errInvalidCharacter(p.cur.index)
	}
	p.cur.advance(1)
	start := p.cur.index
	for {
		index, b, ok := p.cur.indexedNext()
		if !ok {
			return "", errUnexpectedEOFString(start)
		}
		switch b {
		case '\n', '\r':
			return "", errLineBreak(index)
		case '"':
			return Unescape(p.cur.src[start:index])
		case '\\':
			// Skip the escaped byte so it cannot read as a closing quote.
			p.cur.advance(1)
		}
	}
}
