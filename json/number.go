package json

import "strconv"

// Numeric literal grammar:
//
//	[+|-]?                   optional sign
//	( 0 | [1-9] [0-9]* )     integer part: a single zero or a non-zero lead
//	( . [0-9]+ )?            optional fractional part, at least one digit
//	( [e|E] [+|-]? [0-9]+ )? optional exponent part, at least one digit
//
// The literal is an integer iff no decimal point and no exponent marker
// occur; the variant is fixed here and never revisited.
type numState int8

const (
	numStart numState = iota
	numAfterSign
	// numAfterZero follows a leading zero: no further digit may follow.
	numAfterZero
	numIntegerPart
	// numAfterDecimalPoint requires at least one digit.
	numAfterDecimalPoint
	numFractionalPart
	// numAfterExponent requires a sign or at least one digit.
	numAfterExponent
	numAfterExponentSign
	numExponentPart
)

// isTerminator reports a byte that ends a numeric literal without being
// part of it: the caller re-consumes it after a one-byte rewind.
func isTerminator(b byte) bool {
	return b == '}' || b == ']' || b == ',' || isSpace(b)
}

// done reports states in which the literal may legally end.
func (s numState) done() bool {
	switch s {
	case numAfterZero, numIntegerPart, numFractionalPart, numExponentPart:
		return true
	}
	return false
}

func (p *parser) parseNumber() (Number, error) {
	isInteger := true
	state := numStart
	start := p.cur.index
	end := p.cur.index
scan:
	for {
		index, b, ok := p.cur.indexedNext()
		if !ok {
			// End of input terminates the literal, but only in a state
			// where no digit is still mandatory.
			if !state.done() {
				return Number{}, errInvalidCharacter(p.cur.index)
			}
			end = p.cur.index
			break scan
		}
		switch state {
		case numStart:
			switch {
			case b == '+' || b == '-':
				state = numAfterSign
			case b == '0':
				state = numAfterZero
			case b >= '1' && b <= '9':
				state = numIntegerPart
			default:
				return Number{}, errInvalidCharacter(index)
			}
		case numAfterSign:
			switch {
			case b == '0':
				state = numAfterZero
			case b >= '1' && b <= '9':
				state = numIntegerPart
			default:
				return Number{}, errInvalidCharacter(index)
			}
		case numAfterZero:
			switch {
			case b == '.':
				state = numAfterDecimalPoint
				isInteger = false
			case b == 'e' || b == 'E':
				state = numAfterExponent
				isInteger = false
			case isTerminator(b):
				end = index
				p.cur.rewind()
				break scan
			default:
				// Rejects leading-zero forms like 01.
				return Number{}, errInvalidCharacter(index)
			}
		case numIntegerPart:
			switch {
			case b >= '0' && b <= '9':
			case b == '.':
				state = numAfterDecimalPoint
				isInteger = false
			case b == 'e' || b == 'E':
				state = numAfterExponent
				isInteger = false
			case isTerminator(b):
				end = index
				p.cur.rewind()
				break scan
			default:
				return Number{}, errInvalidCharacter(index)
			}
		case numAfterDecimalPoint:
			if b < '0' || b > '9' {
				return Number{}, errInvalidCharacter(index)
			}
			state = numFractionalPart
		case numFractionalPart:
			switch {
			case b >= '0' && b <= '9':
			case b == 'e' || b == 'E':
				state = numAfterExponent
			case isTerminator(b):
				end = index
				p.cur.rewind()
				break scan
			default:
				return Number{}, errInvalidCharacter(index)
			}
		case numAfterExponent:
			switch {
			case b == '+' || b == '-':
				state = numAfterExponentSign
			case b >= '0' && b <= '9':
				state = numExponentPart
			default:
				return Number{}, errInvalidCharacter(index)
			}
		case numAfterExponentSign:
			if b < '0' || b > '9' {
				return Number{}, errInvalidCharacter(index)
			}
			state = numExponentPart
		case numExponentPart:
			switch {
			case b >= '0' && b <= '9':
			case isTerminator(b):
				end = index
				p.cur.rewind()
				break scan
			default:
				return Number{}, errInvalidCharacter(index)
			}
		}
	}
	lit := p.cur.src[start:end]
	if lit == "" {
		return Number{}, errInvalidCharacter(p.cur.index)
	}
	if isInteger {
		// Overflow is a conversion error, never a silent float fallback.
		i, err := strconv.ParseInt(lit, 10, 64)
		if err != nil {
			return Number{}, errParseInt(start, err)
		}
		return IntNumber(i), nil
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return Number{}, errParseFloat(start, err)
	}
	return FloatNumber(f), nil
}
