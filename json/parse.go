// Package json parses textual JSON into an in-memory value tree.
//
// The parser is hand-rolled recursive descent over a byte cursor: input
// must be fully materialized, parsing is synchronous, and a failed parse
// returns a typed *ParseError carrying the offending byte index — never a
// partial tree. Each call owns its own state, so concurrent parses of
// different inputs need no synchronization.
package json

import "github.com/bournejson/bourne/options"

type parser struct {
	cur      *cursor
	backing  options.Backing
	maxDepth int
	depth    int
}

// Parse parses src into a value tree, honoring ObjectBacking and MaxDepth
// options. Leading and trailing whitespace is permitted; any other
// residue after the top-level value is an invalid-character error at its
// position.
func Parse(src string, setters ...options.Option) (*Value, error) {
	return ParseWith(src, options.ParseOptions(setters...))
}

// ParseWith is Parse with an already-assembled Options.
func ParseWith(src string, opts *options.Options) (*Value, error) {
	p := &parser{
		cur:      newCursor(src),
		backing:  opts.Backing,
		maxDepth: opts.MaxDepth,
	}
	p.cur.eatWhitespace()
	val, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.cur.eatWhitespace()
	if !p.cur.isEOF() {
		return nil, errInvalidCharacter(p.cur.index)
	}
	return val, nil
}

// enter tracks recursion into a container opened at index.
func (p *parser) enter(index int) error {
	p.depth++
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		return errDepthExceeded(index)
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

// parseValue dispatches on a single byte of lookahead.
func (p *parser) parseValue() (*Value, error) {
	b, ok := p.cur.peek()
	if !ok {
		return nil, errUnexpectedEOF()
	}
	switch {
	case b == 'n':
		return p.parseNull()
	case b == 't' || b == 'f':
		t, err := p.parseBoolean()
		if err != nil {
			return nil, err
		}
		return NewBool(t), nil
	case b == '+' || b == '-' || (b >= '0' && b <= '9'):
		num, err := p.parseNumber()
		if err != nil {
			return nil, err
		}
		return NewNumber(num), nil
	case b == '"':
		s, err := p.parseString()
		if err != nil {
			return nil, err
		}
		return NewString(s), nil
	case b == '[':
		return p.parseArray()
	case b == '{':
		return p.parseObject()
	default:
		return nil, errInvalidCharacter(p.cur.index)
	}
}

func (p *parser) parseNull() (*Value, error) {
	if !p.cur.matches("null") {
		return nil, errInvalidCharacter(p.cur.index)
	}
	p.cur.advance(4)
	return NewNull(), nil
}

func (p *parser) parseBoolean() (bool, error) {
	switch {
	case p.cur.matches("true"):
		p.cur.advance(4)
		return true, nil
	case p.cur.matches("false"):
		p.cur.advance(5)
		return false, nil
	default:
		return false, errInvalidCharacter(p.cur.index)
	}
}

// parseArray consumes '[', then elements separated by ',' until ']'. A
// close directly after the open is the only empty form: a stray ',' or
// ']' after an element is rejected, so no trailing commas.
func (p *parser) parseArray() (*Value, error) {
	index, b, ok := p.cur.indexedNext()
	switch {
	case !ok:
		return nil, errUnexpectedEOF()
	case b != '[':
		return nil, errInvalidCharacter(index)
	}
	if err := p.enter(index); err != nil {
		return nil, err
	}
	defer p.leave()
	var arr []*Value
	for {
		p.cur.eatWhitespace()
		b, ok := p.cur.peek()
		switch {
		case !ok:
			return nil, errUnexpectedEOF()
		case b == ']' && len(arr) == 0:
			p.cur.advance(1)
			return &Value{kind: KindArray}, nil
		case b == ']' || b == ',':
			return nil, errStrayCommaOrClose(p.cur.index)
		}
		elem, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, elem)
		p.cur.eatWhitespace()
		index, b, ok := p.cur.indexedNext()
		switch {
		case !ok:
			return nil, errUnexpectedEOF()
		case b == ']':
			return &Value{kind: KindArray, arr: arr}, nil
		case b == ',':
		default:
			return nil, errInvalidCharacter(index)
		}
	}
}

// parseObject consumes '{', then quoted-key ':' value members separated
// by ',' until '}'. Bare keys are rejected; a later reinsert of a key
// overwrites the earlier member; '}' directly after '{' is the only empty
// form.
func (p *parser) parseObject() (*Value, error) {
	index, b, ok := p.cur.indexedNext()
	switch {
	case !ok:
		return nil, errUnexpectedEOF()
	case b != '{':
		return nil, errInvalidCharacter(index)
	}
	if err := p.enter(index); err != nil {
		return nil, err
	}
	defer p.leave()
	obj := newObjectMap(p.backing)
	for {
		p.cur.eatWhitespace()
		b, ok := p.cur.peek()
		switch {
		case !ok:
			return nil, errUnexpectedEOF()
		case b == '}' && obj.Len() == 0:
			p.cur.advance(1)
			return &Value{kind: KindObject, obj: obj}, nil
		case b == '}' || b == ',':
			return nil, errStrayCommaOrClose(p.cur.index)
		case b != '"':
			return nil, errInvalidCharacter(p.cur.index)
		}
		key, err := p.parseString()
		if err != nil {
			return nil, err
		}
		p.cur.eatWhitespace()
		index, b, ok := p.cur.indexedNext()
		switch {
		case !ok:
			return nil, errUnexpectedEOF()
		case b != ':':
			return nil, errInvalidCharacter(index)
		}
		p.cur.eatWhitespace()
		member, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		obj.Set(key, member)
		p.cur.eatWhitespace()
		index, b, ok = p.cur.indexedNext()
		switch {
		case !ok:
			return nil, errUnexpectedEOF()
		case b == '}':
			return &Value{kind: KindObject, obj: obj}, nil
		case b == ',':
		default:
			return nil, errInvalidCharacter(index)
		}
	}
}
