package json

// cursor is a byte-indexed scanner over a fully materialized input. All
// operations are total: at end of input they report ok=false instead of
// failing. The offset only ever moves forward, except for the single-step
// rewind used to un-consume a terminator byte that belongs to the next
// token.
type cursor struct {
	src   string
	index int
}

func newCursor(src string) *cursor {
	return &cursor{src: src}
}

func (c *cursor) isEOF() bool {
	return c.index >= len(c.src)
}

// peek returns the next byte without consuming it.
func (c *cursor) peek() (byte, bool) {
	if c.index < len(c.src) {
		return c.src[c.index], true
	}
	return 0, false
}

// next consumes and returns the next byte.
func (c *cursor) next() (byte, bool) {
	if c.index < len(c.src) {
		b := c.src[c.index]
		c.index++
		return b, true
	}
	return 0, false
}

// indexedNext consumes the next byte and also returns its pre-consumption
// offset.
func (c *cursor) indexedNext() (int, byte, bool) {
	if c.index < len(c.src) {
		i, b := c.index, c.src[c.index]
		c.index++
		return i, b, true
	}
	return 0, 0, false
}

func (c *cursor) advance(step int) {
	c.index += step
}

// rewind steps back exactly one byte, saturating at zero.
func (c *cursor) rewind() {
	if c.index > 0 {
		c.index--
	}
}

// matches reports whether lit occurs verbatim at the current offset.
func (c *cursor) matches(lit string) bool {
	if c.index+len(lit) > len(c.src) {
		return false
	}
	return c.src[c.index:c.index+len(lit)] == lit
}

// isSpace reports ASCII whitespace: space, tab, newline, form feed,
// carriage return.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

// eatWhitespace consumes consecutive ASCII whitespace bytes.
func (c *cursor) eatWhitespace() {
	for {
		b, ok := c.peek()
		if !ok || !isSpace(b) {
			return
		}
		c.advance(1)
	}
}
