package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorPeekNext(t *testing.T) {
	c := newCursor("ab")

	b, ok := c.peek()
	require.True(t, ok)
	assert.Equal(t, byte('a'), b)
	assert.Equal(t, 0, c.index) // peek does not consume

	i, b, ok := c.indexedNext()
	require.True(t, ok)
	assert.Equal(t, 0, i)
	assert.Equal(t, byte('a'), b)

	b, ok = c.next()
	require.True(t, ok)
	assert.Equal(t, byte('b'), b)

	assert.True(t, c.isEOF())
	_, ok = c.peek()
	assert.False(t, ok)
	_, ok = c.next()
	assert.False(t, ok)
	_, _, ok = c.indexedNext()
	assert.False(t, ok)
}

func TestCursorRewind(t *testing.T) {
	c := newCursor("xy")
	c.next()
	c.next()
	c.rewind()
	assert.Equal(t, 1, c.index)

	// Saturates at zero.
	c.rewind()
	c.rewind()
	assert.Equal(t, 0, c.index)
}

func TestCursorMatches(t *testing.T) {
	c := newCursor("null,")
	assert.True(t, c.matches("null"))
	assert.False(t, c.matches("nulls"))
	assert.False(t, c.matches("true"))
	assert.Equal(t, 0, c.index) // matches does not consume

	c.advance(4)
	assert.True(t, c.matches(","))
	// Literal longer than the remaining input never matches.
	assert.False(t, c.matches(",x"))
}

func TestCursorEatWhitespace(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		wantIndex int
	}{
		{name: "mixed whitespace", src: " \t\r\n\fx", wantIndex: 5},
		{name: "no whitespace", src: "x ", wantIndex: 0},
		{name: "all whitespace", src: "   ", wantIndex: 3},
		{name: "empty", src: "", wantIndex: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCursor(tt.src)
			c.eatWhitespace()
			assert.Equal(t, tt.wantIndex, c.index)
		})
	}
}
