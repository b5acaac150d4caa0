package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bournejson/bourne/options"
)

func testBackingBasics(t *testing.T, m ObjectMap) {
	t.Helper()
	_, ok := m.Get("a")
	assert.False(t, ok)

	prev, replaced := m.Set("a", NewInt(1))
	assert.Nil(t, prev)
	assert.False(t, replaced)
	prev, replaced = m.Set("a", NewInt(2))
	require.True(t, replaced)
	assert.Equal(t, int64(1), prev.GetInt64())
	m.Set("b", NewInt(3))

	assert.Equal(t, 2, m.Len())
	got, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, int64(2), got.GetInt64())
	assert.ElementsMatch(t, []string{"a", "b"}, m.Keys())
}

func TestHashMapBacking(t *testing.T) {
	testBackingBasics(t, newObjectMap(options.HashBacking))
}

func TestOrderedMapBacking(t *testing.T) {
	testBackingBasics(t, newObjectMap(options.OrderedBacking))
}

func TestOrderedMapKeepsInsertionOrder(t *testing.T) {
	m := newObjectMap(options.OrderedBacking)
	m.Set("z", NewInt(1))
	m.Set("a", NewInt(2))
	m.Set("m", NewInt(3))
	// Overwriting keeps the key's original position.
	m.Set("z", NewInt(9))
	assert.Equal(t, []string{"z", "a", "m"}, m.Keys())

	var visited []string
	m.Range(func(key string, _ *Value) bool {
		visited = append(visited, key)
		return true
	})
	assert.Equal(t, []string{"z", "a", "m"}, visited)
}

func TestRangeEarlyStop(t *testing.T) {
	for _, backing := range []options.Backing{options.HashBacking, options.OrderedBacking} {
		m := newObjectMap(backing)
		m.Set("a", NewInt(1))
		m.Set("b", NewInt(2))
		count := 0
		m.Range(func(string, *Value) bool {
			count++
			return false
		})
		assert.Equal(t, 1, count, "backing %s", backing)
	}
}

func TestDefaultBacking(t *testing.T) {
	orig := DefaultBacking()
	defer SetDefaultBacking(orig)

	SetDefaultBacking(options.HashBacking)
	val := NewObject()
	_, isHash := val.obj.(hashMap)
	assert.True(t, isHash)

	SetDefaultBacking(options.OrderedBacking)
	val = NewNull()
	val.Insert("k", NewInt(1)) // vivification uses the package default
	_, isOrdered := val.obj.(*orderedMap)
	assert.True(t, isOrdered)
}
