package json

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/bournejson/bourne/options"
)

// ObjectMap is the mapping abstraction behind object values. Keys are
// unique: setting an existing key overwrites its member. Which concrete
// backing a tree uses is a configuration-time policy (options.Backing),
// not a per-value choice.
type ObjectMap interface {
	// Get returns the member for key; ok is false when absent.
	Get(key string) (*Value, bool)
	// Set maps key to val and returns the member it replaced, if any.
	Set(key string, val *Value) (prev *Value, replaced bool)
	// Len returns the member count.
	Len() int
	// Keys returns all keys in the backing's iteration order.
	Keys() []string
	// Range calls fn per member in the backing's iteration order until fn
	// returns false.
	Range(fn func(key string, val *Value) bool)
}

func newObjectMap(b options.Backing) ObjectMap {
	if b == options.HashBacking {
		return hashMap{}
	}
	return newOrderedMap()
}

var defaultBacking = options.OrderedBacking

// SetDefaultBacking configures the backing used for objects built
// programmatically (NewObject and null-to-object vivification). It is
// meant to be called once at startup, before any trees are built; parse
// calls take the backing from their own options instead.
func SetDefaultBacking(b options.Backing) {
	defaultBacking = b
}

// DefaultBacking returns the backing used for programmatic construction.
func DefaultBacking() options.Backing {
	return defaultBacking
}

// hashMap backs objects with a builtin map: unspecified iteration order.
type hashMap map[string]*Value

func (m hashMap) Get(key string) (*Value, bool) {
	val, ok := m[key]
	return val, ok
}

func (m hashMap) Set(key string, val *Value) (*Value, bool) {
	prev, replaced := m[key]
	m[key] = val
	return prev, replaced
}

func (m hashMap) Len() int { return len(m) }

func (m hashMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func (m hashMap) Range(fn func(key string, val *Value) bool) {
	for k, v := range m {
		if !fn(k, v) {
			return
		}
	}
}

// orderedMap backs objects with a linked hash map: iteration follows
// insertion order, and overwriting a key keeps its original position.
type orderedMap struct {
	m *linkedhashmap.Map
}

func newOrderedMap() *orderedMap {
	return &orderedMap{m: linkedhashmap.New()}
}

func (m *orderedMap) Get(key string) (*Value, bool) {
	val, ok := m.m.Get(key)
	if !ok {
		return nil, false
	}
	return val.(*Value), true
}

func (m *orderedMap) Set(key string, val *Value) (*Value, bool) {
	prev, replaced := m.m.Get(key)
	m.m.Put(key, val)
	if !replaced {
		return nil, false
	}
	return prev.(*Value), true
}

func (m *orderedMap) Len() int { return m.m.Size() }

func (m *orderedMap) Keys() []string {
	raw := m.m.Keys()
	keys := make([]string, 0, len(raw))
	for _, k := range raw {
		keys = append(keys, k.(string))
	}
	return keys
}

func (m *orderedMap) Range(fn func(key string, val *Value) bool) {
	it := m.m.Iterator()
	for it.Next() {
		if !fn(it.Key().(string), it.Value().(*Value)) {
			return
		}
	}
}
