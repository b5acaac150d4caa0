package json

import "fmt"

// Kind enumerates the variants of a Value.
type Kind int8

const (
	KindNull   Kind = iota // null
	KindBool               // true / false
	KindNumber             // integer or float
	KindString             // string
	KindArray              // array
	KindObject             // object
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Number is a JSON number: exactly one of a 64-bit signed integer or a
// 64-bit float, never both. The variant is fixed when the Number is
// created; a parsed literal is an integer iff it has no decimal point and
// no exponent.
type Number struct {
	isFloat bool
	i       int64
	f       float64
}

// IntNumber returns an integer Number.
func IntNumber(i int64) Number { return Number{i: i} }

// FloatNumber returns a floating-point Number.
func FloatNumber(f float64) Number { return Number{isFloat: true, f: f} }

// IsInt reports whether the Number holds the integer variant.
func (n Number) IsInt() bool { return !n.isFloat }

// Int64 returns the integer value; ok is false for the float variant.
func (n Number) Int64() (int64, bool) { return n.i, !n.isFloat }

// Float64 returns the float value; ok is false for the integer variant.
func (n Number) Float64() (float64, bool) { return n.f, n.isFloat }

func (n Number) String() string {
	if n.isFloat {
		return fmt.Sprintf("%v", n.f)
	}
	return fmt.Sprintf("%d", n.i)
}

// Value is a discriminated JSON tree node. A Value exclusively owns its
// children: trees have no cycles and no shared sub-nodes, so whole-subtree
// teardown is ordinary garbage collection and concurrent use of distinct
// trees needs no synchronization.
//
// Read accessors are total and never panic. The mutators (Push, Insert,
// Field, Elem) auto-vivify a Null receiver into the matching container and
// panic on any other kind mismatch: they assert a type expectation the
// caller is presumed to have already validated.
type Value struct {
	kind Kind
	b    bool
	num  Number
	str  string
	arr  []*Value
	obj  ObjectMap
}

// NewNull returns a null Value, the starting point for programmatic tree
// construction.
func NewNull() *Value { return &Value{} }

// NewBool returns a boolean Value.
func NewBool(b bool) *Value { return &Value{kind: KindBool, b: b} }

// NewInt returns an integer-variant number Value.
func NewInt(i int64) *Value { return &Value{kind: KindNumber, num: IntNumber(i)} }

// NewFloat returns a float-variant number Value.
func NewFloat(f float64) *Value { return &Value{kind: KindNumber, num: FloatNumber(f)} }

// NewNumber returns a number Value holding n.
func NewNumber(n Number) *Value { return &Value{kind: KindNumber, num: n} }

// NewString returns a string Value.
func NewString(s string) *Value { return &Value{kind: KindString, str: s} }

// NewArray returns an array Value holding elems in order.
func NewArray(elems ...*Value) *Value {
	arr := make([]*Value, 0, len(elems))
	for _, e := range elems {
		if e == nil {
			e = NewNull()
		}
		arr = append(arr, e)
	}
	return &Value{kind: KindArray, arr: arr}
}

// NewObject returns an empty object Value using the package default
// backing, see SetDefaultBacking.
func NewObject() *Value {
	return &Value{kind: KindObject, obj: newObjectMap(DefaultBacking())}
}

// Kind returns the variant of v. A nil Value reads as null.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsNull reports whether v is null.
func (v *Value) IsNull() bool { return v == nil || v.kind == KindNull }

// GetBool returns the boolean value, or false for any other kind.
func (v *Value) GetBool() bool {
	if v == nil || v.kind != KindBool {
		return false
	}
	return v.b
}

// GetNumber returns the Number value; ok is false for any other kind.
func (v *Value) GetNumber() (Number, bool) {
	if v == nil || v.kind != KindNumber {
		return Number{}, false
	}
	return v.num, true
}

// GetInt64 returns the integer value, or 0 unless v is an integer-variant
// number.
func (v *Value) GetInt64() int64 {
	n, ok := v.GetNumber()
	if !ok {
		return 0
	}
	i, _ := n.Int64()
	return i
}

// GetFloat64 returns the float value, or 0 unless v is a float-variant
// number.
func (v *Value) GetFloat64() float64 {
	n, ok := v.GetNumber()
	if !ok {
		return 0
	}
	f, _ := n.Float64()
	return f
}

// GetString returns the string value, or "" for any other kind.
func (v *Value) GetString() string {
	if v == nil || v.kind != KindString {
		return ""
	}
	return v.str
}

// Get returns the member of an object value by key. It is total: ok is
// false when the key is absent or v is not an object.
func (v *Value) Get(key string) (*Value, bool) {
	if v == nil || v.kind != KindObject {
		return nil, false
	}
	return v.obj.Get(key)
}

// At returns the element of an array value by position. It is total: ok
// is false when the index is out of range or v is not an array.
func (v *Value) At(i int) (*Value, bool) {
	if v == nil || v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return nil, false
	}
	return v.arr[i], true
}

// Len returns the byte length of a string, the element count of an array
// or object, and 0 for every other kind.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.kind {
	case KindString:
		return len(v.str)
	case KindArray:
		return len(v.arr)
	case KindObject:
		return v.obj.Len()
	default:
		return 0
	}
}

// Elements returns the backing element slice of an array value, or nil.
// The slice is shared with v; callers must not grow it.
func (v *Value) Elements() []*Value {
	if v == nil || v.kind != KindArray {
		return nil
	}
	return v.arr
}

// Keys returns the member keys of an object value, in the backing map's
// iteration order, or nil.
func (v *Value) Keys() []string {
	if v == nil || v.kind != KindObject {
		return nil
	}
	return v.obj.Keys()
}

// Range calls fn for each object member in the backing map's iteration
// order until fn returns false. It does nothing for non-object values.
func (v *Value) Range(fn func(key string, val *Value) bool) {
	if v == nil || v.kind != KindObject {
		return
	}
	v.obj.Range(fn)
}

// Push appends elem to an array value. A null receiver is converted to an
// empty array first. Push panics if v is any other kind; pre-validate
// with Kind when resilience is required. A nil elem is stored as null.
func (v *Value) Push(elem *Value) {
	if elem == nil {
		elem = NewNull()
	}
	if v.kind == KindNull {
		v.kind = KindArray
		v.arr = nil
	}
	if v.kind != KindArray {
		panic(fmt.Sprintf("json: Push on %s value", v.kind))
	}
	v.arr = append(v.arr, elem)
}

// Insert sets key to elem in an object value and returns the previous
// member, or nil if the key was absent. A null receiver is converted to
// an empty object (package default backing) first. Insert panics if v is
// any other kind. A nil elem is stored as null.
func (v *Value) Insert(key string, elem *Value) *Value {
	if elem == nil {
		elem = NewNull()
	}
	if v.kind == KindNull {
		v.kind = KindObject
		v.obj = newObjectMap(DefaultBacking())
	}
	if v.kind != KindObject {
		panic(fmt.Sprintf("json: Insert on %s value", v.kind))
	}
	prev, _ := v.obj.Set(key, elem)
	return prev
}

// Field returns the member for key, inserting a null member if the key is
// absent. A null receiver is converted to an empty object first. Field
// panics if v is any other kind.
func (v *Value) Field(key string) *Value {
	if v.kind == KindNull {
		v.kind = KindObject
		v.obj = newObjectMap(DefaultBacking())
	}
	if v.kind != KindObject {
		panic(fmt.Sprintf("json: Field on %s value", v.kind))
	}
	if member, ok := v.obj.Get(key); ok {
		return member
	}
	member := NewNull()
	v.obj.Set(key, member)
	return member
}

// Elem returns the element at position i, extending the array with null
// elements as needed. A null receiver is converted to an empty array
// first. Elem panics if v is any other kind or i is negative.
func (v *Value) Elem(i int) *Value {
	if i < 0 {
		panic(fmt.Sprintf("json: Elem with negative index %d", i))
	}
	if v.kind == KindNull {
		v.kind = KindArray
		v.arr = nil
	}
	if v.kind != KindArray {
		panic(fmt.Sprintf("json: Elem on %s value", v.kind))
	}
	for len(v.arr) <= i {
		v.arr = append(v.arr, NewNull())
	}
	return v.arr[i]
}
