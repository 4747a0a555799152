// Package valuetree implements the JSON-compatible value tree TONE encodes
// and decodes: the shared data model between the encoder, decoder, and the
// ecosystem adapters built on top of them.
package valuetree

import "math/big"

// Kind identifies the concrete shape of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
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

// Value is the JSON-compatible value tree TONE encodes and decodes.
// Integers are backed by math/big.Int so that arbitrary-width literals
// round-trip exactly regardless of host int size.
type Value struct {
	kind Kind
	b    bool
	i    *big.Int
	f    float64
	s    string
	arr  []Value
	obj  *Object
}

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a boolean scalar.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Int wraps an int64 scalar.
func Int(v int64) Value { return Value{kind: KindInt, i: big.NewInt(v)} }

// BigInt wraps an arbitrary-width integer scalar.
func BigInt(v *big.Int) Value { return Value{kind: KindInt, i: new(big.Int).Set(v)} }

// Float wraps a floating-point scalar.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// String wraps a string scalar.
func String(v string) Value { return Value{kind: KindString, s: v} }

// Array wraps an ordered sequence of values.
func Array(values ...Value) Value {
	return Value{kind: KindArray, arr: append([]Value(nil), values...)}
}

// FromObject wraps an Object as a Value.
func FromObject(o Object) Value { return Value{kind: KindObject, obj: &o} }

// Kind reports the value's kind.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean payload; ok is false if v is not KindBool.
func (v Value) Bool() (_ bool, ok bool) { return v.b, v.kind == KindBool }

// Int returns the integer payload as a big.Int; ok is false if v is not KindInt.
func (v Value) Int() (_ *big.Int, ok bool) { return v.i, v.kind == KindInt }

// Float returns the float payload; ok is false if v is not KindFloat.
func (v Value) Float() (_ float64, ok bool) { return v.f, v.kind == KindFloat }

// Str returns the string payload; ok is false if v is not KindString.
func (v Value) Str() (_ string, ok bool) { return v.s, v.kind == KindString }

// Elements returns the array payload; ok is false if v is not KindArray.
func (v Value) Elements() (_ []Value, ok bool) { return v.arr, v.kind == KindArray }

// Object returns the object payload; ok is false if v is not KindObject.
func (v Value) Object() (_ Object, ok bool) {
	if v.kind != KindObject {
		return Object{}, false
	}
	return *v.obj, true
}

// IsScalar reports whether v is null, bool, int, float, or string — the
// set the format calls "primitive" in the shape classifier.
func (v Value) IsScalar() bool {
	switch v.kind {
	case KindNull, KindBool, KindInt, KindFloat, KindString:
		return true
	default:
		return false
	}
}

// Equal reports deep equality between two values. Floats compare by value
// (NaN is never produced by this codec, so no special handling is
// required). Objects compare by field set and value equality, independent
// of field order, matching how the shape classifier treats key sets for
// tabular detection; array order always matters.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindInt:
		return v.i.Cmp(other.i) == 0
	case KindFloat:
		return v.f == other.f
	case KindString:
		return v.s == other.s
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		return v.obj.equal(other.obj)
	default:
		return false
	}
}
