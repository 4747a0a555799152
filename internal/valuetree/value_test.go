package valuetree_test

import (
	"math/big"
	"testing"

	"github.com/tone-format/tone-go/internal/valuetree"
)

func TestScalarConstructorsAndAccessors(t *testing.T) {
	if !valuetree.Null().IsNull() {
		t.Error("Null() should report IsNull")
	}
	if b, ok := valuetree.Bool(true).Bool(); !ok || !b {
		t.Errorf("Bool(true).Bool() = (%v, %v), want (true, true)", b, ok)
	}
	if i, ok := valuetree.Int(42).Int(); !ok || i.Int64() != 42 {
		t.Errorf("Int(42).Int() = (%v, %v), want (42, true)", i, ok)
	}
	big7 := big.NewInt(7)
	v := valuetree.BigInt(big7)
	big7.SetInt64(99) // mutating the caller's pointer must not affect v
	if i, ok := v.Int(); !ok || i.Int64() != 7 {
		t.Errorf("BigInt should copy its argument; got %v", i)
	}
	if f, ok := valuetree.Float(1.5).Float(); !ok || f != 1.5 {
		t.Errorf("Float(1.5).Float() = (%v, %v), want (1.5, true)", f, ok)
	}
	if s, ok := valuetree.String("x").Str(); !ok || s != "x" {
		t.Errorf("String(\"x\").Str() = (%v, %v), want (x, true)", s, ok)
	}
}

func TestAccessorsFailOnWrongKind(t *testing.T) {
	v := valuetree.Int(1)
	if _, ok := v.Bool(); ok {
		t.Error("Bool() should fail on an int value")
	}
	if _, ok := v.Float(); ok {
		t.Error("Float() should fail on an int value")
	}
	if _, ok := v.Str(); ok {
		t.Error("Str() should fail on an int value")
	}
	if _, ok := v.Elements(); ok {
		t.Error("Elements() should fail on an int value")
	}
	if _, ok := v.Object(); ok {
		t.Error("Object() should fail on an int value")
	}
}

func TestArrayAndObject(t *testing.T) {
	arr := valuetree.Array(valuetree.Int(1), valuetree.Int(2))
	elems, ok := arr.Elements()
	if !ok || len(elems) != 2 {
		t.Fatalf("Elements() = (%v, %v), want 2 elements", elems, ok)
	}

	obj := valuetree.NewObject(
		valuetree.Field{Key: "a", Value: valuetree.Int(1)},
		valuetree.Field{Key: "b", Value: valuetree.String("x")},
	)
	v := valuetree.FromObject(obj)
	got, ok := v.Object()
	if !ok || got.Len() != 2 {
		t.Fatalf("Object() = (%v, %v), want 2 fields", got, ok)
	}
}

func TestIsScalar(t *testing.T) {
	scalars := []valuetree.Value{
		valuetree.Null(), valuetree.Bool(true), valuetree.Int(1),
		valuetree.Float(1), valuetree.String("s"),
	}
	for _, v := range scalars {
		if !v.IsScalar() {
			t.Errorf("%v.IsScalar() = false, want true", v)
		}
	}
	nonScalars := []valuetree.Value{valuetree.Array(), valuetree.FromObject(valuetree.Object{})}
	for _, v := range nonScalars {
		if v.IsScalar() {
			t.Errorf("%v.IsScalar() = true, want false", v)
		}
	}
}

func TestEqual(t *testing.T) {
	a := valuetree.Array(valuetree.Int(1), valuetree.String("x"))
	b := valuetree.Array(valuetree.Int(1), valuetree.String("x"))
	if !a.Equal(b) {
		t.Error("identical arrays should be Equal")
	}

	c := valuetree.Array(valuetree.String("x"), valuetree.Int(1))
	if a.Equal(c) {
		t.Error("arrays with swapped order should not be Equal")
	}

	o1 := valuetree.FromObject(valuetree.NewObject(
		valuetree.Field{Key: "a", Value: valuetree.Int(1)},
		valuetree.Field{Key: "b", Value: valuetree.Int(2)},
	))
	o2 := valuetree.FromObject(valuetree.NewObject(
		valuetree.Field{Key: "b", Value: valuetree.Int(2)},
		valuetree.Field{Key: "a", Value: valuetree.Int(1)},
	))
	if !o1.Equal(o2) {
		t.Error("objects with the same fields in different order should be Equal")
	}

	if valuetree.Int(1).Equal(valuetree.Float(1)) {
		t.Error("different kinds should never be Equal")
	}
}

func TestKindString(t *testing.T) {
	cases := map[valuetree.Kind]string{
		valuetree.KindNull:   "null",
		valuetree.KindBool:   "bool",
		valuetree.KindInt:    "int",
		valuetree.KindFloat:  "float",
		valuetree.KindString: "string",
		valuetree.KindArray:  "array",
		valuetree.KindObject: "object",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
