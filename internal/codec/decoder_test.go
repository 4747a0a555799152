package codec_test

import (
	"testing"

	"github.com/tone-format/tone-go/internal/codec"
	"github.com/tone-format/tone-go/internal/errtone"
	"github.com/tone-format/tone-go/internal/valuetree"
)

func decode(t *testing.T, text string, opts codec.DecodeOptions) valuetree.Value {
	t.Helper()
	v, err := codec.Decode(text, opts)
	if err != nil {
		t.Fatalf("Decode(%q) error: %v", text, err)
	}
	return v
}

func TestDecodeEmptyDocumentIsEmptyObject(t *testing.T) {
	v := decode(t, "", codec.DefaultDecodeOptions())
	obj, ok := v.Object()
	if !ok || obj.Len() != 0 {
		t.Fatalf("Decode(\"\") = %v, want empty object", v)
	}
}

func TestDecodeRootScalar(t *testing.T) {
	v := decode(t, "42", codec.DefaultDecodeOptions())
	i, ok := v.Int()
	if !ok || i.Int64() != 42 {
		t.Fatalf("Decode(42) = %v, want int 42", v)
	}
}

func TestDecodeFlatObject(t *testing.T) {
	v := decode(t, "name: alice\nage: 30", codec.DefaultDecodeOptions())
	obj, ok := v.Object()
	if !ok {
		t.Fatal("expected an object")
	}
	name, _ := obj.Get("name")
	if s, _ := name.Str(); s != "alice" {
		t.Errorf("name = %q, want alice", s)
	}
	age, _ := obj.Get("age")
	if i, _ := age.Int(); i.Int64() != 30 {
		t.Errorf("age = %v, want 30", i)
	}
}

func TestDecodeNestedObject(t *testing.T) {
	v := decode(t, "address:\n  city: nyc", codec.DefaultDecodeOptions())
	obj, _ := v.Object()
	addr, ok := obj.Get("address")
	if !ok {
		t.Fatal("expected address field")
	}
	addrObj, _ := addr.Object()
	city, _ := addrObj.Get("city")
	if s, _ := city.Str(); s != "nyc" {
		t.Errorf("city = %q, want nyc", s)
	}
}

func TestDecodeInlinePrimitiveArray(t *testing.T) {
	v := decode(t, "tags[3]: a,b,3", codec.DefaultDecodeOptions())
	obj, _ := v.Object()
	tags, _ := obj.Get("tags")
	elems, ok := tags.Elements()
	if !ok || len(elems) != 3 {
		t.Fatalf("tags = %v, want 3 elements", tags)
	}
	if s, _ := elems[0].Str(); s != "a" {
		t.Errorf("elems[0] = %q, want a", s)
	}
	if i, _ := elems[2].Int(); i.Int64() != 3 {
		t.Errorf("elems[2] = %v, want 3", i)
	}
}

func TestDecodeTabularArray(t *testing.T) {
	v := decode(t, "users[2]{id,name}:\n  1,alice\n  2,bob", codec.DefaultDecodeOptions())
	obj, _ := v.Object()
	users, _ := obj.Get("users")
	elems, _ := users.Elements()
	if len(elems) != 2 {
		t.Fatalf("users has %d elements, want 2", len(elems))
	}
	row0, _ := elems[0].Object()
	id0, _ := row0.Get("id")
	name0, _ := row0.Get("name")
	if i, _ := id0.Int(); i.Int64() != 1 {
		t.Errorf("row0.id = %v, want 1", i)
	}
	if s, _ := name0.Str(); s != "alice" {
		t.Errorf("row0.name = %q, want alice", s)
	}
}

func TestDecodeListArray(t *testing.T) {
	v := decode(t, "items[2]:\n  - id: 1\n  - plain", codec.DefaultDecodeOptions())
	obj, _ := v.Object()
	items, _ := obj.Get("items")
	elems, _ := items.Elements()
	if len(elems) != 2 {
		t.Fatalf("items has %d elements, want 2", len(elems))
	}
	item0, ok := elems[0].Object()
	if !ok {
		t.Fatal("expected first item to be an object")
	}
	id, _ := item0.Get("id")
	if i, _ := id.Int(); i.Int64() != 1 {
		t.Errorf("item0.id = %v, want 1", i)
	}
	if s, _ := elems[1].Str(); s != "plain" {
		t.Errorf("item1 = %q, want plain", s)
	}
}

func TestDecodeEmptyArray(t *testing.T) {
	v := decode(t, "tags[0]:", codec.DefaultDecodeOptions())
	obj, _ := v.Object()
	tags, _ := obj.Get("tags")
	elems, ok := tags.Elements()
	if !ok || len(elems) != 0 {
		t.Fatalf("tags = %v, want 0 elements", tags)
	}
}

func TestDecodeStrictCountMismatchIsValidationError(t *testing.T) {
	_, err := codec.Decode("tags[3]: a,b", codec.DefaultDecodeOptions())
	if err == nil {
		t.Fatal("expected a validation error for a declared/actual count mismatch")
	}
	var toneErr *errtone.Error
	if e, ok := err.(*errtone.Error); ok {
		toneErr = e
	} else {
		t.Fatalf("error is not *errtone.Error: %T", err)
	}
	if toneErr.Kind != errtone.Validation {
		t.Errorf("Kind = %v, want Validation", toneErr.Kind)
	}
}

func TestDecodeNonStrictCountMismatchIsRepaired(t *testing.T) {
	opts := codec.DefaultDecodeOptions()
	opts.Strict = false
	v := decode(t, "tags[3]: a,b", opts)
	obj, _ := v.Object()
	tags, _ := obj.Get("tags")
	elems, _ := tags.Elements()
	if len(elems) != 2 {
		t.Fatalf("non-strict decode should keep the actual 2 elements, got %d", len(elems))
	}
}

func TestDecodeStrictRowWidthMismatchIsValidationError(t *testing.T) {
	_, err := codec.Decode("users[1]{id,name}:\n  1,alice,extra", codec.DefaultDecodeOptions())
	if err == nil {
		t.Fatal("expected a validation error for a row-width mismatch")
	}
}

func TestDecodeNonStrictRowWidthMismatchIsPadded(t *testing.T) {
	opts := codec.DefaultDecodeOptions()
	opts.Strict = false
	v := decode(t, "users[1]{id,name}:\n  1", opts)
	obj, _ := v.Object()
	users, _ := obj.Get("users")
	elems, _ := users.Elements()
	row0, _ := elems[0].Object()
	name0, _ := row0.Get("name")
	if !name0.IsNull() {
		t.Errorf("missing trailing field should be padded with null, got %v", name0)
	}
}

func TestDecodeDuplicateKeyIsValidationError(t *testing.T) {
	_, err := codec.Decode("a: 1\na: 2", codec.DefaultDecodeOptions())
	if err == nil {
		t.Fatal("expected a validation error for a duplicate key")
	}
	e, ok := err.(*errtone.Error)
	if !ok {
		t.Fatalf("error is not *errtone.Error: %T", err)
	}
	if e.Kind != errtone.Validation {
		t.Errorf("Kind = %v, want Validation", e.Kind)
	}
}

func TestDecodeIndentJumpIsIndentError(t *testing.T) {
	_, err := codec.Decode("a:\n    b: 1", codec.DefaultDecodeOptions())
	if err == nil {
		t.Fatal("expected an indent error for a depth jump greater than one step")
	}
	e, ok := err.(*errtone.Error)
	if !ok {
		t.Fatalf("error is not *errtone.Error: %T", err)
	}
	if e.Kind != errtone.Indent {
		t.Errorf("Kind = %v, want Indent", e.Kind)
	}
}

func TestDecodeIndentRemainderIsIndentError(t *testing.T) {
	_, err := codec.Decode("a:\n   b: 1", codec.DefaultDecodeOptions())
	if err == nil {
		t.Fatal("expected an indent error for a non-multiple indent")
	}
	e, ok := err.(*errtone.Error)
	if !ok {
		t.Fatalf("error is not *errtone.Error: %T", err)
	}
	if e.Kind != errtone.Indent {
		t.Errorf("Kind = %v, want Indent", e.Kind)
	}
}

func TestDecodeTrailingContentIsSyntaxError(t *testing.T) {
	_, err := codec.Decode("42\nstray", codec.DefaultDecodeOptions())
	if err == nil {
		t.Fatal("expected a syntax error for trailing content after a complete document")
	}
	e, ok := err.(*errtone.Error)
	if !ok {
		t.Fatalf("error is not *errtone.Error: %T", err)
	}
	if e.Kind != errtone.Syntax {
		t.Errorf("Kind = %v, want Syntax", e.Kind)
	}
}

func TestDecodeBareKeyEndOfInputIsNull(t *testing.T) {
	v := decode(t, "a:", codec.DefaultDecodeOptions())
	obj, _ := v.Object()
	a, _ := obj.Get("a")
	if !a.IsNull() {
		t.Errorf("a = %v, want null", a)
	}
}

func TestDecodeBareKeyFollowedBySiblingIsEmptyObject(t *testing.T) {
	v := decode(t, "a:\nb: 1", codec.DefaultDecodeOptions())
	obj, _ := v.Object()
	a, ok := obj.Get("a")
	if !ok {
		t.Fatal("expected field a")
	}
	aObj, isObj := a.Object()
	if !isObj || aObj.Len() != 0 {
		t.Errorf("a = %v, want empty object", a)
	}
}
