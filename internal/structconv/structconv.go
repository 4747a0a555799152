// Package structconv adapts arbitrary Go values to and from the value
// tree TONE encodes and decodes, via a "tone" struct tag.
package structconv

import (
	"fmt"
	"math/big"
	"reflect"
	"sort"
	"strings"

	"golang.org/x/xerrors"

	"github.com/tone-format/tone-go/internal/errtone"
	"github.com/tone-format/tone-go/internal/position"
	"github.com/tone-format/tone-go/internal/valuetree"
)

// StructTagName is the struct tag key consulted for field names and
// options.
const StructTagName = "tone"

// StructField is the parsed form of one field's "tone" tag.
type StructField struct {
	FieldName   string
	RenderName  string
	IsOmitEmpty bool
	IsInline    bool
}

func parseStructField(field reflect.StructField) *StructField {
	tag := field.Tag.Get(StructTagName)
	renderName := strings.ToLower(field.Name)
	options := strings.Split(tag, ",")
	if options[0] != "" {
		renderName = options[0]
	}
	sf := &StructField{FieldName: field.Name, RenderName: renderName}
	for _, opt := range options[1:] {
		switch opt {
		case "omitempty":
			sf.IsOmitEmpty = true
		case "inline":
			sf.IsInline = true
		}
	}
	return sf
}

func isIgnoredField(field reflect.StructField) bool {
	if field.PkgPath != "" && !field.Anonymous {
		return true
	}
	return field.Tag.Get(StructTagName) == "-"
}

// structFields returns the ordered, ignored-and-renamed field list for
// structType, erroring on a duplicate render name.
func structFields(structType reflect.Type) ([]*StructField, error) {
	seen := map[string]struct{}{}
	var fields []*StructField
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if isIgnoredField(field) {
			continue
		}
		sf := parseStructField(field)
		if _, dup := seen[sf.RenderName]; dup {
			return nil, xerrors.Errorf("duplicated struct field name %s", sf.RenderName)
		}
		seen[sf.RenderName] = struct{}{}
		fields = append(fields, sf)
	}
	return fields, nil
}

// ToValue converts an arbitrary Go value into a valuetree.Value. Supported
// inputs: nil, bool, any integer kind, any float kind, string, []byte,
// *big.Int, pointers, slices/arrays, maps with string-like keys, structs,
// and anything already a valuetree.Value or valuetree.Object. Cyclic
// pointer graphs are rejected with an encode-value error; a pointer-address
// visited set taken along the active walk path is sufficient to detect
// them.
func ToValue(v any) (valuetree.Value, error) {
	return toValue(reflect.ValueOf(v), map[uintptr]bool{})
}

func toValue(rv reflect.Value, visiting map[uintptr]bool) (valuetree.Value, error) {
	if !rv.IsValid() {
		return valuetree.Null(), nil
	}

	switch x := rv.Interface().(type) {
	case valuetree.Value:
		return x, nil
	case valuetree.Object:
		return valuetree.FromObject(x), nil
	case *big.Int:
		if x == nil {
			return valuetree.Null(), nil
		}
		return valuetree.BigInt(x), nil
	}

	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return valuetree.Null(), nil
		}
		if rv.Kind() == reflect.Ptr {
			ptr := rv.Pointer()
			if visiting[ptr] {
				return valuetree.Value{}, errtone.New(errtone.EncodeValue, position.Position{}, "", "", "structconv: cyclic value detected")
			}
			visiting[ptr] = true
			defer delete(visiting, ptr)
		}
		return toValue(rv.Elem(), visiting)
	case reflect.Bool:
		return valuetree.Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return valuetree.Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return valuetree.BigInt(new(big.Int).SetUint64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return valuetree.Float(rv.Float()), nil
	case reflect.String:
		return valuetree.String(rv.String()), nil
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return valuetree.String(string(rv.Bytes())), nil
		}
		if rv.IsNil() {
			return valuetree.Array(), nil
		}
		return toArray(rv, visiting)
	case reflect.Array:
		return toArray(rv, visiting)
	case reflect.Map:
		return toMapValue(rv, visiting)
	case reflect.Struct:
		return toStructValue(rv, visiting)
	default:
		return valuetree.Value{}, fmt.Errorf("structconv: unsupported type %s", rv.Type())
	}
}

func toArray(rv reflect.Value, visiting map[uintptr]bool) (valuetree.Value, error) {
	values := make([]valuetree.Value, rv.Len())
	for i := range values {
		v, err := toValue(rv.Index(i), visiting)
		if err != nil {
			return valuetree.Value{}, err
		}
		values[i] = v
	}
	return valuetree.Array(values...), nil
}

func toMapValue(rv reflect.Value, visiting map[uintptr]bool) (valuetree.Value, error) {
	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool { return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface()) })
	obj := valuetree.Object{}
	for _, k := range keys {
		v, err := toValue(rv.MapIndex(k), visiting)
		if err != nil {
			return valuetree.Value{}, err
		}
		obj.Set(fmt.Sprint(k.Interface()), v)
	}
	return valuetree.FromObject(obj), nil
}

func toStructValue(rv reflect.Value, visiting map[uintptr]bool) (valuetree.Value, error) {
	fields, err := structFields(rv.Type())
	if err != nil {
		return valuetree.Value{}, err
	}
	obj := valuetree.Object{}
	for _, sf := range fields {
		fv := rv.FieldByName(sf.FieldName)
		if sf.IsOmitEmpty && fv.IsZero() {
			continue
		}
		val, err := toValue(fv, visiting)
		if err != nil {
			return valuetree.Value{}, err
		}
		if sf.IsInline {
			sub, ok := val.Object()
			if !ok {
				return valuetree.Value{}, fmt.Errorf("structconv: inline field %s must be a struct or map", sf.FieldName)
			}
			for _, f := range sub.Fields {
				obj.Set(f.Key, f.Value)
			}
			continue
		}
		obj.Set(sf.RenderName, val)
	}
	return valuetree.FromObject(obj), nil
}

// FromValue populates out, which must be a non-nil pointer, from value.
func FromValue(value valuetree.Value, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("structconv: destination must be a non-nil pointer")
	}
	return assign(value, rv.Elem())
}

func assign(value valuetree.Value, dst reflect.Value) error {
	if dst.Kind() == reflect.Ptr {
		if value.IsNull() {
			dst.Set(reflect.Zero(dst.Type()))
			return nil
		}
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		return assign(value, dst.Elem())
	}
	if dst.Type() == reflect.TypeOf(valuetree.Value{}) {
		dst.Set(reflect.ValueOf(value))
		return nil
	}
	if dst.Type() == reflect.TypeOf(valuetree.Object{}) {
		obj, ok := value.Object()
		if !ok {
			return fmt.Errorf("structconv: expected object, got %s", value.Kind())
		}
		dst.Set(reflect.ValueOf(obj))
		return nil
	}
	if bi, ok := dst.Addr().Interface().(**big.Int); ok {
		v, ok := value.Int()
		if !ok {
			return fmt.Errorf("structconv: expected int, got %s", value.Kind())
		}
		*bi = new(big.Int).Set(v)
		return nil
	}

	switch dst.Kind() {
	case reflect.Interface:
		native, err := toNative(value)
		if err != nil {
			return err
		}
		dst.Set(reflect.ValueOf(native))
		return nil
	case reflect.Bool:
		b, ok := value.Bool()
		if !ok {
			return fmt.Errorf("structconv: expected bool, got %s", value.Kind())
		}
		dst.SetBool(b)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, ok := value.Int()
		if !ok {
			return fmt.Errorf("structconv: expected int, got %s", value.Kind())
		}
		dst.SetInt(i.Int64())
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		i, ok := value.Int()
		if !ok {
			return fmt.Errorf("structconv: expected int, got %s", value.Kind())
		}
		dst.SetUint(i.Uint64())
		return nil
	case reflect.Float32, reflect.Float64:
		f, ok := value.Float()
		if ok {
			dst.SetFloat(f)
			return nil
		}
		if i, ok := value.Int(); ok {
			bf := new(big.Float).SetInt(i)
			fv, _ := bf.Float64()
			dst.SetFloat(fv)
			return nil
		}
		return fmt.Errorf("structconv: expected number, got %s", value.Kind())
	case reflect.String:
		str, ok := value.Str()
		if !ok {
			return fmt.Errorf("structconv: expected string, got %s", value.Kind())
		}
		dst.SetString(str)
		return nil
	case reflect.Slice:
		if dst.Type().Elem().Kind() == reflect.Uint8 {
			str, ok := value.Str()
			if !ok {
				return fmt.Errorf("structconv: expected string, got %s", value.Kind())
			}
			dst.SetBytes([]byte(str))
			return nil
		}
		elems, ok := value.Elements()
		if !ok {
			return fmt.Errorf("structconv: expected array, got %s", value.Kind())
		}
		out := reflect.MakeSlice(dst.Type(), len(elems), len(elems))
		for i, e := range elems {
			if err := assign(e, out.Index(i)); err != nil {
				return err
			}
		}
		dst.Set(out)
		return nil
	case reflect.Map:
		obj, ok := value.Object()
		if !ok {
			return fmt.Errorf("structconv: expected object, got %s", value.Kind())
		}
		out := reflect.MakeMapWithSize(dst.Type(), obj.Len())
		for _, f := range obj.Fields {
			key := reflect.New(dst.Type().Key()).Elem()
			key.SetString(f.Key)
			elem := reflect.New(dst.Type().Elem()).Elem()
			if err := assign(f.Value, elem); err != nil {
				return err
			}
			out.SetMapIndex(key, elem)
		}
		dst.Set(out)
		return nil
	case reflect.Struct:
		obj, ok := value.Object()
		if !ok {
			return fmt.Errorf("structconv: expected object, got %s", value.Kind())
		}
		fields, err := structFields(dst.Type())
		if err != nil {
			return err
		}
		for _, sf := range fields {
			fv := dst.FieldByName(sf.FieldName)
			if sf.IsInline {
				if err := assign(value, fv); err != nil {
					return err
				}
				continue
			}
			fieldVal, present := obj.Get(sf.RenderName)
			if !present {
				continue
			}
			if err := assign(fieldVal, fv); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("structconv: unsupported destination type %s", dst.Type())
	}
}

// toNative converts value into the natural Go type used for an interface{}
// destination: map[string]any for objects, []any for arrays, and the
// scalar's natural type otherwise.
func toNative(value valuetree.Value) (any, error) {
	switch value.Kind() {
	case valuetree.KindNull:
		return nil, nil
	case valuetree.KindBool:
		b, _ := value.Bool()
		return b, nil
	case valuetree.KindInt:
		i, _ := value.Int()
		if i.IsInt64() {
			return i.Int64(), nil
		}
		return i, nil
	case valuetree.KindFloat:
		f, _ := value.Float()
		return f, nil
	case valuetree.KindString:
		s, _ := value.Str()
		return s, nil
	case valuetree.KindArray:
		elems, _ := value.Elements()
		out := make([]any, len(elems))
		for i, e := range elems {
			v, err := toNative(e)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case valuetree.KindObject:
		obj, _ := value.Object()
		out := make(map[string]any, obj.Len())
		for _, f := range obj.Fields {
			v, err := toNative(f.Value)
			if err != nil {
				return nil, err
			}
			out[f.Key] = v
		}
		return out, nil
	default:
		return nil, fmt.Errorf("structconv: unrecognized kind %s", value.Kind())
	}
}
