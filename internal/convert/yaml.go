package convert

import (
	"math/big"

	goyaml "github.com/goccy/go-yaml"

	"github.com/tone-format/tone-go/internal/valuetree"
)

// YAMLToValue decodes YAML text into a value tree using goccy/go-yaml, the
// library this repository's own structure is patterned on.
func YAMLToValue(data []byte) (valuetree.Value, error) {
	var raw any
	if err := goyaml.Unmarshal(data, &raw); err != nil {
		return valuetree.Value{}, err
	}
	return fromYAML(raw)
}

func fromYAML(raw any) (valuetree.Value, error) {
	switch x := raw.(type) {
	case nil:
		return valuetree.Null(), nil
	case bool:
		return valuetree.Bool(x), nil
	case int:
		return valuetree.Int(int64(x)), nil
	case int64:
		return valuetree.Int(x), nil
	case uint64:
		return valuetree.BigInt(new(big.Int).SetUint64(x)), nil
	case float64:
		return valuetree.Float(x), nil
	case string:
		return valuetree.String(x), nil
	case []any:
		values := make([]valuetree.Value, len(x))
		for i, e := range x {
			v, err := fromYAML(e)
			if err != nil {
				return valuetree.Value{}, err
			}
			values[i] = v
		}
		return valuetree.Array(values...), nil
	case map[string]any:
		obj := valuetree.Object{}
		for k, v := range x {
			val, err := fromYAML(v)
			if err != nil {
				return valuetree.Value{}, err
			}
			obj.Set(k, val)
		}
		return valuetree.FromObject(obj), nil
	default:
		return valuetree.Value{}, &unsupportedYAMLType{raw}
	}
}

// ValueToYAML renders a value tree as YAML text.
func ValueToYAML(v valuetree.Value) ([]byte, error) {
	native, err := toYAML(v)
	if err != nil {
		return nil, err
	}
	return goyaml.Marshal(native)
}

func toYAML(v valuetree.Value) (any, error) {
	switch v.Kind() {
	case valuetree.KindNull:
		return nil, nil
	case valuetree.KindBool:
		b, _ := v.Bool()
		return b, nil
	case valuetree.KindInt:
		i, _ := v.Int()
		if i.IsInt64() {
			return i.Int64(), nil
		}
		return i.String(), nil
	case valuetree.KindFloat:
		f, _ := v.Float()
		return f, nil
	case valuetree.KindString:
		s, _ := v.Str()
		return s, nil
	case valuetree.KindArray:
		elems, _ := v.Elements()
		out := make([]any, len(elems))
		for i, e := range elems {
			n, err := toYAML(e)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case valuetree.KindObject:
		obj, _ := v.Object()
		out := goyaml.MapSlice{}
		for _, f := range obj.Fields {
			n, err := toYAML(f.Value)
			if err != nil {
				return nil, err
			}
			out = append(out, goyaml.MapItem{Key: f.Key, Value: n})
		}
		return out, nil
	default:
		return nil, &unsupportedYAMLType{v}
	}
}

type unsupportedYAMLType struct{ v any }

func (e *unsupportedYAMLType) Error() string {
	return "convert: unsupported value for YAML conversion"
}
