// Package convert implements the JSON and YAML collaborators: converters
// that translate an already-decoded value tree to/from the two sibling
// text formats, calling the core with plain value trees rather than
// contributing format semantics of their own.
package convert

import (
	"bytes"
	"encoding/json"
	"math/big"
	"sort"

	"github.com/tone-format/tone-go/internal/valuetree"
)

// JSONToValue decodes JSON text into a value tree. Go's json.Decoder does
// not expose source order for map keys, so object fields come out in
// lexical key order rather than source order; TONE's own text preserves
// order exactly because it never passes through this path.
func JSONToValue(data []byte) (valuetree.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return valuetree.Value{}, err
	}
	return fromJSON(raw)
}

func fromJSON(raw any) (valuetree.Value, error) {
	switch x := raw.(type) {
	case nil:
		return valuetree.Null(), nil
	case bool:
		return valuetree.Bool(x), nil
	case json.Number:
		if i, ok := new(big.Int).SetString(x.String(), 10); ok {
			return valuetree.BigInt(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return valuetree.Value{}, err
		}
		return valuetree.Float(f), nil
	case string:
		return valuetree.String(x), nil
	case []any:
		values := make([]valuetree.Value, len(x))
		for i, e := range x {
			v, err := fromJSON(e)
			if err != nil {
				return valuetree.Value{}, err
			}
			values[i] = v
		}
		return valuetree.Array(values...), nil
	case map[string]any:
		obj := valuetree.Object{}
		for _, k := range jsonMapKeysInEncounterOrder(x) {
			v, err := fromJSON(x[k])
			if err != nil {
				return valuetree.Value{}, err
			}
			obj.Set(k, v)
		}
		return valuetree.FromObject(obj), nil
	default:
		return valuetree.Value{}, &unsupportedJSONType{raw}
	}
}

// jsonMapKeysInEncounterOrder sorts keys for determinism: encoding/json
// loses the original field order for Go maps, so there is no "encounter
// order" to recover. Lexical order at least makes ValueToJSON(JSONToValue(x))
// deterministic across runs.
func jsonMapKeysInEncounterOrder(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ValueToJSON renders a value tree as JSON text.
func ValueToJSON(v valuetree.Value) ([]byte, error) {
	native, err := toJSON(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(native)
}

func toJSON(v valuetree.Value) (any, error) {
	switch v.Kind() {
	case valuetree.KindNull:
		return nil, nil
	case valuetree.KindBool:
		b, _ := v.Bool()
		return b, nil
	case valuetree.KindInt:
		i, _ := v.Int()
		return json.Number(i.String()), nil
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
			n, err := toJSON(e)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case valuetree.KindObject:
		obj, _ := v.Object()
		out := make(orderedJSONObject, 0, obj.Len())
		for _, f := range obj.Fields {
			n, err := toJSON(f.Value)
			if err != nil {
				return nil, err
			}
			out = append(out, jsonField{Key: f.Key, Value: n})
		}
		return out, nil
	default:
		return nil, &unsupportedJSONType{v}
	}
}

type unsupportedJSONType struct{ v any }

func (e *unsupportedJSONType) Error() string {
	return "convert: unsupported value for JSON conversion"
}

// jsonField and orderedJSONObject let ValueToJSON emit object fields in
// the value tree's own insertion order: encoding/json.Marshal of a plain
// Go map sorts keys lexically, which would silently discard the ordering
// the tree is required to carry.
type jsonField struct {
	Key   string
	Value any
}

type orderedJSONObject []jsonField

func (o orderedJSONObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
