package valuetree

// Field is a single key/value pair within an Object, in encounter order.
type Field struct {
	Key   string
	Value Value
}

// Object is an ordered mapping from string keys to Values. Insertion order
// is preserved exactly as presented; the tabular shape's header field
// order is the key order of the first element.
type Object struct {
	Fields []Field
}

// NewObject constructs an ordered Object from the given fields.
func NewObject(fields ...Field) Object {
	return Object{Fields: append([]Field(nil), fields...)}
}

// Len reports the number of fields.
func (o Object) Len() int { return len(o.Fields) }

// IsEmpty reports whether the object has no fields.
func (o Object) IsEmpty() bool { return len(o.Fields) == 0 }

// Get returns the value bound to key and whether it was present.
func (o Object) Get(key string) (Value, bool) {
	for _, f := range o.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Keys returns the ordered field keys.
func (o Object) Keys() []string {
	keys := make([]string, len(o.Fields))
	for i, f := range o.Fields {
		keys[i] = f.Key
	}
	return keys
}

// Set appends or overwrites a field, preserving the original position of an
// existing key and appending new keys at the end.
func (o *Object) Set(key string, value Value) {
	for i, f := range o.Fields {
		if f.Key == key {
			o.Fields[i].Value = value
			return
		}
	}
	o.Fields = append(o.Fields, Field{Key: key, Value: value})
}

func (o *Object) equal(other *Object) bool {
	if o == nil || other == nil {
		return o == other
	}
	if len(o.Fields) != len(other.Fields) {
		return false
	}
	for _, f := range o.Fields {
		ov, ok := other.Get(f.Key)
		if !ok || !f.Value.Equal(ov) {
			return false
		}
	}
	return true
}
