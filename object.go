package tone

import "github.com/tone-format/tone-go/internal/valuetree"

// Field is a single key/value pair within an Object, in encounter order.
type Field = valuetree.Field

// Object is an ordered mapping from string keys to Values. Insertion order
// is preserved exactly as presented; the tabular shape's header field
// order is the key order of the first element.
type Object = valuetree.Object

// NewObject constructs an ordered Object from the given fields.
func NewObject(fields ...Field) Object { return valuetree.NewObject(fields...) }
