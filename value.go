// Package tone implements the TONE text serialization format: a
// JSON-compatible value tree rendered as indentation-structured text that
// replaces brace/bracket punctuation with leading whitespace, declares
// array lengths explicitly, and promotes uniform arrays of records to a
// tabular layout. See Marshal and Unmarshal.
package tone

import (
	"math/big"

	"github.com/tone-format/tone-go/internal/valuetree"
)

// Kind identifies the concrete shape of a Value.
type Kind = valuetree.Kind

const (
	KindNull   = valuetree.KindNull
	KindBool   = valuetree.KindBool
	KindInt    = valuetree.KindInt
	KindFloat  = valuetree.KindFloat
	KindString = valuetree.KindString
	KindArray  = valuetree.KindArray
	KindObject = valuetree.KindObject
)

// Value is the JSON-compatible value tree TONE encodes and decodes: null,
// bool, arbitrary-width integer, float64, string, an ordered Array, or an
// Object with insertion-order-preserved fields.
type Value = valuetree.Value

// Null returns the null value.
func Null() Value { return valuetree.Null() }

// Bool wraps a boolean scalar.
func Bool(v bool) Value { return valuetree.Bool(v) }

// Int wraps an int64 scalar.
func Int(v int64) Value { return valuetree.Int(v) }

// BigInt wraps an arbitrary-width integer scalar.
func BigInt(v *big.Int) Value { return valuetree.BigInt(v) }

// Float wraps a floating-point scalar.
func Float(v float64) Value { return valuetree.Float(v) }

// String wraps a string scalar.
func String(v string) Value { return valuetree.String(v) }

// Array wraps an ordered sequence of values.
func Array(values ...Value) Value { return valuetree.Array(values...) }

// FromObject wraps an Object as a Value.
func FromObject(o Object) Value { return valuetree.FromObject(o) }
