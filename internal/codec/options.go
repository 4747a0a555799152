// Package codec implements the encoder, the line splitter, and the
// decoder, operating over the valuetree package's value tree.
package codec

import "github.com/tone-format/tone-go/internal/scalar"

// Delimiter mirrors scalar.Delimiter at the codec boundary.
type Delimiter = scalar.Delimiter

const (
	Comma = scalar.Comma
	Tab   = scalar.Tab
	Pipe  = scalar.Pipe
)

// EncodeOptions is the normalized form of the encoder's configuration.
type EncodeOptions struct {
	IndentSize   int
	Delimiter    Delimiter
	LengthMarker bool
}

// DefaultEncodeOptions returns the default options: indent 2, delimiter
// comma, length markers off.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{IndentSize: 2, Delimiter: Comma}
}

// DecodeOptions is the normalized form of the decoder's configuration.
type DecodeOptions struct {
	IndentSize int
	Strict     bool
}

// DefaultDecodeOptions returns the default options: indent 2, strict mode
// on.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{IndentSize: 2, Strict: true}
}
