package tone

import "github.com/tone-format/tone-go/internal/codec"

// EncoderOption configures an Encoder using the functional-options pattern.
type EncoderOption func(e *Encoder) error

// WithIndent sets the indent step (1-8 spaces per level, default 2).
func WithIndent(spaces int) EncoderOption {
	return func(e *Encoder) error {
		e.opts.IndentSize = spaces
		return nil
	}
}

// WithDelimiter sets the active field/value delimiter (Comma, Tab, or
// Pipe; default Comma).
func WithDelimiter(d Delimiter) EncoderOption {
	return func(e *Encoder) error {
		e.opts.Delimiter = d
		return nil
	}
}

// WithLengthMarker enables the informational "#" prefix on array length
// headers ("[#3]" instead of "[3]"); default off. Decoding accepts either
// form regardless of this option.
func WithLengthMarker(enabled bool) EncoderOption {
	return func(e *Encoder) error {
		e.opts.LengthMarker = enabled
		return nil
	}
}

// DecoderOption configures a Decoder.
type DecoderOption func(d *Decoder) error

// WithDecodeIndent sets the indent step the producer is expected to have
// used (1-8, default 2).
func WithDecodeIndent(spaces int) DecoderOption {
	return func(d *Decoder) error {
		d.opts.IndentSize = spaces
		return nil
	}
}

// WithStrict toggles strict validation (default on). In non-strict mode,
// count and row-width disagreements are repaired rather than rejected;
// indent and truncation errors remain fatal regardless.
func WithStrict(enabled bool) DecoderOption {
	return func(d *Decoder) error {
		d.opts.Strict = enabled
		return nil
	}
}

// WithColoredErrors renders any returned *tone.Error with ANSI color via
// fatih/color.
func WithColoredErrors(enabled bool) DecoderOption {
	return func(d *Decoder) error {
		d.colored = enabled
		return nil
	}
}

// WithMaxDocumentSize rejects input larger than n bytes with a config
// error before attempting to parse it. Zero (the default) means no limit.
func WithMaxDocumentSize(n int) DecoderOption {
	return func(d *Decoder) error {
		d.maxSize = n
		return nil
	}
}

func defaultEncoderOptions() codec.EncodeOptions { return codec.DefaultEncodeOptions() }
func defaultDecoderOptions() codec.DecodeOptions { return codec.DefaultDecodeOptions() }
