package tone

import (
	"bytes"
	"io"

	"github.com/go-playground/validator/v10"

	"github.com/tone-format/tone-go/internal/codec"
	"github.com/tone-format/tone-go/internal/errtone"
	"github.com/tone-format/tone-go/internal/position"
	"github.com/tone-format/tone-go/internal/structconv"
)

var validate = validator.New()

// Delimiter identifies the active field/value separator used inside an
// array body.
type Delimiter = codec.Delimiter

// The three delimiters TONE recognizes.
const (
	Comma Delimiter = codec.Comma
	Tab   Delimiter = codec.Tab
	Pipe  Delimiter = codec.Pipe
)

// Marshaler may be implemented by a type to customize its own encoding to
// a Value, bypassing structconv's reflection-based walk.
type Marshaler interface {
	MarshalTONE() (Value, error)
}

// Unmarshaler may be implemented by a type to customize its own decoding
// from a Value.
type Unmarshaler interface {
	UnmarshalTONE(Value) error
}

type encodeConfig struct {
	Indent    int   `validate:"min=1,max=8"`
	Delimiter uint8 `validate:"oneof=44 9 124"`
}

func validateEncodeOptions(opts codec.EncodeOptions) error {
	cfg := encodeConfig{Indent: opts.IndentSize, Delimiter: uint8(opts.Delimiter)}
	if err := validate.Struct(cfg); err != nil {
		return errtone.New(errtone.Config, position.Position{}, "", "", err.Error())
	}
	return nil
}

type decodeConfig struct {
	Indent int `validate:"min=1,max=8"`
}

func validateDecodeOptions(opts codec.DecodeOptions) error {
	cfg := decodeConfig{Indent: opts.IndentSize}
	if err := validate.Struct(cfg); err != nil {
		return errtone.New(errtone.Config, position.Position{}, "", "", err.Error())
	}
	return nil
}

// Encoder writes TONE documents to an underlying writer. An Encoder holds
// no state between calls to Encode other than its configured options.
type Encoder struct {
	w    io.Writer
	opts codec.EncodeOptions
}

// NewEncoder returns an Encoder writing to w, with the default options
// (indent 2, comma delimiter, length markers off) as modified by opts.
func NewEncoder(w io.Writer, opts ...EncoderOption) (*Encoder, error) {
	e := &Encoder{w: w, opts: defaultEncoderOptions()}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	if err := validateEncodeOptions(e.opts); err != nil {
		return nil, err
	}
	return e, nil
}

// Encode converts v to a value tree (via structconv, unless v already
// implements Marshaler) and writes its TONE rendering followed by a single
// newline.
func (e *Encoder) Encode(v any) error {
	value, err := toValue(v)
	if err != nil {
		return err
	}
	text, err := codec.Encode(value, e.opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(e.w, text+"\n")
	return err
}

func toValue(v any) (Value, error) {
	if m, ok := v.(Marshaler); ok {
		return m.MarshalTONE()
	}
	return structconv.ToValue(v)
}

// Decoder reads TONE documents from an underlying reader.
type Decoder struct {
	r       io.Reader
	opts    codec.DecodeOptions
	colored bool
	maxSize int
}

// NewDecoder returns a Decoder reading from r, with the default options
// (indent 2, strict on) as modified by opts.
func NewDecoder(r io.Reader, opts ...DecoderOption) (*Decoder, error) {
	d := &Decoder{r: r, opts: defaultDecoderOptions()}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	if err := validateDecodeOptions(d.opts); err != nil {
		return nil, err
	}
	return d, nil
}

// Decode reads the whole remaining document from the underlying reader,
// parses it, and stores the result in the value pointed to by v (via
// structconv, unless v already implements Unmarshaler).
func (d *Decoder) Decode(v any) error {
	var limit int64 = 1 << 62
	if d.maxSize > 0 {
		limit = int64(d.maxSize) + 1
	}
	buf, err := io.ReadAll(io.LimitReader(d.r, limit))
	if err != nil {
		return err
	}
	if d.maxSize > 0 && len(buf) > d.maxSize {
		return errtone.New(errtone.Config, position.Position{}, "", "", "document exceeds the configured maximum size")
	}
	value, err := codec.Decode(string(buf), d.opts)
	if err != nil {
		if pe, ok := err.(*errtone.Error); ok {
			pe.Colored = d.colored
		}
		return err
	}
	if u, ok := v.(Unmarshaler); ok {
		return u.UnmarshalTONE(value)
	}
	return structconv.FromValue(value, v)
}

// Marshal renders v as TONE text, with the default options as modified by
// opts.
func Marshal(v any, opts ...EncoderOption) ([]byte, error) {
	var buf bytes.Buffer
	enc, err := NewEncoder(&buf, opts...)
	if err != nil {
		return nil, err
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal parses TONE text and stores the result in the value pointed to
// by v, with the default options as modified by opts.
func Unmarshal(data []byte, v any, opts ...DecoderOption) error {
	dec, err := NewDecoder(bytes.NewReader(data), opts...)
	if err != nil {
		return err
	}
	return dec.Decode(v)
}

// DecodeValue parses text directly into a Value tree, bypassing
// structconv; useful for callers (such as cmd/tone's converters) that want
// the tree itself rather than a destination Go value.
func DecodeValue(text string, opts ...DecoderOption) (Value, error) {
	d := &Decoder{opts: defaultDecoderOptions()}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return Value{}, err
		}
	}
	if err := validateDecodeOptions(d.opts); err != nil {
		return Value{}, err
	}
	if d.maxSize > 0 && len(text) > d.maxSize {
		return Value{}, errtone.New(errtone.Config, position.Position{}, "", "", "document exceeds the configured maximum size")
	}
	v, err := codec.Decode(text, d.opts)
	if pe, ok := err.(*errtone.Error); ok {
		pe.Colored = d.colored
	}
	return v, err
}

// EncodeValue renders a Value tree directly to TONE text, bypassing
// structconv.
func EncodeValue(v Value, opts ...EncoderOption) (string, error) {
	e := &Encoder{opts: defaultEncoderOptions()}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return "", err
		}
	}
	if err := validateEncodeOptions(e.opts); err != nil {
		return "", err
	}
	return codec.Encode(v, e.opts)
}

// Valid reports whether text is well-formed TONE without constructing a
// Go value from it.
func Valid(text string, opts ...DecoderOption) error {
	d := &Decoder{opts: defaultDecoderOptions()}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return err
		}
	}
	if err := validateDecodeOptions(d.opts); err != nil {
		return err
	}
	if d.maxSize > 0 && len(text) > d.maxSize {
		return errtone.New(errtone.Config, position.Position{}, "", "", "document exceeds the configured maximum size")
	}
	_, err := codec.Decode(text, d.opts)
	if pe, ok := err.(*errtone.Error); ok {
		pe.Colored = d.colored
	}
	return err
}

// Canonicalize decodes text and re-encodes the resulting value with
// encOpts, producing the canonical text for that option set. Re-encoding
// already-canonical text with the same options is idempotent.
func Canonicalize(text string, decOpts []DecoderOption, encOpts []EncoderOption) (string, error) {
	d := &Decoder{opts: defaultDecoderOptions()}
	for _, opt := range decOpts {
		if err := opt(d); err != nil {
			return "", err
		}
	}
	if err := validateDecodeOptions(d.opts); err != nil {
		return "", err
	}
	if d.maxSize > 0 && len(text) > d.maxSize {
		return "", errtone.New(errtone.Config, position.Position{}, "", "", "document exceeds the configured maximum size")
	}
	value, err := codec.Decode(text, d.opts)
	if err != nil {
		if pe, ok := err.(*errtone.Error); ok {
			pe.Colored = d.colored
		}
		return "", err
	}
	e := &Encoder{opts: defaultEncoderOptions()}
	for _, opt := range encOpts {
		if err := opt(e); err != nil {
			return "", err
		}
	}
	if err := validateEncodeOptions(e.opts); err != nil {
		return "", err
	}
	return codec.Encode(value, e.opts)
}
