// Package errtone implements the closed error taxonomy. Every error the
// codec raises carries a Kind, a source Position, a one-line excerpt of
// the offending text, and a deterministic remediation hint.
package errtone

import (
	"fmt"

	"golang.org/x/xerrors"

	"github.com/tone-format/tone-go/internal/excerpt"
	"github.com/tone-format/tone-go/internal/position"
)

// Kind identifies which of the six taxonomy members an Error belongs to.
type Kind int

const (
	// EncodeValue is raised by the encoder for values outside the
	// supported type set (NaN, infinity, non-string map key, cycles).
	EncodeValue Kind = iota
	// Syntax is raised by the decoder for malformed headers, bad escapes,
	// bad numbers, or stray trailing characters.
	Syntax
	// Indent is raised by the decoder for a non-multiple indent remainder
	// or a depth jump greater than +1.
	Indent
	// Validation is raised by the decoder in strict mode for length-marker
	// and row-width disagreements, and always for duplicate keys.
	Validation
	// Truncation is part of the taxonomy and has a hint, but no decoder
	// path raises it: input that ends before an array's declared count is
	// reached is reported as a Validation count mismatch in strict mode and
	// accepted with the elements present otherwise.
	Truncation
	// Config is raised by the options normalizer for an out-of-range or
	// unknown option.
	Config
)

func (k Kind) String() string {
	switch k {
	case EncodeValue:
		return "encode-value"
	case Syntax:
		return "syntax"
	case Indent:
		return "indent"
	case Validation:
		return "validation"
	case Truncation:
		return "truncation"
	case Config:
		return "config"
	default:
		return "unknown"
	}
}

// Error is the single result type carrying the taxonomy Kind plus
// positioning metadata (position, excerpt, remediation hint).
type Error struct {
	Kind    Kind
	Pos     position.Position
	Line    string
	Reason  string
	Hint    string
	Colored bool
	frame   xerrors.Frame
}

// New constructs a positioned Error. reasonKey selects the fixed
// remediation hint from the hint table (see hints.go); pass "" for kinds
// with a single, context-free hint.
func New(kind Kind, pos position.Position, line, reasonKey, detail string) *Error {
	return &Error{
		Kind:   kind,
		Pos:    pos,
		Line:   line,
		Reason: detail,
		Hint:   hintFor(kind, reasonKey),
		frame:  xerrors.Caller(1),
	}
}

// Error implements the error interface. The message is deterministic for a
// given (Kind, Pos, Line, Reason, Hint) tuple.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s %s", e.Kind, e.Pos, e.Reason)
	return msg + "\n" + excerpt.Render(e.Pos, e.Line, e.Hint, e.Colored)
}

// FormatError implements xerrors.Formatter so that "%+v" prints a call
// frame alongside the message.
func (e *Error) FormatError(p xerrors.Printer) error {
	p.Print(e.Error())
	if p.Detail() {
		e.frame.Format(p)
	}
	return nil
}

// Format implements fmt.Formatter so %+v triggers FormatError.
func (e *Error) Format(f fmt.State, verb rune) {
	xerrors.FormatError(e, f, verb)
}
