package tone

import (
	"golang.org/x/xerrors"

	"github.com/tone-format/tone-go/internal/errtone"
	"github.com/tone-format/tone-go/internal/position"
)

// ErrorKind identifies which of the six taxonomy members an Error belongs
// to.
type ErrorKind = errtone.Kind

// The closed error taxonomy.
const (
	EncodeValueError = errtone.EncodeValue
	SyntaxError      = errtone.Syntax
	IndentError      = errtone.Indent
	ValidationError  = errtone.Validation
	TruncationError  = errtone.Truncation
	ConfigError      = errtone.Config
)

// Position identifies a 1-based line and best-effort column in source text.
type Position = position.Position

// Error is the single result type every encode/decode failure returns: a
// taxonomy Kind plus positioning metadata (source line, one-line excerpt,
// and a deterministic remediation hint).
type Error = errtone.Error

// AsPositionedError reports whether err is (or wraps) a *tone.Error.
func AsPositionedError(err error) (*Error, bool) {
	var pe *errtone.Error
	if xerrors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// KindOf returns the taxonomy Kind of err if it is a *tone.Error, and ok=false
// otherwise.
func KindOf(err error) (kind ErrorKind, ok bool) {
	pe, ok := AsPositionedError(err)
	if !ok {
		return 0, false
	}
	return pe.Kind, true
}
