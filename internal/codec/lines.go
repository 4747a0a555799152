package codec

import (
	"strings"

	"github.com/tone-format/tone-go/internal/errtone"
	"github.com/tone-format/tone-go/internal/indent"
	"github.com/tone-format/tone-go/internal/position"
)

// logicalLine is one physical line of input after indentation has been
// measured off: its 1-based source line number, its structural depth, and
// its remaining content.
type logicalLine struct {
	Number  int
	Depth   int
	Content string
}

// splitLines turns raw input into logical lines. Input is split on "\n" (a preceding
// "\r" is stripped). Lines that are empty or all-whitespace carry no
// content in this format and are dropped; every other line is structural,
// since TONE has no comment syntax (a leading "#" belongs exclusively to a
// length marker, never a comment, so it is never special-cased here).
func splitLines(text string, step int) ([]logicalLine, error) {
	raw := strings.Split(text, "\n")
	lines := make([]logicalLine, 0, len(raw))
	for i, r := range raw {
		r = strings.TrimSuffix(r, "\r")
		if strings.TrimSpace(r) == "" {
			continue
		}
		depth, rest, hasTab, remainder := indent.Measure(r, step)
		num := i + 1
		if hasTab {
			return nil, errtone.New(errtone.Indent, position.At(num), r, errtone.ReasonIndentTab, "indentation contains a tab character")
		}
		if remainder {
			return nil, errtone.New(errtone.Indent, position.At(num), r, errtone.ReasonIndentRemainder, "indentation is not a multiple of the configured step")
		}
		lines = append(lines, logicalLine{Number: num, Depth: depth, Content: rest})
	}
	return lines, nil
}
