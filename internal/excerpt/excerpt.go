// Package excerpt renders the line/column/excerpt/hint diagnostics that
// every core error carries, optionally with ANSI color.
//
// The rendering is deliberately deterministic: two calls with the same
// arguments produce byte-identical output, so an LLM consumer can
// pattern-match on the excerpt text.
package excerpt

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/tone-format/tone-go/internal/position"
)

// Render produces the multi-line diagnostic block:
//
//	> 3 | key[3]: 1,2
//	      ^
//	the declared [N] must equal the number of elements actually present
//
// line is the raw source text of the offending line (no trailing newline).
// hint may be empty, in which case the hint line is omitted.
func Render(pos position.Position, line string, hint string, colored bool) string {
	gutter := fmt.Sprintf("%3d | ", pos.Line)
	column := pos.Column
	if column < 1 {
		column = 1
	}
	caret := strings.Repeat(" ", len(gutter)+column-1) + "^"

	marker := ">" + gutter[1:]
	body := marker + line
	if colored {
		body = colorize(color.FgHiWhite, marker) + line
		caret = colorize(color.FgHiRed, caret)
	}
	lines := []string{body, caret}
	if hint != "" {
		if colored {
			hint = colorize(color.FgHiYellow, hint)
		}
		lines = append(lines, hint)
	}
	return strings.Join(lines, "\n")
}

func colorize(attr color.Attribute, s string) string {
	return color.New(attr).Sprint(s)
}
