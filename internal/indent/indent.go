// Package indent produces and consumes the leading whitespace that stands
// in for TONE's structural punctuation.
package indent

import "strings"

// Prefix returns the leading whitespace for a structural line at the given
// depth, under the given step (1-8 spaces per level).
func Prefix(depth, step int) string {
	if depth <= 0 {
		return ""
	}
	return strings.Repeat(" ", depth*step)
}

// Measure counts the leading space run in line and returns the indent
// depth (spaces / step) and the remaining content. hasTab is true if the
// leading whitespace contains a tab, and remainder is true if the space
// count is not a multiple of step; in both cases depth and rest are
// zero-valued and the caller is responsible for raising an indent error
// with the right reason.
func Measure(line string, step int) (depth int, rest string, hasTab bool, remainder bool) {
	spaces := 0
	i := 0
	for ; i < len(line); i++ {
		switch line[i] {
		case ' ':
			spaces++
			continue
		case '\t':
			hasTab = true
			continue
		}
		break
	}
	if hasTab {
		return 0, "", true, false
	}
	if spaces%step != 0 {
		return 0, "", false, true
	}
	return spaces / step, line[i:], false, false
}
