// Package tokencount implements a heuristic LLM token-count estimator over
// already-encoded TONE text, contributing no format semantics of its own.
package tokencount

// Estimate heuristically approximates the number of LLM tokens text would
// consume. It does not call out to a real tokenizer — pinning this
// estimator to a specific model's vocabulary would be a much larger,
// model-specific dependency than this utility needs; instead it follows
// the common rule of thumb that one token is roughly four bytes of
// English-like text, weighted by punctuation density since TONE's
// structural characters (",", ":", "[", "]", "{", "}", "-", double quotes,
// newlines) each
// tend to stand alone as their own token in common BPE vocabularies.
func Estimate(text string) int {
	if text == "" {
		return 0
	}
	runes := 0
	punctuation := 0
	for _, r := range text {
		runes++
		if isStructural(r) {
			punctuation++
		}
	}
	base := float64(runes-punctuation) / 4.0
	return int(base+0.5) + punctuation
}

func isStructural(r rune) bool {
	switch r {
	case ',', ':', '[', ']', '{', '}', '-', '\n', '"':
		return true
	default:
		return false
	}
}
