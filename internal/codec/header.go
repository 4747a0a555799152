package codec

import (
	"strconv"
	"strings"

	"github.com/tone-format/tone-go/internal/scalar"
)

// header is the parsed form of an array-introducing line:
// key? '[' '#'? N ']' ( '{' field-list '}' )? ':' inline-tail?
type header struct {
	HasKey    bool
	Key       string
	Length    int
	HasFields bool
	Fields    []string
	HasTail   bool
	Tail      string
	Delimiter scalar.Delimiter
}

// parseHeader attempts to read content as a header line. ok is false (with
// a nil error) when content simply isn't shaped like a header at all, so
// callers can fall through to key/value or scalar dispatch; err is non-nil
// only once content has committed to looking like a header and then turns
// out malformed.
func parseHeader(content string) (*header, bool, error) {
	open := scalar.IndexOutsideQuotes(content, '[')
	if open < 0 {
		return nil, false, nil
	}
	keyPart := content[:open]
	h := &header{}
	if keyPart != "" {
		h.HasKey = true
		key, err := decodeKeyLiteral(keyPart)
		if err != nil {
			return nil, true, err
		}
		h.Key = key
	}

	rest := content[open+1:]
	closeRel := scalar.IndexOutsideQuotes(rest, ']')
	if closeRel < 0 {
		return nil, true, errBadHeader("unterminated '[' in array header")
	}
	lenToken := rest[:closeRel]
	lenToken = strings.TrimPrefix(lenToken, "#")
	n, err := strconv.Atoi(lenToken)
	if err != nil || n < 0 {
		return nil, true, errBadHeader("array length must be a non-negative integer")
	}
	h.Length = n

	after := rest[closeRel+1:]
	h.Delimiter = detectDelimiter(after)

	if strings.HasPrefix(after, "{") {
		closeBrace := scalar.IndexOutsideQuotes(after, '}')
		if closeBrace < 0 {
			return nil, true, errBadHeader("unterminated '{' in array header field list")
		}
		fieldList := after[1:closeBrace]
		fields, err := scalar.SplitDelimited(fieldList, h.Delimiter)
		if err != nil {
			return nil, true, err
		}
		if len(fields) == 0 || (len(fields) == 1 && fields[0] == "") {
			return nil, true, errBadHeader("tabular field list must name at least one field")
		}
		for i, f := range fields {
			decoded, err := decodeKeyLiteral(f)
			if err != nil {
				return nil, true, err
			}
			fields[i] = decoded
		}
		h.HasFields = true
		h.Fields = fields
		after = after[closeBrace+1:]
	}

	if !strings.HasPrefix(after, ":") {
		return nil, true, errBadHeader("array header must end with ':'")
	}
	tail := after[1:]
	tail = strings.TrimPrefix(tail, " ")
	if tail != "" {
		h.HasTail = true
		h.Tail = tail
	}
	return h, true, nil
}

func errBadHeader(msg string) error { return headerErr{msg} }

type headerErr struct{ msg string }

func (e headerErr) Error() string { return e.msg }

func decodeKeyLiteral(s string) (string, error) {
	if strings.HasPrefix(s, `"`) {
		return scalar.Unquote(s)
	}
	return s, nil
}

// detectDelimiter scans s (a header's field list plus inline tail) for the
// first of ',', '\t', '|' outside quotes. Decode takes
// no delimiter option; the format is delimiter-transparent on decode, so
// each array's delimiter is recovered from its own text rather than
// threaded in from configuration.
func detectDelimiter(s string) scalar.Delimiter {
	inQuotes := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inQuotes:
			escaped = true
		case c == '"':
			inQuotes = !inQuotes
		case !inQuotes && (c == ',' || c == '\t' || c == '|'):
			return scalar.Delimiter(c)
		}
	}
	return scalar.Comma
}

// isDashItem reports whether content is a list-item line and returns the
// text following "- ".
func isDashItem(content string) (string, bool) {
	if content == "-" {
		return "", true
	}
	if strings.HasPrefix(content, "- ") {
		return content[2:], true
	}
	return "", false
}

// parseKeyValue splits content on the first top-level ':' into a key and an
// optional inline value. ok is false if there is no top-level colon at all.
func parseKeyValue(content string) (key string, value string, hasValue bool, ok bool) {
	idx := scalar.IndexOutsideQuotes(content, ':')
	if idx < 0 {
		return "", "", false, false
	}
	keyPart := content[:idx]
	rest := strings.TrimPrefix(content[idx+1:], " ")
	k, err := decodeKeyLiteral(keyPart)
	if err != nil {
		return "", "", false, false
	}
	return k, rest, rest != "", true
}
