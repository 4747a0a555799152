package codec

import (
	"strconv"

	"github.com/tone-format/tone-go/internal/errtone"
	"github.com/tone-format/tone-go/internal/position"
	"github.com/tone-format/tone-go/internal/scalar"
	"github.com/tone-format/tone-go/internal/valuetree"
)

// Decode parses TONE text into a value tree, driven by the line splitter's
// logical-line stream and consulting the scalar package for literal
// recognition and the indent package's measurement for depth.
func Decode(text string, opts DecodeOptions) (valuetree.Value, error) {
	lines, err := splitLines(text, opts.IndentSize)
	if err != nil {
		return valuetree.Value{}, err
	}
	if len(lines) == 0 {
		// The root object with zero fields encodes to the empty string, so
		// an empty document decodes back to the empty object rather than
		// raising an error.
		return valuetree.FromObject(valuetree.Object{}), nil
	}
	d := &decodeState{opts: opts, lines: lines}
	v, err := d.root()
	if err != nil {
		return valuetree.Value{}, err
	}
	if d.pos != len(d.lines) {
		extra := d.lines[d.pos]
		return valuetree.Value{}, d.syntaxErr(extra, errtone.ReasonTrailing, "unexpected content after the complete document")
	}
	return v, nil
}

type decodeState struct {
	opts  DecodeOptions
	lines []logicalLine
	pos   int
}

func (d *decodeState) peek() (logicalLine, bool) {
	if d.pos >= len(d.lines) {
		return logicalLine{}, false
	}
	return d.lines[d.pos], true
}

func (d *decodeState) syntaxErr(line logicalLine, reasonKey, detail string) error {
	return errtone.New(errtone.Syntax, position.At(line.Number), line.Content, reasonKey, detail)
}

func (d *decodeState) indentErr(line logicalLine, reasonKey, detail string) error {
	return errtone.New(errtone.Indent, position.At(line.Number), line.Content, reasonKey, detail)
}

func (d *decodeState) validationErr(line logicalLine, detail string) error {
	return errtone.New(errtone.Validation, position.At(line.Number), line.Content, errtone.ReasonCount, detail)
}

// checkJump raises an Indent error if the next pending line descends more
// than one step past parentDepth.
func (d *decodeState) checkJump(parentDepth int) error {
	line, ok := d.peek()
	if !ok || line.Depth <= parentDepth+1 {
		return nil
	}
	return d.indentErr(line, errtone.ReasonIndentJump, "indentation jumped more than one step deeper than its parent")
}

func (d *decodeState) root() (valuetree.Value, error) {
	line, _ := d.peek()
	if hdr, ok, err := parseHeader(line.Content); err != nil {
		return valuetree.Value{}, d.syntaxErr(line, errtone.ReasonBadHeader, err.Error())
	} else if ok && !hdr.HasKey {
		d.pos++
		return d.arrayValue(0, line, hdr)
	}
	if _, _, _, ok := parseKeyValue(line.Content); ok {
		obj, err := d.parseObject(0)
		if err != nil {
			return valuetree.Value{}, err
		}
		return valuetree.FromObject(obj), nil
	}
	d.pos++
	return d.recognizeScalar(line.Content, line)
}

func (d *decodeState) recognizeScalar(token string, line logicalLine) (valuetree.Value, error) {
	r, err := scalar.Recognize(token)
	if err != nil {
		return valuetree.Value{}, d.syntaxErr(line, errtone.ReasonBadEscape, err.Error())
	}
	switch r.Kind {
	case "null":
		return valuetree.Null(), nil
	case "bool":
		return valuetree.Bool(r.Bool), nil
	case "int":
		return valuetree.BigInt(r.Int), nil
	case "float":
		return valuetree.Float(r.Float), nil
	default:
		return valuetree.String(r.Str), nil
	}
}

// parseObject consumes consecutive key/value and header lines at exactly
// depth, stopping at the first line whose depth differs.
func (d *decodeState) parseObject(depth int) (valuetree.Object, error) {
	obj := valuetree.Object{}
	seen := make(map[string]bool)

	for {
		line, ok := d.peek()
		if !ok || line.Depth != depth {
			return obj, nil
		}

		hdr, headerOK, err := parseHeader(line.Content)
		if err != nil {
			return obj, d.syntaxErr(line, errtone.ReasonBadHeader, err.Error())
		}
		if headerOK {
			if !hdr.HasKey {
				return obj, d.syntaxErr(line, errtone.ReasonBadHeader, "an array field requires a key")
			}
			if seen[hdr.Key] {
				return obj, d.validationDuplicate(line, hdr.Key)
			}
			seen[hdr.Key] = true
			d.pos++
			val, err := d.arrayValue(depth, line, hdr)
			if err != nil {
				return obj, err
			}
			obj.Set(hdr.Key, val)
			continue
		}

		key, value, hasValue, kvOK := parseKeyValue(line.Content)
		if !kvOK {
			return obj, d.syntaxErr(line, errtone.ReasonBadHeader, "expected 'key: value' or an array header")
		}
		if seen[key] {
			return obj, d.validationDuplicate(line, key)
		}
		seen[key] = true
		d.pos++

		if hasValue {
			v, err := d.recognizeScalar(value, line)
			if err != nil {
				return obj, err
			}
			obj.Set(key, v)
			continue
		}

		val, err := d.bareValue(depth)
		if err != nil {
			return obj, err
		}
		obj.Set(key, val)
	}
}

func (d *decodeState) validationDuplicate(line logicalLine, key string) error {
	return errtone.New(errtone.Validation, position.At(line.Number), line.Content, errtone.ReasonDuplicateKey, "duplicate key \""+key+"\"")
}

// bareValue resolves a "key:" line with no inline value: a nested object
// follows at depth+1, otherwise the key is null at end-of-input and an
// empty object everywhere else (a following sibling or shallower line,
// i.e. the object was simply empty).
func (d *decodeState) bareValue(depth int) (valuetree.Value, error) {
	if err := d.checkJump(depth); err != nil {
		return valuetree.Value{}, err
	}
	line, ok := d.peek()
	if !ok {
		return valuetree.Null(), nil
	}
	if line.Depth == depth+1 {
		obj, err := d.parseObject(depth + 1)
		if err != nil {
			return valuetree.Value{}, err
		}
		return valuetree.FromObject(obj), nil
	}
	return valuetree.FromObject(valuetree.Object{}), nil
}

// arrayValue dispatches on hdr's shape and consumes its body. headerLine is
// the already-consumed header line (d.pos points just past it).
func (d *decodeState) arrayValue(headerDepth int, headerLine logicalLine, hdr *header) (valuetree.Value, error) {
	switch {
	case hdr.HasTail:
		return d.inlineArray(headerLine, hdr)
	case hdr.HasFields:
		return d.tabularArray(headerDepth, headerLine, hdr)
	default:
		return d.listArray(headerDepth, headerLine, hdr)
	}
}

func (d *decodeState) inlineArray(headerLine logicalLine, hdr *header) (valuetree.Value, error) {
	tokens, err := scalar.SplitDelimited(hdr.Tail, hdr.Delimiter)
	if err != nil {
		return valuetree.Value{}, d.syntaxErr(headerLine, errtone.ReasonBadEscape, err.Error())
	}
	if len(tokens) != hdr.Length {
		if d.opts.Strict {
			return valuetree.Value{}, d.validationErr(headerLine, countMismatch(hdr.Length, len(tokens)))
		}
	}
	values := make([]valuetree.Value, len(tokens))
	for i, tok := range tokens {
		v, err := d.recognizeScalar(tok, headerLine)
		if err != nil {
			return valuetree.Value{}, err
		}
		values[i] = v
	}
	return valuetree.Array(values...), nil
}

func (d *decodeState) tabularArray(headerDepth int, headerLine logicalLine, hdr *header) (valuetree.Value, error) {
	rowDepth := headerDepth + 1
	if err := d.checkJump(headerDepth); err != nil {
		return valuetree.Value{}, err
	}
	var rows []logicalLine
	for {
		line, ok := d.peek()
		if !ok || line.Depth != rowDepth {
			break
		}
		rows = append(rows, line)
		d.pos++
	}
	if len(rows) != hdr.Length && d.opts.Strict {
		return valuetree.Value{}, d.validationErr(headerLine, countMismatch(hdr.Length, len(rows)))
	}

	values := make([]valuetree.Value, len(rows))
	for i, row := range rows {
		tokens, err := scalar.SplitDelimited(row.Content, hdr.Delimiter)
		if err != nil {
			return valuetree.Value{}, d.syntaxErr(row, errtone.ReasonBadEscape, err.Error())
		}
		if len(tokens) != len(hdr.Fields) {
			if d.opts.Strict {
				return valuetree.Value{}, errtone.New(errtone.Validation, position.At(row.Number), row.Content, errtone.ReasonRowWidth, rowWidthMismatch(len(hdr.Fields), len(tokens)))
			}
			tokens = fitWidth(tokens, len(hdr.Fields))
		}
		obj := valuetree.Object{}
		for fi, field := range hdr.Fields {
			v, err := d.recognizeScalar(tokens[fi], row)
			if err != nil {
				return valuetree.Value{}, err
			}
			obj.Set(field, v)
		}
		values[i] = valuetree.FromObject(obj)
	}
	return valuetree.Array(values...), nil
}

func (d *decodeState) listArray(headerDepth int, headerLine logicalLine, hdr *header) (valuetree.Value, error) {
	itemDepth := headerDepth + 1
	if err := d.checkJump(headerDepth); err != nil {
		return valuetree.Value{}, err
	}
	var values []valuetree.Value
	for {
		line, ok := d.peek()
		if !ok || line.Depth != itemDepth {
			break
		}
		rest, isDash := isDashItem(line.Content)
		if !isDash {
			break
		}
		d.pos++
		v, err := d.listItem(itemDepth, line, rest)
		if err != nil {
			return valuetree.Value{}, err
		}
		values = append(values, v)
	}
	if len(values) != hdr.Length && d.opts.Strict {
		return valuetree.Value{}, d.validationErr(headerLine, countMismatch(hdr.Length, len(values)))
	}
	return valuetree.Array(values...), nil
}

// listItem parses the content following "- " on a list item line already
// consumed at itemDepth.
func (d *decodeState) listItem(itemDepth int, itemLine logicalLine, rest string) (valuetree.Value, error) {
	if rest == "" {
		return valuetree.FromObject(valuetree.Object{}), nil
	}

	if hdr, ok, err := parseHeader(rest); err != nil {
		return valuetree.Value{}, d.syntaxErr(itemLine, errtone.ReasonBadHeader, err.Error())
	} else if ok {
		firstVal, err := d.arrayValue(itemDepth, itemLine, hdr)
		if err != nil {
			return valuetree.Value{}, err
		}
		if !hdr.HasKey {
			return firstVal, nil
		}
		obj := valuetree.Object{}
		obj.Set(hdr.Key, firstVal)
		return d.mergeItemFields(itemDepth, obj)
	}

	key, value, hasValue, ok := parseKeyValue(rest)
	if !ok {
		v, err := d.recognizeScalar(rest, itemLine)
		if err != nil {
			return valuetree.Value{}, err
		}
		return v, nil
	}
	obj := valuetree.Object{}
	if hasValue {
		v, err := d.recognizeScalar(value, itemLine)
		if err != nil {
			return valuetree.Value{}, err
		}
		obj.Set(key, v)
	} else {
		v, err := d.bareValue(itemDepth + 1)
		if err != nil {
			return valuetree.Value{}, err
		}
		obj.Set(key, v)
	}
	return d.mergeItemFields(itemDepth, obj)
}

// mergeItemFields reads any further "key:" lines at itemDepth+1 (the
// remaining fields of a list item's object, one depth past the item's own
// "- key: value" line) and folds them into obj, which already holds the
// item's first field.
func (d *decodeState) mergeItemFields(itemDepth int, obj valuetree.Object) (valuetree.Value, error) {
	if err := d.checkJump(itemDepth); err != nil {
		return valuetree.Value{}, err
	}
	line, ok := d.peek()
	if !ok || line.Depth != itemDepth+1 {
		return valuetree.FromObject(obj), nil
	}
	rest, err := d.parseObject(itemDepth + 1)
	if err != nil {
		return valuetree.Value{}, err
	}
	for _, f := range rest.Fields {
		obj.Set(f.Key, f.Value)
	}
	return valuetree.FromObject(obj), nil
}

func countMismatch(declared, actual int) string {
	return "declared " + strconv.Itoa(declared) + ", found " + strconv.Itoa(actual)
}

func rowWidthMismatch(declared, actual int) string {
	return "row has " + strconv.Itoa(actual) + " fields, header declares " + strconv.Itoa(declared)
}

func fitWidth(tokens []string, width int) []string {
	if len(tokens) > width {
		return tokens[:width]
	}
	out := make([]string, width)
	copy(out, tokens)
	for i := len(tokens); i < width; i++ {
		out[i] = "null"
	}
	return out
}
