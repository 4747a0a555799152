package codec

import (
	"strconv"
	"strings"

	"github.com/tone-format/tone-go/internal/errtone"
	"github.com/tone-format/tone-go/internal/indent"
	"github.com/tone-format/tone-go/internal/position"
	"github.com/tone-format/tone-go/internal/scalar"
	"github.com/tone-format/tone-go/internal/shape"
	"github.com/tone-format/tone-go/internal/valuetree"
)

// Encode walks v and returns its canonical TONE text.
func Encode(v valuetree.Value, opts EncodeOptions) (string, error) {
	s := &encodeState{opts: opts}
	if err := s.root(v); err != nil {
		return "", err
	}
	return strings.Join(s.lines, "\n"), nil
}

type encodeState struct {
	opts  EncodeOptions
	lines []string
	path  []string
}

func (s *encodeState) emit(line string) { s.lines = append(s.lines, line) }

func (s *encodeState) prefix(depth int) string { return indent.Prefix(depth, s.opts.IndentSize) }

func (s *encodeState) pathString() string {
	if len(s.path) == 0 {
		return "$"
	}
	return "$." + strings.Join(s.path, ".")
}

func (s *encodeState) valueErr(msg string) error {
	return errtone.New(errtone.EncodeValue, position.Position{}, s.pathString(), "", msg)
}

func (s *encodeState) root(v valuetree.Value) error {
	switch v.Kind() {
	case valuetree.KindArray:
		elems, _ := v.Elements()
		return s.array("", elems, 0, true)
	case valuetree.KindObject:
		obj, _ := v.Object()
		if obj.IsEmpty() {
			return nil
		}
		return s.object(obj, 0)
	default:
		tok, err := s.scalarToken(v, false)
		if err != nil {
			return err
		}
		s.emit(tok)
		return nil
	}
}

func (s *encodeState) object(obj valuetree.Object, depth int) error {
	p := s.prefix(depth)
	for _, field := range obj.Fields {
		s.path = append(s.path, field.Key)
		keyLiteral := scalar.EncodeKey(field.Key, scalar.Context{})
		switch field.Value.Kind() {
		case valuetree.KindArray:
			elems, _ := field.Value.Elements()
			if err := s.array(keyLiteral, elems, depth, false); err != nil {
				return err
			}
		case valuetree.KindObject:
			child, _ := field.Value.Object()
			s.emit(p + keyLiteral + ":")
			if !child.IsEmpty() {
				if err := s.object(child, depth+1); err != nil {
					return err
				}
			}
		default:
			tok, err := s.scalarToken(field.Value, false)
			if err != nil {
				return err
			}
			s.emit(p + keyLiteral + ": " + tok)
		}
		s.path = s.path[:len(s.path)-1]
	}
	return nil
}

func (s *encodeState) scalarToken(v valuetree.Value, inArray bool) (string, error) {
	ctx := scalar.Context{}
	if inArray {
		ctx.Active = s.opts.Delimiter
	}
	var raw any
	switch v.Kind() {
	case valuetree.KindNull:
		raw = nil
	case valuetree.KindBool:
		b, _ := v.Bool()
		raw = b
	case valuetree.KindInt:
		i, _ := v.Int()
		raw = i
	case valuetree.KindFloat:
		f, _ := v.Float()
		raw = f
	case valuetree.KindString:
		str, _ := v.Str()
		raw = str
	default:
		return "", s.valueErr("expected a scalar value")
	}
	tok, err := scalar.Render(raw, ctx)
	if err != nil {
		return "", s.valueErr(err.Error())
	}
	return tok, nil
}

func (s *encodeState) classify(elems []valuetree.Value) (shape.Shape, []string) {
	els := make([]shape.Element, len(elems))
	for i, e := range elems {
		el := shape.Element{IsScalar: e.IsScalar()}
		if e.Kind() == valuetree.KindObject {
			obj, _ := e.Object()
			el.IsObject = true
			el.FieldKeys = obj.Keys()
			el.FieldsAllFlat = true
			for _, f := range obj.Fields {
				if !f.Value.IsScalar() {
					el.FieldsAllFlat = false
					break
				}
			}
		}
		els[i] = el
	}
	return shape.Classify(els)
}

func (s *encodeState) header(keyLiteral string, length int, fields []string) string {
	var b strings.Builder
	b.WriteString(keyLiteral)
	b.WriteByte('[')
	if s.opts.LengthMarker {
		b.WriteByte('#')
	}
	b.WriteString(strconv.Itoa(length))
	b.WriteByte(']')
	if len(fields) > 0 {
		b.WriteByte('{')
		for i, f := range fields {
			if i > 0 {
				b.WriteByte(byte(s.opts.Delimiter))
			}
			b.WriteString(scalar.EncodeKey(f, scalar.Context{Active: s.opts.Delimiter}))
		}
		b.WriteByte('}')
	}
	b.WriteByte(':')
	return b.String()
}

// array renders the array bound to keyLiteral (empty for a nested/root
// array with no key) at the given depth. root indicates a root-level array;
// it does not change the rendering, and list items are rendered with "- "
// at every depth.
func (s *encodeState) array(keyLiteral string, elems []valuetree.Value, depth int, root bool) error {
	p := s.prefix(depth)
	shp, fields := s.classify(elems)

	switch shp {
	case shape.Empty:
		s.emit(p + s.header(keyLiteral, 0, nil))
		return nil

	case shape.InlinePrimitive:
		tokens := make([]string, len(elems))
		for i, e := range elems {
			tok, err := s.scalarToken(e, true)
			if err != nil {
				return err
			}
			tokens[i] = tok
		}
		line := p + s.header(keyLiteral, len(elems), nil)
		line += " " + strings.Join(tokens, string(rune(s.opts.Delimiter)))
		s.emit(line)
		return nil

	case shape.Tabular:
		s.emit(p + s.header(keyLiteral, len(elems), fields))
		rowPrefix := s.prefix(depth + 1)
		for _, e := range elems {
			obj, _ := e.Object()
			tokens := make([]string, len(fields))
			for i, f := range fields {
				val, _ := obj.Get(f)
				tok, err := s.scalarToken(val, true)
				if err != nil {
					return err
				}
				tokens[i] = tok
			}
			s.emit(rowPrefix + strings.Join(tokens, string(rune(s.opts.Delimiter))))
		}
		return nil

	default: // List
		s.emit(p + s.header(keyLiteral, len(elems), nil))
		itemDepth := depth + 1
		for _, e := range elems {
			if err := s.listItem(e, itemDepth); err != nil {
				return err
			}
		}
		_ = root
		return nil
	}
}

func (s *encodeState) listItem(v valuetree.Value, depth int) error {
	p := s.prefix(depth)
	switch v.Kind() {
	case valuetree.KindObject:
		obj, _ := v.Object()
		if obj.IsEmpty() {
			s.emit(p + "- ")
			return nil
		}
		first := obj.Fields[0]
		rest := valuetree.NewObject(obj.Fields[1:]...)
		switch first.Value.Kind() {
		case valuetree.KindArray:
			elems, _ := first.Value.Elements()
			keyLiteral := scalar.EncodeKey(first.Key, scalar.Context{})
			if err := s.dashArray(p, keyLiteral, elems, depth); err != nil {
				return err
			}
		case valuetree.KindObject:
			child, _ := first.Value.Object()
			s.emit(p + "- " + scalar.EncodeKey(first.Key, scalar.Context{}) + ":")
			if !child.IsEmpty() {
				if err := s.object(child, depth+2); err != nil {
					return err
				}
			}
		default:
			tok, err := s.scalarToken(first.Value, false)
			if err != nil {
				return err
			}
			s.emit(p + "- " + scalar.EncodeKey(first.Key, scalar.Context{}) + ": " + tok)
		}
		if !rest.IsEmpty() {
			if err := s.object(rest, depth+1); err != nil {
				return err
			}
		}
		return nil
	case valuetree.KindArray:
		elems, _ := v.Elements()
		return s.dashArray(p, "", elems, depth)
	default:
		tok, err := s.scalarToken(v, false)
		if err != nil {
			return err
		}
		s.emit(p + "- " + tok)
		return nil
	}
}

// dashArray renders an array value that is itself a list item (or the
// first field of an object list item), prefixing its header line with "- ".
func (s *encodeState) dashArray(p, keyLiteral string, elems []valuetree.Value, depth int) error {
	shp, fields := s.classify(elems)
	switch shp {
	case shape.Empty:
		s.emit(p + "- " + s.header(keyLiteral, 0, nil))
	case shape.InlinePrimitive:
		tokens := make([]string, len(elems))
		for i, e := range elems {
			tok, err := s.scalarToken(e, true)
			if err != nil {
				return err
			}
			tokens[i] = tok
		}
		line := p + "- " + s.header(keyLiteral, len(elems), nil)
		line += " " + strings.Join(tokens, string(rune(s.opts.Delimiter)))
		s.emit(line)
	case shape.Tabular:
		s.emit(p + "- " + s.header(keyLiteral, len(elems), fields))
		rowPrefix := s.prefix(depth + 1)
		for _, e := range elems {
			obj, _ := e.Object()
			tokens := make([]string, len(fields))
			for i, f := range fields {
				val, _ := obj.Get(f)
				tok, err := s.scalarToken(val, true)
				if err != nil {
					return err
				}
				tokens[i] = tok
			}
			s.emit(rowPrefix + strings.Join(tokens, string(rune(s.opts.Delimiter))))
		}
	default:
		s.emit(p + "- " + s.header(keyLiteral, len(elems), nil))
		for _, e := range elems {
			if err := s.listItem(e, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}
