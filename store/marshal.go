package store

import (
	"bytes"
	"strconv"

	"github.com/zxhio/j4on/internal/printer"
	"github.com/zxhio/j4on/store/jsonparser"
	"github.com/zxhio/j4on/value"
	"github.com/zxhio/j4on/xerrors"
)

// floatPrecision is the number of significant digits numbers are rendered
// with. This is knowingly lossy for extreme magnitudes (values near 1e-9
// can mis-round on a round trip); the canonical text form trades exactness
// for readability.
const floatPrecision = 12

type MarshalOptions struct {
	// Validate re-parses the marshaled output with an independent JSON
	// parser and fails if it does not parse. Cheap for small documents.
	//
	// Default: false.
	Validate bool
}

// Marshal walks the value tree and produces canonical pretty-printed JSON:
// each non-empty array/object opens its delimiter, puts every child on its
// own line indented one tab stop per nesting depth, separates siblings with
// ",\n", and closes with the matching delimiter at the parent's indent.
// Empty containers render as [] and {}. Strings are re-escaped on output,
// so the produced text always parses back.
//
// Marshaling the Unknown sentinel is an error: it denotes the absence of a
// value and has no textual form.
func Marshal(root value.Value, options *MarshalOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := marshalValue(&buf, root, 0); err != nil {
		return nil, err
	}
	out := buf.Bytes()
	if options != nil && options.Validate {
		if _, err := jsonparser.Fastjson.Parse(string(out)); err != nil {
			return nil, xerrors.Wrapf(err, "marshaled output is not valid JSON")
		}
	}
	return out, nil
}

func marshalValue(buf *bytes.Buffer, v value.Value, depth int) error {
	switch v.Kind() {
	case value.Null:
		buf.WriteString("null")
	case value.False:
		buf.WriteString("false")
	case value.True:
		buf.WriteString("true")
	case value.Number:
		buf.WriteString(strconv.FormatFloat(v.Number(), 'g', floatPrecision, 64))
	case value.String:
		writeQuoted(buf, v.Text())
	case value.Array:
		return marshalArray(buf, v, depth)
	case value.Object:
		return marshalObject(buf, v, depth)
	default:
		return xerrors.Errorf("cannot marshal value of kind %s", v.Kind())
	}
	return nil
}

func marshalArray(buf *bytes.Buffer, v value.Value, depth int) error {
	n := v.Len()
	buf.WriteByte('[')
	if n > 0 {
		buf.WriteByte('\n')
	}
	for i := 0; i < n; i++ {
		buf.WriteString(printer.Indent(depth + 1))
		if err := marshalValue(buf, v.Index(i), depth+1); err != nil {
			return err
		}
		if i != n-1 {
			buf.WriteString(",\n")
		} else {
			buf.WriteByte('\n')
		}
	}
	if n > 0 {
		buf.WriteString(printer.Indent(depth))
	}
	buf.WriteByte(']')
	return nil
}

func marshalObject(buf *bytes.Buffer, v value.Value, depth int) error {
	n := v.Len()
	buf.WriteByte('{')
	if n > 0 {
		buf.WriteByte('\n')
	}
	for i := 0; i < n; i++ {
		m := v.Member(i)
		buf.WriteString(printer.Indent(depth + 1))
		writeQuoted(buf, m.Key)
		buf.WriteByte(':')
		if err := marshalValue(buf, m.Value, depth+1); err != nil {
			return err
		}
		if i != n-1 {
			buf.WriteString(",\n")
		} else {
			buf.WriteByte('\n')
		}
	}
	if n > 0 {
		buf.WriteString(printer.Indent(depth))
	}
	buf.WriteByte('}')
	return nil
}

// writeQuoted wraps s in quotes and re-escapes it: the model holds resolved
// text, so quotes, backslashes, and the control characters of the escape set
// must be escaped again for the output to parse back. Other bytes, UTF-8
// sequences included, pass through verbatim, mirroring what the parser
// accepts inside string tokens.
func writeQuoted(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; ch {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteByte(ch)
		}
	}
	buf.WriteByte('"')
}
