// Package parse implements a recursive descent parser turning a raw JSON
// byte buffer into a value.Value tree.
//
// Lexing and parsing are fused: there is no token pass, only a cursor over
// the immutable input buffer with single-character lookahead. The grammar:
//
//	element  := ws value ws
//	value    := object | array | string | number | "true" | "false" | "null"
//	array    := '[' ws ']' | '[' elements ']'
//	elements := element (',' element)*
//	object   := '{' ws '}' | '{' members '}'
//	members  := member (',' member)*
//	member   := ws string ws ':' element
//
// Any sub-rule failure aborts the whole parse; there is no recovery and no
// partial tree.
package parse

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/zxhio/j4on/value"
	"github.com/zxhio/j4on/xerrors"
)

// previewSize bounds the "actual" excerpt quoted in diagnostics.
const previewSize = 10

// parser is a cursor over the input buffer: the buffer is borrowed and never
// mutated, and all state is the single byte offset.
type parser struct {
	buf      []byte
	off      int
	maxDepth int
}

// Parse parses data as exactly one JSON document and returns the root value.
// Empty input is a failure of kind ErrUnexpectedEnd, and non-whitespace
// bytes after the root value are a failure of kind ErrTrailingData.
//
// String payloads are owned: escapes are resolved into fresh buffers, so the
// returned tree does not alias data.
func Parse(data []byte, setters ...Option) (value.Value, error) {
	opts := ParseOptions(setters...)
	p := &parser{buf: data, maxDepth: opts.MaxDepth}
	root, err := p.parseElement(0)
	if err != nil {
		return value.Value{}, err
	}
	if !p.eof() {
		return value.Value{}, p.errAt(p.off, ErrTrailingData, "end of input", p.preview())
	}
	return root, nil
}

// ParseString is like Parse but accepts a string.
func ParseString(s string, setters ...Option) (value.Value, error) {
	return Parse([]byte(s), setters...)
}

func (p *parser) eof() bool { return p.off >= len(p.buf) }

func (p *parser) peek() byte { return p.buf[p.off] }

func (p *parser) next() byte {
	ch := p.buf[p.off]
	p.off++
	return ch
}

func (p *parser) errAt(off int, kind Kind, expected, actual string) error {
	row, col := position(p.buf, off)
	return xerrors.Wrap(&Error{
		Kind:     kind,
		Offset:   off,
		Row:      row,
		Column:   col,
		Expected: expected,
		Actual:   actual,
	})
}

func (p *parser) preview() string {
	rest := p.buf[p.off:]
	if len(rest) > previewSize {
		rest = rest[:previewSize]
	}
	return fmt.Sprintf("%q", rest)
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func (p *parser) skipWhitespace() {
	for !p.eof() && isWhitespace(p.peek()) {
		p.off++
	}
}

// parseElement parses ws value ws.
func (p *parser) parseElement(depth int) (value.Value, error) {
	p.skipWhitespace()
	v, err := p.parseValue(depth)
	if err != nil {
		return value.Value{}, err
	}
	p.skipWhitespace()
	return v, nil
}

func (p *parser) parseValue(depth int) (value.Value, error) {
	if p.eof() {
		return value.Value{}, p.errAt(p.off, ErrUnexpectedEnd, "value", "end of input")
	}
	switch ch := p.peek(); {
	case ch == 'n':
		return p.parseLiteral("null", value.NewNull())
	case ch == 't':
		return p.parseLiteral("true", value.NewBool(true))
	case ch == 'f':
		return p.parseLiteral("false", value.NewBool(false))
	case ch == '"':
		s, err := p.parseText()
		if err != nil {
			return value.Value{}, err
		}
		return value.NewString(s), nil
	case ch == '[':
		return p.parseArray(depth)
	case ch == '{':
		return p.parseObject(depth)
	case ch == '-' || isDigit(ch):
		return p.parseNumber()
	default:
		return value.Value{}, p.errAt(p.off, ErrUnexpectedCharacter, "value", fmt.Sprintf("%q", ch))
	}
}

// parseLiteral matches lit byte for byte. Any mismatch fails hard with
// ErrLiteralMismatch; there is no resynchronization to a next token.
func (p *parser) parseLiteral(lit string, v value.Value) (value.Value, error) {
	for i := 0; i < len(lit); i++ {
		if p.eof() {
			return value.Value{}, p.errAt(p.off, ErrUnexpectedEnd, fmt.Sprintf("%q", lit), "end of input")
		}
		if p.peek() != lit[i] {
			return value.Value{}, p.errAt(p.off, ErrLiteralMismatch, fmt.Sprintf("%q", lit), p.preview())
		}
		p.off++
	}
	return v, nil
}

// parseNumber accepts an optional '-', an integer part that is a bare '0' or
// [1-9][0-9]*, an optional '.' fraction with at least one digit, and an
// optional exponent. The accumulated substring is converted to float64;
// overflow to infinity fails with ErrInvalidNumber.
func (p *parser) parseNumber() (value.Value, error) {
	start := p.off

	if p.peek() == '-' {
		p.off++
	}

	switch {
	case p.eof():
		return value.Value{}, p.errAt(p.off, ErrInvalidNumber, "digit", "end of input")
	case p.peek() == '0':
		p.off++
		if !p.eof() && isDigit(p.peek()) {
			// 01, 007: only a bare zero integer part is legal
			return value.Value{}, p.errAt(p.off, ErrInvalidNumber, "'.', exponent, or end of number", fmt.Sprintf("%q", p.peek()))
		}
	case isDigit(p.peek()):
		for !p.eof() && isDigit(p.peek()) {
			p.off++
		}
	default:
		return value.Value{}, p.errAt(p.off, ErrInvalidNumber, "digit", fmt.Sprintf("%q", p.peek()))
	}

	if !p.eof() && p.peek() == '.' {
		p.off++
		if p.eof() || !isDigit(p.peek()) {
			return value.Value{}, p.errAt(p.off, ErrInvalidNumber, "digit after '.'", p.preview())
		}
		for !p.eof() && isDigit(p.peek()) {
			p.off++
		}
	}

	if !p.eof() && (p.peek() == 'e' || p.peek() == 'E') {
		p.off++
		if !p.eof() && (p.peek() == '+' || p.peek() == '-') {
			p.off++
		}
		if p.eof() || !isDigit(p.peek()) {
			return value.Value{}, p.errAt(p.off, ErrInvalidNumber, "digit in exponent", p.preview())
		}
		for !p.eof() && isDigit(p.peek()) {
			p.off++
		}
	}

	text := string(p.buf[start:p.off])
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(f, 0) {
		return value.Value{}, p.errAt(start, ErrInvalidNumber, "number within double range", text)
	}
	return value.NewNumber(f), nil
}

// parseText parses a string token and resolves its escapes into an owned
// buffer. The recognized escapes are \" \\ \/ \b \f \n \r \t; anything else
// after '\' fails with ErrInvalidEscape. \uXXXX is deliberately not decoded
// (no surrogate handling) and is rejected like any unknown escape.
func (p *parser) parseText() (string, error) {
	p.off++ // opening '"', guaranteed by the caller's dispatch
	var sb strings.Builder
	for {
		if p.eof() {
			return "", p.errAt(p.off, ErrUnterminatedString, `closing '"'`, "end of input")
		}
		ch := p.next()
		switch ch {
		case '"':
			return sb.String(), nil
		case '\\':
			if p.eof() {
				return "", p.errAt(p.off, ErrUnterminatedString, `closing '"'`, "end of input")
			}
			esc := p.next()
			switch esc {
			case '"':
				sb.WriteByte('"')
			case '\\':
				sb.WriteByte('\\')
			case '/':
				sb.WriteByte('/')
			case 'b':
				sb.WriteByte('\b')
			case 'f':
				sb.WriteByte('\f')
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			default:
				return "", p.errAt(p.off-1, ErrInvalidEscape, "escape character", fmt.Sprintf("%q", esc))
			}
		default:
			// raw bytes, UTF-8 sequences included, pass through untouched
			sb.WriteByte(ch)
		}
	}
}

func (p *parser) parseArray(depth int) (value.Value, error) {
	if depth >= p.maxDepth {
		return value.Value{}, p.errAt(p.off, ErrDepthExceeded, fmt.Sprintf("nesting depth <= %d", p.maxDepth), "deeper nesting")
	}
	p.off++ // '['
	p.skipWhitespace()
	if p.eof() {
		return value.Value{}, p.errAt(p.off, ErrUnterminatedContainer, "']'", "end of input")
	}
	if p.peek() == ']' {
		p.off++
		return value.NewArray(nil), nil
	}

	var elems []value.Value
	for {
		elem, err := p.parseElement(depth + 1)
		if err != nil {
			return value.Value{}, err
		}
		elems = append(elems, elem)

		if p.eof() {
			return value.Value{}, p.errAt(p.off, ErrUnterminatedContainer, "',' or ']'", "end of input")
		}
		switch p.peek() {
		case ',':
			p.off++
		case ']':
			p.off++
			return value.NewArray(elems), nil
		default:
			return value.Value{}, p.errAt(p.off, ErrUnexpectedCharacter, "',' or ']'", fmt.Sprintf("%q", p.peek()))
		}
	}
}

func (p *parser) parseObject(depth int) (value.Value, error) {
	if depth >= p.maxDepth {
		return value.Value{}, p.errAt(p.off, ErrDepthExceeded, fmt.Sprintf("nesting depth <= %d", p.maxDepth), "deeper nesting")
	}
	p.off++ // '{'
	p.skipWhitespace()
	if p.eof() {
		return value.Value{}, p.errAt(p.off, ErrUnterminatedContainer, "'}'", "end of input")
	}
	if p.peek() == '}' {
		p.off++
		return value.NewObject(nil), nil
	}

	var members []value.Member
	for {
		// member := ws string ws ':' element
		p.skipWhitespace()
		if p.eof() {
			return value.Value{}, p.errAt(p.off, ErrUnexpectedEnd, `'"'`, "end of input")
		}
		if p.peek() != '"' {
			return value.Value{}, p.errAt(p.off, ErrUnexpectedCharacter, `'"'`, fmt.Sprintf("%q", p.peek()))
		}
		key, err := p.parseText()
		if err != nil {
			return value.Value{}, err
		}
		p.skipWhitespace()
		if p.eof() {
			return value.Value{}, p.errAt(p.off, ErrUnexpectedEnd, "':'", "end of input")
		}
		if p.peek() != ':' {
			return value.Value{}, p.errAt(p.off, ErrUnexpectedCharacter, "':'", fmt.Sprintf("%q", p.peek()))
		}
		p.off++

		val, err := p.parseElement(depth + 1)
		if err != nil {
			return value.Value{}, err
		}
		// duplicate keys are kept, both of them, in source order
		members = append(members, value.Member{Key: key, Value: val})

		if p.eof() {
			return value.Value{}, p.errAt(p.off, ErrUnterminatedContainer, "',' or '}'", "end of input")
		}
		switch p.peek() {
		case ',':
			p.off++
		case '}':
			p.off++
			return value.NewObject(members), nil
		default:
			return value.Value{}, p.errAt(p.off, ErrUnexpectedCharacter, "',' or '}'", fmt.Sprintf("%q", p.peek()))
		}
	}
}
