package parse

import (
	"errors"
	"fmt"
)

// Kind classifies parse failures. Kinds are errors themselves, so callers
// match with errors.Is(err, parse.ErrInvalidNumber) without digging the
// structured *Error out of the chain.
type Kind int

const (
	// ErrUnexpectedCharacter: the token matched no grammar alternative.
	ErrUnexpectedCharacter Kind = iota + 1
	// ErrUnexpectedEnd: input exhausted mid-construct, including empty input.
	ErrUnexpectedEnd
	// ErrLiteralMismatch: partial match of "true", "false" or "null".
	ErrLiteralMismatch
	// ErrInvalidEscape: unknown character after '\', including the undecoded
	// \uXXXX form.
	ErrInvalidEscape
	// ErrInvalidNumber: malformed digit sequence or overflow to infinity.
	ErrInvalidNumber
	// ErrTrailingData: unconsumed non-whitespace bytes after the root value.
	ErrTrailingData
	// ErrUnterminatedString: missing closing '"'.
	ErrUnterminatedString
	// ErrUnterminatedContainer: missing closing ']' or '}'.
	ErrUnterminatedContainer
	// ErrDepthExceeded: nesting went past the configured maximum depth.
	ErrDepthExceeded
)

func (k Kind) String() string {
	switch k {
	case ErrUnexpectedCharacter:
		return "UnexpectedCharacter"
	case ErrUnexpectedEnd:
		return "UnexpectedEnd"
	case ErrLiteralMismatch:
		return "LiteralMismatch"
	case ErrInvalidEscape:
		return "InvalidEscape"
	case ErrInvalidNumber:
		return "InvalidNumber"
	case ErrTrailingData:
		return "TrailingData"
	case ErrUnterminatedString:
		return "UnterminatedString"
	case ErrUnterminatedContainer:
		return "UnterminatedContainer"
	case ErrDepthExceeded:
		return "DepthExceeded"
	default:
		return "Unknown"
	}
}

func (k Kind) Error() string { return k.String() }

// Error is the structured parse failure. Every parse error is fatal to the
// whole Parse call: no partial tree is returned and nothing past the failure
// point is consumed.
type Error struct {
	Kind     Kind
	Offset   int // byte offset of the failure in the input buffer
	Row      int // 1-based line of the failure
	Column   int // 1-based byte column of the failure
	Expected string
	Actual   string
}

// Error encodes the fields as "|Key: value" segments so xerrors.Desc can
// split them back out for presentation.
func (e *Error) Error() string {
	return fmt.Sprintf("|Kind: %s|Pos: %d:%d|Offset: %d|Expected: %s|Actual: %s",
		e.Kind, e.Row, e.Column, e.Offset, e.Expected, e.Actual)
}

func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && e.Kind == k
}

// AsError extracts the structured *Error from an error chain returned by
// Parse, if any.
func AsError(err error) (*Error, bool) {
	var perr *Error
	if errors.As(err, &perr) {
		return perr, true
	}
	return nil, false
}

// position derives the 1-based row and byte column of off within buf.
// Row/column tracking is not carried by the cursor; it is recomputed only
// when building an error.
func position(buf []byte, off int) (row, col int) {
	if off > len(buf) {
		off = len(buf)
	}
	row, col = 1, 1
	for _, ch := range buf[:off] {
		if ch == '\n' {
			row++
			col = 1
		} else {
			col++
		}
	}
	return row, col
}
