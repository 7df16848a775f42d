// Package xerrors provides error wrapping with caller stacks and a
// "|Key: value" message encoding that Desc can later split back into fields
// for user-facing rendering.
//
// Error handling model:
//  1. a cause error (nil means no cause) is wrapped by a base error which
//     records the caller stack
//  2. an error chain contains at most one caller stack
//  3. withMessage annotates a cause with a message and may nest freely
package xerrors

import (
	"fmt"
	"io"
)

// base is an error which has a cause error and a caller stack.
type base struct {
	cause error
	stack *stack
}

// base deliberately does not implement Cause(): it is the anchor Cause()
// stops at, so withStack can tell whether a chain already carries a stack.
func (b *base) Unwrap() error { return b.cause }

func (b *base) Error() string {
	if b.cause == nil {
		return ""
	}
	return b.cause.Error()
}

func (b *base) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, b.Error())
			if b.stack != nil {
				b.stack.Format(s, verb)
			}
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(s, b.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", b.Error())
	}
}

// withMessage is an error that has a cause error and a message.
type withMessage struct {
	cause   error
	message string
}

func (w *withMessage) Unwrap() error { return w.cause }
func (w *withMessage) Cause() error  { return w.cause }

func (w *withMessage) Error() string {
	content := w.message
	if w.cause != nil {
		// don't use %+v to avoid printing duplicated stacks
		content += ": " + w.cause.Error()
	}
	return content
}

func (w *withMessage) Format(s fmt.State, verb rune) {
	content := w.message
	switch verb {
	case 'v':
		if s.Flag('+') {
			if w.cause != nil {
				cause := fmt.Sprintf("%+v", w.cause)
				if cause != "" {
					content += ": " + cause
				}
			}
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(s, content)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", content)
	}
}

// withStack wraps err in a base carrying the caller stack, unless some base
// in the chain already carries one.
func withStack(err error) error {
	if err == nil {
		return nil
	}
	cerr := Cause(err)
	if berr, ok := cerr.(*base); ok && berr != nil {
		if berr.stack == nil {
			berr.stack = callers(2)
		}
		return err
	}
	// skip withStack and its exported wrapper
	return &base{cause: err, stack: callers(2)}
}

func combineKV(keysAndValues ...any) string {
	var msg string
	for i := 0; i < len(keysAndValues); i += 2 {
		if i == len(keysAndValues)-1 {
			panic("invalid key-value pairs: odd number")
		}
		msg += fmt.Sprintf("|%v: %v", keysAndValues[i], keysAndValues[i+1])
	}
	return msg
}

// Errorf formats according to a format specifier and returns the string as
// an error value. Errorf also records the caller stack.
func Errorf(format string, args ...any) error {
	return &withMessage{
		cause:   &base{stack: callers(0)},
		message: combineKV(KeyReason, fmt.Sprintf(format, args...)),
	}
}

// ErrorKV returns an error with the supplied message and the key-value pairs
// encoded as a `[|key: value]...` string. ErrorKV also records the caller
// stack.
func ErrorKV(msg string, keysAndValues ...any) error {
	return &withMessage{
		cause:   &base{stack: callers(0)},
		message: combineKV(keysAndValues...) + combineKV(KeyReason, msg),
	}
}

// Wrap annotates err with a caller stack if it does not carry one yet.
// If err is nil, Wrap returns nil.
func Wrap(err error) error {
	return withStack(err)
}

// Wrapf returns an error annotating err with a caller stack and the format
// specifier. If err is nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &withMessage{
		cause:   withStack(err),
		message: fmt.Sprintf(format, args...),
	}
}

// WrapKV annotates err with a caller stack and the key-value pairs encoded
// as a `[|key: value]...` string. If err is nil, WrapKV returns nil.
func WrapKV(err error, keysAndValues ...any) error {
	if err == nil {
		return nil
	}
	return &withMessage{
		cause:   withStack(err),
		message: combineKV(keysAndValues...),
	}
}

type causer interface {
	Cause() error
}

// Cause repeatedly unwraps errors implementing Cause() and returns the last
// one that does not, normally the stack-carrying base of the chain.
func Cause(err error) error {
	for err != nil {
		c, ok := err.(causer)
		if !ok {
			break
		}
		err = c.Cause()
	}
	return err
}
