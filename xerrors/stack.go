package xerrors

import (
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"
)

const unknownFrame = "unknown"

// Frame represents a program counter inside a stack frame. For historical
// reasons if Frame is interpreted as a uintptr its value represents the
// program counter + 1.
type Frame uintptr

func (f Frame) pc() uintptr { return uintptr(f) - 1 }

func (f Frame) file() string {
	fn := runtime.FuncForPC(f.pc())
	if fn == nil {
		return unknownFrame
	}
	file, _ := fn.FileLine(f.pc())
	return file
}

// trimmedFile keeps only the leaf directory and file name of the caller,
// prefixed with '@'. The path originates from the Go runtime and therefore
// always uses forward slashes, even on Windows.
func (f Frame) trimmedFile() string {
	file := f.file()
	idx := strings.LastIndexByte(file, '/')
	if idx == -1 {
		return file
	}
	idx = strings.LastIndexByte(file[:idx], '/')
	if idx == -1 {
		return file
	}
	return "@" + file[idx+1:]
}

func (f Frame) line() int {
	fn := runtime.FuncForPC(f.pc())
	if fn == nil {
		return 0
	}
	_, line := fn.FileLine(f.pc())
	return line
}

// Format formats the frame according to the fmt.Formatter interface:
//
//	%s    trimmed source file
//	%d    source line
//	%v    equivalent to %s:%d
func (f Frame) Format(s fmt.State, verb rune) {
	switch verb {
	case 's':
		_, _ = io.WriteString(s, f.trimmedFile())
	case 'd':
		_, _ = io.WriteString(s, strconv.Itoa(f.line()))
	case 'v':
		f.Format(s, 's')
		_, _ = io.WriteString(s, ":")
		f.Format(s, 'd')
	}
}

// StackTrace is a stack of Frames from innermost (newest) to outermost
// (oldest).
type StackTrace []Frame

// Format lists the frames as a slice for the '%s' and '%v' verbs.
func (st StackTrace) Format(s fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		_, _ = io.WriteString(s, "[")
		for i, f := range st {
			if i > 0 {
				_, _ = io.WriteString(s, " ")
			}
			f.Format(s, verb)
		}
		_, _ = io.WriteString(s, "]")
	}
}

// stack represents a stack of program counters.
type stack []uintptr

// stackDepth limits how many frames are printed with %+v.
const stackDepth = 3

func (s *stack) Format(st fmt.State, verb rune) {
	if verb != 'v' || !st.Flag('+') {
		return
	}
	for i, pc := range *s {
		if i >= stackDepth {
			break
		}
		_, _ = fmt.Fprintf(st, " %+v", Frame(pc))
	}
}

func (s *stack) StackTrace() StackTrace {
	frames := make([]Frame, len(*s))
	for i := range frames {
		frames[i] = Frame((*s)[i])
	}
	return frames
}

// callers records the current call stack. skip == 0 means the caller of
// callers is the first recorded frame.
func callers(skip int) *stack {
	const depth = 32
	var pcs [depth]uintptr
	// skip runtime.Callers and this function itself
	n := runtime.Callers(skip+2, pcs[:])
	var st stack = pcs[0:n]
	return &st
}
