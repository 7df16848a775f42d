package xerrors

import (
	"fmt"
	"strings"
)

// desc keys for bookkeeping. Errors built with ErrorKV/WrapKV (and the parse
// package's structured errors) encode these as "|Key: value" segments, which
// NewDesc splits back into fields.
const (
	KeyFile     = "File"     // input file path
	KeyFormat   = "Format"   // input file format
	KeyKind     = "Kind"     // parse error kind
	KeyPos      = "Pos"      // row:column position of the failure
	KeyOffset   = "Offset"   // byte offset of the failure
	KeyExpected = "Expected" // expected token description
	KeyActual   = "Actual"   // actual token description

	KeyReason = "Reason" // why it failed
	// In addition to telling the user exactly why their input is wrong, it is
	// oftentimes furthermore possible to tell them how to fix it.
	KeyHelp = "Help"
)

// ordered keys for debugging
var keys = []string{
	KeyFile,
	KeyFormat,
	KeyKind,
	KeyPos,
	KeyOffset,
	KeyExpected,
	KeyActual,
	KeyReason,
	KeyHelp,
}

// Desc is the field-wise view of an error chain, for rendering diagnostics
// to users. Presentation is the caller's job; the parser only carries the
// structured fields.
type Desc struct {
	err    error
	fields map[string]string
}

func NewDesc(err error) *Desc {
	desc := &Desc{
		err:    err,
		fields: map[string]string{},
	}
	for _, s := range strings.Split(err.Error(), "|") {
		kv := strings.SplitN(s, ":", 2)
		if len(kv) == 2 {
			key := strings.Trim(kv[0], " :")
			val := strings.Trim(kv[1], " :")
			if _, ok := desc.fields[key]; !ok {
				// outermost annotation wins
				desc.fields[key] = val
			}
		}
	}
	return desc
}

// Field returns the value of key, or "" if the chain did not carry it.
func (d *Desc) Field(key string) string { return d.fields[key] }

// String renders a one-line human-readable description.
func (d *Desc) String() string {
	if len(d.fields) == 0 {
		return fmt.Sprintf("Error: %s", d.err)
	}
	var sb strings.Builder
	sb.WriteString("Error: ")
	if kind := d.fields[KeyKind]; kind != "" {
		sb.WriteString(kind)
	} else {
		sb.WriteString(d.fields[KeyReason])
	}
	if file := d.fields[KeyFile]; file != "" {
		fmt.Fprintf(&sb, " in %s", file)
	}
	if pos := d.fields[KeyPos]; pos != "" {
		fmt.Fprintf(&sb, " at %s", pos)
	}
	if expected := d.fields[KeyExpected]; expected != "" {
		fmt.Fprintf(&sb, ": expected %s", expected)
		if actual := d.fields[KeyActual]; actual != "" {
			fmt.Fprintf(&sb, ", actual %s", actual)
		}
	}
	if help := d.fields[KeyHelp]; help != "" {
		fmt.Fprintf(&sb, "\nHelp: %s", help)
	}
	return sb.String()
}

// DebugString lists all known fields line by line, in stable order.
func (d *Desc) DebugString() string {
	var sb strings.Builder
	for _, key := range keys {
		if val, ok := d.fields[key]; ok {
			fmt.Fprintf(&sb, "\t%s: %v\n", key, val)
		}
	}
	return sb.String()
}
