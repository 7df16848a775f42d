package printer

import "strings"

// Indent indents each depth one tab stop "\t".
func Indent(depth int) string {
	return strings.Repeat("\t", depth)
}
