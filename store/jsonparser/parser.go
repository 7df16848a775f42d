// Package jsonparser abstracts an independent JSON parser used to validate
// and inspect marshaled output. Keeping it behind an interface lets tests
// and the store's Validate option cross-check our own formatter against a
// second implementation.
package jsonparser

type Parser interface {
	// Parse parses the given json string into a node.
	Parse(string) (Node, error)
}

type Node interface {
	// Exists reports whether the node is present.
	Exists() bool
	// Type returns the node's JSON type name: "null", "number", "string",
	// "true", "false", "array", or "object".
	Type() string
	// Get returns the child node of an object-type node by the given key.
	Get(string) Node
	// Index returns the child node of an array-type node by the given index.
	Index(int) Node
}
