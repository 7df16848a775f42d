// Package j4on is the top-level facade: parse JSON text into a value tree,
// look up keys anywhere in the tree, and render the tree back to canonical
// pretty-printed text.
package j4on

import (
	"github.com/zxhio/j4on/format"
	"github.com/zxhio/j4on/load"
	"github.com/zxhio/j4on/log"
	"github.com/zxhio/j4on/options"
	"github.com/zxhio/j4on/parse"
	"github.com/zxhio/j4on/store"
	"github.com/zxhio/j4on/value"
)

// Parse parses a complete JSON document from data.
func Parse(data []byte, setters ...options.Option) (value.Value, error) {
	opts := options.ParseOptions(setters...)
	return parse.Parse(data, parseSetters(opts)...)
}

// ParseString parses a complete JSON document from s.
func ParseString(s string, setters ...options.Option) (value.Value, error) {
	opts := options.ParseOptions(setters...)
	return parse.ParseString(s, parseSetters(opts)...)
}

// ParseFile loads the document at path, inferring the input format (JSON or
// YAML) from the file extension.
func ParseFile(path string, setters ...options.Option) (value.Value, error) {
	opts := options.ParseOptions(setters...)
	if err := log.Init(opts.Log); err != nil {
		return value.Value{}, err
	}
	return load.LoadFile(path, loadSetters(opts)...)
}

// Format renders root as canonical pretty-printed JSON text.
func Format(root value.Value, setters ...options.Option) (string, error) {
	opts := options.ParseOptions(setters...)
	out, err := store.Marshal(root, &store.MarshalOptions{Validate: opts.Output.Validate})
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Store renders root and writes it as <name>.json under dir.
func Store(root value.Value, dir, name string, setters ...options.Option) error {
	opts := options.ParseOptions(setters...)
	if err := log.Init(opts.Log); err != nil {
		return err
	}
	return store.Store(root, dir, format.JSON,
		store.Name(name),
		store.Validate(opts.Output.Validate),
	)
}

// Get searches the tree rooted at root for the first member named key, in
// depth-first order. It returns the Unknown sentinel when the key is absent.
func Get(root value.Value, key string) value.Value {
	return root.Get(key)
}

func parseSetters(opts *options.Options) []parse.Option {
	var setters []parse.Option
	if opts.Parse != nil && opts.Parse.MaxDepth > 0 {
		setters = append(setters, parse.MaxDepth(opts.Parse.MaxDepth))
	}
	return setters
}

func loadSetters(opts *options.Options) []load.Option {
	var setters []load.Option
	if opts.Parse != nil && opts.Parse.MaxDepth > 0 {
		setters = append(setters, load.MaxDepth(opts.Parse.MaxDepth))
	}
	return setters
}
