// Package load reads documents from files into the value model. JSON is the
// primary input format; YAML documents are accepted as a convenience and
// converted into the same value tree.
package load

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/zxhio/j4on/format"
	"github.com/zxhio/j4on/internal/fs"
	"github.com/zxhio/j4on/parse"
	"github.com/zxhio/j4on/value"
	"github.com/zxhio/j4on/xerrors"
)

// Load reads the file at path in the given input format and returns the
// parsed value tree.
func Load(path string, fmt format.Format, options ...Option) (value.Value, error) {
	opts := ParseOptions(options...)
	switch fmt {
	case format.JSON:
		return loadJSON(path, opts)
	case format.YAML:
		return loadYAML(path)
	default:
		return value.Value{}, errors.Errorf("unknown input format: %v", fmt)
	}
}

// LoadFile infers the input format from the file extension and loads it.
func LoadFile(path string, options ...Option) (value.Value, error) {
	fmt := format.GetFormat(path)
	if !format.IsInputFormat(fmt) {
		return value.Value{}, xerrors.ErrorKV("unsupported file extension",
			xerrors.KeyFile, path,
			xerrors.KeyFormat, filepath.Ext(path))
	}
	return Load(path, fmt, options...)
}

func loadJSON(path string, opts *Options) (value.Value, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return value.Value{}, err
	}
	var setters []parse.Option
	if opts.MaxDepth > 0 {
		setters = append(setters, parse.MaxDepth(opts.MaxDepth))
	}
	root, err := parse.Parse(data, setters...)
	if err != nil {
		return value.Value{}, xerrors.WrapKV(err, xerrors.KeyFile, path)
	}
	return root, nil
}
