// Package store serializes a value tree to pretty-printed JSON text and
// writes it out.
package store

import (
	"os"

	"github.com/pkg/errors"
	"github.com/zxhio/j4on/format"
	"github.com/zxhio/j4on/internal/fs"
	"github.com/zxhio/j4on/log"
	"github.com/zxhio/j4on/value"
	"github.com/zxhio/j4on/xerrors"
)

// Store marshals root and writes it to a file in the specified directory
// and format. The only output format is JSON.
func Store(root value.Value, dir string, fmt format.Format, options ...Option) error {
	opts := ParseOptions(options...)
	if opts.Name == "" {
		return errors.New("output file name not specified")
	}
	var out []byte
	var err error
	filename := opts.Name
	switch fmt {
	case format.JSON:
		filename += format.JSONExt
		out, err = Marshal(root, &MarshalOptions{Validate: opts.Validate})
		if err != nil {
			return errors.Wrapf(err, "failed to marshal %s to JSON", opts.Name)
		}
	default:
		return errors.Errorf("unknown output format: %v", fmt)
	}

	fpath := fs.Join(dir, filename)
	if err := os.MkdirAll(fs.Dir(fpath), 0700); err != nil {
		return xerrors.WrapKV(err, xerrors.KeyFile, fs.Dir(fpath))
	}
	if err := os.WriteFile(fpath, out, 0644); err != nil {
		return xerrors.WrapKV(err, xerrors.KeyFile, fpath)
	}
	log.Infof("%12s: %s", "generated", filename)
	return nil
}
