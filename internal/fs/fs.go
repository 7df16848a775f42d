package fs

import (
	"os"
	"path/filepath"

	"github.com/zxhio/j4on/xerrors"
)

// Dir returns all but the last element of path, typically the path's directory.
// The result is a clean and slash path.
func Dir(path string) string {
	dir := filepath.Dir(path)
	return CleanSlashPath(dir)
}

// Join joins any number of path elements into a clean and slash path.
func Join(elem ...string) string {
	path := filepath.Join(elem...)
	return CleanSlashPath(path)
}

// CleanSlashPath returns clean and slash path.
func CleanSlashPath(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// IsSamePath checks if two paths are same based on clean slash path.
func IsSamePath(leftPath, rightPath string) bool {
	return CleanSlashPath(leftPath) == CleanSlashPath(rightPath)
}

// Exists reports whether the named file or directory exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadFile reads the named file and annotates failures with the file path.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, xerrors.WrapKV(err, xerrors.KeyFile, path)
	}
	return data, nil
}
