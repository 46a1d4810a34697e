// Package filesystem provides the local filesystem implementation of domain.FileSystem.
package filesystem

import (
	"errors"
	"os"

	"github.com/runoshun/imgresize/internal/domain"
)

// Ensure FS implements domain.FileSystem.
var _ domain.FileSystem = (*FS)(nil)

// FS implements domain.FileSystem on the local disk.
type FS struct{}

// New creates a new FS.
func New() *FS {
	return &FS{}
}

// Exists reports whether path exists.
func (f *FS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// MkdirAll creates dir and its parents.
// A directory created concurrently by someone else is not an error.
func (f *FS) MkdirAll(dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		if errors.Is(err, os.ErrExist) && f.Exists(dir) {
			return nil
		}
		return err
	}
	return nil
}
