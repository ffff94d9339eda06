package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrDirNotEmpty  = errors.New("directory not empty")
	ErrUnsafeFolder = errors.New("folder name is not a single local path element")
)

// DirectoryCleanupError is reported when a provisional directory could not
// be removed. Callers log it and carry on.
type DirectoryCleanupError struct {
	Dir string
	Err error
}

func (e *DirectoryCleanupError) Error() string {
	return fmt.Sprintf("remove %s: %v", e.Dir, e.Err)
}

func (e *DirectoryCleanupError) Unwrap() error { return e.Err }

// Workspace owns the per-deck output directories below Root.
type Workspace struct {
	Root string
}

func NewWorkspace(root string) *Workspace {
	return &Workspace{Root: root}
}

// Dir is the output directory for a folder name.
func (w *Workspace) Dir(name string) string {
	return filepath.Join(w.Root, name)
}

// Provision creates the directory for name before any content is known.
// created reports whether it did not exist beforehand.
func (w *Workspace) Provision(name string) (dir string, created bool, err error) {
	if !filepath.IsLocal(name) || strings.ContainsAny(name, `/\`) {
		return "", false, fmt.Errorf("%w: %q", ErrUnsafeFolder, name)
	}
	dir = w.Dir(name)
	if _, statErr := os.Stat(dir); errors.Is(statErr, os.ErrNotExist) {
		created = true
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", false, err
	}
	return dir, created, nil
}

// RemoveIfEmpty deletes dir only when it has no entries. A non-empty
// directory is left alone and reported with ErrDirNotEmpty; a missing one
// is not an error.
func (w *Workspace) RemoveIfEmpty(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, &DirectoryCleanupError{Dir: dir, Err: err}
	}
	if len(entries) > 0 {
		return false, &DirectoryCleanupError{Dir: dir, Err: ErrDirNotEmpty}
	}
	if err := os.Remove(dir); err != nil {
		return false, &DirectoryCleanupError{Dir: dir, Err: err}
	}
	return true, nil
}
