package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Loader errors, matchable with errors.Is.
var (
	// ErrNotFound indicates the requested path does not exist.
	ErrNotFound = errors.New("document not found")

	// ErrRead indicates the path exists but could not be read as text.
	ErrRead = errors.New("document read failed")
)

// Loader loads Documents by path. The import resolver recurses through
// a Loader so that traversal can be exercised against an in-memory
// file set in tests.
type Loader interface {
	// Load reads the file at path and returns it as a Document.
	// The returned Document's Path is absolute.
	Load(path string) (*Document, error)

	// Exists reports whether path refers to an existing regular file.
	Exists(path string) bool
}

// FileLoader loads Documents from the local file system.
type FileLoader struct{}

// NewFileLoader creates a file-system backed Loader.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load implements Loader.
func (l *FileLoader) Load(path string) (*Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
	}

	content, err := os.ReadFile(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, abs)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrRead, abs, err)
	}

	return New(abs, string(content)), nil
}

// Exists implements Loader.
func (l *FileLoader) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
