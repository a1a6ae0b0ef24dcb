package template

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound indicates the supplier could not locate the requested
// template.
var ErrNotFound = errors.New("template not found")

// Supplier yields raw template documents by name. Implementations signal
// a missing template with ErrNotFound and unreadable content with any
// other error; parsing is left to the caller.
type Supplier interface {
	Fetch(name string) ([]byte, error)
}

// FileSupplier serves templates from a directory. The template name is
// resolved to "<dir>/<name>" with a ".json" extension appended when the
// name carries none.
type FileSupplier struct {
	dir string
}

// NewFileSupplier returns a supplier rooted at dir.
func NewFileSupplier(dir string) *FileSupplier {
	return &FileSupplier{dir: dir}
}

// Fetch reads the named template file.
func (s *FileSupplier) Fetch(name string) ([]byte, error) {
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.dir, name)
	}
	if !strings.Contains(filepath.Base(path), ".") {
		path += ".json"
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path is intentional user input
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}
	return data, nil
}
