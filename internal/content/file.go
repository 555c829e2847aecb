package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
)

// FileSource reads resources from a filesystem
type FileSource struct {
	fsys fs.FS
}

// NewFileSource creates a FileSource over fsys
func NewFileSource(fsys fs.FS) *FileSource {
	return &FileSource{fsys: fsys}
}

// NewDirSource creates a FileSource rooted at dir
func NewDirSource(dir string) *FileSource {
	return NewFileSource(os.DirFS(dir))
}

// Fetch reads name. Missing files map to a 404 StatusError so callers see the
// same error kinds as with HTTPSource.
func (s *FileSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	if !fs.ValidPath(name) {
		return nil, &StatusError{Resource: name, Code: http.StatusNotFound}
	}

	data, err := fs.ReadFile(s.fsys, name)
	switch {
	case err == nil:
		return data, nil
	case errors.Is(err, fs.ErrNotExist):
		return nil, &StatusError{Resource: name, Code: http.StatusNotFound}
	case errors.Is(err, fs.ErrPermission):
		return nil, &StatusError{Resource: name, Code: http.StatusForbidden}
	default:
		return nil, fmt.Errorf("%w: reading %s: %w", ErrTransport, name, err)
	}
}
