// Package fileio abstracts the filesystem reads used to load document data.
package fileio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FS is the file access the loaders need.
type FS interface {
	// Exists reports whether an entry exists at path. Errors count as absent.
	Exists(path string) bool
	// ReadText returns the whole file as text.
	ReadText(path string) (string, error)
}

// ErrNoFS is returned by ReadJSON when no filesystem is given.
var ErrNoFS = errors.New("no filesystem")

// OS is the host filesystem.
var OS FS = osFS{}

type osFS struct{}

func (osFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (osFS) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FromFS adapts an io/fs.FS. Paths are cleaned and stripped of a leading
// slash to satisfy fs.ValidPath.
func FromFS(fsys fs.FS) FS {
	return ioFS{fsys: fsys}
}

type ioFS struct {
	fsys fs.FS
}

func (f ioFS) Exists(path string) bool {
	_, err := fs.Stat(f.fsys, toFSPath(path))
	return err == nil
}

func (f ioFS) ReadText(path string) (string, error) {
	data, err := fs.ReadFile(f.fsys, toFSPath(path))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func toFSPath(path string) string {
	return strings.TrimPrefix(filepath.ToSlash(filepath.Clean(path)), "/")
}

// FileExists reports whether path exists in fsys. It never fails: a nil
// filesystem, a permission problem or any other error yields false.
func FileExists(fsys FS, path string) bool {
	if fsys == nil {
		return false
	}
	return fsys.Exists(path)
}

// ReadJSON reads path from fsys and decodes it as JSON into a T.
// The payload is not validated beyond what encoding/json does.
func ReadJSON[T any](fsys FS, path string) (T, error) {
	var v T
	if fsys == nil {
		return v, fmt.Errorf("reading %s: %w", path, ErrNoFS)
	}
	text, err := fsys.ReadText(path)
	if err != nil {
		return v, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return v, fmt.Errorf("parsing %s: %w", path, err)
	}
	return v, nil
}
