// Package adapter contains filesystem and storage adapters for the mutcount CLI.
package adapter

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
	m "tp53.dev/pkg/mutcount/internal/model"
)

// SourceFSAdapter abstracts the filesystem operations the walker and parser
// rely on, so traversal logic can be tested against an in-memory tree.
type SourceFSAdapter interface {
	// ReadDir returns the names of the immediate children of path, sorted by
	// name. It fails when path does not exist or is not a directory.
	ReadDir(path m.Path) ([]string, error)

	// Exists reports whether path exists.
	Exists(path m.Path) (bool, error)

	// Open opens a file for reading.
	Open(path m.Path) (io.ReadCloser, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalSourceFSAdapter implements SourceFSAdapter on top of an afero filesystem.
type LocalSourceFSAdapter struct {
	fs afero.Fs
}

// NewLocalSourceFSAdapter constructs an adapter backed by the OS filesystem.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return NewSourceFSAdapter(afero.NewOsFs())
}

// NewSourceFSAdapter constructs an adapter backed by fs.
func NewSourceFSAdapter(fs afero.Fs) *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{fs: fs}
}

// ReadDir lists the names of the children of path.
func (a *LocalSourceFSAdapter) ReadDir(path m.Path) ([]string, error) {
	info, err := a.fs.Stat(string(path))
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%s: not a directory", path)
	}

	entries, err := afero.ReadDir(a.fs, string(path))
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	return names, nil
}

// Exists reports whether path exists.
func (a *LocalSourceFSAdapter) Exists(path m.Path) (bool, error) {
	return afero.Exists(a.fs, string(path))
}

// Open opens the file at path.
func (a *LocalSourceFSAdapter) Open(path m.Path) (io.ReadCloser, error) {
	return a.fs.Open(string(path))
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
