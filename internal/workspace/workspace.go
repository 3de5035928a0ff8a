// Package workspace defines the root-directory capability envcomplete reads
// env files from, and its operating-system implementation.
package workspace

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/NikitaCOEUR/envcomplete/internal/derrors"
)

// Entry is one item directly inside the workspace root
type Entry struct {
	Name  string
	IsDir bool
}

// Workspace is the capability a host provides: a root directory that can be
// listed one level deep and read by relative path.
type Workspace interface {
	// Root returns the root path, or a NoWorkspaceError if none is available
	Root() (string, error)
	// ReadDir lists the immediate entries of the root
	ReadDir(ctx context.Context) ([]Entry, error)
	// ReadFile reads a file relative to the root
	ReadFile(ctx context.Context, name string) ([]byte, error)
}

// Dir is a Workspace backed by a directory on the local filesystem
type Dir struct {
	path string
}

// NewDir creates a workspace rooted at path. An empty path is allowed and
// reported as a NoWorkspaceError on first use.
func NewDir(path string) *Dir {
	return &Dir{path: path}
}

// Root validates and returns the absolute root path
func (d *Dir) Root() (string, error) {
	if d.path == "" {
		return "", derrors.NewNoWorkspaceError("", "no workspace root configured", nil)
	}

	abs, err := filepath.Abs(d.path)
	if err != nil {
		return "", derrors.NewNoWorkspaceError(d.path, "failed to resolve workspace root", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", derrors.NewNoWorkspaceError(abs, "workspace root is not available", err)
	}
	if !info.IsDir() {
		return "", derrors.NewNoWorkspaceError(abs, "workspace root is not a directory", nil)
	}

	return abs, nil
}

// ReadDir lists the root's immediate entries in the order os.ReadDir returns them
func (d *Dir) ReadDir(ctx context.Context) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root, err := d.Root()
	if err != nil {
		return nil, err
	}

	dirEntries, err := os.ReadDir(root)
	if err != nil {
		return nil, derrors.NewNoWorkspaceError(root, "failed to list workspace root", err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		entries = append(entries, Entry{Name: de.Name(), IsDir: isDir(root, de)})
	}
	return entries, nil
}

// ReadFile reads name relative to the root
func (d *Dir) ReadFile(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root, err := d.Root()
	if err != nil {
		return nil, err
	}

	if !filepath.IsLocal(name) {
		return nil, derrors.NewFileReadError(name, "path escapes workspace root", nil)
	}

	data, err := os.ReadFile(filepath.Join(root, name))
	if err != nil {
		return nil, derrors.NewFileReadError(name, "failed to read env file", err)
	}
	return data, nil
}

// isDir follows symlinks so a link to a directory reports as a directory
func isDir(root string, de fs.DirEntry) bool {
	if de.Type()&fs.ModeSymlink == 0 {
		return de.IsDir()
	}
	info, err := os.Stat(filepath.Join(root, de.Name()))
	return err == nil && info.IsDir()
}
