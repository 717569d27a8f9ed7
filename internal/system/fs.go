package system

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// FileSystem is the interface for the file system.
type FileSystem interface {
	// CreateDir creates a directory and any missing parents with the given
	// permissions.
	CreateDir(path string, perm os.FileMode) error
	// Exists checks if a path exists.
	Exists(path string) (bool, error)
	// IsExecutable checks if a path is an executable file.
	IsExecutable(path string) bool
	// ListDir lists the entry names of a directory.
	ListDir(path string) ([]string, error)
	// Remove removes a file or an empty directory.
	Remove(path string) error
	// RemoveAll removes a path and any children it contains.
	RemoveAll(path string) error
}

// fileSystem is the default implementation of the FileSystem interface.
type fileSystem struct {
	runtime Runtime
}

// NewFileSystem creates a new file system.
func NewFileSystem(
	runtime Runtime,
) FileSystem {
	return &fileSystem{
		runtime: runtime,
	}
}

// CreateDir creates a directory and any missing parents with the given
// permissions. It succeeds if the directory already exists.
func (fs *fileSystem) CreateDir(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Exists checks if a path exists. A missing path is not an error; any other
// stat failure is returned.
func (fs *fileSystem) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	slog.Default().Error("error while checking path", "path", path, "err", err)
	return false, err
}

// IsExecutable checks if a path is an executable file. It returns true if the
// path is a regular file with an execute bit on Unix, or if it has the ".exe"
// extension on Windows.
func (fs *fileSystem) IsExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}

	if fs.runtime.OS() == "windows" { //nolint:goconst,nolintlint
		return strings.EqualFold(filepath.Ext(info.Name()), ".exe")
	}

	return info.Mode().IsRegular() && info.Mode().Perm()&0111 != 0
}

// ListDir lists the entry names of a directory, sorted by name. It returns an
// error if the directory cannot be read.
func (fs *fileSystem) ListDir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		slog.Default().Error("error while listing directory", "path", path, "err", err)
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	return names, nil
}

// Remove removes a file or an empty directory.
func (fs *fileSystem) Remove(path string) error {
	return os.Remove(path)
}

// RemoveAll removes a path and any children it contains. It succeeds if the
// path does not exist.
func (fs *fileSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}
