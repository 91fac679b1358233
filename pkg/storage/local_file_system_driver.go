package storage

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	internalStorage "github.com/litebase/pager/internal/storage"
)

type LocalFileSystemDriver struct {
	basePath string
}

func NewLocalFileSystemDriver(basePath string) *LocalFileSystemDriver {
	return &LocalFileSystemDriver{
		basePath: basePath,
	}
}

func (fs *LocalFileSystemDriver) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(fs.Path(path), perm)
}

func (fs *LocalFileSystemDriver) OpenFile(path string, flag int, perm fs.FileMode) (internalStorage.File, error) {
	file, err := os.OpenFile(fs.Path(path), flag, perm)

	if err != nil {
		return nil, err
	}

	return file, nil
}

// Path resolves a path against the driver's base path. Absolute paths are
// returned untouched.
func (fs *LocalFileSystemDriver) Path(path string) string {
	if filepath.IsAbs(path) || fs.basePath == "" {
		return path
	}

	var builder strings.Builder

	builder.Grow(len(fs.basePath) + 1 + len(path))
	builder.WriteString(strings.TrimRight(fs.basePath, "/"))
	builder.WriteString("/")
	builder.WriteString(path)

	return builder.String()
}

func (fs *LocalFileSystemDriver) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(fs.Path(path))

	if err != nil {
		return nil, err
	}

	return data, nil
}

func (fs *LocalFileSystemDriver) Remove(path string) error {
	return os.Remove(fs.Path(path))
}

func (fs *LocalFileSystemDriver) RemoveAll(path string) error {
	return os.RemoveAll(fs.Path(path))
}

func (fs *LocalFileSystemDriver) Stat(path string) (internalStorage.FileInfo, error) {
	info, err := os.Stat(fs.Path(path))

	if err != nil {
		return nil, err
	}

	return info, nil
}

func (fs *LocalFileSystemDriver) WriteFile(path string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(fs.Path(path), data, perm)
}
