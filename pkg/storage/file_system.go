package storage

import (
	"io/fs"
	"sync"

	internalStorage "github.com/litebase/pager/internal/storage"
)

// The FileSystem struct is used to abstract the underlying file system
// implementation. This allows a pager to keep its backing file on local disk
// or in an object store without knowing which.
type FileSystem struct {
	driver FileSystemDriver
	mutex  *sync.Mutex
}

// The FileSystemDriver interface defines the methods that must be implemented
// by a file system driver.
type FileSystemDriver interface {
	MkdirAll(path string, perm fs.FileMode) error
	OpenFile(path string, flag int, perm fs.FileMode) (internalStorage.File, error)
	Path(path string) string
	ReadFile(path string) ([]byte, error)
	Remove(path string) error
	RemoveAll(path string) error
	Stat(path string) (internalStorage.FileInfo, error)
	WriteFile(path string, data []byte, perm fs.FileMode) error
}

func NewFileSystem(driver FileSystemDriver) *FileSystem {
	return &FileSystem{
		driver: driver,
		mutex:  &sync.Mutex{},
	}
}

func (fs *FileSystem) Driver() FileSystemDriver {
	return fs.driver
}

func (fs *FileSystem) MkdirAll(path string, perm fs.FileMode) error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	return fs.driver.MkdirAll(path, perm)
}

func (fs *FileSystem) OpenFile(path string, flag int, perm fs.FileMode) (internalStorage.File, error) {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	return fs.driver.OpenFile(path, flag, perm)
}

func (fs *FileSystem) Path(path string) string {
	return fs.driver.Path(path)
}

func (fs *FileSystem) ReadFile(path string) ([]byte, error) {
	return fs.driver.ReadFile(path)
}

func (fs *FileSystem) Remove(path string) error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	return fs.driver.Remove(path)
}

func (fs *FileSystem) RemoveAll(path string) error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	return fs.driver.RemoveAll(path)
}

func (fs *FileSystem) Stat(path string) (internalStorage.FileInfo, error) {
	return fs.driver.Stat(path)
}

func (fs *FileSystem) WriteFile(path string, data []byte, perm fs.FileMode) error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	return fs.driver.WriteFile(path, data, perm)
}
