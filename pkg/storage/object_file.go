package storage

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"time"
)

// ObjectFile is a file backed by a single object. The object is read into
// memory when the file is opened and uploaded again on Sync and Close when its
// contents changed.
type ObjectFile struct {
	checksum  [32]byte
	closed    bool
	data      []byte
	fs        *ObjectFileSystemDriver
	Key       string
	modTime   time.Time
	OpenFlags int
	position  int64
}

func NewObjectFile(fs *ObjectFileSystemDriver, key string, openFlags int) (*ObjectFile, error) {
	file := &ObjectFile{
		fs:        fs,
		Key:       key,
		modTime:   time.Now().UTC(),
		OpenFlags: openFlags,
	}

	data, err := fs.getObject(key)

	switch {
	case err == nil:
		file.data = data
	case errors.Is(err, os.ErrNotExist) && openFlags&os.O_CREATE != 0:
		file.data = []byte{}

		if err := fs.putObject(key, file.data); err != nil {
			log.Println("Error creating object file", key, err)
			return nil, err
		}
	default:
		return nil, err
	}

	file.checksum = sha256.Sum256(file.data)

	if openFlags&os.O_TRUNC != 0 && file.writable() {
		file.data = file.data[:0]
	}

	return file, nil
}

// Close uploads pending changes and releases the file.
func (file *ObjectFile) Close() error {
	if file.closed {
		return os.ErrClosed
	}

	err := file.Sync()

	file.closed = true

	return err
}

func (file *ObjectFile) Read(p []byte) (n int, err error) {
	if file.closed {
		return 0, os.ErrClosed
	}

	if file.position >= int64(len(file.data)) {
		return 0, io.EOF
	}

	n = copy(p, file.data[file.position:])

	file.position += int64(n)

	return n, nil
}

func (file *ObjectFile) ReadAt(p []byte, off int64) (n int, err error) {
	if file.closed {
		return 0, os.ErrClosed
	}

	if off < 0 {
		return 0, fmt.Errorf("read %s: negative offset %d", file.Key, off)
	}

	if off >= int64(len(file.data)) {
		return 0, io.EOF
	}

	n = copy(p, file.data[off:])

	if n < len(p) {
		return n, io.EOF
	}

	return n, nil
}

// Seek follows os.File semantics: positions past the end are allowed and a
// later write zero fills the gap.
func (file *ObjectFile) Seek(offset int64, whence int) (int64, error) {
	if file.closed {
		return 0, os.ErrClosed
	}

	var position int64

	switch whence {
	case io.SeekStart:
		position = offset
	case io.SeekCurrent:
		position = file.position + offset
	case io.SeekEnd:
		position = int64(len(file.data)) + offset
	default:
		return 0, fmt.Errorf("seek %s: invalid whence %d", file.Key, whence)
	}

	if position < 0 {
		return 0, fmt.Errorf("seek %s: negative position %d", file.Key, position)
	}

	file.position = position

	return position, nil
}

func (file *ObjectFile) Stat() (fs.FileInfo, error) {
	if file.closed {
		return nil, os.ErrClosed
	}

	return NewStaticFileInfo(file.Key, int64(len(file.data)), file.modTime), nil
}

// Sync uploads the object when its contents differ from the last upload.
func (file *ObjectFile) Sync() error {
	if file.closed {
		return os.ErrClosed
	}

	checksum := sha256.Sum256(file.data)

	if checksum == file.checksum {
		return nil
	}

	if !file.writable() {
		return os.ErrPermission
	}

	if err := file.fs.putObject(file.Key, file.data); err != nil {
		log.Println("Error syncing object file", file.Key, err)
		return err
	}

	file.checksum = checksum
	file.modTime = time.Now().UTC()

	return nil
}

func (file *ObjectFile) Truncate(size int64) error {
	if file.closed {
		return os.ErrClosed
	}

	if !file.writable() {
		return os.ErrPermission
	}

	if size < 0 {
		return fmt.Errorf("truncate %s: negative size %d", file.Key, size)
	}

	if size <= int64(len(file.data)) {
		file.data = file.data[:size]
	} else {
		file.data = append(file.data, make([]byte, size-int64(len(file.data)))...)
	}

	return nil
}

func (file *ObjectFile) Write(p []byte) (n int, err error) {
	if file.OpenFlags&os.O_APPEND != 0 {
		file.position = int64(len(file.data))
	}

	n, err = file.WriteAt(p, file.position)

	file.position += int64(n)

	return n, err
}

// WriteAt overwrites len(p) bytes at off. Bytes after the written range are
// kept and a gap between the end of the data and off is zero filled.
func (file *ObjectFile) WriteAt(p []byte, off int64) (n int, err error) {
	if file.closed {
		return 0, os.ErrClosed
	}

	if !file.writable() {
		return 0, os.ErrPermission
	}

	if off < 0 {
		return 0, fmt.Errorf("write %s: negative offset %d", file.Key, off)
	}

	end := off + int64(len(p))

	if end > int64(len(file.data)) {
		file.data = append(file.data, make([]byte, end-int64(len(file.data)))...)
	}

	return copy(file.data[off:end], p), nil
}

func (file *ObjectFile) writable() bool {
	return file.OpenFlags&(os.O_WRONLY|os.O_RDWR) != 0
}
