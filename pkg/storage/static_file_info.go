package storage

import (
	"io/fs"
	"strings"
	"time"
)

// StaticFileInfo implements fs.FileInfo for files that do not live on a local
// disk, such as objects in an object store.
type StaticFileInfo struct {
	StaticName    string
	StaticSize    int64
	StaticModTime time.Time
}

func NewStaticFileInfo(name string, size int64, modTime time.Time) StaticFileInfo {
	return StaticFileInfo{
		StaticName:    name,
		StaticSize:    size,
		StaticModTime: modTime,
	}
}

func (fi StaticFileInfo) IsDir() bool {
	return strings.HasSuffix(fi.StaticName, "/")
}

func (fi StaticFileInfo) Name() string {
	return fi.StaticName
}

func (fi StaticFileInfo) Size() int64 {
	return fi.StaticSize
}

func (fi StaticFileInfo) Mode() fs.FileMode {
	return 0
}

func (fi StaticFileInfo) ModTime() time.Time {
	return fi.StaticModTime
}

func (fi StaticFileInfo) Sys() interface{} {
	return nil
}
