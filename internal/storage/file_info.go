package storage

import (
	"io/fs"
)

// FileInfo is what drivers return from Stat.
type FileInfo = fs.FileInfo
