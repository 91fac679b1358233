package storage

import (
	"fmt"

	"github.com/litebase/pager/pkg/config"
)

// NewFileSystemFromConfig returns a file system using the driver selected by
// the configuration.
func NewFileSystemFromConfig(c *config.Config) (*FileSystem, error) {
	switch c.FileSystemDriver {
	case config.FileSystemDriverLocal:
		return NewFileSystem(NewLocalFileSystemDriver(c.DataPath)), nil
	case config.FileSystemDriverObject:
		driver, err := NewObjectFileSystemDriver(c)

		if err != nil {
			return nil, err
		}

		return NewFileSystem(driver), nil
	default:
		return nil, fmt.Errorf("unknown file system driver %q", c.FileSystemDriver)
	}
}
