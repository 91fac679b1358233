package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/litebase/pager/pkg/config"
	"github.com/litebase/pager/pkg/pager"
	"github.com/litebase/pager/pkg/storage"
)

// Open a pager on the configured file system. When mustExist is set a missing
// file is reported instead of being created.
func openPager(c *config.Config, path string, mustExist bool) (*pager.Pager, error) {
	fs, err := storage.NewFileSystemFromConfig(c)

	if err != nil {
		return nil, err
	}

	if mustExist {
		if _, err := fs.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("file %s does not exist", path)
			}

			return nil, err
		}
	}

	return pager.Open(fs, path)
}

func parsePageNumber(value string) (uint32, error) {
	pageNumber, err := strconv.ParseUint(value, 10, 32)

	if err != nil {
		return 0, fmt.Errorf("invalid page number %q", value)
	}

	if pageNumber >= pager.MaxPages {
		return 0, fmt.Errorf("page number %d is out of range, the maximum is %d", pageNumber, pager.MaxPages-1)
	}

	return uint32(pageNumber), nil
}
