package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/litebase/pager/pkg/cli/components"
	"github.com/litebase/pager/pkg/cli/styles"
	"github.com/litebase/pager/pkg/config"
	"github.com/litebase/pager/pkg/pager"

	"github.com/spf13/cobra"
)

func NewReadCmd(c *config.Config) *cobra.Command {
	var length int

	cmd := &cobra.Command{
		Use:   "read <path> <page>",
		Short: "Print a hex dump of a page",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pageNumber, err := parsePageNumber(args[1])

			if err != nil {
				return err
			}

			if length < 1 || length > pager.PageSize {
				return fmt.Errorf("length must be between 1 and %d", pager.PageSize)
			}

			p, err := openPager(c, args[0], true)

			if err != nil {
				return err
			}

			defer p.Close()

			page, err := p.Load(pageNumber)

			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), components.Container(
				styles.TitleStyle.Render(fmt.Sprintf("%s page %d", p.Path(), pageNumber)),
				hex.Dump(page[:length]),
			))

			return nil
		},
	}

	cmd.Flags().IntVar(&length, "length", pager.PageSize, "Number of bytes to dump from the start of the page")

	return cmd
}
