package cmd

import (
	"fmt"
	"strconv"

	"github.com/litebase/pager/pkg/cli/components"
	"github.com/litebase/pager/pkg/cli/styles"
	"github.com/litebase/pager/pkg/config"
	"github.com/litebase/pager/pkg/pager"

	"github.com/spf13/cobra"
)

func NewInfoCmd(c *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "info <path>",
		Short: "Show the page layout of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openPager(c, args[0], true)

			if err != nil {
				return err
			}

			defer p.Close()

			output := []string{
				styles.TitleStyle.Render(p.Path()),
				components.TabularList([]components.ListItem{
					{Key: "Driver", Value: c.FileSystemDriver},
					{Key: "File length", Value: fmt.Sprintf("%d bytes", p.FileLength())},
					{Key: "Page size", Value: strconv.Itoa(pager.PageSize)},
					{Key: "Max pages", Value: strconv.Itoa(pager.MaxPages)},
					{Key: "Pages", Value: strconv.FormatUint(uint64(p.PageCount()), 10)},
					{Key: "Partial page bytes", Value: strconv.FormatInt(p.PartialPageBytes(), 10)},
				}),
			}

			if p.HasPartialPage() {
				output = append(output, components.WarningAlert("The file ends with a partial page"))
			}

			fmt.Fprint(cmd.OutOrStdout(), components.Container(output...))

			return nil
		},
	}
}
