package cmd

import (
	"fmt"

	"github.com/litebase/pager/pkg/cli/components"
	"github.com/litebase/pager/pkg/config"
	"github.com/litebase/pager/pkg/pager"

	"github.com/spf13/cobra"
)

func NewWriteCmd(c *config.Config) *cobra.Command {
	var offset int
	var size int

	cmd := &cobra.Command{
		Use:   "write <path> <page> <text>",
		Short: "Write text into a page and flush it",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			pageNumber, err := parsePageNumber(args[1])

			if err != nil {
				return err
			}

			text := []byte(args[2])

			if offset < 0 || offset+len(text) > pager.PageSize {
				return fmt.Errorf("text of %d bytes at offset %d does not fit in a page of %d bytes", len(text), offset, pager.PageSize)
			}

			p, err := openPager(c, args[0], false)

			if err != nil {
				return err
			}

			page, err := p.Load(pageNumber)

			if err != nil {
				p.Close()
				return err
			}

			copy(page[offset:], text)

			if err := p.MarkDirty(pageNumber); err != nil {
				p.Close()
				return err
			}

			if err := p.Flush(pageNumber, size); err != nil {
				p.Close()
				return err
			}

			if err := p.Sync(); err != nil {
				p.Close()
				return err
			}

			if err := p.Close(); err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), components.Container(
				components.SuccessAlert(fmt.Sprintf("Flushed %d bytes of page %d to %s", size, pageNumber, args[0])),
			))

			return nil
		},
	}

	cmd.Flags().IntVar(&offset, "offset", 0, "Offset within the page to write the text at")
	cmd.Flags().IntVar(&size, "size", pager.PageSize, "Number of bytes to flush from the start of the page")

	return cmd
}
