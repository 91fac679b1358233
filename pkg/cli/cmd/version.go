package cmd

import (
	"fmt"

	"github.com/litebase/pager/pkg/cli/components"
	"github.com/litebase/pager/pkg/cli/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const Version = "0.1.0"

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version number of the CLI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			style := lipgloss.NewStyle().
				Background(styles.PrimaryBackgroundColor).
				Foreground(styles.PrimaryForegroundColor).
				Padding(1, 2)

			fmt.Fprint(
				cmd.OutOrStdout(),
				components.Container(style.Render(fmt.Sprintf("Pager CLI -→ v%s", Version))),
			)

			return nil
		},
	}
}
