package cmd

import (
	"fmt"
	"log/slog"

	"github.com/litebase/pager/pkg/cli/components"
	"github.com/litebase/pager/pkg/cli/styles"
	"github.com/litebase/pager/pkg/config"

	"github.com/spf13/cobra"
)

func addCommands(cmd *cobra.Command, c *config.Config) {
	cmd.AddCommand(NewVersionCmd())
	cmd.AddCommand(NewInfoCmd(c))
	cmd.AddCommand(NewReadCmd(c))
	cmd.AddCommand(NewWriteCmd(c))
}

// RootCmd builds the pager command tree around the given configuration.
// Subcommands read the configuration after the persistent flags are applied.
func RootCmd(c *config.Config) *cobra.Command {
	var driver string

	cmd := &cobra.Command{
		Use:               "pager <command> [flags]",
		Short:             "Pager CLI",
		Long:              `Inspect and modify page files from the command line`,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		SilenceUsage:      true,
		Run: func(cmd *cobra.Command, args []string) {
			title := styles.TitleStyle.Render(fmt.Sprintf("Pager CLI - v%s", Version))

			fmt.Fprint(cmd.OutOrStdout(), components.Container(
				fmt.Sprintf("%s\n%s", title, "For help type \"pager help\""),
				components.TabularList([]components.ListItem{
					{Key: "Driver", Value: c.FileSystemDriver},
					{Key: "Data path", Value: c.DataPath},
				}),
			))
		},
	}

	cmd.PersistentFlags().StringVar(&driver, "driver", "", "File system driver to use (local or object)")

	cmd.PersistentPreRunE = preRun(c, &driver)

	addCommands(cmd, c)

	return cmd
}

func NewRoot() error {
	return RootCmd(config.NewConfig()).Execute()
}

func preRun(c *config.Config, driver *string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if *driver != "" {
			c.FileSystemDriver = *driver
		}

		if err := c.Validate(); err != nil {
			return err
		}

		if c.Debug {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}

		return nil
	}
}
