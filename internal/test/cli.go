package test

import (
	"bytes"

	"github.com/litebase/pager/pkg/cli/cmd"
	"github.com/litebase/pager/pkg/config"
	"github.com/spf13/cobra"
)

type TestCLI struct {
	Cmd          *cobra.Command
	Config       *config.Config
	outputBuffer *bytes.Buffer
}

func NewTestCLI(c *config.Config) *TestCLI {
	cli := &TestCLI{
		Config:       c,
		outputBuffer: bytes.NewBuffer(make([]byte, 0)),
	}

	cli.Cmd = cmd.RootCmd(c)
	cli.Cmd.SetOut(cli.outputBuffer)
	cli.Cmd.SetErr(cli.outputBuffer)

	return cli
}

// ClearOutput resets the output buffer for the CLI
func (c *TestCLI) ClearOutput() {
	c.outputBuffer.Reset()
}

// GetOutput returns the current output buffer content for debugging
func (c *TestCLI) GetOutput() string {
	return c.outputBuffer.String()
}

// Run executes the CLI command with the provided arguments
func (c *TestCLI) Run(args ...string) error {
	// A nil slice makes cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}

	c.Cmd.SetArgs(args)

	return c.Cmd.Execute()
}

// Check if the output buffer does not contain the expected text
func (c *TestCLI) DoesntSee(text string) bool {
	return !c.Sees(text)
}

// Check if the output buffer contains the expected text
func (c *TestCLI) Sees(text string) bool {
	return bytes.Contains(c.outputBuffer.Bytes(), []byte(text))
}
