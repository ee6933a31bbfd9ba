// Package commands implements the CLI commands for the many-buildroots tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/simark/many-buildroots/internal/app"
	"github.com/simark/many-buildroots/internal/build"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for many-buildroots.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	RunBatch(ctx context.Context, targetNames []string, opts app.RunOptions) error
	ListTargets(ctx context.Context) error
	Shell(ctx context.Context, targetNames []string) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "many-buildroots",
		Short:         "Build cross-toolchains and GDB for a zoo of architectures",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newInitToolchainsCmd())
	rootCmd.AddCommand(c.newBuildToolchainsCmd())
	rootCmd.AddCommand(c.newInitGDBCmd())
	rootCmd.AddCommand(c.newBuildGDBCmd())
	rootCmd.AddCommand(c.newListTargetsCmd())
	rootCmd.AddCommand(c.newShellCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
