package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell [targets...]",
		Short: "Open a shell with the built toolchains on PATH",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Shell(cmd.Context(), args)
		},
	}
}
