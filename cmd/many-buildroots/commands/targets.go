package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newListTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-targets",
		Short: "List configured targets and their build status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.ListTargets(cmd.Context())
		},
	}
}
