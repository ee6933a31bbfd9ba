package commands

import (
	"github.com/simark/many-buildroots/internal/core/domain"
	"github.com/spf13/cobra"
)

func (c *CLI) newInitGDBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init-gdb [targets...]",
		Short: "Configure GDB build directories against the built toolchains",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.RunBatch(cmd.Context(), args,
				batchOptions(cmd, domain.PipelineGDB, domain.ModePrepareOnly))
		},
	}
	addBatchFlags(cmd)
	cmd.Flags().StringP("configure-opts", "o", "", "Extra options to pass to configure")
	return cmd
}

func (c *CLI) newBuildGDBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build-gdb [targets...]",
		Short: "Build gdb and gdbserver for the requested targets",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.RunBatch(cmd.Context(), args,
				batchOptions(cmd, domain.PipelineGDB, domain.ModePrepareAndBuild))
		},
	}
	addBatchFlags(cmd)
	cmd.Flags().IntP("jobs", "j", 0, "Number of parallel make jobs (default: number of CPUs)")
	cmd.Flags().StringP("configure-opts", "o", "", "Extra options to pass to configure")
	return cmd
}
