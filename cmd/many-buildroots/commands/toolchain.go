package commands

import (
	"github.com/simark/many-buildroots/internal/core/domain"
	"github.com/spf13/cobra"
)

func (c *CLI) newInitToolchainsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init-toolchains [targets...]",
		Short: "Prepare Buildroot build directories without building",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No arguments means every configured target.
			return c.app.RunBatch(cmd.Context(), args,
				batchOptions(cmd, domain.PipelineToolchain, domain.ModePrepareOnly))
		},
	}
	addBatchFlags(cmd)
	return cmd
}

func (c *CLI) newBuildToolchainsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build-toolchains [targets...]",
		Short: "Build cross-toolchains for the requested targets",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.RunBatch(cmd.Context(), args,
				batchOptions(cmd, domain.PipelineToolchain, domain.ModePrepareAndBuild))
		},
	}
	addBatchFlags(cmd)
	cmd.Flags().IntP("jobs", "j", 0, "Number of parallel make jobs (default: number of CPUs)")
	return cmd
}
