package commands

import (
	"github.com/simark/many-buildroots/internal/app"
	"github.com/simark/many-buildroots/internal/core/domain"
	"github.com/spf13/cobra"
)

// addBatchFlags registers the flags shared by every build command.
func addBatchFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("clean", "c", false, "Remove the build directories before preparing")
	cmd.Flags().StringP("src", "s", "", "Source directory to build from")
	cmd.Flags().BoolP("verbose", "v", false, "Stream build output instead of only writing log files")
	cmd.Flags().BoolP("keep-going", "k", false, "Keep building remaining targets after a failure")
	cmd.Flags().String("output-mode", "auto", "Output mode: auto, tui, or linear")
	cmd.Flags().Bool("ci", false, "Use linear output mode (shorthand for --output-mode=linear)")
}

// batchOptions reads the shared flags back into run options for the app
// layer. Flags a command does not declare read as their zero value.
func batchOptions(cmd *cobra.Command, pipeline domain.Pipeline, mode domain.Mode) app.RunOptions {
	clean, _ := cmd.Flags().GetBool("clean")
	src, _ := cmd.Flags().GetString("src")
	verbose, _ := cmd.Flags().GetBool("verbose")
	keepGoing, _ := cmd.Flags().GetBool("keep-going")
	outputMode, _ := cmd.Flags().GetString("output-mode")
	ci, _ := cmd.Flags().GetBool("ci")
	jobs, _ := cmd.Flags().GetInt("jobs")
	configureOpts, _ := cmd.Flags().GetString("configure-opts")

	// If --ci is set, override output-mode to "linear"
	if ci {
		outputMode = "linear"
	}

	return app.RunOptions{
		Pipeline:      pipeline,
		Mode:          mode,
		Jobs:          jobs,
		Clean:         clean,
		KeepGoing:     keepGoing,
		Verbose:       verbose,
		SrcDir:        src,
		ConfigureOpts: configureOpts,
		OutputMode:    outputMode,
	}
}
