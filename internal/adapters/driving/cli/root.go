// Package cli implements the cobra command tree that drives the
// harmoniser: run, watch, history, config and version.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/digital-land/harmonise-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var flagVerbose bool

var rootCmd = &cobra.Command{
	Use:   "harmonise",
	Short: "Normalise CSV values against a schema",
	Long: `Harmonise reads a tabular data file, coerces every field to the
canonical representation its schema dictates, and emits both a cleaned CSV
and a log of every value it could not confidently normalise.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"print pipeline detail to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
