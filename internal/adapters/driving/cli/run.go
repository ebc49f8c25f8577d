package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	configfile "github.com/digital-land/harmonise-cli/internal/adapters/driven/config/file"
)

var runFlags = struct {
	schemaPath       string
	logPath          string
	organisationPath string
	patchPath        string
	history          bool
	historyPath      string
}{}

var runCmd = &cobra.Command{
	Use:   "run <input.csv> <output.csv>",
	Short: "Harmonise one CSV file",
	Long: `Normalises every field of the input against the schema and writes
the cleaned CSV. Values that could not be confidently normalised are
blanked and logged to the issue file for a human to review.`,
	Args: func(_ *cobra.Command, args []string) error {
		return validateRunArgs(args)
	},
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runFlags.schemaPath, "schema", "", "schema document (JSON or YAML)")
	runCmd.Flags().StringVar(&runFlags.logPath, "log", "issues.csv", "issue log output")
	runCmd.Flags().StringVar(&runFlags.organisationPath, "organisation", "", "organisation reference table")
	runCmd.Flags().StringVar(&runFlags.patchPath, "patch", "", "organisation patch table")
	runCmd.Flags().BoolVar(&runFlags.history, "history", false, "record the run in the history database")
	runCmd.Flags().StringVar(&runFlags.historyPath, "history-db", "", "history database path")
	_ = runCmd.MarkFlagRequired("schema")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	opts, err := optionsFromConfig(args)
	if err != nil {
		return err
	}

	summary, err := harmonise(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("harmonise failed: %w", err)
	}

	printSummary(cmd.Printf, summary)
	if opts.history {
		cmd.Printf("Run recorded as %s.\n", summary.RunID)
	}
	return nil
}

// optionsFromConfig merges flags over the config file's defaults. Flags
// always win; config only fills what was left unset.
func optionsFromConfig(args []string) (runOptions, error) {
	opts := runOptions{
		input:            args[0],
		output:           args[1],
		schemaPath:       runFlags.schemaPath,
		logPath:          runFlags.logPath,
		organisationPath: runFlags.organisationPath,
		patchPath:        runFlags.patchPath,
		history:          runFlags.history,
		historyPath:      runFlags.historyPath,
	}

	store, err := configfile.NewConfigStore("")
	if err != nil {
		// Config is a convenience; a broken home directory should not stop
		// an explicit invocation.
		return opts, nil
	}

	if opts.organisationPath == "" {
		opts.organisationPath = store.GetString(configfile.KeyOrganisationPath)
	}
	if opts.patchPath == "" {
		opts.patchPath = store.GetString(configfile.KeyPatchPath)
	}
	if !opts.history {
		opts.history = store.GetBool(configfile.KeyHistoryEnabled)
	}
	if opts.historyPath == "" {
		opts.historyPath = store.GetString(configfile.KeyHistoryPath)
	}
	return opts, nil
}
