package cli

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/digital-land/harmonise-cli/internal/logger"
)

// watchDebounce is how long we wait after the last write event before
// re-running. Editors and downloads produce bursts of writes; reading a
// half-written CSV would blank most of its rows.
const watchDebounce = 500 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch <input.csv> <output.csv>",
	Short: "Re-harmonise whenever the input file changes",
	Long: `Runs a harmonisation immediately, then watches the input file and
re-runs each time it is rewritten. Stop with Ctrl-C.`,
	Args: func(_ *cobra.Command, args []string) error {
		return validateRunArgs(args)
	},
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&runFlags.schemaPath, "schema", "", "schema document (JSON or YAML)")
	watchCmd.Flags().StringVar(&runFlags.logPath, "log", "issues.csv", "issue log output")
	watchCmd.Flags().StringVar(&runFlags.organisationPath, "organisation", "", "organisation reference table")
	watchCmd.Flags().StringVar(&runFlags.patchPath, "patch", "", "organisation patch table")
	watchCmd.Flags().BoolVar(&runFlags.history, "history", false, "record each run in the history database")
	watchCmd.Flags().StringVar(&runFlags.historyPath, "history-db", "", "history database path")
	_ = watchCmd.MarkFlagRequired("schema")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	opts, err := optionsFromConfig(args)
	if err != nil {
		return err
	}

	runOnce := func() {
		summary, err := harmonise(cmd.Context(), opts)
		if err != nil {
			cmd.PrintErrf("harmonise failed: %v\n", err)
			return
		}
		printSummary(cmd.Printf, summary)
	}
	runOnce()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace files by rename,
	// which drops a watch on the file itself.
	dir := filepath.Dir(opts.input)
	if err := watcher.Add(dir); err != nil {
		return err
	}
	target, err := filepath.Abs(opts.input)
	if err != nil {
		return err
	}

	cmd.Printf("Watching %s for changes.\n", opts.input)

	var pending *time.Timer
	fire := make(chan struct{}, 1)
	for {
		select {
		case <-cmd.Context().Done():
			return cmd.Context().Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
				continue
			}
			path, err := filepath.Abs(event.Name)
			if err != nil || path != target {
				continue
			}
			logger.Debug("change detected: %s %s", event.Op, event.Name)
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(watchDebounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		case <-fire:
			runOnce()
		}
	}
}
