package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	configfile "github.com/digital-land/harmonise-cli/internal/adapters/driven/config/file"
	"github.com/digital-land/harmonise-cli/internal/adapters/driven/storage/sqlite"
)

var historyFlags = struct {
	path  string
	limit int
}{}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded runs",
	RunE:  runHistory,
}

var historyIssuesCmd = &cobra.Command{
	Use:   "issues <run-id>",
	Short: "Show the issues recorded for a run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryIssues,
}

func init() {
	historyCmd.PersistentFlags().StringVar(&historyFlags.path, "history-db", "", "history database path")
	historyCmd.Flags().IntVar(&historyFlags.limit, "limit", 20, "maximum number of runs to list")
	historyCmd.AddCommand(historyIssuesCmd)

	rootCmd.AddCommand(historyCmd)
}

func openHistoryStore() (*sqlite.Store, error) {
	path := historyFlags.path
	if path == "" {
		if store, err := configfile.NewConfigStore(""); err == nil {
			path = store.GetString(configfile.KeyHistoryPath)
		}
	}
	return sqlite.NewStore(path)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	store, err := openHistoryStore()
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.ListRuns(cmd.Context(), historyFlags.limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		cmd.Println("No runs recorded.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tSTARTED\tINPUT\tROWS\tISSUES")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n",
			run.ID,
			run.StartedAt.Format("2006-01-02 15:04:05"),
			run.InputPath,
			run.Rows,
			run.Issues,
		)
	}
	return w.Flush()
}

func runHistoryIssues(cmd *cobra.Command, args []string) error {
	store, err := openHistoryStore()
	if err != nil {
		return err
	}
	defer store.Close()

	issues, err := store.RunIssues(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if len(issues) == 0 {
		cmd.Println("No issues recorded for this run.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ROW\tFIELD\tDATATYPE\tVALUE")
	for _, issue := range issues {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", issue.RowNumber, issue.Field, issue.Datatype, issue.Value)
	}
	return w.Flush()
}
