package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/lichemtest/internal/report"
	"github.com/roach88/lichemtest/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	DB    string
	Limit int
	Run   string
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs",
		Long: `List runs recorded with --history, newest first.

With --run, print the results of one run in the order they were produced.

Examples:
  runtests history --db history.db
  runtests history --db history.db --limit 5
  runtests history --db history.db --run 0b7c6c1e-... --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "path to the history database (required)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum number of runs to list (0 for all)")
	cmd.Flags().StringVar(&opts.Run, "run", "", "show the results of this run")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runHistory(cmd *cobra.Command, opts *HistoryOptions) error {
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), ErrWriter: cmd.ErrOrStderr()}

	s, err := store.Open(opts.DB)
	if err != nil {
		return out.Error(ErrCodeHistory, fmt.Sprintf("history: %v", err))
	}
	defer s.Close()

	ctx := cmd.Context()
	if opts.Run != "" {
		run, err := s.ReadRun(ctx, opts.Run)
		if err != nil {
			return out.Error(ErrCodeHistory, fmt.Sprintf("history: %v", err))
		}
		results, err := s.Results(ctx, opts.Run)
		if err != nil {
			return out.Error(ErrCodeHistory, fmt.Sprintf("history: %v", err))
		}
		printResults(out.Human(), run, results)
		return out.Success(map[string]any{"run": run, "results": results})
	}

	runs, err := s.Runs(ctx, opts.Limit)
	if err != nil {
		return out.Error(ErrCodeHistory, fmt.Sprintf("history: %v", err))
	}
	printRuns(out.Human(), runs)
	return out.Success(runs)
}

func printRuns(w io.Writer, runs []store.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No recorded runs.")
		return
	}
	fmt.Fprintf(w, "%-36s  %-20s  %-8s  %7s  %6s  %6s  %s\n",
		"RUN", "STARTED", "MODE", "THREADS", "PASSED", "FAILED", "RUN TIME")
	for _, r := range runs {
		elapsed := report.FormatElapsed(r.Elapsed)
		if !r.Finished {
			elapsed = "unfinished"
		}
		fmt.Fprintf(w, "%-36s  %-20s  %-8s  %7d  %6d  %6d  %s\n",
			r.ID, r.StartedAt.Format(time.DateTime), r.Mode, r.Threads, r.Passed, r.Failed, elapsed)
	}
}

func printResults(w io.Writer, run store.Run, results []store.Result) {
	fmt.Fprintf(w, "Run %s (%s, %d threads, started %s)\n",
		run.ID, run.Mode, run.Threads, run.StartedAt.Format(time.DateTime))
	pair := ""
	for _, r := range results {
		if p := r.QM + "/" + r.MM; p != pair {
			pair = p
			fmt.Fprintf(w, "%s results:\n", pair)
		}
		verdict := "Fail"
		if r.Pass {
			verdict = "Pass"
		}
		fmt.Fprintf(w, " %s: %s, %s, %s\n", r.Scenario, verdict, r.RunTime, r.Raw)
	}
}
