package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/hackathon/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database   string
	Limit      int
	FailedOnly bool
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs, newest first",
		Example: `  hackathon history --db runs.db
  hackathon history --db runs.db --failed --limit 5`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openLedger(opts.Database)
			if err != nil {
				return err
			}
			defer st.Close()

			runs, err := st.ListRuns(cmd.Context(), store.ListOptions{Limit: opts.Limit, FailedOnly: opts.FailedOnly})
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to list runs", err)
			}

			out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
			if out.Format == "json" {
				return out.Success(runs)
			}
			return renderRunTable(cmd.OutOrStdout(), runs)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite ledger (required)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum runs to list (0 = all)")
	cmd.Flags().BoolVar(&opts.FailedOnly, "failed", false, "only runs with mismatched checksums")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	var database string

	cmd := &cobra.Command{
		Use:           "show <run-id>",
		Short:         "Print the checksum report of one recorded run",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openLedger(database)
			if err != nil {
				return err
			}
			defer st.Close()

			report, err := st.GetRun(cmd.Context(), args[0])
			if errors.Is(err, store.ErrRunNotFound) {
				return WrapExitError(ExitCommandError, "unknown run", err)
			}
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to read run", err)
			}

			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return out.Report(report)
		},
	}

	cmd.Flags().StringVar(&database, "db", "", "path to SQLite ledger (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

// openLedger opens an existing ledger; history and show never create one.
func openLedger(path string) (*store.Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, WrapExitError(ExitCommandError, "database not found", err)
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}
	return st, nil
}
