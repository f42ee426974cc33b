package cli

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/roach88/hackathon/internal/hackathon"
	"github.com/roach88/hackathon/internal/store"
	"github.com/roach88/hackathon/internal/wordlist"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	ProfileOptions
	Database string

	// RunIDs allows overriding the run ID generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	RunIDs hackathon.RunIDGenerator
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	return newRunCommand(rootOpts, nil)
}

func newRunCommand(rootOpts *RootOptions, runIDs hackathon.RunIDGenerator) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts, RunIDs: runIDs}

	cmd := &cobra.Command{
		Use:   "run [ideas [idea-gen [pkgs [pkg-gen [students]]]]]",
		Short: "Run the pipeline and verify checksums",
		Long: `Run the hackathon pipeline once and print the four global checksums.

Counts come from built-in defaults, an optional --config YAML profile,
positional arguments, and explicit flags, later sources winning. The
command exits 1 if either producer/student checksum pair differs.

Example:
  hackathon run
  hackathon run 4 1 10 1 2 --data-dir ./data
  hackathon run --config run.yaml --db runs.db --format json`,
		Args:          cobra.MaximumNArgs(5),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(opts, cmd, args)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&opts.Database, "db", "", "record the run in this SQLite ledger")

	return cmd
}

func runPipeline(opts *RunOptions, cmd *cobra.Command, args []string) error {
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	}))

	cfg, err := opts.resolve(cmd, args)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("db") {
		cfg.Database = opts.Database
	}

	logger.Debug("loading word lists",
		"products", cfg.Data.Products,
		"customers", cfg.Data.Customers,
		"packages", cfg.Data.Packages)
	words, err := wordlist.LoadSet(cfg.Data)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load word lists",
			hackathon.NewDataSourceError("word lists unavailable", err))
	}

	runIDs := opts.RunIDs
	if runIDs == nil {
		runIDs = hackathon.UUIDv7Generator{}
	}
	h, err := hackathon.New(cfg.Hackathon(), hackathon.Inputs{
		Products:  words.Products,
		Customers: words.Customers,
		Packages:  words.Packages,
	}, hackathon.Options{Logger: logger, RunIDs: runIDs})
	if err != nil {
		return WrapExitError(exitCodeFor(err), "cannot start run", err)
	}

	// Use command's context if available (for testing), otherwise create one
	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("received signal, stopping run", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	report, err := h.Run(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return WrapExitError(ExitFailure, "run interrupted", err)
		}
		return WrapExitError(exitCodeFor(err), "run failed", err)
	}

	if cfg.Database != "" {
		if err := recordRun(ctx, cfg.Database, report, logger); err != nil {
			return err
		}
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), ErrWriter: cmd.ErrOrStderr(), Verbose: opts.Verbose}
	if err := out.Report(report); err != nil {
		return WrapExitError(ExitCommandError, "failed to write report", err)
	}

	if !report.Verified() {
		return NewExitError(ExitFailure, mismatchMessage(report))
	}
	return nil
}

func recordRun(ctx context.Context, path string, report *hackathon.Report, logger *slog.Logger) error {
	st, err := store.Open(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			logger.Error("error closing database", "error", closeErr)
		}
	}()

	if err := st.WriteRun(ctx, report); err != nil {
		return WrapExitError(ExitCommandError, "failed to record run", err)
	}
	logger.Debug("run recorded", "db", path, "run_id", report.RunID)
	return nil
}
