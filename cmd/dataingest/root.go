package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/stackvity/dataingest/internal/cliconfig"
	"github.com/stackvity/dataingest/internal/hooks"
	"github.com/stackvity/dataingest/internal/tui"
	"github.com/stackvity/dataingest/pkg/engine"
	"github.com/stackvity/dataingest/pkg/formatter"
	"github.com/stackvity/dataingest/pkg/progress"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	cfgFile  string
	inputDir string
	noTUI    bool
)

var rootCmd = &cobra.Command{
	Use:   "dataingest -i <inputDir>",
	Short: "Ingests and validates heterogeneous structured files, producing a consolidated report.",
	Long: `dataingest classifies CSV, JSON, LOG, and XML files by extension,
parses and validates each against a format-specific schema, computes
per-type metrics, and assembles a consolidated execution report.

It features:
  - Sequential, parallel, and benchmark execution modes.
  - Bounded concurrency with per-file timeouts and retry-with-backoff.
  - Failure isolation: a single bad file never aborts the run.
  - An interactive terminal progress view.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		opts, err := cliconfig.Load(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}
		if inputDir == "" {
			return fmt.Errorf("input directory is required (-i, --input)")
		}

		interactive := !noTUI && term.IsTerminal(int(os.Stderr.Fd())) && !opts.Verbose
		return run(ctx, inputDir, opts, interactive)
	},
}

// teaProgramAdapter adapts *tea.Program's Send(tea.Msg) to the
// hooks.TUIProgram interface, which takes Send(interface{}) to avoid
// depending on bubbletea.
type teaProgramAdapter struct{ *tea.Program }

func (a teaProgramAdapter) Send(msg interface{}) { a.Program.Send(msg) }

func run(ctx context.Context, dir string, opts engine.Options, interactive bool) error {
	logger := slog.New(opts.Logger).With(slog.String("component", "cli"))

	var program *tea.Program
	if interactive {
		program = tea.NewProgram(tui.New())
		go func() {
			if _, err := program.Run(); err != nil {
				logger.Error("tui exited with error", slog.String("error", err.Error()))
			}
		}()
		opts.ProgressSink = hooks.New(logger, teaProgramAdapter{program})
	} else {
		opts.ProgressSink = hooks.New(logger, nil)
	}

	e := engine.New(opts)
	report, err := e.ProcessDirectory(ctx, dir)
	if program != nil {
		program.Quit()
	}
	if err != nil {
		return fmt.Errorf("processing %q: %w", dir, err)
	}

	f, err := formatter.New()
	if err != nil {
		return fmt.Errorf("initializing report formatter: %w", err)
	}
	path, err := f.GenerateAndSave(report, opts.OutputDir)
	if err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	fmt.Fprintf(os.Stdout, "processed %d files (%d ok, %d partial, %d error) — report written to %s\n",
		report.TotalFiles, report.SuccessCount, report.PartialCount, report.ErrorCount, path)
	return nil
}

var _ progress.Sink = (*hooks.Sink)(nil)

// Execute runs the root command; Cobra prints any error RunE returns and
// sets a non-zero exit code.
func Execute() {
	rootCmd.SetVersionTemplate("{{.Use}} version {{.Version}}\n")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Configuration file path (default: search ./dataingest.yaml)")
	rootCmd.PersistentFlags().StringVarP(&inputDir, "input", "i", "", "Directory to scan for structured files (required)")

	rootCmd.Flags().String("mode", string(engine.DefaultMode), "Execution mode: sequential or parallel")
	rootCmd.Flags().Bool("benchmark", false, "Run sequential then parallel and compare")
	rootCmd.Flags().Int("timeout_ms", int(engine.DefaultTimeout.Milliseconds()), "Per-file deadline in milliseconds")
	rootCmd.Flags().Int("max_workers", engine.DefaultMaxWorkers, "Parallel pool size")
	rootCmd.Flags().Int("max_retries", engine.DefaultMaxRetries, "Retry attempt cap")
	rootCmd.Flags().Int("retry_delay_ms", int(engine.DefaultRetryDelay.Milliseconds()), "Base delay between retries in milliseconds")
	rootCmd.Flags().String("output_dir", engine.DefaultOutputDir, "Directory the report is written to")
	rootCmd.Flags().Bool("show_progress", true, "Show a progress indicator")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose logging output (disables the TUI)")
	rootCmd.Flags().BoolVar(&noTUI, "no-tui", false, "Disable the interactive terminal UI even on a TTY")
}

var verboseFlag bool
