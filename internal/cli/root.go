// Package cli implements the runtests command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/lichemtest/internal/harness"
	"github.com/roach88/lichemtest/internal/logging"
	"github.com/roach88/lichemtest/internal/runner"
	"github.com/roach88/lichemtest/internal/wrapper"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ForceAll     bool
	ShowEnergies bool
	Dir          string
	Binary       string
	Catalog      string
	History      string
	Format       string // "json" | "text"
	NoColor      bool
	LogLevel     string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{FormatText, FormatJSON}

// Deps are the host interactions the commands perform. Tests replace them.
type Deps struct {
	// LookPath locates executables; nil means exec.LookPath.
	LookPath wrapper.LookPathFunc

	// Clock supplies start and end times.
	Clock harness.Clock

	// NewDriver builds the driver that runs lichem.
	NewDriver func(binary string, threads int, logger *slog.Logger) harness.Driver

	// Terminal reports whether w is a terminal, for colour.
	Terminal func(w io.Writer) bool
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// DefaultDeps uses the real host.
func DefaultDeps() Deps {
	return Deps{
		Clock: systemClock{},
		NewDriver: func(binary string, threads int, logger *slog.Logger) harness.Driver {
			return runner.New(binary, threads, logger)
		},
		Terminal: logging.IsTerminal,
	}
}

// NewRootCommand creates the runtests command.
func NewRootCommand() *cobra.Command {
	return newRootCommand(DefaultDeps())
}

func newRootCommand(deps Deps) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "runtests <threads> (all | <qm> <mm> [dry])",
		Short: "LICHEM regression tests",
		Long: `Run LICHEM's regression tests against the installed QM and MM packages.

Each scenario runs lichem on a small system and compares one value it
prints with a stored reference at five decimal places.

Examples:
  runtests 4 all
  runtests 4 psi4 tinker
  runtests 4 gaussian tinker dry
  runtests 4 all --force-all --show-energies
  runtests 4 all --history history.db --format json`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts, deps, args)
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.Format, "format", FormatText, "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "warn", "diagnostic log level (debug|info|warn|error)")

	cmd.Flags().BoolVar(&opts.ForceAll, "force-all", false, "in all mode, run wrappers that were not found")
	cmd.Flags().BoolVar(&opts.ShowEnergies, "show-energies", false, "append each extracted value to its result line")
	cmd.Flags().StringVar(&opts.Dir, "dir", ".", "directory holding the per-pair test directories")
	cmd.Flags().StringVar(&opts.Binary, "binary", "lichem", "lichem executable to probe and run")
	cmd.Flags().StringVar(&opts.Catalog, "catalog", "", "scenario catalog file (default: built in)")
	cmd.Flags().StringVar(&opts.History, "history", "", "record results in this SQLite database")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false, "disable coloured verdicts")

	cmd.AddCommand(NewHistoryCommand(opts))

	return cmd
}

func newLogger(cmd *cobra.Command, opts *RootOptions) *slog.Logger {
	return logging.NewLogger(opts.LogLevel, cmd.ErrOrStderr())
}

// Execute runs the command line in args and returns the process exit
// status, which is always 0: outcomes are reported on stdout.
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, err)
	}
	return 0
}

// Main is Execute on the process's own arguments and streams.
func Main() int {
	return Execute(os.Args[1:], os.Stdout, os.Stderr)
}
