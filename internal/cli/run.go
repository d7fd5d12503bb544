package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/lichemtest/internal/catalog"
	"github.com/roach88/lichemtest/internal/harness"
	"github.com/roach88/lichemtest/internal/report"
	"github.com/roach88/lichemtest/internal/store"
	"github.com/roach88/lichemtest/internal/wrapper"
)

// RunReport is the JSON payload of a completed run.
type RunReport struct {
	RunID   string              `json:"run_id,omitempty"`
	Mode    string              `json:"mode"`
	Threads int                 `json:"threads"`
	Results []harness.RunResult `json:"results"`
	Passed  int                 `json:"passed"`
	Failed  int                 `json:"failed"`
	Elapsed string              `json:"elapsed"`
}

// ProbeReport is the JSON payload when only the environment is listed.
type ProbeReport struct {
	Lichem string            `json:"lichem"`
	QM     map[string]string `json:"qm"`
	MM     map[string]string `json:"mm"`
}

// DryRunReport is the JSON payload of a dry run.
type DryRunReport struct {
	Threads int    `json:"threads"`
	Lichem  string `json:"lichem"`
	QM      string `json:"qm"`
	QMPath  string `json:"qm_path"`
	MM      string `json:"mm"`
	MMPath  string `json:"mm_path"`
}

// invocation is the parsed positional argument list.
type invocation struct {
	threads int
	all     bool
	qm      wrapper.Wrapper
	mm      wrapper.Wrapper
	dryRun  bool
}

func runRoot(cmd *cobra.Command, opts *RootOptions, deps Deps, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := newLogger(cmd, opts)
	start := deps.Clock.Now()

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), ErrWriter: cmd.ErrOrStderr()}
	w := out.Human()
	color := !opts.NoColor && deps.Terminal != nil && deps.Terminal(w)
	prober := wrapper.NewProber(deps.LookPath, logger)

	report.Banner(w)

	all := len(args) == 2 && strings.EqualFold(args[1], "all")
	if len(args) < 3 && !all {
		report.Usage(w)
	}
	if len(args) < 3 {
		env := probeEnvironment(prober, opts.Binary)
		report.Probes(w, env, color)
		if !all {
			return out.Success(probeReport(env))
		}
	}

	inv, code, err := parseInvocation(args, all)
	if err != nil {
		return out.Error(code, err.Error())
	}

	lichem := prober.Probe(opts.Binary)
	if lichem == wrapper.NotAvailable {
		return out.Error(ErrCodeNoLichem, "LICHEM binary not found!")
	}

	settings := report.Settings{
		Threads:  inv.threads,
		All:      inv.all,
		ForceAll: opts.ForceAll,
		DryRun:   inv.dryRun,
		Lichem:   lichem,
	}
	var plan harness.Plan
	if inv.all {
		plan = harness.AllPlan(
			prober.ResolveAll(wrapper.QM()),
			prober.ResolveAll(wrapper.MM()),
			opts.ForceAll,
		)
	} else {
		settings.QM = prober.Resolve(inv.qm)
		settings.MM = prober.Resolve(inv.mm)
		plan = harness.ExplicitPlan(inv.qm, inv.mm)
	}
	report.PrintSettings(w, settings)
	if plan.Empty() {
		logger.Warn("no QM/MM pair available, nothing will run")
	}

	if inv.dryRun {
		fmt.Fprintln(w, "Dry run completed.")
		fmt.Fprintln(w)
		return out.Success(DryRunReport{
			Threads: inv.threads,
			Lichem:  lichem,
			QM:      settings.QM.Name,
			QMPath:  settings.QM.Path,
			MM:      settings.MM.Name,
			MMPath:  settings.MM.Path,
		})
	}
	if !inv.all && (!settings.QM.Present() || !settings.MM.Present()) {
		return out.Error(ErrCodeMissingBinaries, "Missing binaries.")
	}

	cat, err := loadCatalog(opts.Catalog)
	if err != nil {
		return out.Error(ErrCodeCatalog, err.Error())
	}

	var (
		history  *store.Store
		recorder *store.Recorder
	)
	if opts.History != "" {
		history, err = store.Open(opts.History)
		if err != nil {
			return out.Error(ErrCodeHistory, fmt.Sprintf("history: %v", err))
		}
		defer history.Close()

		mode := store.ModeExplicit
		if inv.all {
			mode = store.ModeAll
		}
		runID, err := history.BeginRun(ctx, store.RunInfo{StartedAt: start, Mode: mode, Threads: inv.threads})
		if err != nil {
			return out.Error(ErrCodeHistory, fmt.Sprintf("history: %v", err))
		}
		recorder = history.NewRecorder(runID)
	}

	report.Running(w)

	rep := report.New(w, report.Options{
		Color:     color,
		ShowRaw:   opts.ShowEnergies,
		NameWidth: cat.NameWidth(),
		Start:     start,
	})
	cfg := harness.Config{
		BaseDir:  opts.Dir,
		Catalog:  cat,
		Driver:   deps.NewDriver(lichem, inv.threads, logger),
		Reporter: rep,
		Clock:    deps.Clock,
		Logger:   logger,
	}
	if recorder != nil {
		cfg.Recorder = recorder
	}
	results, runErr := harness.New(cfg).Run(ctx, plan)
	if runErr != nil {
		logger.Warn("run interrupted", "error", runErr)
	}

	end := deps.Clock.Now()
	rep.Summary(end)
	stats := rep.Stats()

	runReport := RunReport{
		Mode:    "explicit",
		Threads: inv.threads,
		Results: results,
		Passed:  stats.Passed,
		Failed:  stats.Failed,
		Elapsed: report.FormatElapsed(end.Sub(start)),
	}
	if inv.all {
		runReport.Mode = "all"
	}
	if runReport.Results == nil {
		runReport.Results = []harness.RunResult{}
	}
	if recorder != nil {
		runReport.RunID = recorder.RunID()
		// The run is already reported; a failed update only loses tallies.
		if err := history.FinishRun(ctx, recorder.RunID(), stats.Passed, stats.Failed, end.Sub(start)); err != nil {
			logger.Warn("failed to finish history run", "error", err)
		}
	}
	return out.Success(runReport)
}

// parseInvocation reads "<threads> all" or "<threads> <qm> <mm> [dry]".
// On failure it returns the JSON error code to report.
func parseInvocation(args []string, all bool) (invocation, string, error) {
	threads, err := strconv.Atoi(args[0])
	if err != nil || threads < 1 {
		return invocation{}, ErrCodeBadThreads, fmt.Errorf("thread count must be a positive integer, got '%s'", args[0])
	}
	inv := invocation{threads: threads, all: all}
	if all {
		return inv, "", nil
	}

	if inv.qm, err = wrapper.Lookup(wrapper.KindQM, args[1]); err != nil {
		return invocation{}, ErrCodeUnknownWrapper, lowerName(err)
	}
	if inv.mm, err = wrapper.Lookup(wrapper.KindMM, args[2]); err != nil {
		return invocation{}, ErrCodeUnknownWrapper, lowerName(err)
	}
	inv.dryRun = len(args) > 3 && strings.EqualFold(args[3], "dry")
	return inv, "", nil
}

// lowerName reports an unrecognised wrapper name in lower case, the form
// it was matched in.
func lowerName(err error) error {
	var unknown *wrapper.UnknownWrapperError
	if errors.As(err, &unknown) {
		return &wrapper.UnknownWrapperError{Kind: unknown.Kind, Name: strings.ToLower(unknown.Name)}
	}
	return err
}

func probeEnvironment(p *wrapper.Prober, binary string) report.Environment {
	return report.Environment{
		Lichem: p.Probe(binary),
		QM:     p.ResolveAll(wrapper.QM()),
		MM:     p.ResolveAll(wrapper.MM()),
	}
}

func probeReport(env report.Environment) ProbeReport {
	r := ProbeReport{Lichem: env.Lichem, QM: map[string]string{}, MM: map[string]string{}}
	for _, q := range env.QM {
		r.QM[q.Name] = q.Path
	}
	for _, m := range env.MM {
		r.MM[m.Name] = m.Path
	}
	return r
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}

var _ harness.Recorder = (*store.Recorder)(nil)
