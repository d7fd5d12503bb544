package harness

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/roach88/lichemtest/internal/catalog"
	"github.com/roach88/lichemtest/internal/compare"
	"github.com/roach88/lichemtest/internal/extract"
	"github.com/roach88/lichemtest/internal/logging"
	"github.com/roach88/lichemtest/internal/report"
)

// Driver stages, runs and cleans up one lichem invocation.
// runner.Driver is the production implementation.
type Driver interface {
	Stage(dir string, copies []catalog.Copy) error
	Execute(ctx context.Context, dir string, in catalog.Inputs) ([]byte, error)
	Clean(dir string) error
}

// Recorder persists results as they are produced. Recording is best
// effort: errors are logged and the run continues.
type Recorder interface {
	Record(ctx context.Context, r RunResult) error
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Config wires a Harness.
type Config struct {
	// BaseDir holds the per-pair working directories.
	BaseDir string

	Catalog  *catalog.Catalog
	Driver   Driver
	Reporter *report.Reporter

	// Recorder is optional.
	Recorder Recorder

	// Clock defaults to the system clock.
	Clock Clock

	// Logger defaults to discarding output.
	Logger *slog.Logger
}

// Harness runs catalog scenarios across a plan.
type Harness struct {
	baseDir  string
	catalog  *catalog.Catalog
	driver   Driver
	reporter *report.Reporter
	recorder Recorder
	clock    Clock
	logger   *slog.Logger
}

// New creates a harness from cfg.
func New(cfg Config) *Harness {
	h := &Harness{
		baseDir:  cfg.BaseDir,
		catalog:  cfg.Catalog,
		driver:   cfg.Driver,
		reporter: cfg.Reporter,
		recorder: cfg.Recorder,
		clock:    cfg.Clock,
		logger:   cfg.Logger,
	}
	if h.baseDir == "" {
		h.baseDir = "."
	}
	if h.clock == nil {
		h.clock = systemClock{}
	}
	if h.logger == nil {
		h.logger = logging.Discard()
	}
	return h
}

// Run executes every applicable scenario for every pair in plan and returns
// the results in execution order. Every attempted scenario is reported
// exactly once. The error is non-nil only when ctx is cancelled, in which
// case the results gathered so far are returned with it.
func (h *Harness) Run(ctx context.Context, plan Plan) ([]RunResult, error) {
	var results []RunResult
	for _, pair := range plan.Pairs() {
		dir := filepath.Join(h.baseDir, pair.Dir())
		h.reporter.Header(pair.QM.Name, pair.MM.Name)

		for _, s := range h.catalog.For(pair.QM, pair.MM) {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			r := h.RunScenario(ctx, pair, dir, s)
			h.reporter.Record(r.Scenario, r.Pass, r.RunTime, r.Raw)
			h.record(ctx, r)
			results = append(results, r)
		}

		h.reporter.Footer()
	}
	return results, nil
}

// RunScenario runs one scenario in dir and assigns its verdict.
// It does not report the result.
func (h *Harness) RunScenario(ctx context.Context, pair Pair, dir string, s catalog.Scenario) RunResult {
	log := h.logger.With("pair", pair.String(), "scenario", s.Name)
	start := h.clock.Now()

	if err := h.driver.Stage(dir, s.Stage); err != nil {
		log.Warn("staging failed", "error", err)
	}

	var (
		outcome extract.Outcome
		runTime = extract.NotAvailable
	)
	out, err := h.driver.Execute(ctx, dir, s.Inputs())
	if err != nil {
		log.Warn("lichem did not run", "error", err)
		outcome = extract.NoOutput(err)
	} else {
		outcome = extractValue(s.Extract, out)
		runTime = extract.RunTime(out)
	}

	if err := h.driver.Clean(dir); err != nil {
		log.Warn("cleanup failed", "error", err)
	}

	ref, hasRef := s.ReferenceFor(pair.QM, pair.MM)
	if !hasRef {
		log.Warn("no reference value for pair")
	}
	pass := hasRef && !outcome.Crashed() && compare.Equal(outcome.Check(), ref)

	if outcome.Crashed() {
		log.Info("no value extracted", "status", outcome.Status.String(), "error", outcome.Err)
	}
	log.Debug("scenario finished", "value", outcome.Check(), "reference", ref, "pass", pass)

	return RunResult{
		QM:           pair.QM.Name,
		MM:           pair.MM.Name,
		Scenario:     s.Name,
		Outcome:      outcome,
		Value:        outcome.Check(),
		Reference:    ref,
		HasReference: hasRef,
		Raw:          outcome.Raw,
		RunTime:      runTime,
		Elapsed:      h.clock.Now().Sub(start),
		Pass:         pass,
	}
}

func (h *Harness) record(ctx context.Context, r RunResult) {
	if h.recorder == nil {
		return
	}
	if err := h.recorder.Record(ctx, r); err != nil {
		h.logger.Warn("failed to record result", "scenario", r.Scenario, "error", err)
	}
}

func extractValue(rule catalog.Rule, out []byte) extract.Outcome {
	if rule.Mode == catalog.ModeFrequencies {
		return extract.FrequencyOutcome(out)
	}
	return extract.Scalar(out, rule.Label, rule.Field)
}
