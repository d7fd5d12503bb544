package harness

import (
	"time"

	"github.com/roach88/lichemtest/internal/extract"
	"github.com/roach88/lichemtest/internal/wrapper"
)

// Pair is one QM/MM combination.
type Pair struct {
	QM wrapper.Wrapper
	MM wrapper.Wrapper
}

// Dir is the pair's working-directory name.
func (p Pair) Dir() string {
	return wrapper.Dir(p.QM, p.MM)
}

func (p Pair) String() string {
	return p.QM.Name + "/" + p.MM.Name
}

// RunResult is the outcome of one scenario under one pair.
type RunResult struct {
	QM       string `json:"qm"`
	MM       string `json:"mm"`
	Scenario string `json:"scenario"`

	// Outcome is what was extracted from lichem's output.
	Outcome extract.Outcome `json:"-"`

	// Value is the checked value, 0 for a crash.
	Value float64 `json:"value"`

	// Reference is the expected value; HasReference is false when the
	// catalog has none for this pair.
	Reference    float64 `json:"reference"`
	HasReference bool    `json:"-"`

	// Raw is the diagnostic shown with --show-energies.
	Raw string `json:"raw"`

	// RunTime is lichem's own wall time, or "N/A".
	RunTime string `json:"run_time"`

	// Elapsed is the harness-measured duration of the scenario.
	Elapsed time.Duration `json:"elapsed_ns"`

	Pass bool `json:"pass"`
}

// Status is the extraction status as a string.
func (r RunResult) Status() string {
	return r.Outcome.Status.String()
}
