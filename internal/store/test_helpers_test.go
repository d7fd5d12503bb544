package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/roach88/lichemtest/internal/extract"
	"github.com/roach88/lichemtest/internal/harness"
)

// createTestStore creates a new store in a temporary directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// passResult is a passing PSI4/TINKER result for scenario.
func passResult(scenario string, value float64) harness.RunResult {
	return harness.RunResult{
		QM:           "PSI4",
		MM:           "TINKER",
		Scenario:     scenario,
		Outcome:      extract.Outcome{Status: extract.Found, Value: value},
		Value:        value,
		Reference:    value,
		HasReference: true,
		Raw:          "Energy: -4136.9304",
		RunTime:      "0.0125 hours",
		Elapsed:      1500 * time.Millisecond,
		Pass:         true,
	}
}

// crashResult is a failed result with no extracted value.
func crashResult(scenario string) harness.RunResult {
	return harness.RunResult{
		QM:       "NWChem",
		MM:       "AMBER",
		Scenario: scenario,
		Outcome:  extract.NoOutput(nil),
		Raw:      extract.Crashed,
		RunTime:  extract.NotAvailable,
	}
}
