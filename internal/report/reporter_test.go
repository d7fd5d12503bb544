package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/lichemtest/internal/wrapper"
)

var start = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func newGolden(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestRecord_Line(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{NameWidth: len("PBE0/AMOEBA energy:"), Start: start})

	line := r.Record("HF energy", true, "0.0008 hours", "Energy: -4136.930398139214")
	assert.Equal(t, " HF energy:           Pass, 0.0008 hours", line)
	assert.Equal(t, line+"\n", buf.String())

	line = r.Record("PBE0/AMOEBA energy", false, "N/A", "Crashed...")
	assert.Equal(t, " PBE0/AMOEBA energy:  Fail, N/A", line)
}

func TestRecord_ShowRaw(t *testing.T) {
	r := New(&bytes.Buffer{}, Options{NameWidth: 10, ShowRaw: true})
	line := r.Record("CCSD energy", false, "N/A", "Crashed...")
	assert.Equal(t, " CCSD energy:  Fail, N/A, Crashed...", line)
}

func TestRecord_Color(t *testing.T) {
	r := New(&bytes.Buffer{}, Options{NameWidth: 10, Color: true})
	assert.Contains(t, r.Record("PM6 energy", true, "N/A", ""), "\033[1m\033[92mPass\033[0m,")
	assert.Contains(t, r.Record("PM6 energy", false, "N/A", ""), "\033[1m\033[91mFail\033[0m,")
}

func TestRecord_WidensColumn(t *testing.T) {
	r := New(&bytes.Buffer{}, Options{NameWidth: 5})

	before := r.Record("PM6", true, "N/A", "")
	wide := r.Record("A much longer scenario", true, "N/A", "")
	after := r.Record("PM6", true, "N/A", "")

	assert.Equal(t, " PM6:   Pass, N/A", before)
	assert.Equal(t, " A much longer scenario:  Pass, N/A", wide)
	assert.Equal(t, " PM6:                     Pass, N/A", after, "later rows use the wider column")
}

func TestRecord_Counts(t *testing.T) {
	r := New(&bytes.Buffer{}, Options{Start: start})
	verdicts := []bool{true, false, true, true, false}
	for _, v := range verdicts {
		r.Record("x", v, "N/A", "")
	}
	s := r.Stats()
	assert.Equal(t, 3, s.Passed)
	assert.Equal(t, 2, s.Failed)
	assert.Equal(t, len(verdicts), s.Total())
	assert.Equal(t, start, s.Start)
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0.00 seconds"},
		{1500 * time.Millisecond, "1.50 seconds"},
		{60 * time.Second, "60.00 seconds"},
		{90 * time.Second, "1.50 minutes"},
		{60 * time.Minute, "60.00 minutes"},
		{150 * time.Minute, "2.50 hours"},
		{24 * time.Hour, "24.00 hours"},
		{36 * time.Hour, "1.50 days"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatElapsed(tt.d), "%v", tt.d)
	}
}

func TestPairReport_Golden(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{NameWidth: len("PBE0/AMOEBA energy:"), ShowRaw: true, Start: start})

	r.Header("PSI4", "TINKER")
	r.Record("HF energy", true, "0.0008 hours", "Energy: -4136.930398139214")
	r.Record("PBE0 energy", false, "N/A", "Crashed...")
	r.Record("TS frequencies", true, "0.0210 hours", "Frequency: -496.79703")
	r.Footer()
	r.Summary(start.Add(90 * time.Second))

	newGolden(t).Assert(t, "pair_report", buf.Bytes())
}

func TestProbes_Golden(t *testing.T) {
	var buf bytes.Buffer
	Banner(&buf)
	Usage(&buf)
	Probes(&buf, Environment{
		Lichem: "/opt/lichem/bin/lichem",
		QM: []wrapper.Resolved{
			{Wrapper: wrapper.PSI4, Path: "/usr/bin/psi4"},
			{Wrapper: wrapper.Gaussian, Path: wrapper.NotAvailable},
			{Wrapper: wrapper.NWChem, Path: wrapper.NotAvailable},
		},
		MM: []wrapper.Resolved{
			{Wrapper: wrapper.TINKER, Path: "/usr/local/tinker/bin/analyze"},
			{Wrapper: wrapper.LAMMPS, Path: wrapper.NotAvailable},
			{Wrapper: wrapper.AMBER, Path: wrapper.NotAvailable},
		},
	}, false)

	newGolden(t).Assert(t, "probes", buf.Bytes())
}

func TestPrintSettings(t *testing.T) {
	t.Run("explicit dry run", func(t *testing.T) {
		var buf bytes.Buffer
		PrintSettings(&buf, Settings{
			Threads: 4,
			DryRun:  true,
			Lichem:  "/opt/lichem/bin/lichem",
			QM:      wrapper.Resolved{Wrapper: wrapper.PSI4, Path: "/usr/bin/psi4"},
			MM:      wrapper.Resolved{Wrapper: wrapper.TINKER, Path: wrapper.NotAvailable},
		})
		assert.Equal(t, "Settings:\n"+
			" Threads: 4\n"+
			" LICHEM binary: /opt/lichem/bin/lichem\n"+
			" QM package: PSI4\n"+
			" Binary: /usr/bin/psi4\n"+
			" MM package: TINKER\n"+
			" Binary: N/A\n"+
			" Mode: Dry run\n\n", buf.String())
	})

	t.Run("all", func(t *testing.T) {
		var buf bytes.Buffer
		PrintSettings(&buf, Settings{Threads: 2, All: true})
		assert.Equal(t, "Settings:\n Threads: 2\n Mode: All tests\n\n", buf.String())
	})

	t.Run("force all", func(t *testing.T) {
		var buf bytes.Buffer
		PrintSettings(&buf, Settings{Threads: 2, All: true, ForceAll: true})
		assert.Contains(t, buf.String(), " Mode: Development\n")
	})
}

func TestErrorf(t *testing.T) {
	var buf bytes.Buffer
	Errorf(&buf, "QM package name '%s' not recognized.", "orca")
	require.Equal(t, "Error: QM package name 'orca' not recognized.\n\n", buf.String())
}
