package report

import (
	"fmt"
	"io"
	"time"
)

// Stats is the running tally for one harness invocation.
type Stats struct {
	Passed int
	Failed int
	Start  time.Time
}

// Total is the number of scenarios that received a verdict.
func (s Stats) Total() int {
	return s.Passed + s.Failed
}

// Options configures a Reporter.
type Options struct {
	// Color enables ANSI colouring of verdicts.
	Color bool

	// ShowRaw appends each run's raw value to its line, for updating
	// reference values by inspection.
	ShowRaw bool

	// NameWidth is the widest "name:" label expected. Lines are padded
	// two columns past it.
	NameWidth int

	// Start is when the harness started.
	Start time.Time
}

// Reporter prints result lines and accumulates Stats. It is not safe for
// concurrent use; the harness is single-threaded.
type Reporter struct {
	w       io.Writer
	color   bool
	showRaw bool
	width   int
	stats   Stats
}

// New creates a reporter writing to w.
func New(w io.Writer, opts Options) *Reporter {
	return &Reporter{
		w:       w,
		color:   opts.Color,
		showRaw: opts.ShowRaw,
		width:   opts.NameWidth + 2,
		stats:   Stats{Start: opts.Start},
	}
}

// Stats returns a copy of the current tally.
func (r *Reporter) Stats() Stats {
	return r.stats
}

// Header opens the block for one QM/MM pair.
func (r *Reporter) Header(qm, mm string) {
	fmt.Fprintf(r.w, "%s/%s results:\n", qm, mm)
}

// Footer closes the block for one QM/MM pair.
func (r *Reporter) Footer() {
	fmt.Fprintln(r.w)
}

// Record counts one verdict and prints its line, which is also returned.
// A name wider than the current column widens it for this and every later
// line; earlier lines are not re-aligned.
func (r *Reporter) Record(name string, pass bool, runTime, raw string) string {
	label := name + ":"
	if n := len(label) + 2; n > r.width {
		r.width = n
	}

	verdict := bad(r.color, "Fail")
	if pass {
		verdict = good(r.color, "Pass")
		r.stats.Passed++
	} else {
		r.stats.Failed++
	}

	line := fmt.Sprintf(" %-*s%s, %s", r.width, label, verdict, runTime)
	if r.showRaw {
		line += ", " + raw
	}
	fmt.Fprintln(r.w, line)
	return line
}

// Summary prints the final statistics using end to compute elapsed time.
func (r *Reporter) Summary(end time.Time) {
	fmt.Fprintln(r.w, rule)
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, "Statistics:")
	fmt.Fprintf(r.w, " Tests passed: %d\n", r.stats.Passed)
	fmt.Fprintf(r.w, " Tests failed: %d\n", r.stats.Failed)
	fmt.Fprintf(r.w, " Total run time: %s\n", FormatElapsed(end.Sub(r.stats.Start)))
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, rule)
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, "Done.")
	fmt.Fprintln(r.w)
}

// FormatElapsed renders d with two decimals in seconds, switching to
// minutes, hours and days once the value exceeds 60, 60 and 24.
func FormatElapsed(d time.Duration) string {
	v := d.Seconds()
	units := "seconds"
	if v > 60 {
		v /= 60
		units = "minutes"
		if v > 60 {
			v /= 60
			units = "hours"
			if v > 24 {
				v /= 24
				units = "days"
			}
		}
	}
	return fmt.Sprintf("%.2f %s", v, units)
}
