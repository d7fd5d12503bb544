package report

import (
	"fmt"
	"io"

	"github.com/roach88/lichemtest/internal/wrapper"
)

const rule = "***************************************************"

// Banner prints the title box.
func Banner(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "*                                                 *")
	fmt.Fprintln(w, "*   LICHEM: Layered Interacting CHEmical Models   *")
	fmt.Fprintln(w, "*                                                 *")
	fmt.Fprintln(w, "*        Symbiotic Computational Chemistry        *")
	fmt.Fprintln(w, "*                                                 *")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
}

// Usage prints the command synopsis.
func Usage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, " user:$ ./runtests Ncpus All")
	fmt.Fprintln(w, "  or ")
	fmt.Fprintln(w, " user:$ ./runtests Ncpus QMPackage MMPackage")
	fmt.Fprintln(w, "  or ")
	fmt.Fprintln(w, " user:$ ./runtests Ncpus QMPackage MMPackage dry")
	fmt.Fprintln(w)
}

// Environment is the outcome of probing for lichem and every wrapper.
type Environment struct {
	Lichem string
	QM     []wrapper.Resolved
	MM     []wrapper.Resolved
}

// Probes prints where lichem and each wrapper were found.
func Probes(w io.Writer, env Environment, color bool) {
	fmt.Fprintf(w, "LICHEM binary: %s\n", pathOrNA(env.Lichem, color))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available QM wrappers:")
	for _, r := range env.QM {
		fmt.Fprintf(w, " %s: %s\n", r.Name, pathOrNA(r.Path, color))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available MM wrappers:")
	for _, r := range env.MM {
		fmt.Fprintf(w, " %s: %s\n", r.Name, pathOrNA(r.Path, color))
	}
	fmt.Fprintln(w)
}

func pathOrNA(path string, color bool) string {
	if path == wrapper.NotAvailable {
		return bad(color, path)
	}
	return good(color, path)
}

// Settings describes the run about to start.
type Settings struct {
	Threads  int
	All      bool
	ForceAll bool
	DryRun   bool

	// Explicit mode only.
	Lichem string
	QM     wrapper.Resolved
	MM     wrapper.Resolved
}

// PrintSettings prints the settings block.
func PrintSettings(w io.Writer, s Settings) {
	fmt.Fprintln(w, "Settings:")
	fmt.Fprintf(w, " Threads: %d\n", s.Threads)
	if s.All {
		if s.ForceAll {
			fmt.Fprintln(w, " Mode: Development")
		} else {
			fmt.Fprintln(w, " Mode: All tests")
		}
	} else {
		fmt.Fprintf(w, " LICHEM binary: %s\n", s.Lichem)
		fmt.Fprintf(w, " QM package: %s\n", s.QM.Name)
		fmt.Fprintf(w, " Binary: %s\n", s.QM.Path)
		fmt.Fprintf(w, " MM package: %s\n", s.MM.Name)
		fmt.Fprintf(w, " Binary: %s\n", s.MM.Path)
	}
	if s.DryRun {
		fmt.Fprintln(w, " Mode: Dry run")
	}
	fmt.Fprintln(w)
}

// Running prints the separator shown before the first scenario.
func Running(w io.Writer) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Running LICHEM tests...")
	fmt.Fprintln(w)
}

// Errorf prints a fatal configuration error.
func Errorf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "Error: "+format+"\n\n", args...)
}
