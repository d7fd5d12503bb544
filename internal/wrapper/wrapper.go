package wrapper

import (
	"fmt"

	"golang.org/x/text/cases"
)

// Kind distinguishes QM wrappers from MM wrappers.
type Kind string

const (
	KindQM Kind = "QM"
	KindMM Kind = "MM"
)

// Wrapper is a static description of one external package.
type Wrapper struct {
	// Kind is QM or MM.
	Kind Kind

	// Name is the canonical name used in reports, reference tables and
	// working-directory names (e.g. "PSI4", "TINKER").
	Name string

	// Command is the executable probed to detect the package.
	Command string

	// Aliases are the lower-case names accepted on the command line.
	Aliases []string

	// Prefix is prepended to the MM name to form the working directory
	// of a pair. Only QM wrappers carry one.
	Prefix string

	// Scratch lists glob patterns of files the package leaves behind in
	// the working directory.
	Scratch []string
}

func (w Wrapper) String() string {
	return w.Name
}

// Known QM wrappers, in the order they are exercised.
var (
	PSI4 = Wrapper{
		Kind:    KindQM,
		Name:    "PSI4",
		Command: "psi4",
		Aliases: []string{"psi4", "psi"},
		Prefix:  "PSI4_",
		Scratch: []string{"timer.*", "psi.*", "*.32", "*.180"},
	}
	Gaussian = Wrapper{
		Kind:    KindQM,
		Name:    "Gaussian",
		Command: "g09",
		Aliases: []string{"gaussian", "g09"},
		Prefix:  "Gau_",
		Scratch: []string{"*.chk"},
	}
	NWChem = Wrapper{
		Kind:    KindQM,
		Name:    "NWChem",
		Command: "nwchem",
		Aliases: []string{"nwchem"},
		Prefix:  "NWChem_",
		Scratch: []string{"*.movecs"},
	}
)

// Known MM wrappers, in the order they are exercised.
var (
	TINKER = Wrapper{
		Kind:    KindMM,
		Name:    "TINKER",
		Command: "analyze",
		Aliases: []string{"tinker"},
		Scratch: []string{"tinker.key"},
	}
	LAMMPS = Wrapper{
		Kind:    KindMM,
		Name:    "LAMMPS",
		Command: "lammps",
		Aliases: []string{"lammps"},
	}
	AMBER = Wrapper{
		Kind:    KindMM,
		Name:    "AMBER",
		Command: "pmemd",
		Aliases: []string{"amber"},
	}
)

// QM returns the known QM wrappers in declaration order.
func QM() []Wrapper {
	return []Wrapper{PSI4, Gaussian, NWChem}
}

// MM returns the known MM wrappers in declaration order.
func MM() []Wrapper {
	return []Wrapper{TINKER, LAMMPS, AMBER}
}

// All returns every known wrapper, QM first.
func All() []Wrapper {
	return append(QM(), MM()...)
}

// UnknownWrapperError is returned by Lookup for a name that matches no alias.
type UnknownWrapperError struct {
	Kind Kind
	Name string
}

func (e *UnknownWrapperError) Error() string {
	return fmt.Sprintf("%s package name '%s' not recognized.", e.Kind, e.Name)
}

// Lookup resolves a command-line name to a wrapper of the given kind.
// Matching uses Unicode case folding, so "PSI", "Psi4" and "psi4" are equal.
func Lookup(kind Kind, name string) (Wrapper, error) {
	folder := cases.Fold()
	key := folder.String(name)

	candidates := MM()
	if kind == KindQM {
		candidates = QM()
	}
	for _, w := range candidates {
		for _, alias := range w.Aliases {
			if folder.String(alias) == key {
				return w, nil
			}
		}
	}
	return Wrapper{}, &UnknownWrapperError{Kind: kind, Name: name}
}

// Dir returns the working-directory name for a QM/MM pair, e.g.
// "PSI4_TINKER". A zero QM wrapper yields the bare MM name.
func Dir(qm, mm Wrapper) string {
	return qm.Prefix + mm.Name
}
