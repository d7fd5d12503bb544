package harness

import "github.com/roach88/lichemtest/internal/wrapper"

// Plan lists the wrappers to exercise.
type Plan struct {
	QM []wrapper.Wrapper
	MM []wrapper.Wrapper
}

// ExplicitPlan exercises exactly one QM and one MM wrapper.
func ExplicitPlan(qm, mm wrapper.Wrapper) Plan {
	return Plan{QM: []wrapper.Wrapper{qm}, MM: []wrapper.Wrapper{mm}}
}

// AllPlan keeps the probed wrappers that are present. With forceAll every
// wrapper is kept, so that missing packages show up as failures.
func AllPlan(qm, mm []wrapper.Resolved, forceAll bool) Plan {
	var p Plan
	for _, r := range qm {
		if r.Present() || forceAll {
			p.QM = append(p.QM, r.Wrapper)
		}
	}
	for _, r := range mm {
		if r.Present() || forceAll {
			p.MM = append(p.MM, r.Wrapper)
		}
	}
	return p
}

// Pairs returns the plan's pairs, QM outer and MM inner.
func (p Plan) Pairs() []Pair {
	pairs := make([]Pair, 0, len(p.QM)*len(p.MM))
	for _, qm := range p.QM {
		for _, mm := range p.MM {
			pairs = append(pairs, Pair{QM: qm, MM: mm})
		}
	}
	return pairs
}

// Empty reports whether the plan has no pair to run.
func (p Plan) Empty() bool {
	return len(p.QM) == 0 || len(p.MM) == 0
}
