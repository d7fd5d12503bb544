package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/lichemtest/internal/wrapper"
)

func resolved(w wrapper.Wrapper, present bool) wrapper.Resolved {
	path := wrapper.NotAvailable
	if present {
		path = "/usr/bin/" + w.Command
	}
	return wrapper.Resolved{Wrapper: w, Path: path}
}

func TestExplicitPlan(t *testing.T) {
	p := ExplicitPlan(wrapper.Gaussian, wrapper.AMBER)
	pairs := p.Pairs()
	assert.Len(t, pairs, 1)
	assert.Equal(t, "Gau_AMBER", pairs[0].Dir())
	assert.Equal(t, "Gaussian/AMBER", pairs[0].String())
}

func TestAllPlan_SkipsAbsent(t *testing.T) {
	qm := []wrapper.Resolved{
		resolved(wrapper.PSI4, true),
		resolved(wrapper.Gaussian, false),
		resolved(wrapper.NWChem, true),
	}
	mm := []wrapper.Resolved{
		resolved(wrapper.TINKER, true),
		resolved(wrapper.LAMMPS, false),
		resolved(wrapper.AMBER, false),
	}

	p := AllPlan(qm, mm, false)
	assert.Equal(t, []wrapper.Wrapper{wrapper.PSI4, wrapper.NWChem}, p.QM)
	assert.Equal(t, []wrapper.Wrapper{wrapper.TINKER}, p.MM)
	assert.False(t, p.Empty())
}

func TestAllPlan_ForceAllKeepsAbsent(t *testing.T) {
	var qm, mm []wrapper.Resolved
	for _, w := range wrapper.QM() {
		qm = append(qm, resolved(w, false))
	}
	for _, w := range wrapper.MM() {
		mm = append(mm, resolved(w, false))
	}

	assert.True(t, AllPlan(qm, mm, false).Empty())

	p := AllPlan(qm, mm, true)
	assert.Equal(t, wrapper.QM(), p.QM)
	assert.Equal(t, wrapper.MM(), p.MM)
}

func TestPairs_QMOuterMMInner(t *testing.T) {
	p := Plan{QM: wrapper.QM(), MM: []wrapper.Wrapper{wrapper.TINKER, wrapper.AMBER}}

	var dirs []string
	for _, pair := range p.Pairs() {
		dirs = append(dirs, pair.Dir())
	}
	assert.Equal(t, []string{
		"PSI4_TINKER", "PSI4_AMBER",
		"Gau_TINKER", "Gau_AMBER",
		"NWChem_TINKER", "NWChem_AMBER",
	}, dirs)
}
