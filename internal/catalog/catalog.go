package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/roach88/lichemtest/internal/compare"
	"github.com/roach88/lichemtest/internal/wrapper"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Extraction modes.
const (
	ModeScalar      = "scalar"
	ModeFrequencies = "frequencies"
)

// Reference keys.
const (
	ByQM = "qm"
	ByMM = "mm"
)

// Catalog is an ordered, immutable set of scenarios.
type Catalog struct {
	Scenarios []Scenario `yaml:"scenarios" json:"scenarios"`
}

// Scenario is one named regression check.
type Scenario struct {
	// Name is shown in the report.
	Name string `yaml:"name" json:"name"`

	// Structure, Region and Config are passed to lichem as -x, -r and -c.
	Structure string `yaml:"structure" json:"structure"`
	Region    string `yaml:"region" json:"region"`
	Config    string `yaml:"config" json:"config"`

	// QM and MM restrict the scenario to the named wrappers.
	// An empty list applies to every wrapper of that kind.
	QM []string `yaml:"qm,omitempty" json:"qm,omitempty"`
	MM []string `yaml:"mm,omitempty" json:"mm,omitempty"`

	// Stage lists files copied into the working directory before the run.
	Stage []Copy `yaml:"stage,omitempty" json:"stage,omitempty"`

	// Extract says how the checked value is read from the output.
	Extract Rule `yaml:"extract" json:"extract"`

	// ReferenceBy is "qm" when the expected value depends on the QM
	// wrapper and "mm" when it depends on the MM wrapper.
	ReferenceBy string `yaml:"reference_by" json:"reference_by"`

	// Reference maps canonical wrapper names to expected values.
	Reference map[string]float64 `yaml:"reference" json:"reference"`
}

// Rule describes how to read a scenario's value.
type Rule struct {
	Mode  string `yaml:"mode" json:"mode"`
	Label string `yaml:"label,omitempty" json:"label,omitempty"`
	Field int    `yaml:"field,omitempty" json:"field,omitempty"`
}

// Copy stages one auxiliary file under a fixed name.
type Copy struct {
	From string `yaml:"from" json:"from"`
	To   string `yaml:"to" json:"to"`
}

// Inputs is the file triple handed to lichem.
type Inputs struct {
	Structure string
	Region    string
	Config    string
}

// Inputs returns the scenario's input files.
func (s Scenario) Inputs() Inputs {
	return Inputs{Structure: s.Structure, Region: s.Region, Config: s.Config}
}

// Applies reports whether the scenario runs for the given pair.
func (s Scenario) Applies(qm, mm wrapper.Wrapper) bool {
	return allows(s.QM, qm.Name) && allows(s.MM, mm.Name)
}

func allows(names []string, name string) bool {
	return len(names) == 0 || slices.Contains(names, name)
}

// ReferenceFor returns the expected value for the pair, rounded to
// compare.Digits places.
func (s Scenario) ReferenceFor(qm, mm wrapper.Wrapper) (float64, bool) {
	key := qm.Name
	if s.ReferenceBy == ByMM {
		key = mm.Name
	}
	v, ok := s.Reference[key]
	if !ok {
		return 0, false
	}
	return compare.Round(v), true
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	c, err := Parse(defaultCatalog)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return c, nil
}

// Load reads and validates a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates catalog YAML. Unknown fields are rejected.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := checkSchema(&c); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	if err := validate(&c); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	for i := range c.Scenarios {
		for k, v := range c.Scenarios[i].Reference {
			c.Scenarios[i].Reference[k] = compare.Round(v)
		}
	}
	return &c, nil
}

// For returns the scenarios that apply to the pair, in declaration order.
func (c *Catalog) For(qm, mm wrapper.Wrapper) []Scenario {
	var out []Scenario
	for _, s := range c.Scenarios {
		if s.Applies(qm, mm) {
			out = append(out, s)
		}
	}
	return out
}

// NameWidth returns the length of the longest scenario label, counting the
// trailing colon the report prints after each name.
func (c *Catalog) NameWidth() int {
	width := 0
	for _, s := range c.Scenarios {
		if n := len(s.Name) + 1; n > width {
			width = n
		}
	}
	return width
}
