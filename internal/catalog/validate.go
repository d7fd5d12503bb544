package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/roach88/lichemtest/internal/wrapper"
)

//go:embed schema.cue
var schemaCUE string

// SchemaError reports a catalog that does not satisfy schema.cue.
type SchemaError struct {
	Message string
	Pos     token.Pos
}

func (e *SchemaError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: schema: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Message)
	}
	return "schema: " + e.Message
}

// ValidationError reports a semantic problem with one scenario.
type ValidationError struct {
	Scenario string
	Field    string
	Message  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("scenario %q: %s: %s", e.Scenario, e.Field, e.Message)
}

// checkSchema unifies the decoded catalog with #Catalog.
func checkSchema(c *Catalog) error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return formatCUEError(err)
	}

	def := schema.LookupPath(cue.ParsePath("#Catalog"))
	v := def.Unify(ctx.Encode(c))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return formatCUEError(err)
	}
	return nil
}

// formatCUEError reports every CUE error, one per line. A failed
// disjunction yields a header followed by the error of each branch. The
// position is that of the last error carrying one, which is the most
// specific.
func formatCUEError(err error) error {
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}
	lines := make([]string, 0, len(errs))
	se := &SchemaError{}
	for _, e := range errs {
		lines = append(lines, e.Error())
		if positions := errors.Positions(e); len(positions) > 0 {
			se.Pos = positions[0]
		}
	}
	se.Message = strings.Join(lines, "\n")
	return se
}

// validate checks what the schema cannot express: unique names and a
// reference for every wrapper a scenario can run under.
func validate(c *Catalog) error {
	seen := make(map[string]bool, len(c.Scenarios))
	for _, s := range c.Scenarios {
		if seen[s.Name] {
			return &ValidationError{Scenario: s.Name, Field: "name", Message: "duplicate scenario name"}
		}
		seen[s.Name] = true

		applicable := s.QM
		if len(applicable) == 0 {
			applicable = names(wrapper.QM())
		}
		if s.ReferenceBy == ByMM {
			applicable = s.MM
			if len(applicable) == 0 {
				applicable = names(wrapper.MM())
			}
		}
		for _, name := range applicable {
			if _, ok := s.Reference[name]; !ok {
				return &ValidationError{
					Scenario: s.Name,
					Field:    "reference",
					Message:  fmt.Sprintf("no reference value for %s", name),
				}
			}
		}

		for i, cp := range s.Stage {
			if cp.From == cp.To {
				return &ValidationError{
					Scenario: s.Name,
					Field:    fmt.Sprintf("stage[%d]", i),
					Message:  "source and destination are the same file",
				}
			}
		}
	}
	return nil
}

func names(ws []wrapper.Wrapper) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.Name
	}
	return out
}
