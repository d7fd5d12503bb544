package extract

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/lichemtest/internal/compare"
)

// Crashed is the diagnostic shown for a run whose value could not be read.
const Crashed = "Crashed..."

// Status classifies the result of an extraction.
type Status int

const (
	// Found means the value was located and parsed.
	Found Status = iota
	// MarkerAbsent means the label or block marker never appeared.
	MarkerAbsent
	// ParseError means the marker appeared but the value was malformed.
	ParseError
)

func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case MarkerAbsent:
		return "marker_absent"
	case ParseError:
		return "parse_error"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Outcome is the result of reading one value from captured output.
type Outcome struct {
	Status Status

	// Value is the value as printed, before rounding. Zero unless Found.
	Value float64

	// Raw is the diagnostic shown with --show-energies.
	Raw string

	// Err describes a ParseError.
	Err error
}

// Crashed reports whether the outcome carries no usable value.
func (o Outcome) Crashed() bool {
	return o.Status != Found
}

// Check returns the value to compare against the reference: the value
// rounded to compare.Digits places, or 0.0 for a crash.
func (o Outcome) Check() float64 {
	if o.Crashed() {
		return 0.0
	}
	return compare.Round(o.Value)
}

func crashed(status Status, err error) Outcome {
	return Outcome{Status: status, Raw: Crashed, Err: err}
}

// Scalar reads the field-th whitespace-separated token from the lines of out
// that contain label followed by a space. Tokens of successive matching
// lines are joined in order, so field counts across them.
func Scalar(out []byte, label string, field int) Outcome {
	needle := label + " "

	tokens := matchingTokens(out, needle)
	if len(tokens) == 0 {
		return crashed(MarkerAbsent, nil)
	}
	if field < 0 || field >= len(tokens) {
		return crashed(ParseError, fmt.Errorf("field %d out of range for %q (%d tokens)", field, label, len(tokens)))
	}

	v, err := strconv.ParseFloat(tokens[field], 64)
	if err != nil {
		return crashed(ParseError, fmt.Errorf("parse %q field %d: %w", label, field, err))
	}
	return Outcome{
		Status: Found,
		Value:  v,
		Raw:    "Energy: " + strconv.FormatFloat(v, 'f', -1, 64),
	}
}

// matchingTokens returns the whitespace-separated tokens of every line of
// out that contains needle, in order. Lines may be of any length.
func matchingTokens(out []byte, needle string) []string {
	var tokens []string
	for line := range bytes.Lines(out) {
		if bytes.Contains(line, []byte(needle)) {
			tokens = append(tokens, strings.Fields(string(line))...)
		}
	}
	return tokens
}

// RecoverEnergy is the two-value form of Scalar: the rounded value and its
// diagnostic, or (0.0, "Crashed...") when nothing usable was found.
func RecoverEnergy(out []byte, label string, field int) (float64, string) {
	o := Scalar(out, label, field)
	return o.Check(), o.Raw
}

// NoOutput is the outcome for a run that produced nothing to read, for
// example because lichem could not be started.
func NoOutput(err error) Outcome {
	return crashed(MarkerAbsent, err)
}
