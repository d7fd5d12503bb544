package extract

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

const (
	frequencyMarker = "Frequencies:"
	usageMarker     = "Usage Statistics"
)

// Frequencies returns the values listed between the first "Frequencies:"
// marker and the following "Usage Statistics" marker, both exclusive.
// The list is empty with MarkerAbsent when no such block exists, and empty
// with ParseError when a token in the block is not a number.
func Frequencies(out []byte) ([]float64, Status, error) {
	start := bytes.Index(out, []byte(frequencyMarker))
	if start < 0 {
		return nil, MarkerAbsent, nil
	}
	rest := out[start+len(frequencyMarker):]
	end := bytes.Index(rest, []byte(usageMarker))
	if end < 0 {
		return nil, MarkerAbsent, nil
	}
	block := string(rest[:end])

	var freqs []float64
	for _, tok := range strings.Fields(block) {
		// The banner line opens with a run of '#'.
		if strings.Trim(tok, "#") == "" {
			continue
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, ParseError, fmt.Errorf("parse frequency %q: %w", tok, err)
		}
		freqs = append(freqs, v)
	}
	if len(freqs) == 0 {
		return nil, MarkerAbsent, nil
	}
	return freqs, Found, nil
}

// MinFrequency returns the most negative frequency. A transition state is
// identified by its imaginary mode, which lichem prints as a negative
// frequency, so the minimum is the value checked. ok is false for an empty
// list.
func MinFrequency(freqs []float64) (min float64, ok bool) {
	if len(freqs) == 0 {
		return 0, false
	}
	min = freqs[0]
	for _, f := range freqs[1:] {
		if f < min {
			min = f
		}
	}
	return min, true
}

// FrequencyOutcome extracts the frequency list and reduces it to its
// minimum.
func FrequencyOutcome(out []byte) Outcome {
	freqs, status, err := Frequencies(out)
	if status != Found {
		return crashed(status, err)
	}
	v, _ := MinFrequency(freqs)
	return Outcome{
		Status: Found,
		Value:  v,
		Raw:    "Frequency: " + strconv.FormatFloat(v, 'f', -1, 64),
	}
}
