package extract

import (
	"fmt"
	"strconv"
)

const wallTimeLabel = "Total wall time: "

// RunTime returns lichem's own wall time, e.g. "0.0125 hours", read from
// the "Total wall time:" line. It returns NotAvailable when the line is
// missing or malformed.
func RunTime(out []byte) string {
	tokens := matchingTokens(out, wallTimeLabel)
	if len(tokens) < 5 {
		return NotAvailable
	}
	v, err := strconv.ParseFloat(tokens[3], 64)
	if err != nil {
		return NotAvailable
	}
	return fmt.Sprintf("%.4f %s", v, tokens[4])
}

// NotAvailable is the run time shown when none could be read.
const NotAvailable = "N/A"
