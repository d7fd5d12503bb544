package report

const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiRed   = "\033[91m"
	ansiGreen = "\033[92m"
)

// paint wraps s in the given style when enabled.
func paint(enabled bool, style, s string) string {
	if !enabled {
		return s
	}
	return style + s + ansiReset
}

func good(enabled bool, s string) string { return paint(enabled, ansiBold+ansiGreen, s) }
func bad(enabled bool, s string) string  { return paint(enabled, ansiBold+ansiRed, s) }
