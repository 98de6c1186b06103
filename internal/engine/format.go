package engine

import (
	"math"
	"strconv"
)

// parseDisplay converts display text to a value. Anything that fails to
// parse, including the Error text, reads as 0; a parse failure never
// propagates.
func parseDisplay(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatValue renders a computed value using the display rules: plain
// decimal when it fits in MaxDisplayLen characters, otherwise exponential
// with 10 significant digits, then 6 as a last resort. Non-finite values
// render as the Error text without entering the sticky error state.
func FormatValue(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrorDisplay
	}
	if s := strconv.FormatFloat(v, 'f', -1, 64); len(s) <= MaxDisplayLen {
		return s
	}
	if s := strconv.FormatFloat(v, 'e', 9, 64); len(s) <= MaxDisplayLen {
		return s
	}
	return strconv.FormatFloat(v, 'e', 5, 64)
}
