package invoice

import (
	"strconv"
	"strings"
)

// ParseNumber converts a raw cell token into a float. It trims surrounding
// whitespace and strips thousands-separator commas before parsing. The second
// return is false when the cleaned token is empty or not a valid number;
// absence of a value is a normal outcome here, not an error.
func ParseNumber(tok string) (float64, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(tok), ",", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
