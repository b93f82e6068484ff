package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// amountRe matches an optional dollar sign, grouped thousands with commas,
// and optional two-decimal cents.
var amountRe = regexp.MustCompile(`\$?\s*([0-9]{1,3}(?:,[0-9]{3})*(?:\.\d{2})?|[0-9]+(?:\.\d{2})?)`)

// ParseAmount extracts the first monetary amount in a string as a float.
// Returns false if the string contains no parseable amount.
func ParseAmount(s string) (float64, bool) {
	m := amountRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	num := strings.ReplaceAll(m[1], ",", "")
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
