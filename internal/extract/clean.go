package extract

import "strings"

// boundaryCutset is stripped from both ends of a captured value.
const boundaryCutset = " :;-\t"

// cleanValue collapses internal whitespace, trims boundary punctuation and
// maps recognised missing-tokens to absence. Returns the cleaned value and
// whether a real value remains.
func (t *patternTable) cleanValue(raw string) (string, bool) {
	v := anyWS.ReplaceAllString(raw, " ")
	v = strings.Trim(v, boundaryCutset)
	if v == "" {
		return "", false
	}
	if _, missing := t.missingTokens[strings.ToLower(v)]; missing {
		return "", false
	}
	return v, true
}
