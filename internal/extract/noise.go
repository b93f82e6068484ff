package extract

import (
	"regexp"
	"strings"
	"unicode"
)

// acordMarker flags standard-form vendor chrome swept into a capture.
var acordMarker = regexp.MustCompile(`(?i)\bACORD\b`)

// upperWordRe finds uppercase words of length >= 2.
var upperWordRe = regexp.MustCompile(`[A-Z]{2,}`)

// looksLikeLabel reports whether a cleaned candidate is template boilerplate
// rather than an answer: either it matches a known unfilled-placeholder
// phrase, or it is almost entirely uppercase with at least three distinct
// uppercase words. The uppercase heuristic catches form labels captured
// because no value followed them on the page.
func (t *patternTable) looksLikeLabel(value string) bool {
	v := strings.TrimSpace(value)
	if v == "" {
		return false
	}

	lower := strings.ToLower(v)
	for _, re := range t.placeholder {
		if re.MatchString(lower) {
			return true
		}
	}

	var letters, upper int
	for _, r := range v {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	if letters == 0 {
		return false
	}
	if float64(upper)/float64(letters) <= 0.95 {
		return false
	}

	distinct := make(map[string]struct{})
	for _, w := range upperWordRe.FindAllString(v, -1) {
		distinct[w] = struct{}{}
	}
	return len(distinct) >= 3
}

// isNoise reports whether a cleaned candidate swept in template content
// instead of a genuine answer: oversized, carrying a vendor marker, or
// matching at least labelHits of the known field labels.
func (t *patternTable) isNoise(value string, maxLen, labelHits int) bool {
	v := strings.TrimSpace(value)
	if v == "" {
		return false
	}
	if len(v) > maxLen {
		return true
	}
	if acordMarker.MatchString(v) {
		return true
	}
	hits := 0
	for _, re := range t.stopLabels {
		if re.MatchString(v) {
			hits++
			if hits >= labelHits {
				return true
			}
		}
	}
	return false
}
