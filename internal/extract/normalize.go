package extract

import (
	"regexp"
	"strings"
)

var (
	horizontalWS = regexp.MustCompile(`[ \t]+`)
	blankLines   = regexp.MustCompile(`\n{2,}`)
	anyWS        = regexp.MustCompile(`\s+`)
)

// NormalizedText holds the two derived search views of one document.
// Both views are derived once per document and never mutated.
type NormalizedText struct {
	// Lines is the line-preserving view: canonical line breaks, runs of
	// horizontal whitespace collapsed, blank lines removed.
	Lines string

	// Flat is the fully flattened view with all whitespace (including
	// line breaks) collapsed to single spaces. Used as a fallback search
	// space when a label and its value are not on one physical line.
	Flat string
}

// Normalize canonicalises raw document text into its two search views.
// Total over any input, including the empty string.
func Normalize(raw string) NormalizedText {
	text := strings.ReplaceAll(raw, "\r", "\n")
	text = horizontalWS.ReplaceAllString(text, " ")
	text = blankLines.ReplaceAllString(text, "\n")
	text = strings.TrimSpace(text)

	return NormalizedText{
		Lines: text,
		Flat:  strings.TrimSpace(anyWS.ReplaceAllString(text, " ")),
	}
}
