package extract

import "regexp"

// locate tries each pattern in order against each text view (line-preserving
// first, flattened second) and returns the first usable capture. Every field
// lookup goes through this one routine so the fallback semantics are
// identical everywhere.
//
// A capture that cleans to a placeholder label is discarded and the search
// continues with the next pattern. A capture that cleans to nothing (empty
// or a missing-token) ends the search with an absent result: the form
// answered the label explicitly with "none", so weaker patterns must not
// fill the field in.
func (t *patternTable) locate(patterns []*regexp.Regexp, views ...string) (string, bool) {
	for _, view := range views {
		for _, re := range patterns {
			m := re.FindStringSubmatch(view)
			if m == nil {
				continue
			}
			val, ok := t.cleanValue(m[1])
			if ok && t.looksLikeLabel(val) {
				continue
			}
			return val, ok
		}
	}
	return "", false
}

// locateCombinedDateTime scans for a single label spanning date and time
// together (e.g. "Date/Time of Loss") and returns both sub-values. Either
// may be absent.
func (t *patternTable) locateCombinedDateTime(text string) (date string, dateOK bool, tm string, timeOK bool) {
	if t.combined == nil {
		return "", false, "", false
	}
	m := t.combined.FindStringSubmatch(text)
	if m == nil {
		return "", false, "", false
	}
	date, dateOK = t.cleanValue(m[1])
	tm, timeOK = t.cleanValue(m[2])
	return date, dateOK, tm, timeOK
}
