package extract

import (
	"strings"

	"github.com/custodia-labs/fnol-cli/internal/core/domain"
	"github.com/custodia-labs/fnol-cli/internal/core/ports/driven"
	"github.com/custodia-labs/fnol-cli/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.FieldExtractor = (*Extractor)(nil)

// Extractor locates, cleans and validates the fixed set of FNOL fields in
// raw document text. It is stateless and safe for concurrent use.
type Extractor struct {
	table *patternTable
}

// NewExtractor returns an extractor backed by the embedded pattern tables.
func NewExtractor() *Extractor {
	return &Extractor{table: table}
}

// Extract runs the full pipeline over one document's raw text. The result
// always carries all ten fields; each is either a validated value or absent.
func (e *Extractor) Extract(text string) *domain.ExtractionResult {
	t := e.table
	nt := Normalize(text)
	fields := domain.NewExtractionResult()

	set := func(field domain.FieldName, v string, ok bool) {
		if ok {
			fields.Set(field, v)
			logger.Debug("located %s: %q", field, v)
		}
	}

	v, ok := t.locate(t.fields[domain.FieldPolicyNumber].capture, nt.Lines, nt.Flat)
	set(domain.FieldPolicyNumber, v, ok)
	v, ok = t.locate(t.fields[domain.FieldPolicyholderName].capture, nt.Lines, nt.Flat)
	set(domain.FieldPolicyholderName, v, ok)
	v, ok = t.locate(t.fields[domain.FieldIncidentDate].capture, nt.Lines, nt.Flat)
	set(domain.FieldIncidentDate, v, ok)
	v, ok = t.locate(t.fields[domain.FieldIncidentTime].capture, nt.Lines, nt.Flat)
	set(domain.FieldIncidentTime, v, ok)

	// The combined date/time label only comes into play when at least one
	// sub-field is still open, and only fills the open ones.
	_, dateOK := fields.Get(domain.FieldIncidentDate)
	_, timeOK := fields.Get(domain.FieldIncidentTime)
	if !dateOK || !timeOK {
		date, dOK, tm, tOK := t.locateCombinedDateTime(nt.Lines)
		if !dateOK {
			set(domain.FieldIncidentDate, date, dOK)
		}
		if !timeOK {
			set(domain.FieldIncidentTime, tm, tOK)
		}
	}

	v, ok = e.extractLocation(nt)
	set(domain.FieldIncidentLocation, v, ok)
	v, ok = t.locate(t.fields[domain.FieldIncidentDescription].block, nt.Lines, nt.Flat)
	set(domain.FieldIncidentDescription, v, ok)
	v, ok = e.extractClaimType(nt)
	set(domain.FieldClaimType, v, ok)
	v, ok = t.locate(t.fields[domain.FieldEstimatedDamage].capture, nt.Lines, nt.Flat)
	set(domain.FieldEstimatedDamage, v, ok)
	v, ok = t.locate(t.fields[domain.FieldInitialEstimate].capture, nt.Lines, nt.Flat)
	set(domain.FieldInitialEstimate, v, ok)
	v, ok = e.extractAttachments(nt)
	set(domain.FieldAttachments, v, ok)

	t.validate(fields)
	return fields
}

// extractLocation assembles the incident location from up to three form
// answers: a street line, a city/state/zip line, and a free-form "describe
// location" block. When none of those slots is filled the location labels
// are retried as a plain block capture.
func (e *Extractor) extractLocation(nt NormalizedText) (string, bool) {
	t := e.table
	fp := t.fields[domain.FieldIncidentLocation]

	street, streetOK := t.locate(fp.line, nt.Lines, nt.Flat)
	city, cityOK := t.locate(fp.city, nt.Lines, nt.Flat)
	desc, descOK := t.locate(fp.block, nt.Lines, nt.Flat)

	if streetOK || cityOK || descOK {
		var parts []string
		for _, p := range []struct {
			v  string
			ok bool
		}{{street, streetOK}, {city, cityOK}, {desc, descOK}} {
			if p.ok {
				parts = append(parts, p.v)
			}
		}
		return strings.Join(parts, ", "), true
	}

	return t.locate(t.blockLabels[domain.FieldIncidentLocation], nt.Lines, nt.Flat)
}

// extractClaimType tries the labeled-line lookup first, then falls back to
// scanning the flattened text for a claim-type label trailed by a known
// claim keyword within a short window.
func (e *Extractor) extractClaimType(nt NormalizedText) (string, bool) {
	t := e.table
	fp := t.fields[domain.FieldClaimType]

	if v, ok := t.locate(fp.line, nt.Lines, nt.Flat); ok {
		return v, true
	}
	if fp.keyword != nil {
		if m := fp.keyword.FindStringSubmatch(nt.Flat); m != nil {
			return t.cleanValue(m[1])
		}
	}
	return "", false
}

// extractAttachments tries the labeled-line lookup, then the same labels as
// a block capture for multi-line attachment lists.
func (e *Extractor) extractAttachments(nt NormalizedText) (string, bool) {
	t := e.table
	fp := t.fields[domain.FieldAttachments]

	if v, ok := t.locate(fp.line, nt.Lines, nt.Flat); ok {
		return v, true
	}
	return t.locate(t.blockLabels[domain.FieldAttachments], nt.Lines, nt.Flat)
}
