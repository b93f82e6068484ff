package extract

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/fnol-cli/internal/core/domain"
)

var (
	digitRe        = regexp.MustCompile(`\d`)
	alphaWordRe    = regexp.MustCompile(`[A-Za-z]+`)
	nameSlotRe     = regexp.MustCompile(`(?i)\b(first|middle|last)\b`)
	nameLabelWords = map[string]struct{}{"insured": {}, "policy": {}, "name": {}}
)

// validate applies per-field acceptance rules on top of the located raw
// values, clearing any field whose value fails. Date and time pass through:
// their capture grammars are restrictive enough on their own.
func (t *patternTable) validate(fields *domain.ExtractionResult) {
	t.check(fields, domain.FieldPolicyNumber, t.validPolicyNumber)
	t.check(fields, domain.FieldPolicyholderName, t.validPolicyholderName)
	t.check(fields, domain.FieldIncidentLocation, t.noiseRule(domain.FieldIncidentLocation))
	t.check(fields, domain.FieldIncidentDescription, t.noiseRule(domain.FieldIncidentDescription))
	t.check(fields, domain.FieldClaimType, t.noiseRule(domain.FieldClaimType))
	t.check(fields, domain.FieldEstimatedDamage, t.validAmount(domain.FieldEstimatedDamage))
	t.check(fields, domain.FieldInitialEstimate, t.validAmount(domain.FieldInitialEstimate))
	t.check(fields, domain.FieldAttachments, t.validAttachments)
}

// check clears the field unless its present value passes the rule.
// Label leakage is rejected for every validated field.
func (t *patternTable) check(fields *domain.ExtractionResult, field domain.FieldName, rule func(string) bool) {
	v, ok := fields.Get(field)
	if !ok {
		return
	}
	if t.looksLikeLabel(v) || !rule(v) {
		fields.Clear(field)
	}
}

func (t *patternTable) validPolicyNumber(v string) bool {
	return digitRe.MatchString(v)
}

func (t *patternTable) validPolicyholderName(v string) bool {
	if nameSlotRe.MatchString(v) {
		return false
	}
	words := alphaWordRe.FindAllString(v, -1)
	if len(words) < 2 {
		return false
	}
	for _, w := range words {
		if _, bad := nameLabelWords[strings.ToLower(w)]; bad {
			return false
		}
	}
	return true
}

// noiseRule rejects values classified as swept-in template noise, using the
// field's configured thresholds.
func (t *patternTable) noiseRule(field domain.FieldName) func(string) bool {
	fp := t.fields[field]
	return func(v string) bool {
		return !t.isNoise(v, fp.maxLen, fp.hits)
	}
}

// validAmount additionally requires a parseable monetary amount.
func (t *patternTable) validAmount(field domain.FieldName) func(string) bool {
	noise := t.noiseRule(field)
	return func(v string) bool {
		if !noise(v) {
			return false
		}
		_, ok := domain.ParseAmount(v)
		return ok
	}
}

func (t *patternTable) validAttachments(v string) bool {
	fp := t.fields[domain.FieldAttachments]
	if fp.reject != nil && fp.reject.MatchString(v) {
		return false
	}
	return !t.isNoise(v, fp.maxLen, fp.hits)
}
