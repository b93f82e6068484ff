package services

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/fnol-cli/internal/core/domain"
)

// fraudIndicatorRe matches whole-word fraud indicators in a description.
var fraudIndicatorRe = regexp.MustCompile(`(?i)\b(fraud|staged|inconsistent)\b`)

// fastTrackThreshold is the estimated damage below which a complete,
// unflagged claim is fast-tracked.
const fastTrackThreshold = 25000

// RouteClaim applies the deterministic intake rules to a validated field
// set. Rules are evaluated in order and the first match wins; the missing
// mandatory field list is computed once and returned on every branch.
func RouteClaim(fields *domain.ExtractionResult) domain.RoutingDecision {
	missing := make([]domain.FieldName, 0)
	for _, f := range domain.MandatoryFields() {
		if _, ok := fields.Get(f); !ok {
			missing = append(missing, f)
		}
	}

	if len(missing) > 0 {
		names := make([]string, len(missing))
		for i, f := range missing {
			names[i] = string(f)
		}
		return domain.RoutingDecision{
			MissingFields: missing,
			Route:         domain.RouteManualReview,
			Reasoning:     "Missing mandatory field(s): " + strings.Join(names, ", "),
		}
	}

	description, _ := fields.Get(domain.FieldIncidentDescription)
	if fraudIndicatorRe.MatchString(description) {
		return domain.RoutingDecision{
			MissingFields: missing,
			Route:         domain.RouteInvestigationFlag,
			Reasoning:     "Incident description contains fraud indicators.",
		}
	}

	claimType, _ := fields.Get(domain.FieldClaimType)
	if strings.Contains(strings.ToLower(claimType), "injury") {
		return domain.RoutingDecision{
			MissingFields: missing,
			Route:         domain.RouteSpecialistQueue,
			Reasoning:     "Claim type is injury.",
		}
	}

	estimated, _ := fields.Get(domain.FieldEstimatedDamage)
	if amount, ok := domain.ParseAmount(estimated); ok && amount < fastTrackThreshold {
		return domain.RoutingDecision{
			MissingFields: missing,
			Route:         domain.RouteFastTrack,
			Reasoning:     "Estimated damage below 25000.",
		}
	}

	return domain.RoutingDecision{
		MissingFields: missing,
		Route:         domain.RouteStandardProcessing,
		Reasoning:     "All mandatory fields present and no special routing rules matched.",
	}
}
