package domain

// Route is the recommended claims-intake queue for a document.
type Route string

const (
	// RouteManualReview is forced whenever a mandatory field is absent.
	RouteManualReview Route = "Manual Review"

	// RouteInvestigationFlag marks descriptions containing fraud indicators.
	RouteInvestigationFlag Route = "Investigation Flag"

	// RouteSpecialistQueue handles injury claims.
	RouteSpecialistQueue Route = "Specialist Queue"

	// RouteFastTrack handles low-damage claims.
	RouteFastTrack Route = "Fast-track"

	// RouteStandardProcessing is the default when no other rule fires.
	RouteStandardProcessing Route = "Standard Processing"
)

// RoutingDecision is the router's verdict for one document. It is computed
// once per document and never mutated. MissingFields is always non-nil and
// only non-empty when Route is RouteManualReview.
type RoutingDecision struct {
	MissingFields []FieldName
	Route         Route
	Reasoning     string
}

// ProcessResult is the sole externally observable artifact of a successful
// run, serialised as the CLI's JSON output.
type ProcessResult struct {
	ExtractedFields  *ExtractionResult `json:"extractedFields"`
	MissingFields    []FieldName       `json:"missingFields"`
	RecommendedRoute Route             `json:"recommendedRoute"`
	Reasoning        string            `json:"reasoning"`
}
