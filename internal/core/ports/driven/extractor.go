package driven

import (
	"github.com/custodia-labs/fnol-cli/internal/core/domain"
)

// FieldExtractor locates and validates claim fields in raw document text.
// Extraction is a pure function of the text: fields that cannot be located
// with confidence come back absent rather than guessed.
type FieldExtractor interface {
	// Extract returns a result with all ten fields present as keys,
	// each holding a validated value or marked absent.
	Extract(text string) *domain.ExtractionResult
}
