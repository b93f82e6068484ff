package driving

import (
	"context"

	"github.com/custodia-labs/fnol-cli/internal/core/domain"
)

// ProcessService runs the full intake pipeline for one FNOL document:
// read, extract, validate, route. Each call is an independent stateless
// pass; concurrent calls need no coordination.
type ProcessService interface {
	// Process reads the document at path and returns the routing record.
	// Input errors (missing file, unsupported type, extraction failure)
	// are fatal; no partial result is ever returned alongside an error.
	Process(ctx context.Context, path string) (*domain.ProcessResult, error)
}
