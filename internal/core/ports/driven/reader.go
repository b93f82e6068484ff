package driven

import (
	"context"

	"github.com/custodia-labs/fnol-cli/internal/core/domain"
)

// DocumentReader resolves a file path into raw document text.
// The core treats this as an opaque text-producing collaborator; it never
// inspects file types itself.
type DocumentReader interface {
	// Read loads the document at path and returns its raw text.
	// Fails with domain.ErrUnsupportedType for unknown extensions and
	// with wrapped I/O or parse errors otherwise.
	Read(ctx context.Context, path string) (*domain.Document, error)

	// Supports reports whether the path's extension has a reader.
	Supports(path string) bool
}
