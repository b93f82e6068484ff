package reader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/fnol-cli/internal/core/domain"
	"github.com/custodia-labs/fnol-cli/internal/core/ports/driven"
	"github.com/custodia-labs/fnol-cli/internal/logger"
)

// Ensure Reader implements the interface.
var _ driven.DocumentReader = (*Reader)(nil)

// Reader loads FNOL document text from local files.
type Reader struct{}

// New creates a new file-based document reader.
func New() *Reader {
	return &Reader{}
}

// Supports reports whether the path's extension has a reader.
func (r *Reader) Supports(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf", ".txt":
		return true
	default:
		return false
	}
}

// Read loads the document at path and returns its raw text.
func (r *Reader) Read(_ context.Context, path string) (*domain.Document, error) {
	var (
		text string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		text, err = readTextFile(path)
	case ".pdf":
		text, err = readPDFFile(path)
	default:
		return nil, fmt.Errorf("%s: %w", path, domain.ErrUnsupportedType)
	}
	if err != nil {
		return nil, err
	}

	doc := &domain.Document{
		ID:   uuid.New().String(),
		Path: path,
		Text: text,
	}
	logger.Debug("read %s as document %s (%d bytes)", path, doc.ID, len(text))
	return doc, nil
}

func readTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read text file: %w", err)
	}
	return string(data), nil
}
