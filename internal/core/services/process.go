package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/fnol-cli/internal/core/domain"
	"github.com/custodia-labs/fnol-cli/internal/core/ports/driven"
	"github.com/custodia-labs/fnol-cli/internal/core/ports/driving"
	"github.com/custodia-labs/fnol-cli/internal/logger"
)

// Ensure ProcessService implements the interface.
var _ driving.ProcessService = (*ProcessService)(nil)

// ProcessService runs the intake pipeline for one document per call:
// read text, extract and validate fields, route. It holds no per-document
// state, so concurrent calls are independent.
type ProcessService struct {
	reader    driven.DocumentReader
	extractor driven.FieldExtractor
}

// NewProcessService creates a processing service.
func NewProcessService(reader driven.DocumentReader, extractor driven.FieldExtractor) *ProcessService {
	return &ProcessService{reader: reader, extractor: extractor}
}

// Process implements driving.ProcessService.
func (s *ProcessService) Process(ctx context.Context, path string) (*domain.ProcessResult, error) {
	if s.reader == nil || s.extractor == nil {
		return nil, fmt.Errorf("process service not configured: %w", domain.ErrInvalidInput)
	}

	doc, err := s.reader.Read(ctx, path)
	if err != nil {
		return nil, err
	}
	logger.Debug("document %s: %d bytes of text from %s", doc.ID, len(doc.Text), doc.Path)

	fields := s.extractor.Extract(doc.Text)
	decision := RouteClaim(fields)
	logger.Info("document %s routed to %s", doc.ID, decision.Route)

	return &domain.ProcessResult{
		ExtractedFields:  fields,
		MissingFields:    decision.MissingFields,
		RecommendedRoute: decision.Route,
		Reasoning:        decision.Reasoning,
	}, nil
}
