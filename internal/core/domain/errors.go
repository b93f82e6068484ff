package domain

import "errors"

// Domain errors represent input failures that abort a run.
// Field-level ambiguity is never an error; it is represented as an absent
// field value and surfaced through the routing decision.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates a file extension with no reader.
	ErrUnsupportedType = errors.New("unsupported file type: use PDF or TXT")

	// ErrEmptyDocument indicates a document yielded no text content.
	ErrEmptyDocument = errors.New("no text content found in document")
)
