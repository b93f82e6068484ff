package domain

// Document represents one FNOL document after its raw text has been read.
// It is consumed within a single processing pass; nothing persists across
// documents.
type Document struct {
	// ID is a unique identifier for this processing pass, used in logs.
	ID string

	// Path is the original file location.
	Path string

	// Text is the raw extracted text content before normalisation.
	Text string
}
