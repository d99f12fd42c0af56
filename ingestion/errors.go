package ingestion

import "errors"

var (
	// ErrResolverRequired is returned when a resolver is not provided.
	ErrResolverRequired = errors.New("resolver required")

	// ErrEnricherRequired is returned when an enricher is not provided.
	ErrEnricherRequired = errors.New("enricher required")

	// ErrNoteRepositoryRequired is returned when a note repository is not provided.
	ErrNoteRepositoryRequired = errors.New("note repository required")

	// ErrEnrichment is returned when a text body cannot be turned into a note.
	ErrEnrichment = errors.New("enrichment failed")

	// ErrNoURLs is reported when URL processing is requested but the pasted
	// text contains no URLs.
	ErrNoURLs = errors.New("no URLs found")

	// ErrPanic wraps a panic recovered while processing an item.
	ErrPanic = errors.New("unexpected panic")
)
