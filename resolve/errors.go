package resolve

import "errors"

var (
	// ErrDecode is returned when an uploaded file is not valid UTF-8 text.
	ErrDecode = errors.New("failed to decode file as UTF-8 text")

	// ErrFetch is returned when a page cannot be retrieved.
	ErrFetch = errors.New("failed to fetch page")

	// ErrExtraction is returned when parsing, OCR or transcription fails.
	ErrExtraction = errors.New("failed to extract text")

	// ErrFetcherRequired is returned when a Resolver is built without a fetcher.
	ErrFetcherRequired = errors.New("fetcher is required")

	// ErrUnknownKind is returned for an item whose kind is not recognized.
	ErrUnknownKind = errors.New("unknown item kind")
)
