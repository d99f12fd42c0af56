package ai

import "context"

// Analysis is the enrichment produced for a single text body.
type Analysis struct {
	// Summary is a short synopsis of the text, bounded by Config.SummaryLength.
	Summary string

	// Category is one label of the configured category set.
	Category string

	// Keywords holds at most five distinct keywords, most relevant first.
	Keywords []string
}

// Analyzer summarizes, classifies and extracts keywords from text.
// Implementations must be thread-safe for concurrent use.
type Analyzer interface {
	// Analyze produces the summary, category and keywords for text.
	// Returns an error if the provider fails; it never returns partial results.
	Analyze(ctx context.Context, text string) (*Analysis, error)
}

// ImageReader extracts printed or handwritten text from an image (OCR).
// Implementations must be thread-safe for concurrent use.
type ImageReader interface {
	// ImageToText returns the text visible in the encoded image.
	// Returns an empty string if the image contains no text.
	ImageToText(ctx context.Context, image []byte) (string, error)
}

// Transcriber converts speech in an audio clip to text (ASR).
// Implementations must be thread-safe for concurrent use.
type Transcriber interface {
	// AudioToText returns the transcript of the encoded audio clip.
	AudioToText(ctx context.Context, audio []byte) (string, error)
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
// A provider is constructed once per process and passed to the components that use it.
type AIProvider interface {
	// Analyzer returns the summarization/classification service.
	Analyzer() Analyzer

	// ImageReader returns the OCR service.
	ImageReader() ImageReader

	// Transcriber returns the speech-to-text service.
	Transcriber() Transcriber

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
