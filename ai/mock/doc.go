// Package mock provides test double implementations of AI service interfaces.
//
// This package contains mock implementations of ai.Analyzer, ai.ImageReader,
// ai.Transcriber and ai.AIProvider for use in unit tests. The mocks allow tests
// to run without external AI service dependencies and enable controlled,
// deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	provider := mock.NewMockProvider()
//	analysis, err := provider.Analyzer().Analyze(ctx, "test")
//
//	// Custom behavior injection
//	reader := mock.NewMockImageReader().
//	    WithImageToTextFunc(func(ctx context.Context, image []byte) (string, error) {
//	        return "Invoice #123", nil
//	    })
//
//	// Check call counts
//	count := reader.CallCount()
//
// # Default Behavior
//
//   - MockAnalyzer: first line as summary, fallback category, first five distinct words as keywords
//   - MockImageReader / MockTranscriber: echo the input bytes as text
//   - MockProvider: aggregates the three mocks
package mock
