package mock

import (
	"context"
	"strings"
	"sync"

	"github.com/poiesic/instanote/ai"
)

// MockAnalyzer is a test double for ai.Analyzer.
// It allows custom behavior injection via function fields.
type MockAnalyzer struct {
	// AnalyzeFunc is called by Analyze if set.
	// If nil, uses default deterministic behavior.
	AnalyzeFunc func(ctx context.Context, text string) (*ai.Analysis, error)

	mu    sync.Mutex
	texts []string
}

// NewMockAnalyzer creates a mock analyzer with default behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockAnalyzer() *MockAnalyzer {
	return &MockAnalyzer{}
}

// WithAnalyzeFunc sets AnalyzeFunc and returns the analyzer for chaining.
func (m *MockAnalyzer) WithAnalyzeFunc(fn func(ctx context.Context, text string) (*ai.Analysis, error)) *MockAnalyzer {
	m.AnalyzeFunc = fn
	return m
}

// Analyze returns a deterministic analysis.
// Default behavior: the first line becomes the summary, the category is the
// last default label and the first five distinct words become keywords.
func (m *MockAnalyzer) Analyze(ctx context.Context, text string) (*ai.Analysis, error) {
	m.mu.Lock()
	m.texts = append(m.texts, text)
	m.mu.Unlock()

	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(ctx, text)
	}

	summary, _, _ := strings.Cut(strings.TrimSpace(text), "\n")

	keywords := make([]string, 0, 5)
	seen := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,!?;:\"'()[]{}—–-#")
		if word == "" || seen[word] {
			continue
		}
		seen[word] = true
		keywords = append(keywords, word)
		if len(keywords) == 5 {
			break
		}
	}

	return &ai.Analysis{
		Summary:  summary,
		Category: ai.DefaultCategories[len(ai.DefaultCategories)-1],
		Keywords: keywords,
	}, nil
}

// CallCount returns the number of times Analyze was called.
func (m *MockAnalyzer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.texts)
}

// Texts returns the texts passed to Analyze, in call order.
func (m *MockAnalyzer) Texts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.texts...)
}

// Reset clears recorded calls and custom functions.
func (m *MockAnalyzer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.texts = nil
	m.AnalyzeFunc = nil
}
