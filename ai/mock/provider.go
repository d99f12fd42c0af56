// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package mock

import "github.com/poiesic/instanote/ai"

// MockProvider is a test double for ai.AIProvider.
// It aggregates mock analyzer, image reader and transcriber instances.
type MockProvider struct {
	analyzer    *MockAnalyzer
	reader      *MockImageReader
	transcriber *MockTranscriber
	closed      bool
}

// NewMockProvider creates a new mock provider with default mock services.
//
// Returns ai.AIProvider interface for consistency with production constructors.
// Use GetMockAnalyzer()/GetMockImageReader()/GetMockTranscriber() to access
// concrete types for test assertions.
func NewMockProvider() ai.AIProvider {
	return NewMockProviderWithServices(NewMockAnalyzer(), NewMockImageReader(), NewMockTranscriber())
}

// NewMockProviderWithServices creates a mock provider with custom mock services.
func NewMockProviderWithServices(analyzer *MockAnalyzer, reader *MockImageReader, transcriber *MockTranscriber) *MockProvider {
	return &MockProvider{
		analyzer:    analyzer,
		reader:      reader,
		transcriber: transcriber,
	}
}

// Analyzer returns the mock analyzer.
func (p *MockProvider) Analyzer() ai.Analyzer {
	return p.analyzer
}

// ImageReader returns the mock image reader.
func (p *MockProvider) ImageReader() ai.ImageReader {
	return p.reader
}

// Transcriber returns the mock transcriber.
func (p *MockProvider) Transcriber() ai.Transcriber {
	return p.transcriber
}

// Close records that the provider was closed.
func (p *MockProvider) Close() error {
	p.closed = true
	return nil
}

// Closed reports whether Close was called.
func (p *MockProvider) Closed() bool {
	return p.closed
}

// GetMockAnalyzer returns the underlying mock analyzer for test assertions.
func (p *MockProvider) GetMockAnalyzer() *MockAnalyzer {
	return p.analyzer
}

// GetMockImageReader returns the underlying mock image reader for test assertions.
func (p *MockProvider) GetMockImageReader() *MockImageReader {
	return p.reader
}

// GetMockTranscriber returns the underlying mock transcriber for test assertions.
func (p *MockProvider) GetMockTranscriber() *MockTranscriber {
	return p.transcriber
}
