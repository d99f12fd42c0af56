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


// Package ai provides abstractions for the AI services used by instanote.
//
// This package defines the capability interfaces the ingestion pipeline
// depends on. The pipeline only sees these interfaces; concrete vendors
// are chosen when the provider is constructed.
//
// # Capabilities
//
//   - Analyzer: summarizes text, picks one category from a fixed label set
//     and extracts up to five keywords
//   - ImageReader: reads text from images (OCR)
//   - Transcriber: converts speech to text (ASR)
//   - AIProvider: aggregates the three services for one process lifetime
//
// # Implementation Packages
//
//   - ai/openai: Analyzer and ImageReader over OpenAI-compatible chat APIs (langchaingo)
//   - ai/gemini: Transcriber over the Gemini API
//   - ai/mock: Test doubles for unit testing without external dependencies
//
// Public constructors (openai.NewAnalyzer, gemini.NewTranscriber, ...)
// return interface types. Mock constructors return concrete types so tests
// can inject behavior and assert call counts.
//
// # Usage Example
//
//	cfg := ai.NewConfig(ai.WithAPIKey("none"), ai.WithTranscriber(key, "gemini-2.0-flash"))
//	analyzer, err := openai.NewAnalyzer(cfg)
//	reader, err := openai.NewImageReader(cfg)
//	transcriber, err := gemini.NewTranscriber(ctx, cfg)
//	provider, err := ai.NewProvider(analyzer, reader, transcriber)
//	defer provider.Close()
//
//	analysis, err := provider.Analyzer().Analyze(ctx, "The Eiffel Tower is in Paris")
//
// Configuration is always explicit: credentials are passed in Config and a
// missing credential fails at construction, never in the middle of a batch.
package ai
