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


// Package openai provides AI service implementations using OpenAI-compatible APIs.
//
// This package implements ai.Analyzer and ai.ImageReader using the langchaingo
// library to communicate with OpenAI or OpenAI-compatible services (such as
// Ollama, LocalAI, or vLLM).
//
// # Usage
//
//	config := ai.NewConfig(
//	    ai.WithHost("http://localhost:11434"),  // /v1 added automatically
//	    ai.WithAPIKey("none"),
//	    ai.WithTranscriber(geminiKey, "gemini-2.0-flash"),
//	)
//
//	analyzer, err := openai.NewAnalyzer(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	analysis, err := analyzer.Analyze(ctx, "The Eiffel Tower is in Paris")
//
//	reader, err := openai.NewImageReader(config)
//	text, err := reader.ImageToText(ctx, pngBytes)
package openai
