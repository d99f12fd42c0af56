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


package openai

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"slices"
	"strings"

	"github.com/poiesic/instanote/ai"
	"github.com/poiesic/instanote/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// maxInputRunes bounds the text sent to the model in one request.
const maxInputRunes = 16000

// ErrNoChoices is returned when the model answers without any choice.
var ErrNoChoices = errors.New("no choices returned from model")

// Analyzer implements ai.Analyzer using OpenAI-compatible chat APIs.
type Analyzer struct {
	client     llms.Model
	categories []string
	fallback   string
	maxSummary int
	prompt     string
	logger     *slog.Logger
}

// analysis is the wrapper structure for the LLM's JSON response.
type analysis struct {
	Summary  string   `json:"summary"`
	Category string   `json:"category"`
	Keywords []string `json:"keywords"`
}

// newAnalyzer is an internal constructor that returns the concrete type.
func newAnalyzer(config *ai.Config) (*Analyzer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.ClassifierHost),
		openai.WithToken(config.APIKey),
		openai.WithModel(config.ClassifierModel),
	)
	if err != nil {
		return nil, err
	}

	return newAnalyzerWithModel(client, config), nil
}

func newAnalyzerWithModel(client llms.Model, config *ai.Config) *Analyzer {
	return &Analyzer{
		client:     client,
		categories: slices.Clone(config.Categories),
		fallback:   config.FallbackCategory(),
		maxSummary: config.SummaryLength,
		prompt:     buildAnalysisPrompt(config.Categories, config.SummaryLength, config.Language),
		logger:     slog.Default().With("component", "openai-analyzer"),
	}
}

// NewAnalyzer creates a new analyzer using the provided configuration.
//
// Returns ai.Analyzer interface to enforce abstraction.
func NewAnalyzer(config *ai.Config) (ai.Analyzer, error) {
	return newAnalyzer(config)
}

// Analyze summarizes and classifies text and extracts its keywords.
// The category is always one of the configured labels; answers outside the
// label set are mapped to the fallback label.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*ai.Analysis, error) {
	text = truncateRunes(strings.TrimSpace(text), maxInputRunes)

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(a.prompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(text),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var result analysis
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := a.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			a.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			return nil, ErrNoChoices
		}

		responseText := repairJSON(stripCodeFences(response.Choices[0].Content))

		result = analysis{}
		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			a.logger.Warn("error parsing analyzer response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		lastErr = nil
		break
	}

	if lastErr != nil {
		a.logger.Error("failed to parse analyzer response after retries", "err", lastErr)
		return nil, lastErr
	}

	out := &ai.Analysis{
		Summary:  truncateRunes(strings.TrimSpace(result.Summary), a.maxSummary),
		Category: a.matchCategory(result.Category),
		Keywords: cleanKeywords(result.Keywords, core.MaxKeywords),
	}

	a.logger.Debug("analyzed text",
		"length", len(text),
		"category", out.Category,
		"keywords", len(out.Keywords))

	return out, nil
}

// matchCategory maps the model's answer onto the configured label set.
func (a *Analyzer) matchCategory(answer string) string {
	answer = strings.TrimSpace(answer)
	for _, label := range a.categories {
		if strings.EqualFold(label, answer) {
			return label
		}
	}
	if answer != "" {
		a.logger.Debug("category outside label set", "category", answer, "fallback", a.fallback)
	}
	return a.fallback
}
