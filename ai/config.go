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


package ai

import (
	"errors"
	"slices"
	"strings"
)

// Config holds configuration for AI service providers.
type Config struct {
	// ClassifierHost is the base URL for the summarization/classification service API.
	// Example: "http://localhost:11434/v1" for local OpenAI-compatible server
	ClassifierHost string `yaml:"classifier_host"`

	// VisionHost is the base URL for the OCR (vision model) service API.
	// Example: "http://localhost:11434/v1" for local OpenAI-compatible server
	VisionHost string `yaml:"vision_host"`

	// APIKey is the token sent to the OpenAI-compatible services.
	// Use "none" for local servers that don't require authentication.
	APIKey string `yaml:"api_key"`

	// ClassifierModel is the model identifier used to summarize and classify text.
	// Example: "qwen2.5:3b", "gpt-4o-mini"
	ClassifierModel string `yaml:"classifier_model"`

	// VisionModel is the model identifier used to read text from images.
	// Example: "qwen2.5vl:3b", "gpt-4o-mini"
	VisionModel string `yaml:"vision_model"`

	// TranscriberAPIKey is the Gemini API key used for speech-to-text.
	TranscriberAPIKey string `yaml:"transcriber_api_key"`

	// TranscriberModel is the Gemini model used for speech-to-text.
	// Example: "gemini-2.0-flash"
	TranscriberModel string `yaml:"transcriber_model"`

	// Categories is the fixed label set a note's category is drawn from.
	// The last label is the fallback for answers outside the set.
	Categories []string `yaml:"categories"`

	// SummaryLength is the maximum length of a summary in characters.
	// Default: 100
	SummaryLength int `yaml:"summary_length"`

	// Language is the language summaries are written in.
	// Empty means the language of the source text.
	Language string `yaml:"language"`
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithClassifierHost sets the classifier service host URL.
func WithClassifierHost(host string) ConfigOption {
	return func(c *Config) {
		c.ClassifierHost = host
	}
}

// WithVisionHost sets the vision service host URL.
func WithVisionHost(host string) ConfigOption {
	return func(c *Config) {
		c.VisionHost = host
	}
}

// WithHost sets both classifier and vision hosts to the same URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.ClassifierHost = host
		c.VisionHost = host
	}
}

// WithAPIKey sets the token for the OpenAI-compatible services.
func WithAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.APIKey = key
	}
}

// WithClassifierModel sets the classifier model identifier.
func WithClassifierModel(model string) ConfigOption {
	return func(c *Config) {
		c.ClassifierModel = model
	}
}

// WithVisionModel sets the vision model identifier.
func WithVisionModel(model string) ConfigOption {
	return func(c *Config) {
		c.VisionModel = model
	}
}

// WithTranscriber sets the Gemini API key and model used for speech-to-text.
func WithTranscriber(apiKey, model string) ConfigOption {
	return func(c *Config) {
		c.TranscriberAPIKey = apiKey
		c.TranscriberModel = model
	}
}

// WithCategories replaces the category label set.
func WithCategories(categories ...string) ConfigOption {
	return func(c *Config) {
		c.Categories = slices.Clone(categories)
	}
}

// WithSummaryLength sets the maximum summary length.
func WithSummaryLength(n int) ConfigOption {
	return func(c *Config) {
		c.SummaryLength = n
	}
}

// WithLanguage sets the language summaries are written in.
func WithLanguage(language string) ConfigOption {
	return func(c *Config) {
		c.Language = language
	}
}

// DefaultConfig returns a Config with sensible defaults for local OpenAI-compatible services.
// Credentials are never defaulted; Validate fails until they are provided.
func DefaultConfig() *Config {
	defaultHost := "http://localhost:11434/v1"
	return &Config{
		ClassifierHost:   defaultHost,
		VisionHost:       defaultHost,
		ClassifierModel:  "qwen2.5:3b",
		VisionModel:      "qwen2.5vl:3b",
		TranscriberModel: "gemini-2.0-flash",
		Categories:       slices.Clone(DefaultCategories),
		SummaryLength:    100,
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
//
// Example:
//
//	cfg := NewConfig(
//	    WithHost("http://localhost:11434/v1"),
//	    WithAPIKey("none"),
//	    WithTranscriber(os.Getenv("GEMINI_API_KEY"), "gemini-2.0-flash"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It adds the /v1 suffix to hosts if missing and trims blank category labels.
func (c *Config) Normalize() {
	c.ClassifierHost = normalizeHost(c.ClassifierHost)
	c.VisionHost = normalizeHost(c.VisionHost)

	labels := make([]string, 0, len(c.Categories))
	for _, label := range c.Categories {
		label = strings.TrimSpace(label)
		if label != "" && !slices.Contains(labels, label) {
			labels = append(labels, label)
		}
	}
	c.Categories = labels
}

func normalizeHost(host string) string {
	if host == "" || strings.HasSuffix(host, "/v1") {
		return host
	}
	return strings.TrimSuffix(host, "/") + "/v1"
}

// FallbackCategory returns the label used when a provider answers outside the label set.
func (c *Config) FallbackCategory() string {
	if len(c.Categories) == 0 {
		return ""
	}
	return c.Categories[len(c.Categories)-1]
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.ClassifierHost == "" {
		return errors.New("ai config: ClassifierHost is required")
	}
	if c.VisionHost == "" {
		return errors.New("ai config: VisionHost is required")
	}
	if c.APIKey == "" {
		return errors.New("ai config: APIKey is required")
	}
	if c.ClassifierModel == "" {
		return errors.New("ai config: ClassifierModel is required")
	}
	if c.VisionModel == "" {
		return errors.New("ai config: VisionModel is required")
	}
	if c.TranscriberAPIKey == "" {
		return errors.New("ai config: TranscriberAPIKey is required")
	}
	if c.TranscriberModel == "" {
		return errors.New("ai config: TranscriberModel is required")
	}
	if len(c.Categories) == 0 {
		return errors.New("ai config: Categories must not be empty")
	}
	if c.SummaryLength < 1 {
		return errors.New("ai config: SummaryLength must be positive")
	}
	return nil
}
