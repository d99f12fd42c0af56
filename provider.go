package instanote

import (
	"context"

	"github.com/poiesic/instanote/ai"
	"github.com/poiesic/instanote/ai/gemini"
	"github.com/poiesic/instanote/ai/openai"
)

// NewProvider builds the production AI services from cfg: the analyzer and
// OCR reader on an OpenAI-compatible endpoint, speech-to-text on Gemini.
func NewProvider(ctx context.Context, cfg *ai.Config) (ai.AIProvider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	analyzer, err := openai.NewAnalyzer(cfg)
	if err != nil {
		return nil, err
	}

	reader, err := openai.NewImageReader(cfg)
	if err != nil {
		return nil, err
	}

	transcriber, err := gemini.NewTranscriber(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return ai.NewProvider(analyzer, reader, transcriber)
}
