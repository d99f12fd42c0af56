package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/poiesic/instanote/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// ErrUnsupportedImage is returned when the image bytes are not a recognised image format.
var ErrUnsupportedImage = errors.New("unsupported image format")

// ImageReader implements ai.ImageReader by asking an OpenAI-compatible vision model
// to transcribe the text in an image.
type ImageReader struct {
	client llms.Model
	logger *slog.Logger
}

func newImageReader(config *ai.Config) (*ImageReader, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.VisionHost),
		openai.WithToken(config.APIKey),
		openai.WithModel(config.VisionModel),
	)
	if err != nil {
		return nil, err
	}

	return &ImageReader{
		client: client,
		logger: slog.Default().With("component", "openai-ocr"),
	}, nil
}

// NewImageReader creates a new OCR reader using the provided configuration.
//
// Returns ai.ImageReader interface to enforce abstraction.
func NewImageReader(config *ai.Config) (ai.ImageReader, error) {
	return newImageReader(config)
}

// ImageToText returns the text visible in image.
func (r *ImageReader) ImageToText(ctx context.Context, image []byte) (string, error) {
	mimeType := http.DetectContentType(image)
	if !strings.HasPrefix(mimeType, "image/") {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedImage, mimeType)
	}

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(ocrPrompt),
				llms.BinaryPart(mimeType, image),
			},
		},
	}

	r.logger.Debug("reading text from image", "mime", mimeType, "bytes", len(image))

	response, err := r.client.GenerateContent(ctx, content, llms.WithTemperature(0.0))
	if err != nil {
		r.logger.Error("failed to read image", "err", err)
		return "", err
	}
	if len(response.Choices) < 1 {
		return "", ErrNoChoices
	}

	return strings.TrimSpace(stripCodeFences(response.Choices[0].Content)), nil
}
