// Package gemini provides a speech-to-text implementation of ai.Transcriber
// backed by the Gemini API.
//
// Audio is sent inline with the request, so clips are bounded by the API's
// inline payload limit.
package gemini

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/poiesic/instanote/ai"
	"google.golang.org/genai"
)

// ErrEmptyAudio is returned when AudioToText is called without audio bytes.
var ErrEmptyAudio = errors.New("audio is empty")

const transcribePrompt = `Transcribe the speech in this audio clip verbatim, in the language spoken.
Output only the transcript without timestamps, speaker labels or commentary. If there is no speech, output nothing.`

// contentGenerator is the subset of *genai.Models used by the transcriber.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Transcriber implements ai.Transcriber with a Gemini model.
type Transcriber struct {
	models contentGenerator
	model  string
	logger *slog.Logger
}

// NewTranscriber creates a Gemini client for the configured API key and model.
//
// Returns ai.Transcriber interface to enforce abstraction.
func NewTranscriber(ctx context.Context, config *ai.Config) (ai.Transcriber, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.TranscriberAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize genai client: %w", err)
	}

	return &Transcriber{
		models: client.Models,
		model:  config.TranscriberModel,
		logger: slog.Default().With("component", "gemini-transcriber"),
	}, nil
}

// AudioToText returns the transcript of audio.
func (t *Transcriber) AudioToText(ctx context.Context, audio []byte) (string, error) {
	if len(audio) == 0 {
		return "", ErrEmptyAudio
	}

	mimeType := audioMIMEType(audio)
	t.logger.Debug("transcribing audio", "mime", mimeType, "bytes", len(audio))

	resp, err := t.models.GenerateContent(ctx, t.model, []*genai.Content{
		{
			Role: genai.RoleUser,
			Parts: []*genai.Part{
				genai.NewPartFromText(transcribePrompt),
				genai.NewPartFromBytes(audio, mimeType),
			},
		},
	}, &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0)),
	})
	if err != nil {
		t.logger.Error("failed to transcribe audio", "model", t.model, "err", err)
		return "", fmt.Errorf("transcription failed (model: %s): %w", t.model, err)
	}

	return strings.TrimSpace(resp.Text()), nil
}

// audioMIMEType sniffs the audio container. Unrecognised data is sent as MP3,
// the most common format on web pages.
func audioMIMEType(audio []byte) string {
	switch {
	case bytes.HasPrefix(audio, []byte("fLaC")):
		return "audio/flac"
	case len(audio) >= 8 && bytes.Equal(audio[4:8], []byte("ftyp")):
		return "audio/mp4"
	case len(audio) >= 2 && audio[0] == 0xFF && audio[1]&0xF6 == 0xF0:
		// ADTS sync word with layer 0
		return "audio/aac"
	}

	detected := http.DetectContentType(audio)
	switch {
	case strings.HasPrefix(detected, "audio/"):
		return detected
	case detected == "application/ogg":
		return "audio/ogg"
	default:
		return "audio/mpeg"
	}
}
