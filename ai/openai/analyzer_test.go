package openai

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/poiesic/instanote/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

// fakeModel implements llms.Model and replays canned responses.
type fakeModel struct {
	responses []string
	err       error
	calls     int
	messages  []llms.MessageContent
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.messages = messages
	if f.err != nil {
		return nil, f.err
	}
	idx := min(f.calls, len(f.responses)-1)
	f.calls++
	if idx < 0 {
		return &llms.ContentResponse{}, nil
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.responses[idx]}},
	}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

func newTestAnalyzer(model llms.Model) *Analyzer {
	return newAnalyzerWithModel(model, ai.DefaultConfig())
}

func TestAnalyzer_Analyze(t *testing.T) {
	model := &fakeModel{responses: []string{
		`{"summary":"Eiffel Tower tickets sell out.","category":"travel","keywords":["eiffel tower","paris"]}`,
	}}
	a := newTestAnalyzer(model)

	result, err := a.Analyze(context.Background(), "The Eiffel Tower is in Paris")
	require.NoError(t, err)

	assert.Equal(t, "Eiffel Tower tickets sell out.", result.Summary)
	assert.Equal(t, "travel", result.Category)
	assert.Equal(t, []string{"eiffel tower", "paris"}, result.Keywords)
	assert.Equal(t, 1, model.calls)

	require.Len(t, model.messages, 2)
	assert.Equal(t, llms.ChatMessageTypeSystem, model.messages[0].Role)
	assert.Equal(t, llms.ChatMessageTypeHuman, model.messages[1].Role)
}

func TestAnalyzer_Analyze_CodeFencesAndMissingQuote(t *testing.T) {
	model := &fakeModel{responses: []string{
		"```json\n{\"summary\": \"ok\", keywords\": [\"a\"], \"category\": \"food\"}\n```",
	}}
	a := newTestAnalyzer(model)

	result, err := a.Analyze(context.Background(), "ramen")
	require.NoError(t, err)

	assert.Equal(t, "food", result.Category)
	assert.Equal(t, []string{"a"}, result.Keywords)
}

func TestAnalyzer_Analyze_CategoryMapping(t *testing.T) {
	tests := []struct {
		name     string
		answer   string
		expected string
	}{
		{"exact label", "technology", "technology"},
		{"case and spacing", "  Technology ", "technology"},
		{"unknown label falls back", "sports", "other"},
		{"empty label falls back", "", "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := &fakeModel{responses: []string{
				`{"summary":"s","category":"` + tt.answer + `","keywords":[]}`,
			}}
			result, err := newTestAnalyzer(model).Analyze(context.Background(), "text")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Category)
			assert.Contains(t, ai.DefaultCategories, result.Category)
		})
	}
}

func TestAnalyzer_Analyze_BoundsOutput(t *testing.T) {
	longSummary := strings.Repeat("摘", 150)
	model := &fakeModel{responses: []string{
		`{"summary":"` + longSummary + `","category":"life","keywords":["a","A"," b ","","c","d","e","f"]}`,
	}}

	result, err := newTestAnalyzer(model).Analyze(context.Background(), "text")
	require.NoError(t, err)

	assert.Equal(t, 100, len([]rune(result.Summary)))
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, result.Keywords)
}

func TestAnalyzer_Analyze_RetriesMalformedJSON(t *testing.T) {
	model := &fakeModel{responses: []string{
		`not json`,
		`{"summary":"ok","category":"life","keywords":["x"]}`,
	}}

	result, err := newTestAnalyzer(model).Analyze(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, "ok", result.Summary)
	assert.Equal(t, 2, model.calls)
}

func TestAnalyzer_Analyze_GivesUpAfterThreeAttempts(t *testing.T) {
	model := &fakeModel{responses: []string{`still not json`}}

	_, err := newTestAnalyzer(model).Analyze(context.Background(), "text")
	require.Error(t, err)
	assert.Equal(t, 3, model.calls)
}

func TestAnalyzer_Analyze_ProviderError(t *testing.T) {
	providerErr := errors.New("quota exceeded")
	model := &fakeModel{err: providerErr}

	result, err := newTestAnalyzer(model).Analyze(context.Background(), "text")
	assert.ErrorIs(t, err, providerErr)
	assert.Nil(t, result)
}

func TestAnalyzer_Analyze_NoChoices(t *testing.T) {
	model := &fakeModel{}

	_, err := newTestAnalyzer(model).Analyze(context.Background(), "text")
	assert.ErrorIs(t, err, ErrNoChoices)
}

func TestNewAnalyzer_InvalidConfig(t *testing.T) {
	_, err := NewAnalyzer(ai.DefaultConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APIKey")
}

func TestBuildAnalysisPrompt(t *testing.T) {
	prompt := buildAnalysisPrompt([]string{"work", "home"}, 80, "Traditional Chinese")

	assert.Contains(t, prompt, "work, home")
	assert.Contains(t, prompt, `use "home"`)
	assert.Contains(t, prompt, "at most 80 characters")
	assert.Contains(t, prompt, "Write it in Traditional Chinese.")

	prompt = buildAnalysisPrompt(ai.DefaultCategories, 100, "")
	assert.Contains(t, prompt, "same language as the text")
}

func TestImageReader_ImageToText(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	model := &fakeModel{responses: []string{"  Invoice #123\n"}}
	r := &ImageReader{client: model, logger: slog.Default()}

	text, err := r.ImageToText(context.Background(), png)
	require.NoError(t, err)
	assert.Equal(t, "Invoice #123", text)

	require.Len(t, model.messages, 1)
	require.Len(t, model.messages[0].Parts, 2)
	part, ok := model.messages[0].Parts[1].(llms.BinaryContent)
	require.True(t, ok)
	assert.Equal(t, "image/png", part.MIMEType)
}

func TestImageReader_RejectsNonImage(t *testing.T) {
	model := &fakeModel{responses: []string{"text"}}
	r := &ImageReader{client: model, logger: slog.Default()}

	_, err := r.ImageToText(context.Background(), []byte("plain text, not an image"))
	assert.ErrorIs(t, err, ErrUnsupportedImage)
	assert.Equal(t, 0, model.calls)
}
