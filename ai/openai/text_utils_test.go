package openai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepairJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "valid json untouched",
			input: `{"summary": "a, b", "category": "life"}`,
			want:  `{"summary": "a, b", "category": "life"}`,
		},
		{
			name:  "missing quote after brace",
			input: `{summary": "x"}`,
			want:  `{"summary": "x"}`,
		},
		{
			name:  "missing quote after comma",
			input: "{\"summary\": \"x\",\n  category\": \"food\"}",
			want:  "{\"summary\": \"x\",\n  \"category\": \"food\"}",
		},
		{
			name:  "numbers after comma untouched",
			input: `[1, 2, 3]`,
			want:  `[1, 2, 3]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repairJSON(tt.input))
		})
	}
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `plain`, stripCodeFences("  plain  "))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "今天", truncateRunes("今天天氣", 2))
	assert.Equal(t, "short", truncateRunes("short", 10))
	assert.Equal(t, "unbounded", truncateRunes("unbounded", 0))
}

func TestCleanKeywords(t *testing.T) {
	got := cleanKeywords([]string{" Go ", "go", "#rust", "", "zig"}, 5)
	assert.Equal(t, []string{"Go", "rust", "zig"}, got)

	got = cleanKeywords([]string{"a", "b", "c"}, 2)
	assert.Equal(t, []string{"a", "b"}, got)

	assert.Empty(t, cleanKeywords(nil, 5))
}
