package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantSame bool
	}{
		{
			name:     "same content produces same ID",
			content:  "https://example.com/page",
			wantSame: true,
		},
		{
			name:     "empty string",
			content:  "",
			wantSame: true,
		},
		{
			name:     "multibyte content",
			content:  "社群筆記牆：今天的美食推薦",
			wantSame: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if tt.wantSame && id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("https://a.test/x")
	id2 := IDFromContent("https://b.test/y")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestNote_Label(t *testing.T) {
	tests := []struct {
		name string
		note Note
		want string
	}{
		{
			name: "title wins",
			note: Note{Title: "Page title", Source: "https://example.com"},
			want: "Page title",
		},
		{
			name: "falls back to source",
			note: Note{Source: "https://example.com"},
			want: "https://example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.note.Label(); got != tt.want {
				t.Errorf("Note.Label() = %v, want %v", got, tt.want)
			}
		})
	}
}
