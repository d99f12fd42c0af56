package search

import (
	"testing"

	"github.com/poiesic/instanote/core"
	"github.com/stretchr/testify/assert"
)

func sampleNotes() []*core.Note {
	return []*core.Note{
		{Source: "a.txt", Title: "Ramen diary", Content: "Tonkotsu broth in Fukuoka", Summary: "A ramen trip", Category: "food", Keywords: []string{"ramen", "fukuoka"}},
		{Source: "https://tech.example.com", Title: "Go 1.25 release", Content: "New iterator helpers", Summary: "Release notes", Category: "technology", Keywords: []string{"golang"}},
		{Source: "b.png", Title: "b.png", Content: "台北夜市小吃推薦", Summary: "夜市美食", Category: "food", Keywords: []string{"夜市"}},
		{Source: "c.mp3", Title: "c.mp3", Content: "Flight to Kyoto and the temples", Summary: "Travel plan", Category: "travel", Keywords: []string{}},
	}
}

func sources(notes []*core.Note) []string {
	result := make([]string, len(notes))
	for i, note := range notes {
		result[i] = note.Source
	}
	return result
}

func TestFilterByKeyword(t *testing.T) {
	notes := sampleNotes()

	tests := []struct {
		name    string
		keyword string
		want    []string
	}{
		{"empty matches all", "", []string{"a.txt", "https://tech.example.com", "b.png", "c.mp3"}},
		{"whitespace matches all", "   ", []string{"a.txt", "https://tech.example.com", "b.png", "c.mp3"}},
		{"case insensitive title", "RAMEN", []string{"a.txt"}},
		{"content substring", "iterator", []string{"https://tech.example.com"}},
		{"summary", "release notes", []string{"https://tech.example.com"}},
		{"keyword field", "golang", []string{"https://tech.example.com"}},
		{"cjk substring", "夜市", []string{"b.png"}},
		{"words in any order", "temples kyoto", []string{"c.mp3"}},
		{"stop words ignored", "the temples of kyoto", []string{"c.mp3"}},
		{"no match", "sushi", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sources(FilterByKeyword(notes, tt.keyword)))
		})
	}
}

func TestFilterByCategory(t *testing.T) {
	notes := sampleNotes()

	assert.Equal(t, []string{"a.txt", "b.png"}, sources(FilterByCategory(notes, "food")))
	assert.Len(t, FilterByCategory(notes, AllCategories), 4)
	assert.Empty(t, FilterByCategory(notes, "business"))
}

func TestFilter(t *testing.T) {
	notes := sampleNotes()

	got := Filter(notes, Query{Keyword: "夜市", Category: "food"})
	assert.Equal(t, []string{"b.png"}, sources(got))

	got = Filter(notes, Query{Keyword: "ramen", Category: "technology"})
	assert.Empty(t, got)

	got = Filter(notes, Query{})
	assert.Len(t, got, 4)
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{"food", "technology", "travel"}, Categories(sampleNotes()))
	assert.Equal(t, []string{}, Categories(nil))
}

func TestContainsAllQueryWords(t *testing.T) {
	tests := []struct {
		name     string
		document string
		query    string
		want     bool
	}{
		{"all present", "The quick brown fox", "fox quick", true},
		{"one missing", "The quick brown fox", "fox dog", false},
		{"only stop words", "The quick brown fox", "the of", false},
		{"punctuation trimmed", "Hello, world!", "world hello", true},
		{"hashtag trimmed", "#travel plans", "travel", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, containsAllQueryWords(tt.document, tt.query))
		})
	}
}
