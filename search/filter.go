package search

import (
	"slices"
	"strings"

	"github.com/poiesic/instanote/core"
)

// AllCategories is the category filter value that matches every note.
const AllCategories = ""

// Query selects notes by keyword and category. Zero values match everything.
type Query struct {
	Keyword  string
	Category string
}

// Filter applies the keyword filter and then the category filter.
func Filter(notes []*core.Note, q Query) []*core.Note {
	return FilterByCategory(FilterByKeyword(notes, q.Keyword), q.Category)
}

// FilterByKeyword returns the notes matching keyword, in input order.
func FilterByKeyword(notes []*core.Note, keyword string) []*core.Note {
	keyword = strings.TrimSpace(keyword)
	result := make([]*core.Note, 0, len(notes))
	for _, note := range notes {
		if keyword == "" || matchesKeyword(note, keyword) {
			result = append(result, note)
		}
	}
	return result
}

// FilterByCategory returns the notes in category, in input order.
// AllCategories selects every note.
func FilterByCategory(notes []*core.Note, category string) []*core.Note {
	result := make([]*core.Note, 0, len(notes))
	for _, note := range notes {
		if category == AllCategories || note.Category == category {
			result = append(result, note)
		}
	}
	return result
}

// Categories returns the distinct categories of notes, sorted.
func Categories(notes []*core.Note) []string {
	categories := make([]string, 0)
	for _, note := range notes {
		if note.Category != "" && !slices.Contains(categories, note.Category) {
			categories = append(categories, note.Category)
		}
	}
	slices.Sort(categories)
	return categories
}

func matchesKeyword(note *core.Note, keyword string) bool {
	fields := []string{note.Title, note.Content, note.Summary}
	fields = append(fields, note.Keywords...)

	for _, field := range fields {
		if containsFold(field, keyword) {
			return true
		}
	}
	return containsAllQueryWords(strings.Join(fields, "\n"), keyword)
}
