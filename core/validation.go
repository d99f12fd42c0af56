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


package core

import (
	"fmt"
	"slices"
	"strings"
)

// ValidateNote validates a Note according to domain rules.
//
// Validation rules:
//   - Content must not be blank
//   - Source must not be empty
//   - Type must be one of the known note types
//   - Category must be non-empty and a member of categories
//   - Keywords must not exceed MaxKeywords
//
// NOT validated:
//   - Summary (a provider may legitimately return an empty synopsis)
//   - Media (only page notes carry media)
func ValidateNote(note *Note, categories []string) error {
	if note == nil {
		return fmt.Errorf("%w: note is nil", ErrInvalidNote)
	}

	if strings.TrimSpace(note.Content) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidNote, ErrEmptyContent)
	}

	if note.Source == "" {
		return fmt.Errorf("%w: %w", ErrInvalidNote, ErrEmptySource)
	}

	if err := ValidateNoteType(note.Type); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidNote, err)
	}

	if err := ValidateCategory(note.Category, categories); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidNote, err)
	}

	if len(note.Keywords) > MaxKeywords {
		return fmt.Errorf("%w: %w: %d", ErrInvalidNote, ErrTooManyKeywords, len(note.Keywords))
	}

	return nil
}

// ValidateNoteType validates that a NoteType has a known value.
func ValidateNoteType(t NoteType) error {
	switch t {
	case NoteTypeText, NoteTypeFile, NoteTypeURL, NoteTypeURLBatch:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidNoteType, t)
}

// ValidateCategory checks that category is a member of the configured label set.
func ValidateCategory(category string, categories []string) error {
	if category == "" {
		return ErrEmptyCategory
	}
	if !slices.Contains(categories, category) {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return nil
}
