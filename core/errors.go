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

import "errors"

// Domain validation errors
var (
	// ErrInvalidNote indicates a Note failed validation.
	ErrInvalidNote = errors.New("invalid note")

	// ErrEmptyContent indicates the Content field is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrEmptySource indicates the Source field is empty.
	ErrEmptySource = errors.New("source cannot be empty")

	// ErrInvalidNoteType indicates an unknown NoteType value.
	ErrInvalidNoteType = errors.New("invalid note type")

	// ErrEmptyCategory indicates the Category field is empty.
	ErrEmptyCategory = errors.New("category cannot be empty")

	// ErrUnknownCategory indicates the Category is not in the configured label set.
	ErrUnknownCategory = errors.New("category is not a configured label")

	// ErrTooManyKeywords indicates more than MaxKeywords keywords.
	ErrTooManyKeywords = errors.New("too many keywords")
)
