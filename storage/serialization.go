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
package storage

import (
	"fmt"

	"github.com/poiesic/instanote/core"
)

// MarshalNote serializes a Note to bytes.
func MarshalNote(note *core.Note) ([]byte, error) {
	if note == nil {
		return nil, ErrNilNote
	}
	buf := make([]byte, core.NoteMUS.Size(*note))
	core.NoteMUS.Marshal(*note, buf)
	return buf, nil
}

// UnmarshalNote deserializes a Note from bytes.
// CreatedAt comes back in UTC and empty lists as empty slices.
func UnmarshalNote(data []byte) (*core.Note, error) {
	note, _, err := core.NoteMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	note.CreatedAt = note.CreatedAt.UTC()
	if note.Keywords == nil {
		note.Keywords = []string{}
	}
	if note.Media == nil {
		note.Media = []string{}
	}
	return &note, nil
}
