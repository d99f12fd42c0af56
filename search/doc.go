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
// Package search filters the notes of a run by keyword and category.
//
// Keyword matching is case-insensitive and succeeds when either:
//   - the keyword occurs as a substring of the title, content, summary or a keyword
//   - every non-stop-word of the keyword occurs as a word somewhere in the note
//
// Substring matching covers scripts written without spaces, such as Chinese,
// while word matching lets multi-word queries match words in any order.
// An empty keyword or category matches every note, and results always keep
// the order of the input.
package search
