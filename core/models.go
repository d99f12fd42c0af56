package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or storage sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// NoteType tags where a note's content came from.
type NoteType string

const (
	// NoteTypeText is an uploaded text file without embedded URLs.
	NoteTypeText NoteType = "text"
	// NoteTypeFile is an uploaded image, audio clip or non-.txt document.
	NoteTypeFile NoteType = "file"
	// NoteTypeURL is a URL pasted directly by the user.
	NoteTypeURL NoteType = "url"
	// NoteTypeURLBatch is a URL discovered inside an uploaded text file.
	NoteTypeURLBatch NoteType = "url_batch"
)

// MaxKeywords bounds the keyword list of a note.
const MaxKeywords = 5

// Note is the unit of output of an ingestion run.
// A Note is built once by the enrichment stage and never mutated afterwards.
type Note struct {
	ID        ID        `json:"id"`
	Type      NoteType  `json:"type"`
	Source    string    `json:"source"`    // Original file name or URL
	URL       string    `json:"url"`       // Originating URL, empty for uploads
	Title     string    `json:"title"`     // Page title or file name
	Content   string    `json:"content"`   // Resolved text including folded OCR/ASR output
	Summary   string    `json:"summary"`   // Generated synopsis
	Category  string    `json:"category"`  // One label of the configured category set
	Keywords  []string  `json:"keywords"`  // At most MaxKeywords, order preserved
	Media     []string  `json:"media"`     // Local paths of media downloaded for this note
	CreatedAt time.Time `json:"created_at"`
}

// Label returns the display label of the note: its title, or its source if untitled.
func (n *Note) Label() string {
	if n.Title != "" {
		return n.Title
	}
	return n.Source
}
