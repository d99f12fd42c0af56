package storage

import (
	"context"

	"github.com/poiesic/instanote/core"
)

// NoteRepository holds the notes produced by one ingestion run.
// Implementations must be thread-safe and support concurrent access.
type NoteRepository interface {
	// AddNotes appends one or more notes to storage.
	// Notes are kept in the order they were added.
	AddNotes(ctx context.Context, notes ...*core.Note) error

	// ListNotes returns every stored note in insertion order.
	// Returns an empty slice when the repository is empty.
	ListNotes(ctx context.Context) ([]*core.Note, error)

	// CountNotes returns the number of stored notes.
	CountNotes(ctx context.Context) (int, error)

	// Reset removes every stored note. A new run starts from an empty
	// collection.
	Reset(ctx context.Context) error

	// Close releases resources held by the repository.
	Close() error
}
