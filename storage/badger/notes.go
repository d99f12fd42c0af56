package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/instanote/core"
	"github.com/poiesic/instanote/storage"
)

// NoteRepository implements storage.NoteRepository for BadgerDB.
type NoteRepository struct {
	backend *Backend
	seq     *badger.Sequence
}

var _ storage.NoteRepository = (*NoteRepository)(nil)

// NewNoteRepository creates a new NoteRepository.
func NewNoteRepository(backend *Backend) (*NoteRepository, error) {
	seq, err := backend.GetSequence(noteSeq)
	if err != nil {
		return nil, err
	}

	return &NoteRepository{
		backend: backend,
		seq:     seq,
	}, nil
}

// Close releases the insertion sequence.
func (r *NoteRepository) Close() error {
	return r.seq.Release()
}

// AddNotes appends notes in the given order.
func (r *NoteRepository) AddNotes(ctx context.Context, notes ...*core.Note) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, note := range notes {
			value, err := storage.MarshalNote(note)
			if err != nil {
				return err
			}

			next, err := r.seq.Next()
			if err != nil {
				return err
			}

			if err := tx.Set(makeNoteKey(next), value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// ListNotes returns every note in insertion order.
func (r *NoteRepository) ListNotes(ctx context.Context) ([]*core.Note, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	notes := []*core.Note{}
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(notePrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			var note *core.Note
			err := iter.Item().Value(func(val []byte) error {
				var err error
				note, err = storage.UnmarshalNote(val)
				return err
			})
			if err != nil {
				return err
			}
			notes = append(notes, note)
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}
	return notes, nil
}

// CountNotes returns the number of stored notes.
func (r *NoteRepository) CountNotes(ctx context.Context) (int, error) {
	if r.backend.IsClosed() {
		return 0, storage.ErrStorageClosed
	}

	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(notePrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// Reset removes every stored note.
func (r *NoteRepository) Reset(ctx context.Context) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}
	return r.backend.DeletePrefix(ctx, []byte(notePrefix))
}
