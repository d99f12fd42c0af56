package badger

import (
	"context"
	"fmt"
	"testing"

	"github.com/poiesic/instanote/core"
	"github.com/poiesic/instanote/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupNoteRepository(t *testing.T) *NoteRepository {
	t.Helper()
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func testNote(source string) *core.Note {
	return &core.Note{
		ID:       core.IDFromContent(source),
		Type:     core.NoteTypeText,
		Source:   source,
		Title:    source,
		Content:  "content of " + source,
		Category: "other",
		Keywords: []string{},
		Media:    []string{},
	}
}

func TestNoteRepository_AddAndList(t *testing.T) {
	repo := setupNoteRepository(t)
	ctx := context.Background()

	notes, err := repo.ListNotes(ctx)
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)

	require.NoError(t, repo.AddNotes(ctx, testNote("a.txt"), testNote("b.txt")))
	require.NoError(t, repo.AddNotes(ctx, testNote("c.txt")))

	notes, err = repo.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, "a.txt", notes[0].Source)
	assert.Equal(t, "b.txt", notes[1].Source)
	assert.Equal(t, "c.txt", notes[2].Source)
}

func TestNoteRepository_PreservesOrderBeyondByteBoundary(t *testing.T) {
	repo := setupNoteRepository(t)
	ctx := context.Background()

	for i := range 300 {
		require.NoError(t, repo.AddNotes(ctx, testNote(fmt.Sprintf("note-%03d", i))))
	}

	notes, err := repo.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 300)
	for i, note := range notes {
		assert.Equal(t, fmt.Sprintf("note-%03d", i), note.Source)
	}
}

func TestNoteRepository_DuplicatesAllowed(t *testing.T) {
	repo := setupNoteRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.AddNotes(ctx, testNote("same.txt"), testNote("same.txt")))

	count, err := repo.CountNotes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNoteRepository_Reset(t *testing.T) {
	repo := setupNoteRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.AddNotes(ctx, testNote("old.txt")))
	require.NoError(t, repo.Reset(ctx))

	count, err := repo.CountNotes(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, repo.AddNotes(ctx, testNote("new.txt")))
	notes, err := repo.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "new.txt", notes[0].Source)
}

func TestNoteRepository_NilNote(t *testing.T) {
	repo := setupNoteRepository(t)
	ctx := context.Background()

	err := repo.AddNotes(ctx, testNote("a.txt"), nil)
	assert.ErrorIs(t, err, storage.ErrNilNote)

	// The failed batch is not committed.
	count, err := repo.CountNotes(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestNoteRepository_Closed(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	repo.Close()
	backend.Close()

	ctx := context.Background()
	assert.ErrorIs(t, repo.AddNotes(ctx, testNote("a.txt")), storage.ErrStorageClosed)
	_, err = repo.ListNotes(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	assert.ErrorIs(t, repo.Reset(ctx), storage.ErrStorageClosed)
}
