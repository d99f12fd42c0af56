package search

import (
	"context"
	"log/slog"

	"github.com/poiesic/instanote/core"
	"github.com/poiesic/instanote/storage"
)

// Searcher runs queries over the notes held in a repository.
type Searcher struct {
	repository storage.NoteRepository
	logger     *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(repository storage.NoteRepository, opts ...Option) (*Searcher, error) {
	if repository == nil {
		return nil, ErrNoteRepositoryRequired
	}

	s := &Searcher{
		repository: repository,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	s.logger = s.logger.With("component", "searcher")
	return s, nil
}

// Search returns the stored notes matching q, in insertion order.
func (s *Searcher) Search(ctx context.Context, q Query) ([]*core.Note, error) {
	notes, err := s.repository.ListNotes(ctx)
	if err != nil {
		return nil, err
	}

	results := Filter(notes, q)
	s.logger.Debug("search complete", "keyword", q.Keyword, "category", q.Category, "total", len(notes), "hits", len(results))
	return results, nil
}

// Categories returns the sorted distinct categories of the stored notes.
func (s *Searcher) Categories(ctx context.Context) ([]string, error) {
	notes, err := s.repository.ListNotes(ctx)
	if err != nil {
		return nil, err
	}
	return Categories(notes), nil
}
