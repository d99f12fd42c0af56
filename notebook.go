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
package instanote

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"

	"github.com/poiesic/instanote/ai"
	"github.com/poiesic/instanote/config"
	"github.com/poiesic/instanote/core"
	"github.com/poiesic/instanote/fetch"
	"github.com/poiesic/instanote/ingestion"
	"github.com/poiesic/instanote/resolve"
	"github.com/poiesic/instanote/search"
	"github.com/poiesic/instanote/storage/badger"
)

// Notebook holds the notes of one ingestion run and the services that
// produce and query them.
type Notebook struct {
	backend    *badger.Backend
	repo       *badger.NoteRepository
	provider   ai.AIProvider
	pipeline   *ingestion.Pipeline
	searcher   *search.Searcher
	categories []string
	logger     *slog.Logger
}

// NotebookOption configures a Notebook.
type NotebookOption func(*notebookOptions)

type notebookOptions struct {
	config   *config.Config
	provider ai.AIProvider
	fetcher  resolve.Fetcher
	progress io.Writer
	logger   *slog.Logger
}

// WithConfig sets the configuration. Default is config.Default().
func WithConfig(cfg *config.Config) NotebookOption {
	return func(o *notebookOptions) {
		o.config = cfg
	}
}

// WithProvider supplies the AI services instead of building them from the
// configuration. The notebook takes ownership and closes the provider.
func WithProvider(provider ai.AIProvider) NotebookOption {
	return func(o *notebookOptions) {
		o.provider = provider
	}
}

// WithFetcher replaces the HTTP fetcher.
func WithFetcher(fetcher resolve.Fetcher) NotebookOption {
	return func(o *notebookOptions) {
		o.fetcher = fetcher
	}
}

// WithProgress reports per-item ingestion progress to w.
func WithProgress(w io.Writer) NotebookOption {
	return func(o *notebookOptions) {
		o.progress = w
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) NotebookOption {
	return func(o *notebookOptions) {
		o.logger = logger
	}
}

// NewNotebook creates a Notebook backed by an in-memory note store.
func NewNotebook(ctx context.Context, opts ...NotebookOption) (*Notebook, error) {
	options := &notebookOptions{
		config: config.Default(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	cfg := options.config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		var err error
		provider, err = NewProvider(ctx, &cfg.AI)
		if err != nil {
			return nil, err
		}
	}

	fetcher := options.fetcher
	if fetcher == nil {
		fetcher = fetch.New(
			fetch.WithTimeout(cfg.Fetch.Timeout()),
			fetch.WithUserAgent(cfg.Fetch.UserAgent),
			fetch.WithLogger(options.logger),
		)
	}

	nb, err := newNotebook(provider, fetcher, cfg, options)
	if err != nil {
		provider.Close()
		return nil, err
	}
	return nb, nil
}

func newNotebook(provider ai.AIProvider, fetcher resolve.Fetcher, cfg *config.Config, options *notebookOptions) (*Notebook, error) {
	logger := options.logger

	resolver, err := resolve.NewResolver(fetcher, provider.ImageReader(), provider.Transcriber(),
		resolve.WithMediaDir(cfg.Media.Dir),
		resolve.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	enricher, err := ingestion.NewEnricher(provider.Analyzer(), cfg.AI.Categories, logger)
	if err != nil {
		return nil, err
	}

	repo, backend, err := badger.NewMemoryRepository()
	if err != nil {
		return nil, err
	}

	pipelineOpts := []ingestion.Option{ingestion.WithLogger(logger)}
	if options.progress != nil {
		pipelineOpts = append(pipelineOpts, ingestion.WithProgress(options.progress))
	}
	pipeline, err := ingestion.NewPipeline(resolver, enricher, repo, pipelineOpts...)
	if err != nil {
		repo.Close()
		backend.Close()
		return nil, err
	}

	searcher, err := search.NewSearcher(repo, search.WithLogger(logger))
	if err != nil {
		repo.Close()
		backend.Close()
		return nil, err
	}

	return &Notebook{
		backend:    backend,
		repo:       repo,
		provider:   provider,
		pipeline:   pipeline,
		searcher:   searcher,
		categories: slices.Clone(cfg.AI.Categories),
		logger:     logger,
	}, nil
}

// Close releases the AI provider and the note store.
func (nb *Notebook) Close() error {
	var errs []error
	if err := nb.provider.Close(); err != nil {
		nb.logger.Error("error closing AI provider", "err", err)
		errs = append(errs, err)
	}
	if err := nb.repo.Close(); err != nil {
		nb.logger.Error("error closing note repository", "err", err)
		errs = append(errs, err)
	}
	if err := nb.backend.Close(); err != nil {
		nb.logger.Error("error closing backend storage", "err", err)
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Ingest runs batch through the pipeline. The notes of any previous run
// are discarded first.
func (nb *Notebook) Ingest(ctx context.Context, batch ingestion.Batch) (*ingestion.Report, error) {
	if err := nb.repo.Reset(ctx); err != nil {
		return nil, err
	}
	return nb.pipeline.Run(ctx, batch)
}

// Notes returns the notes of the current run in input order.
func (nb *Notebook) Notes(ctx context.Context) ([]*core.Note, error) {
	return nb.repo.ListNotes(ctx)
}

// Search returns the notes of the current run matching q.
func (nb *Notebook) Search(ctx context.Context, q search.Query) ([]*core.Note, error) {
	return nb.searcher.Search(ctx, q)
}

// Categories returns the sorted distinct categories of the current notes.
func (nb *Notebook) Categories(ctx context.Context) ([]string, error) {
	return nb.searcher.Categories(ctx)
}

// Labels returns the configured category label set.
func (nb *Notebook) Labels() []string {
	return slices.Clone(nb.categories)
}
