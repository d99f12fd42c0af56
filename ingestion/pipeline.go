package ingestion

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	"github.com/poiesic/instanote/core"
	"github.com/poiesic/instanote/resolve"
	"github.com/poiesic/instanote/storage"
	"github.com/poiesic/instanote/urlscan"
)

// Resolver turns one input item into zero or more text bodies.
type Resolver interface {
	Resolve(ctx context.Context, item resolve.Item) ([]resolve.Resolved, []resolve.Failure)
}

// pastedTextSource identifies the pasted text in failure reports.
const pastedTextSource = "pasted text"

// File is one uploaded file.
type File struct {
	Name string
	Data []byte
}

// Batch is the input of one run.
type Batch struct {
	// Files are processed first, in upload order.
	Files []File

	// PastedText is scanned for URLs when ProcessURLs is set.
	PastedText string

	// ProcessURLs triggers resolution of the URLs in PastedText.
	ProcessURLs bool
}

// Pipeline orchestrates resolution and enrichment of a batch.
// Items are processed one at a time in input order.
type Pipeline struct {
	resolver   Resolver
	enricher   *Enricher
	repository storage.NoteRepository
	progress   io.Writer
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger.With("component", "pipeline")
		return nil
	}
}

// WithProgress reports per-item progress to w.
func WithProgress(w io.Writer) Option {
	return func(p *Pipeline) error {
		p.progress = w
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(resolver Resolver, enricher *Enricher, repository storage.NoteRepository, opts ...Option) (*Pipeline, error) {
	if resolver == nil {
		return nil, ErrResolverRequired
	}
	if enricher == nil {
		return nil, ErrEnricherRequired
	}
	if repository == nil {
		return nil, ErrNoteRepositoryRequired
	}

	p := &Pipeline{
		resolver:   resolver,
		enricher:   enricher,
		repository: repository,
		logger:     slog.Default().With("component", "pipeline"),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Run processes batch and appends every successful note to the repository.
// Per-item failures are collected in the report and never stop the batch.
// The only error returned is the context's, when the run is cancelled
// between items; the report then holds what was done so far.
func (p *Pipeline) Run(ctx context.Context, batch Batch) (*Report, error) {
	report := &Report{Notes: []*core.Note{}, Failures: []Failure{}}

	items := make([]resolve.Item, 0, len(batch.Files))
	for _, file := range batch.Files {
		items = append(items, resolve.FileItem(file.Name, file.Data))
	}

	noURLs := false
	if batch.ProcessURLs && batch.PastedText != "" {
		urls := urlscan.Extract(batch.PastedText)
		noURLs = len(urls) == 0
		for _, url := range urls {
			items = append(items, resolve.URLItem(url))
		}
	}

	p.logger.Info("starting ingestion run", "files", len(batch.Files), "items", len(items))

	var tracker *ProgressTracker
	if p.progress != nil {
		tracker = NewProgressTracker(p.progress, len(items))
		tracker.Start()
		defer tracker.Finish()
	}

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			p.logger.Warn("ingestion run cancelled", "notes", len(report.Notes), "failures", report.FailureCount())
			return report, err
		}

		before := report.FailureCount()
		p.processItem(ctx, item, report)

		if tracker != nil {
			tracker.Advance(item.Source(), report.FailureCount()-before)
		}
	}

	if noURLs {
		report.addFailure(pastedTextSource, ErrNoURLs)
	}

	p.logger.Info("ingestion run complete", "notes", len(report.Notes), "failures", report.FailureCount())
	return report, nil
}

// processItem resolves and enriches one top-level item. A panic is
// recovered into an internal failure for that item.
func (p *Pipeline) processItem(ctx context.Context, item resolve.Item, report *Report) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("panic while processing item", "source", item.Source(), "panic", r, "stack", string(debug.Stack()))
			report.addFailure(item.Source(), fmt.Errorf("%w: %v", ErrPanic, r))
		}
	}()

	results, failures := p.resolver.Resolve(ctx, item)
	for _, failure := range failures {
		p.logger.Warn("failed to resolve item", "source", failure.Source, "error", failure.Err)
		report.addFailure(failure.Source, failure.Err)
	}

	for _, res := range results {
		note, err := p.enricher.Enrich(ctx, res)
		if err != nil {
			p.logger.Warn("failed to enrich item", "source", res.Source, "error", err)
			report.addFailure(res.Source, err)
			continue
		}

		if err := p.repository.AddNotes(ctx, note); err != nil {
			p.logger.Error("failed to store note", "source", note.Source, "error", err)
			report.addFailure(note.Source, fmt.Errorf("failed to store note: %w", err))
			continue
		}
		report.Notes = append(report.Notes, note)
	}
}
