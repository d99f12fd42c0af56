package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/poiesic/instanote/ai"
	"github.com/poiesic/instanote/core"
	"github.com/poiesic/instanote/resolve"
)

// Enricher builds notes from resolved text bodies.
type Enricher struct {
	analyzer   ai.Analyzer
	categories []string
	now        func() time.Time
	logger     *slog.Logger
}

// NewEnricher creates an Enricher that accepts only the given category labels.
func NewEnricher(analyzer ai.Analyzer, categories []string, logger *slog.Logger) (*Enricher, error) {
	if analyzer == nil {
		return nil, ai.ErrAnalyzerRequired
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: no categories configured", core.ErrUnknownCategory)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Enricher{
		analyzer:   analyzer,
		categories: slices.Clone(categories),
		now:        time.Now,
		logger:     logger.With("processor", "enrichment"),
	}, nil
}

// Enrich summarizes, classifies and tags res and returns the finished note.
// The analyzer is called once; any failure is wrapped in ErrEnrichment.
func (e *Enricher) Enrich(ctx context.Context, res resolve.Resolved) (*core.Note, error) {
	if strings.TrimSpace(res.Text) == "" {
		return nil, fmt.Errorf("%w: %s: %w", ErrEnrichment, res.Source, core.ErrEmptyContent)
	}

	analysis, err := e.analyzer.Analyze(ctx, res.Text)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrEnrichment, res.Source, err)
	}
	if analysis == nil {
		return nil, fmt.Errorf("%w: %s: empty analysis", ErrEnrichment, res.Source)
	}

	media := res.Media
	if media == nil {
		media = []string{}
	}
	keywords := analysis.Keywords
	if keywords == nil {
		keywords = []string{}
	}

	note := &core.Note{
		ID:        core.IDFromContent(res.Source + "\x00" + res.Text),
		Type:      res.Type,
		Source:    res.Source,
		URL:       res.URL,
		Title:     res.Title,
		Content:   res.Text,
		Summary:   analysis.Summary,
		Category:  analysis.Category,
		Keywords:  slices.Clone(keywords),
		Media:     slices.Clone(media),
		CreatedAt: e.now().UTC(),
	}

	if err := core.ValidateNote(note, e.categories); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrEnrichment, res.Source, err)
	}

	e.logger.Debug("note enriched", "source", note.Source, "category", note.Category, "keywords", len(note.Keywords))
	return note, nil
}
