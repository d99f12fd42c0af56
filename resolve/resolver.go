// Package resolve turns uploaded files and pasted URLs into raw text bodies.
//
// Text files are scanned for embedded URLs, each of which is resolved as a
// web page. Pages are fetched, stripped to their visible text and their
// images and audio are downloaded, read with OCR or ASR and folded back
// into the page text. Every failure is confined to the item or URL that
// caused it.
package resolve

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/poiesic/instanote/ai"
	"github.com/poiesic/instanote/core"
	"github.com/poiesic/instanote/page"
	"github.com/poiesic/instanote/urlscan"
)

// Fetcher retrieves pages and media over the network.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
	Download(ctx context.Context, url, destPath string) error
}

// Resolver converts items into Resolved text bodies.
type Resolver struct {
	fetcher     Fetcher
	reader      ai.ImageReader
	transcriber ai.Transcriber
	mediaDir    string
	logger      *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithMediaDir sets the run-scoped directory that receives downloaded media.
func WithMediaDir(dir string) Option {
	return func(r *Resolver) {
		r.mediaDir = dir
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger.With("component", "resolver")
	}
}

// DefaultMediaDir returns the default media directory under the system
// temporary directory.
func DefaultMediaDir() string {
	return filepath.Join(os.TempDir(), "instanote")
}

// NewResolver creates a Resolver.
func NewResolver(fetcher Fetcher, reader ai.ImageReader, transcriber ai.Transcriber, opts ...Option) (*Resolver, error) {
	if fetcher == nil {
		return nil, ErrFetcherRequired
	}
	if reader == nil {
		return nil, ai.ErrImageReaderRequired
	}
	if transcriber == nil {
		return nil, ai.ErrTranscriberRequired
	}

	r := &Resolver{
		fetcher:     fetcher,
		reader:      reader,
		transcriber: transcriber,
		mediaDir:    DefaultMediaDir(),
		logger:      slog.Default().With("component", "resolver"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Resolve produces the text bodies for item in order. Sub-items that fail
// are reported in the returned failures and omitted from the results; the
// remaining sub-items are still resolved.
func (r *Resolver) Resolve(ctx context.Context, item Item) ([]Resolved, []Failure) {
	switch item.Kind {
	case KindText:
		return r.resolveTextFile(ctx, item)
	case KindDocument:
		return one(r.resolveDocument(item))
	case KindImage:
		return one(r.resolveMedia(ctx, item, r.reader.ImageToText))
	case KindAudio:
		return one(r.resolveMedia(ctx, item, r.transcriber.AudioToText))
	case KindURL:
		return one(r.resolvePage(ctx, item.URL, core.NoteTypeURL))
	default:
		return nil, []Failure{{Source: item.Source(), Err: fmt.Errorf("%w: %s", ErrUnknownKind, item.Kind)}}
	}
}

func one(res Resolved, failure *Failure) ([]Resolved, []Failure) {
	if failure != nil {
		return nil, []Failure{*failure}
	}
	return []Resolved{res}, nil
}

func (r *Resolver) resolveTextFile(ctx context.Context, item Item) ([]Resolved, []Failure) {
	text, failure := decode(item)
	if failure != nil {
		return nil, []Failure{*failure}
	}

	urls := urlscan.Extract(text)
	if len(urls) == 0 {
		return []Resolved{{
			Type:   core.NoteTypeText,
			Source: item.Name,
			Title:  item.Name,
			Text:   text,
			Media:  []string{},
		}}, nil
	}

	r.logger.Debug("urls found in text file", "file", item.Name, "count", len(urls))

	var results []Resolved
	var failures []Failure
	for _, url := range urls {
		if err := ctx.Err(); err != nil {
			failures = append(failures, Failure{Source: url, Err: err})
			break
		}
		res, failure := r.resolvePage(ctx, url, core.NoteTypeURLBatch)
		if failure != nil {
			failures = append(failures, *failure)
			continue
		}
		results = append(results, res)
	}
	return results, failures
}

func (r *Resolver) resolveDocument(item Item) (Resolved, *Failure) {
	text, failure := decode(item)
	if failure != nil {
		return Resolved{}, failure
	}
	return Resolved{
		Type:   core.NoteTypeFile,
		Source: item.Name,
		Title:  item.Name,
		Text:   text,
		Media:  []string{},
	}, nil
}

func (r *Resolver) resolveMedia(ctx context.Context, item Item, read func(context.Context, []byte) (string, error)) (Resolved, *Failure) {
	text, err := read(ctx, item.Data)
	if err != nil {
		return Resolved{}, &Failure{Source: item.Name, Err: fmt.Errorf("%w: %s %s: %w", ErrExtraction, item.Kind, item.Name, err)}
	}
	return Resolved{
		Type:   core.NoteTypeFile,
		Source: item.Name,
		Title:  item.Name,
		Text:   text,
		Media:  []string{},
	}, nil
}

func decode(item Item) (string, *Failure) {
	if !utf8.Valid(item.Data) {
		return "", &Failure{Source: item.Name, Err: fmt.Errorf("%w: %s", ErrDecode, item.Name)}
	}
	return string(item.Data), nil
}

// resolvePage fetches url and folds the text of its images and audio into
// the visible page text.
func (r *Resolver) resolvePage(ctx context.Context, url string, noteType core.NoteType) (Resolved, *Failure) {
	fail := func(err error) (Resolved, *Failure) {
		return Resolved{}, &Failure{Source: url, Err: err}
	}

	html, err := r.fetcher.Fetch(ctx, url)
	if err != nil {
		return fail(fmt.Errorf("%w: %w", ErrFetch, err))
	}

	p, err := page.Parse(html, url)
	if err != nil {
		return fail(fmt.Errorf("%w: %w", ErrExtraction, err))
	}

	dir := pageMediaDir(r.mediaDir, url)
	images := r.downloadAll(ctx, p.Images, dir, "image", imageExtensions, ".jpg")
	audio := r.downloadAll(ctx, p.Audio, dir, "audio", audioExtensions, ".mp3")

	var text strings.Builder
	text.WriteString(p.Text)

	for _, path := range images {
		extracted, err := r.readFile(ctx, path, r.reader.ImageToText)
		if err != nil {
			return fail(fmt.Errorf("%w: image %s: %w", ErrExtraction, path, err))
		}
		text.WriteString("\n" + extracted)
	}
	for _, path := range audio {
		extracted, err := r.readFile(ctx, path, r.transcriber.AudioToText)
		if err != nil {
			return fail(fmt.Errorf("%w: audio %s: %w", ErrExtraction, path, err))
		}
		text.WriteString("\n" + extracted)
	}

	r.logger.Debug("page resolved", "url", url, "images", len(images), "audio", len(audio))

	return Resolved{
		Type:   noteType,
		Source: url,
		URL:    url,
		Title:  p.Title,
		Text:   text.String(),
		Media:  append(images, audio...),
	}, nil
}

func (r *Resolver) readFile(ctx context.Context, path string, read func(context.Context, []byte) (string, error)) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return read(ctx, data)
}
