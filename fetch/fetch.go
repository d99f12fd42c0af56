// Package fetch retrieves web pages and media resources over HTTP.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const (
	// DefaultTimeout bounds every request made by a Fetcher.
	DefaultTimeout = 10 * time.Second

	// DefaultUserAgent is sent with every request.
	DefaultUserAgent = "Mozilla/5.0"
)

var (
	// ErrHTTPStatus is returned when the server answers with a non-2xx status.
	ErrHTTPStatus = errors.New("unexpected HTTP status")
)

// Fetcher performs bounded HTTP GET requests.
// A Fetcher is safe for concurrent use.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	logger    *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout, covering the body read.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client. The client is used as
// is; the Fetcher timeout still applies to each request.
func WithHTTPClient(client *http.Client) Option {
	return func(f *Fetcher) {
		if client != nil {
			f.client = client
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger.With("component", "fetcher")
	}
}

// New creates a Fetcher with the default timeout and user agent.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:    &http.Client{},
		timeout:   DefaultTimeout,
		userAgent: DefaultUserAgent,
		logger:    slog.Default().With("component", "fetcher"),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch returns the body of the page at url as text.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	body, err := f.get(ctx, url)
	if err != nil {
		return "", err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", url, err)
	}

	f.logger.Debug("page fetched", "url", url, "bytes", len(data))
	return string(data), nil
}

// Download streams the resource at url into destPath, creating parent
// directories as needed. A partially written file is removed on failure.
func (f *Fetcher) Download(ctx context.Context, url, destPath string) error {
	body, err := f.get(ctx, url)
	if err != nil {
		return err
	}
	defer body.Close()

	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", destPath, err)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", destPath, err)
	}

	n, copyErr := io.Copy(out, body)
	closeErr := out.Close()
	if err := errors.Join(copyErr, closeErr); err != nil {
		os.Remove(destPath)
		return fmt.Errorf("failed to download %s: %w", url, err)
	}

	f.logger.Debug("resource downloaded", "url", url, "path", destPath, "bytes", n)
	return nil
}

// get issues the request under the Fetcher timeout. The timeout is released
// when the returned body is closed.
func (f *Fetcher) get(ctx context.Context, url string) (io.ReadCloser, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("invalid request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		cancel()
		return nil, fmt.Errorf("%w: %s returned %d", ErrHTTPStatus, url, resp.StatusCode)
	}
	return &timedBody{ReadCloser: resp.Body, cancel: cancel}, nil
}

type timedBody struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (b *timedBody) Close() error {
	err := b.ReadCloser.Close()
	b.cancel()
	return err
}
