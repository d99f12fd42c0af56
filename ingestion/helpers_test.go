package ingestion

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/instanote/ai"
	"github.com/poiesic/instanote/ai/mock"
	"github.com/poiesic/instanote/resolve"
	"github.com/poiesic/instanote/storage/badger"
	"github.com/stretchr/testify/require"
)

var errNetwork = errors.New("dial tcp: connection refused")

// testFetcher serves pages and media from memory. Unknown URLs fail with a
// network error.
type testFetcher struct {
	pages map[string]string
	media map[string]string
}

func (f *testFetcher) Fetch(ctx context.Context, url string) (string, error) {
	if html, ok := f.pages[url]; ok {
		return html, nil
	}
	return "", errNetwork
}

func (f *testFetcher) Download(ctx context.Context, url, destPath string) error {
	data, ok := f.media[url]
	if !ok {
		return errNetwork
	}
	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(destPath, []byte(data), 0o644)
}

type testEnv struct {
	pipeline *Pipeline
	provider *mock.MockProvider
	repo     *badger.NoteRepository
}

func setupPipeline(t *testing.T, fetcher *testFetcher, opts ...Option) *testEnv {
	t.Helper()

	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})

	provider := mock.NewMockProviderWithServices(mock.NewMockAnalyzer(), mock.NewMockImageReader(), mock.NewMockTranscriber())

	resolver, err := resolve.NewResolver(fetcher, provider.ImageReader(), provider.Transcriber(),
		resolve.WithMediaDir(t.TempDir()))
	require.NoError(t, err)

	enricher, err := NewEnricher(provider.Analyzer(), ai.DefaultCategories, nil)
	require.NoError(t, err)

	pipeline, err := NewPipeline(resolver, enricher, repo, opts...)
	require.NoError(t, err)

	return &testEnv{pipeline: pipeline, provider: provider, repo: repo}
}
