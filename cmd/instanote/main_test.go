package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/instanote"
	"github.com/poiesic/instanote/ai"
	"github.com/poiesic/instanote/ai/mock"
	"github.com/poiesic/instanote/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type offlineFetcher struct{}

func (offlineFetcher) Fetch(ctx context.Context, url string) (string, error) {
	if url == "https://blog.example.com" {
		return "<title>Blog</title><p>a post about hiking</p>", nil
	}
	return "", errors.New("no route to host")
}

func (offlineFetcher) Download(ctx context.Context, url, destPath string) error {
	return errors.New("no route to host")
}

type testRunner struct {
	*runner
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	dir    string
	config string
}

func newTestRunner(t *testing.T) *testRunner {
	t.Helper()
	dir := t.TempDir()

	analyzer := mock.NewMockAnalyzer().WithAnalyzeFunc(func(ctx context.Context, text string) (*ai.Analysis, error) {
		category := "other"
		if bytes.Contains([]byte(text), []byte("hiking")) {
			category = "travel"
		}
		return &ai.Analysis{Summary: "summary", Category: category, Keywords: []string{"note"}}, nil
	})
	provider := mock.NewMockProviderWithServices(analyzer, mock.NewMockImageReader(), mock.NewMockTranscriber())

	configPath := filepath.Join(dir, "instanote.yaml")
	configData := "media:\n  dir: " + filepath.Join(dir, "media") + "\nlogging:\n  level: error\n  show_progress: false\n"
	require.NoError(t, os.WriteFile(configPath, []byte(configData), 0o644))

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &testRunner{
		runner: &runner{
			stdout: stdout,
			stderr: stderr,
			notebook: []instanote.NotebookOption{
				instanote.WithProvider(provider),
				instanote.WithFetcher(offlineFetcher{}),
			},
		},
		stdout: stdout,
		stderr: stderr,
		dir:    dir,
		config: configPath,
	}
}

func (tr *testRunner) run(args ...string) error {
	return tr.app().Run(append([]string{"instanote", "--config", tr.config}, args...))
}

func (tr *testRunner) writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(tr.dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func decodeNotes(t *testing.T, data []byte) []core.Note {
	t.Helper()
	var notes []core.Note
	require.NoError(t, json.Unmarshal(data, &notes))
	return notes
}

func TestIngestCommand_JSON(t *testing.T) {
	tr := newTestRunner(t)
	path := tr.writeFile(t, "notes.txt", "groceries for the week")

	err := tr.run("ingest", "--format", "json", "--urls", "see https://blog.example.com and https://gone.example.com", path)
	require.NoError(t, err)

	notes := decodeNotes(t, tr.stdout.Bytes())
	require.Len(t, notes, 2)
	assert.Equal(t, "notes.txt", notes[0].Source)
	assert.Equal(t, "https://blog.example.com", notes[1].Source)
	assert.Equal(t, "Blog", notes[1].Title)

	assert.Contains(t, tr.stderr.String(), "https://gone.example.com: ")
	assert.Contains(t, tr.stderr.String(), "upload it as a file")
}

func TestIngestCommand_Filters(t *testing.T) {
	tr := newTestRunner(t)
	path := tr.writeFile(t, "notes.txt", "groceries for the week")

	err := tr.run("ingest", "--format", "json", "--category", "travel", "--urls", "https://blog.example.com", path)
	require.NoError(t, err)

	notes := decodeNotes(t, tr.stdout.Bytes())
	require.Len(t, notes, 1)
	assert.Equal(t, "travel", notes[0].Category)
}

func TestIngestCommand_SkipURLs(t *testing.T) {
	tr := newTestRunner(t)
	path := tr.writeFile(t, "notes.txt", "groceries for the week")

	err := tr.run("ingest", "--format", "json", "--skip-urls", "--urls", "https://blog.example.com", path)
	require.NoError(t, err)

	notes := decodeNotes(t, tr.stdout.Bytes())
	require.Len(t, notes, 1)
	assert.Equal(t, "notes.txt", notes[0].Source)
}

func TestIngestCommand_URLsFileAndOutput(t *testing.T) {
	tr := newTestRunner(t)
	urls := tr.writeFile(t, "links.txt", "https://blog.example.com\n")
	out := filepath.Join(tr.dir, "notes.md")

	err := tr.run("ingest", "--urls-file", urls, "--output", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Notes")
	assert.Contains(t, string(data), "Blog")
	assert.Empty(t, tr.stdout.String())
	assert.Contains(t, tr.stderr.String(), "Wrote 1 notes to")
}

func TestIngestCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"nothing to ingest", []string{"ingest"}, "nothing to ingest"},
		{"bad format", []string{"ingest", "--format", "pdf", "--urls", "https://blog.example.com"}, "pdf"},
		{"missing file", []string{"ingest", "/does/not/exist.txt"}, "failed to read"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestRunner(t)
			err := tr.run(tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCategoriesCommand(t *testing.T) {
	tr := newTestRunner(t)

	require.NoError(t, tr.run("categories"))

	want := ""
	for _, label := range ai.DefaultCategories {
		want += label + "\n"
	}
	assert.Equal(t, want, tr.stdout.String())
}

func TestSetup_InvalidLogLevel(t *testing.T) {
	tr := newTestRunner(t)

	err := tr.app().Run([]string{"instanote", "--config", tr.config, "--log-level", "loud", "categories"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"debug", false},
		{"INFO", false},
		{"warn", false},
		{"error", false},
		{"trace", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseLevel(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExpandPaths(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt", "sub/c.txt", "sub/d.png"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	}

	paths, err := expandPaths([]string{
		filepath.Join(dir, "**", "*.txt"),
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "missing.txt"),
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.txt"),
		filepath.Join(dir, "sub", "c.txt"),
		filepath.Join(dir, "missing.txt"),
	}, paths)
}
