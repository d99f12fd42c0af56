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
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/poiesic/instanote"
	"github.com/poiesic/instanote/config"
	"github.com/poiesic/instanote/export"
	"github.com/poiesic/instanote/ingestion"
	"github.com/poiesic/instanote/search"
	"github.com/urfave/cli/v2"
)

const configKey = "config"

// runner carries the output streams and any notebook overrides used by the
// commands.
type runner struct {
	stdout   io.Writer
	stderr   io.Writer
	notebook []instanote.NotebookOption
}

func main() {
	r := &runner{stdout: os.Stdout, stderr: os.Stderr}
	if err := r.app().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func (r *runner) app() *cli.App {
	return &cli.App{
		Name:      "instanote",
		Usage:     "Turn text files, media and links into categorized notes",
		Writer:    r.stdout,
		ErrWriter: r.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML configuration file",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Override the logging level (debug, info, warn, error)",
			},
		},
		Before: r.setup,
		Commands: []*cli.Command{
			{
				Name:      "ingest",
				Usage:     "Convert files and pasted links into notes",
				ArgsUsage: "[file or glob ...]",
				Action:    r.ingestCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "urls",
						Aliases: []string{"u"},
						Usage:   "Pasted text to scan for links",
					},
					&cli.StringFlag{
						Name:  "urls-file",
						Usage: "Read the pasted text from a file",
					},
					&cli.BoolFlag{
						Name:  "skip-urls",
						Usage: "Do not process links in the pasted text",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format (markdown, json)",
						Value:   string(export.FormatMarkdown),
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write notes to this file instead of stdout",
					},
					&cli.StringFlag{
						Name:    "keyword",
						Aliases: []string{"k"},
						Usage:   "Only output notes matching this keyword",
					},
					&cli.StringFlag{
						Name:  "category",
						Usage: "Only output notes in this category",
					},
				},
			},
			{
				Name:   "categories",
				Usage:  "List the configured category labels",
				Action: r.categoriesCommand,
			},
		},
	}
}

// setup loads the configuration and installs the default logger.
func (r *runner) setup(c *cli.Context) error {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}
	}

	if cfg.AI.APIKey == "" {
		cfg.AI.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.AI.TranscriberAPIKey == "" {
		cfg.AI.TranscriberAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if level := c.String("log-level"); level != "" {
		cfg.Logging.Level = level
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := parseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(r.stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]interface{})
	}
	c.App.Metadata[configKey] = cfg
	return nil
}

func parseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", name)
}

func configFrom(c *cli.Context) *config.Config {
	if cfg, ok := c.App.Metadata[configKey].(*config.Config); ok {
		return cfg
	}
	return config.Default()
}

func (r *runner) ingestCommand(c *cli.Context) error {
	cfg := configFrom(c)

	format, err := export.ParseFormat(c.String("format"))
	if err != nil {
		return err
	}

	paths, err := expandPaths(c.Args().Slice())
	if err != nil {
		return err
	}

	batch := ingestion.Batch{ProcessURLs: !c.Bool("skip-urls")}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		batch.Files = append(batch.Files, ingestion.File{Name: filepath.Base(path), Data: data})
	}

	batch.PastedText = c.String("urls")
	if path := c.String("urls-file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		batch.PastedText = strings.TrimSpace(batch.PastedText + "\n" + string(data))
	}

	if len(batch.Files) == 0 && strings.TrimSpace(batch.PastedText) == "" {
		return fmt.Errorf("nothing to ingest: pass files or --urls")
	}

	opts := []instanote.NotebookOption{
		instanote.WithConfig(cfg),
		instanote.WithLogger(slog.Default()),
	}
	if cfg.Logging.ShowProgress {
		opts = append(opts, instanote.WithProgress(r.stderr))
	}
	opts = append(opts, r.notebook...)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
	defer stop()

	nb, err := instanote.NewNotebook(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create notebook: %w", err)
	}
	defer nb.Close()

	report, err := nb.Ingest(ctx, batch)
	if report != nil {
		for _, failure := range report.Failures {
			fmt.Fprintf(r.stderr, "%s: %s\n", failure.Source, failure.Message())
		}
	}
	if err != nil {
		return fmt.Errorf("ingestion interrupted: %w", err)
	}

	notes, err := nb.Search(context.Background(), search.Query{
		Keyword:  c.String("keyword"),
		Category: c.String("category"),
	})
	if err != nil {
		return err
	}

	if path := c.String("output"); path != "" {
		if err := export.ExportFile(path, notes, format); err != nil {
			return err
		}
		fmt.Fprintf(r.stderr, "Wrote %d notes to %s\n", len(notes), path)
		return nil
	}
	return export.Write(r.stdout, notes, format)
}

func (r *runner) categoriesCommand(c *cli.Context) error {
	for _, label := range configFrom(c).AI.Categories {
		fmt.Fprintln(r.stdout, label)
	}
	return nil
}

// expandPaths resolves glob patterns. Arguments without glob syntax are kept
// as literal paths so that a missing file is reported when read.
func expandPaths(args []string) ([]string, error) {
	var paths []string
	seen := make(map[string]bool)
	for _, arg := range args {
		matches := []string{arg}
		if strings.ContainsAny(arg, "*?[{") {
			var err error
			matches, err = doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
			if err != nil {
				return nil, fmt.Errorf("invalid pattern %q: %w", arg, err)
			}
			if len(matches) == 0 {
				slog.Warn("pattern matched no files", "pattern", arg)
			}
		}
		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				paths = append(paths, match)
			}
		}
	}
	return paths, nil
}
