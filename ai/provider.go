package ai

import (
	"errors"
	"io"
)

var (
	// ErrAnalyzerRequired is returned when no Analyzer is supplied to NewProvider.
	ErrAnalyzerRequired = errors.New("analyzer required")

	// ErrImageReaderRequired is returned when no ImageReader is supplied to NewProvider.
	ErrImageReaderRequired = errors.New("image reader required")

	// ErrTranscriberRequired is returned when no Transcriber is supplied to NewProvider.
	ErrTranscriberRequired = errors.New("transcriber required")
)

// provider combines independently constructed services into an AIProvider.
type provider struct {
	analyzer    Analyzer
	reader      ImageReader
	transcriber Transcriber
}

// NewProvider combines the three capability services into one AIProvider.
// Services backed by different vendors are built separately and joined here.
// Close closes every service that implements io.Closer.
func NewProvider(analyzer Analyzer, reader ImageReader, transcriber Transcriber) (AIProvider, error) {
	if analyzer == nil {
		return nil, ErrAnalyzerRequired
	}
	if reader == nil {
		return nil, ErrImageReaderRequired
	}
	if transcriber == nil {
		return nil, ErrTranscriberRequired
	}
	return &provider{
		analyzer:    analyzer,
		reader:      reader,
		transcriber: transcriber,
	}, nil
}

func (p *provider) Analyzer() Analyzer {
	return p.analyzer
}

func (p *provider) ImageReader() ImageReader {
	return p.reader
}

func (p *provider) Transcriber() Transcriber {
	return p.transcriber
}

func (p *provider) Close() error {
	var errs []error
	for _, svc := range []any{p.analyzer, p.reader, p.transcriber} {
		if c, ok := svc.(io.Closer); ok {
			errs = append(errs, c.Close())
		}
	}
	return errors.Join(errs...)
}
