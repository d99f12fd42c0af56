package ingestion

import (
	"errors"
	"fmt"

	"github.com/poiesic/instanote/core"
	"github.com/poiesic/instanote/fetch"
	"github.com/poiesic/instanote/resolve"
)

// Stage names the step of the pipeline at which an item failed.
type Stage string

const (
	StageDecode   Stage = "decode"
	StageFetch    Stage = "fetch"
	StageExtract  Stage = "extract"
	StageEnrich   Stage = "enrich"
	StageInternal Stage = "internal"
)

// Failure is one entry of the failure report.
type Failure struct {
	Source string
	Stage  Stage
	Err    error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s [%s]: %v", f.Source, f.Stage, f.Err)
}

func (f Failure) Unwrap() error {
	return f.Err
}

// Message returns a user-facing description of the failure.
func (f Failure) Message() string {
	switch f.Stage {
	case StageFetch, StageExtract:
		return fmt.Sprintf("could not process %s: %v; download the content and upload it as a file instead", f.Source, f.Err)
	case StageDecode:
		return fmt.Sprintf("could not read %s: %v; save it as UTF-8 text and upload it again", f.Source, f.Err)
	default:
		return fmt.Sprintf("could not process %s: %v", f.Source, f.Err)
	}
}

// Report is the outcome of one pipeline run.
type Report struct {
	// Notes holds the successful notes in input order.
	Notes []*core.Note

	// Failures holds one entry per failed item or sub-item, in input order.
	Failures []Failure
}

// FailureCount returns the number of failed items.
func (r *Report) FailureCount() int {
	return len(r.Failures)
}

func (r *Report) addFailure(source string, err error) {
	r.Failures = append(r.Failures, Failure{Source: source, Stage: stageOf(err), Err: err})
}

// stageOf classifies err by the sentinel it wraps.
func stageOf(err error) Stage {
	switch {
	case errors.Is(err, resolve.ErrDecode):
		return StageDecode
	case errors.Is(err, resolve.ErrFetch), errors.Is(err, fetch.ErrHTTPStatus):
		return StageFetch
	case errors.Is(err, resolve.ErrExtraction), errors.Is(err, ErrNoURLs):
		return StageExtract
	case errors.Is(err, ErrEnrichment):
		return StageEnrich
	default:
		return StageInternal
	}
}
