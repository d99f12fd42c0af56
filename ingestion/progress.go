package ingestion

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// ProgressTracker reports per-item progress of an ingestion run.
type ProgressTracker struct {
	writer    io.Writer
	total     int
	current   int
	failed    int
	startTime time.Time
	started   bool
	mu        sync.Mutex
}

// NewProgressTracker creates a new progress tracker.
// writer: where to write progress output (typically os.Stderr)
// total: number of top-level items in the batch
func NewProgressTracker(writer io.Writer, total int) *ProgressTracker {
	return &ProgressTracker{
		writer: writer,
		total:  total,
	}
}

// Start begins tracking progress.
func (p *ProgressTracker) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.startTime = time.Now()
	p.started = true
	p.current = 0
	p.failed = 0
}

// Advance records that the item named source has been processed and how
// many failures it produced.
func (p *ProgressTracker) Advance(source string, failures int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}

	if p.current < p.total {
		p.current++
	}
	p.failed += failures

	status := "ok"
	if failures > 0 {
		status = fmt.Sprintf("%d failed", failures)
	}
	fmt.Fprintf(p.writer, "[%d/%d] %s (%s)\n", p.current, p.total, source, status)
}

// Finish marks the run as complete and prints a summary line.
func (p *ProgressTracker) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}

	percentage := 100.0
	if p.total > 0 {
		percentage = float64(p.current) / float64(p.total) * 100.0
	}

	fmt.Fprintf(p.writer, "Processed %d/%d items (%.1f%%), %d failures in %s\n",
		p.current, p.total, percentage, p.failed, time.Since(p.startTime).Round(time.Millisecond))
}

// Elapsed returns the time elapsed since Start was called.
func (p *ProgressTracker) Elapsed() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return 0
	}

	return time.Since(p.startTime)
}
