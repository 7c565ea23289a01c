package ports

import (
	"context"
	"time"
)

// FileGenerator is the port for anything that fills a file up to a target size.
type FileGenerator interface {
	// Generate writes lines until the file on disk is at least targetBytes
	// long or ctx is cancelled. Cancellation is not an error: the returned
	// Stats has Interrupted set and the partial file stays on disk.
	Generate(ctx context.Context, targetBytes int64) (Stats, error)
}

// Estimate is the result of sampling composed lines before generation.
type Estimate struct {
	Path        string
	Target      int64
	Samples     int
	AvgLineSize float64
	Lines       int64
}

// Stats describes a finished or interrupted generation run.
type Stats struct {
	Path        string
	Lines       int64
	Bytes       int64
	Elapsed     time.Duration
	Interrupted bool
	// Created is false when the run stopped before the output file was opened.
	Created bool
}

// LinesPerSecond returns the observed throughput, or 0 before any time has passed.
func (s Stats) LinesPerSecond() float64 {
	secs := s.Elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(s.Lines) / secs
}
