package txt

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/hailam/gencorpus/internal/corpus"
	"github.com/hailam/gencorpus/internal/ports"
)

// Config controls where and how a TxtGenerator writes.
type Config struct {
	OutputPath string
	// SampleSize is how many lines are composed to estimate the average line size.
	SampleSize int
	// CheckEvery is the number of lines between size checks on disk.
	CheckEvery int64
	// ProgressEvery is the number of lines between progress reports.
	ProgressEvery int64
	BufferSize    int
}

// TxtGenerator writes composed question/answer lines until the file on disk
// reaches the target size.
type TxtGenerator struct {
	cfg      Config
	composer *corpus.Composer
	reporter ports.Reporter
	now      func() time.Time
}

// Default intervals used when Config leaves them unset.
const (
	DefaultCheckEvery    = 1_000_000
	DefaultProgressEvery = 10_000_000
	DefaultBufferSize    = 1 << 20
)

// New returns a TxtGenerator. Non-positive intervals and buffer sizes in cfg
// fall back to the defaults, and a nil reporter discards events.
func New(cfg Config, composer *corpus.Composer, reporter ports.Reporter) *TxtGenerator {
	if reporter == nil {
		reporter = ports.NopReporter{}
	}
	if cfg.CheckEvery < 1 {
		cfg.CheckEvery = DefaultCheckEvery
	}
	if cfg.ProgressEvery < 1 {
		cfg.ProgressEvery = DefaultProgressEvery
	}
	if cfg.BufferSize < 1 {
		cfg.BufferSize = DefaultBufferSize
	}
	return &TxtGenerator{cfg: cfg, composer: composer, reporter: reporter, now: time.Now}
}

// Generate estimates the line count, then writes lines until a size check
// finds the file at or above targetBytes. The file is only measured every
// CheckEvery lines, so it overshoots by at most one interval's worth of lines.
func (g *TxtGenerator) Generate(ctx context.Context, targetBytes int64) (ports.Stats, error) {
	path := g.cfg.OutputPath
	stats := ports.Stats{Path: path}
	if targetBytes < 1 {
		return stats, errors.Errorf("target size must be positive, got %d", targetBytes)
	}

	est, err := g.estimate(ctx, targetBytes)
	if err != nil || ctx.Err() != nil {
		log.Debug("cancelled before the output file was opened")
		stats.Interrupted = true
		g.reporter.Interrupted(stats)
		return stats, nil
	}
	log.WithFields(log.Fields{
		"avgLineSize":    est.AvgLineSize,
		"estimatedLines": est.Lines,
		"target":         targetBytes,
	}).Debug("estimated line size")

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return stats, errors.Wrapf(err, "create directory %s", dir)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return stats, errors.Wrapf(err, "create %s", path)
	}
	stats.Created = true
	w := bufio.NewWriterSize(f, g.cfg.BufferSize)

	start := g.now()
	runErr := g.writeLines(ctx, f, w, targetBytes, start, &stats)
	closeErr := closeFile(f, w)
	stats.Elapsed = g.now().Sub(start)

	if runErr != nil {
		if closeErr != nil {
			log.WithError(closeErr).WithField("path", path).Warn("closing after failed write")
		}
		return stats, runErr
	}
	if closeErr != nil {
		return stats, errors.Wrapf(closeErr, "close %s", path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return stats, errors.Wrapf(err, "stat %s", path)
	}
	stats.Bytes = info.Size()

	log.WithFields(log.Fields{
		"lines":       stats.Lines,
		"bytes":       stats.Bytes,
		"interrupted": stats.Interrupted,
	}).Debug("generation finished")

	if stats.Interrupted {
		g.reporter.Interrupted(stats)
	} else {
		g.reporter.Finished(stats)
	}
	return stats, nil
}

// estimate samples composed lines to predict the line count. It returns
// ctx.Err() if the run is cancelled while sampling.
func (g *TxtGenerator) estimate(ctx context.Context, targetBytes int64) (ports.Estimate, error) {
	g.reporter.Estimating(g.cfg.SampleSize)
	avg, err := g.composer.EstimateAverageLineSize(ctx, g.cfg.SampleSize)
	if err != nil {
		return ports.Estimate{}, err
	}
	lines := int64(1)
	if avg > 0 {
		lines = max(1, int64(float64(targetBytes)/avg))
	}
	est := ports.Estimate{
		Path:        g.cfg.OutputPath,
		Target:      targetBytes,
		Samples:     g.cfg.SampleSize,
		AvgLineSize: avg,
		Lines:       lines,
	}
	g.reporter.Estimated(est)
	return est, nil
}

// writeLines is the generation loop. Cancellation is checked before every
// line, so only whole lines ever reach the buffer.
func (g *TxtGenerator) writeLines(ctx context.Context, f *os.File, w *bufio.Writer, targetBytes int64, start time.Time, stats *ports.Stats) error {
	done := ctx.Done()
	var written int64
	for {
		select {
		case <-done:
			stats.Interrupted = true
			return nil
		default:
		}

		line := g.composer.Line()
		if _, err := w.WriteString(line); err != nil {
			return errors.Wrapf(err, "write %s", f.Name())
		}
		stats.Lines++
		written += int64(len(line))

		if stats.Lines%g.cfg.CheckEvery == 0 {
			size, err := sizeOnDisk(f, w)
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{"lines": stats.Lines, "size": size}).Debug("size check")
			if size >= targetBytes {
				return nil
			}
		}

		if stats.Lines%g.cfg.ProgressEvery == 0 {
			g.reporter.Progress(ports.Stats{
				Path:    stats.Path,
				Lines:   stats.Lines,
				Bytes:   written,
				Elapsed: g.now().Sub(start),
			})
		}
	}
}

// sizeOnDisk flushes buffered lines and returns the size the file system reports.
func sizeOnDisk(f *os.File, w *bufio.Writer) (int64, error) {
	if err := w.Flush(); err != nil {
		return 0, errors.Wrapf(err, "flush %s", f.Name())
	}
	info, err := f.Stat()
	if err != nil {
		return 0, errors.Wrapf(err, "stat %s", f.Name())
	}
	return info.Size(), nil
}

// closeFile flushes, syncs and closes f. The file is closed even when an
// earlier step fails; the first error wins.
func closeFile(f *os.File, w *bufio.Writer) error {
	err := w.Flush()
	if err == nil {
		err = f.Sync()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
