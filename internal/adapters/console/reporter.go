package console

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/hailam/gencorpus/internal/ports"
)

// Reporter prints generation progress for a human.
type Reporter struct {
	out  io.Writer
	spin *spinner.Spinner

	ok   *color.Color
	warn *color.Color
	stop *color.Color
}

// NewReporter returns a Reporter writing to out. The estimation spinner is
// only shown when interactive is true.
func NewReporter(out io.Writer, interactive bool) *Reporter {
	r := &Reporter{
		out:  out,
		ok:   color.New(color.FgGreen, color.Bold),
		warn: color.New(color.FgYellow),
		stop: color.New(color.FgRed, color.Bold),
	}
	if interactive {
		r.spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
		r.spin.Suffix = " Estimating average line size..."
	} else {
		r.ok.DisableColor()
		r.warn.DisableColor()
		r.stop.DisableColor()
	}
	return r
}

func (r *Reporter) Estimating(samples int) {
	if r.spin != nil {
		r.spin.Start()
	}
}

func (r *Reporter) Estimated(e ports.Estimate) {
	if r.spin != nil {
		r.spin.Stop()
	}
	fmt.Fprintf(r.out, "\nEstimated lines needed: %s (avg line: %.1f bytes over %s samples)\n",
		humanize.Comma(e.Lines), e.AvgLineSize, humanize.Comma(int64(e.Samples)))
	fmt.Fprintf(r.out, "Starting generation up to ~%s in '%s'\n", humanize.IBytes(uint64(e.Target)), e.Path)
	r.warn.Fprintln(r.out, "WARNING: This may take a long time and use significant disk space!")
	fmt.Fprint(r.out, "Press Ctrl+C to stop safely at any time.\n\n")
}

func (r *Reporter) Progress(s ports.Stats) {
	fmt.Fprintf(r.out, "[%s lines] | Speed: %s lines/sec | Written: %s | Elapsed: %s\n",
		humanize.Comma(s.Lines),
		humanize.Comma(int64(s.LinesPerSecond())),
		humanize.IBytes(uint64(s.Bytes)),
		formatElapsed(s.Elapsed))
}

func (r *Reporter) Finished(s ports.Stats) {
	r.ok.Fprintf(r.out, "\nDone! %s lines written.\n", humanize.Comma(s.Lines))
	fmt.Fprintf(r.out, "Final file size: %s (%s bytes)\n", humanize.IBytes(uint64(s.Bytes)), humanize.Comma(s.Bytes))
	fmt.Fprintf(r.out, "Total time: %s\n", formatElapsed(s.Elapsed))
}

func (r *Reporter) Interrupted(s ports.Stats) {
	if r.spin != nil {
		r.spin.Stop()
	}
	r.stop.Fprintf(r.out, "\nStopped by user at %s lines.\n", humanize.Comma(s.Lines))
	if !s.Created {
		fmt.Fprintln(r.out, "No file was written.")
		return
	}
	fmt.Fprintf(r.out, "Partial file saved as '%s' (~%s, %s bytes)\n",
		s.Path, humanize.IBytes(uint64(s.Bytes)), humanize.Comma(s.Bytes))
}

// formatElapsed prints short runs in seconds and long ones in minutes.
func formatElapsed(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1f sec", d.Seconds())
	}
	return fmt.Sprintf("%.1f min", d.Minutes())
}
