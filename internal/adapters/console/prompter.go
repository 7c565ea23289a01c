package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/hailam/gencorpus/internal/ports"
)

type readResult struct {
	line string
	err  error
}

// Prompter reads answers line by line from an input stream.
//
// Reads happen on a background goroutine so that Ask can return as soon as
// its context is cancelled, even while the terminal is blocked on input.
type Prompter struct {
	in    io.Reader
	out   io.Writer
	once  sync.Once
	lines chan readResult
}

// NewPrompter returns a Prompter reading from in and writing to out.
func NewPrompter(in io.Reader, out io.Writer) ports.Prompter {
	return &Prompter{in: in, out: out, lines: make(chan readResult)}
}

// Ask writes prompt and waits for the next line. End of input before any
// text is reported as ports.ErrInputClosed.
func (p *Prompter) Ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(p.out, prompt)
	p.once.Do(func() { go p.readLoop() })

	select {
	case <-ctx.Done():
		fmt.Fprintln(p.out)
		return "", ctx.Err()
	case r, ok := <-p.lines:
		if !ok {
			return "", ports.ErrInputClosed
		}
		if r.err != nil {
			return "", errors.Wrap(r.err, "read input")
		}
		return r.line, nil
	}
}

// Say prints msg on its own line.
func (p *Prompter) Say(msg string) {
	fmt.Fprintln(p.out, msg)
}

func (p *Prompter) readLoop() {
	defer close(p.lines)
	r := bufio.NewReader(p.in)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			p.lines <- readResult{line: strings.TrimRight(line, "\r\n")}
		}
		if err == io.EOF {
			return
		}
		if err != nil {
			p.lines <- readResult{err: err}
			return
		}
	}
}
