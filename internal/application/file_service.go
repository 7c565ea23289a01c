package application

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/hailam/gencorpus/internal/negotiator"
	"github.com/hailam/gencorpus/internal/ports"
)

const banner = "\n==================================================\n" +
	"Data Generator | synthetic Q/A corpus\n" +
	"=================================================="

// Options are the non-interactive inputs of a run.
type Options struct {
	// Size is a size spec such as "10MB". Empty means ask interactively.
	Size string
	// AssumeYes skips confirmation when Size is set.
	AssumeYes bool
}

// FileService orchestrates a run: it negotiates the target size with the
// user and hands it to the generator.
type FileService struct {
	generator ports.FileGenerator
	parser    ports.SizeParser
	prompter  ports.Prompter
}

// NewFileService constructs a FileService with the given generator, parser and prompter.
func NewFileService(generator ports.FileGenerator, parser ports.SizeParser, prompter ports.Prompter) *FileService {
	return &FileService{generator: generator, parser: parser, prompter: prompter}
}

// CreateFile negotiates a target size and generates the file.
// It returns ports.ErrCancelled if the user declines, in which case
// nothing has been written.
func (s *FileService) CreateFile(ctx context.Context, opts Options) (ports.Stats, error) {
	// 1. Agree on a target size
	target, err := s.Negotiate(ctx, opts)
	if err != nil {
		return ports.Stats{}, err
	}
	log.WithField("target", target).Debug("target confirmed")

	// 2. Fill the file
	stats, err := s.generator.Generate(ctx, target)
	if err != nil {
		return stats, errors.Wrap(err, "failed to generate corpus")
	}
	return stats, nil
}

// Negotiate returns a confirmed target size in bytes.
func (s *FileService) Negotiate(ctx context.Context, opts Options) (int64, error) {
	n := negotiator.New()
	if opts.Size != "" {
		target, err := s.parser.Parse(opts.Size)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid size '%s'", opts.Size)
		}
		if opts.AssumeYes {
			return target, nil
		}
		if err := n.Preset(target, opts.Size); err != nil {
			return 0, err
		}
	} else {
		s.prompter.Say(banner)
	}

	for {
		input, err := s.prompter.Ask(ctx, n.Prompt())
		if err != nil {
			if ctx.Err() != nil {
				return 0, ports.ErrCancelled
			}
			return 0, err
		}

		outcome, err := n.Step(input)
		if err != nil {
			log.WithField("state", n.State()).WithError(err).Debug("rejected input")
			s.prompter.Say("Error: " + reason(err))
			continue
		}

		switch outcome {
		case negotiator.OutcomeConfirmed:
			return n.Target(), nil
		case negotiator.OutcomeCancelled:
			return 0, ports.ErrCancelled
		case negotiator.OutcomeBack:
			log.Debug("restarting size negotiation")
			s.prompter.Say(banner)
		}
	}
}

// reason drops the sentinel suffix that errors.Wrap leaves on the message.
func reason(err error) string {
	return strings.TrimSuffix(err.Error(), ": "+ports.ErrInvalidInput.Error())
}
