package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hailam/gencorpus/internal/adapters/console"
	"github.com/hailam/gencorpus/internal/adapters/txt"
	adapterutils "github.com/hailam/gencorpus/internal/adapters/utils"
	"github.com/hailam/gencorpus/internal/application"
	"github.com/hailam/gencorpus/internal/config"
	"github.com/hailam/gencorpus/internal/corpus"
	"github.com/hailam/gencorpus/internal/ports"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code: 0 for a
// finished, interrupted or declined run, 1 for anything else.
func run(args []string, in io.Reader, out, errOut io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCmd(in, out, errOut)
	rootCmd.SetArgs(args)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.WithError(err).Debug("run failed")
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "gencorpus",
		Short: "Generates a synthetic question/answer text corpus of a chosen size.",
		Long: `gencorpus writes lines of the form "<prompt> <filler> | <response> <filler>"
to a text file until the file reaches the requested size. The size is asked for
interactively unless --size is given. Press Ctrl+C at any time to stop; the
partial file is kept.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return errors.Wrap(err, "bind flags")
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			configureLogging(errOut, cfg.Verbose)
			log.WithFields(log.Fields{
				"output":        cfg.Output,
				"samples":       cfg.Samples,
				"checkEvery":    cfg.CheckEvery,
				"progressEvery": cfg.ProgressEvery,
			}).Debug("configuration loaded")

			// --- Composition Root ---
			opts := []corpus.Option{corpus.WithSentenceLength(cfg.MinWords, cfg.MaxWords)}
			if cfg.Seed != 0 {
				opts = append(opts, corpus.WithSeed(cfg.Seed))
			}
			composer, err := corpus.NewComposer(opts...)
			if err != nil {
				return err
			}
			generator := txt.New(txt.Config{
				OutputPath:    cfg.Output,
				SampleSize:    cfg.Samples,
				CheckEvery:    cfg.CheckEvery,
				ProgressEvery: cfg.ProgressEvery,
				BufferSize:    cfg.BufferSize,
			}, composer, console.NewReporter(out, isTerminal(out)))
			prompter := console.NewPrompter(in, out)
			fileService := application.NewFileService(generator, adapterutils.NewUtilSizeParser(), prompter)
			// --- End Composition Root ---

			_, err = fileService.CreateFile(cmd.Context(), application.Options{
				Size:      cfg.Size,
				AssumeYes: cfg.AssumeYes,
			})
			if errors.Is(err, ports.ErrCancelled) {
				prompter.Say("Operation cancelled by user.")
				return nil
			}
			return err
		},
	}

	config.RegisterFlags(rootCmd.Flags())
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	return rootCmd
}

func configureLogging(w io.Writer, verbose bool) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(w)
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
