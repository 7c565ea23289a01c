// Package config holds the run configuration of the generator.
package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hailam/gencorpus/internal/corpus"
)

// Config is everything a run needs besides the target size.
type Config struct {
	Output        string `mapstructure:"output"`
	Size          string `mapstructure:"size"`
	AssumeYes     bool   `mapstructure:"yes"`
	Samples       int    `mapstructure:"samples"`
	CheckEvery    int64  `mapstructure:"check-every"`
	ProgressEvery int64  `mapstructure:"progress-every"`
	MinWords      int    `mapstructure:"min-words"`
	MaxWords      int    `mapstructure:"max-words"`
	BufferSize    int    `mapstructure:"buffer-size"`
	Seed          uint64 `mapstructure:"seed"`
	Verbose       bool   `mapstructure:"verbose"`
}

// Default returns the configuration used when no flags are given.
func Default() Config {
	return Config{
		Output:        "data.txt",
		Samples:       1000,
		CheckEvery:    1_000_000,
		ProgressEvery: 10_000_000,
		MinWords:      corpus.DefaultMinWords,
		MaxWords:      corpus.DefaultMaxWords,
		BufferSize:    1 << 20,
	}
}

// RegisterFlags adds one flag per Config field to fs, with defaults from Default.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.StringP("output", "o", d.Output, "Path to the output file")
	fs.StringP("size", "s", d.Size, "Target size (e.g., 500KB, 2MB, 1.5GB); prompts interactively when empty")
	fs.BoolP("yes", "y", d.AssumeYes, "Skip the confirmation prompt (requires --size)")
	fs.Int("samples", d.Samples, "Number of sample lines used to estimate the average line size")
	fs.Int64("check-every", d.CheckEvery, "Lines written between file size checks")
	fs.Int64("progress-every", d.ProgressEvery, "Lines written between progress reports")
	fs.Int("min-words", d.MinWords, "Minimum words per filler sentence")
	fs.Int("max-words", d.MaxWords, "Maximum words per filler sentence")
	fs.Int("buffer-size", d.BufferSize, "Write buffer size in bytes")
	fs.Uint64("seed", d.Seed, "Random seed (0 picks one from the clock)")
	fs.BoolP("verbose", "v", d.Verbose, "Enable debug logging")
}

// Load reads a Config out of v and validates it. Keys missing from v keep
// their defaults.
func Load(v *viper.Viper) (Config, error) {
	cfg := Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Output == "":
		return errors.New("output path must not be empty")
	case c.AssumeYes && c.Size == "":
		return errors.New("--yes requires --size")
	case c.Samples < 1:
		return errors.Errorf("samples must be positive, got %d", c.Samples)
	case c.CheckEvery < 1:
		return errors.Errorf("check-every must be positive, got %d", c.CheckEvery)
	case c.ProgressEvery < 1:
		return errors.Errorf("progress-every must be positive, got %d", c.ProgressEvery)
	case c.MinWords < 1:
		return errors.Errorf("min-words must be positive, got %d", c.MinWords)
	case c.MinWords > c.MaxWords:
		return errors.Errorf("min-words (%d) must not exceed max-words (%d)", c.MinWords, c.MaxWords)
	case c.BufferSize < 1:
		return errors.Errorf("buffer-size must be positive, got %d", c.BufferSize)
	}
	return nil
}
