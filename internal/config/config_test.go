package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, args ...string) (Config, error) {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))

	v := viper.New()
	require.NoError(t, v.BindPFlags(fs))
	return Load(v)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Flags(t *testing.T) {
	cfg, err := load(t,
		"-o", "out/corpus.txt",
		"--size", "1.5GB",
		"-y",
		"--samples", "50",
		"--check-every", "10",
		"--progress-every", "100",
		"--min-words", "2",
		"--max-words", "4",
		"--buffer-size", "4096",
		"--seed", "42",
		"-v",
	)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Output:        "out/corpus.txt",
		Size:          "1.5GB",
		AssumeYes:     true,
		Samples:       50,
		CheckEvery:    10,
		ProgressEvery: 100,
		MinWords:      2,
		MaxWords:      4,
		BufferSize:    4096,
		Seed:          42,
		Verbose:       true,
	}, cfg)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"EmptyOutput", []string{"--output", ""}},
		{"YesWithoutSize", []string{"-y"}},
		{"ZeroSamples", []string{"--samples", "0"}},
		{"NegativeCheck", []string{"--check-every", "-1"}},
		{"ZeroProgress", []string{"--progress-every", "0"}},
		{"ZeroMinWords", []string{"--min-words", "0"}},
		{"MinAboveMax", []string{"--min-words", "9", "--max-words", "3"}},
		{"ZeroBuffer", []string{"--buffer-size", "0"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := load(t, tc.args...)
			assert.Error(t, err)
		})
	}
}
