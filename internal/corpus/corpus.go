// Package corpus composes the synthetic question/answer lines.
package corpus

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
)

const (
	DefaultMinWords = 6
	DefaultMaxWords = 12

	// estimateCheckEvery is how many samples are composed between context checks.
	estimateCheckEvery = 4096
)

// Composer builds lines of the form "<prompt> <filler> | <response> <filler>\n".
// It is not safe for concurrent use.
type Composer struct {
	rng      *rand.Rand
	pairs    []Pair
	words    []string
	minWords int
	maxWords int
	sb       strings.Builder
}

// Option customises a Composer.
type Option func(*Composer)

// WithPairs replaces the seed pairs.
func WithPairs(pairs []Pair) Option {
	return func(c *Composer) { c.pairs = pairs }
}

// WithWords replaces the filler vocabulary.
func WithWords(words []string) Option {
	return func(c *Composer) { c.words = words }
}

// WithSentenceLength sets the inclusive range of words per filler sentence.
func WithSentenceLength(minWords, maxWords int) Option {
	return func(c *Composer) {
		c.minWords = minWords
		c.maxWords = maxWords
	}
}

// WithSeed makes the composer deterministic.
func WithSeed(seed uint64) Option {
	return func(c *Composer) { c.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// NewComposer returns a Composer over DefaultPairs and DefaultWords unless
// options say otherwise.
func NewComposer(opts ...Option) (*Composer, error) {
	now := uint64(time.Now().UnixNano())
	c := &Composer{
		rng:      rand.New(rand.NewPCG(now, now>>1)),
		pairs:    DefaultPairs,
		words:    DefaultWords,
		minWords: DefaultMinWords,
		maxWords: DefaultMaxWords,
	}
	for _, opt := range opts {
		opt(c)
	}
	switch {
	case len(c.pairs) == 0:
		return nil, errors.New("composer needs at least one pair")
	case len(c.words) == 0:
		return nil, errors.New("composer needs at least one word")
	case c.minWords < 1 || c.minWords > c.maxWords:
		return nil, errors.Errorf("invalid sentence length range %d-%d", c.minWords, c.maxWords)
	}
	return c, nil
}

// Sentence returns one filler sentence: words sampled with replacement,
// first letter capitalised, the rest lower case, ending in a period.
func (c *Composer) Sentence() string {
	n := c.minWords + c.rng.IntN(c.maxWords-c.minWords+1)
	c.sb.Reset()
	for i := 0; i < n; i++ {
		if i > 0 {
			c.sb.WriteByte(' ')
		}
		c.sb.WriteString(c.words[c.rng.IntN(len(c.words))])
	}
	return capitalize(c.sb.String()) + "."
}

// Line returns one complete newline-terminated line. The same filler
// sentence is used on both sides of the separator.
func (c *Composer) Line() string {
	p := c.pairs[c.rng.IntN(len(c.pairs))]
	filler := c.Sentence()
	return p.Prompt + " " + filler + " | " + p.Response + " " + filler + "\n"
}

// EstimateAverageLineSize composes samples lines and returns their mean
// UTF-8 byte length. It stops early with ctx.Err() once ctx is done.
func (c *Composer) EstimateAverageLineSize(ctx context.Context, samples int) (float64, error) {
	if samples <= 0 {
		return 0, nil
	}
	done := ctx.Done()
	var total int
	for i := 0; i < samples; i++ {
		if i%estimateCheckEvery == 0 {
			select {
			case <-done:
				return 0, ctx.Err()
			default:
			}
		}
		total += len(c.Line())
	}
	return float64(total) / float64(samples), nil
}

// MaxLineSize is an upper bound on the byte length of any line this
// composer can produce.
func (c *Composer) MaxLineSize() int {
	var longestWord, longestPair int
	for _, w := range c.words {
		longestWord = max(longestWord, len(w))
	}
	for _, p := range c.pairs {
		longestPair = max(longestPair, len(p.Prompt)+len(p.Response))
	}
	filler := c.maxWords*longestWord + (c.maxWords - 1) + 1
	return longestPair + 2*filler + len("  |  \n")
}

func capitalize(s string) string {
	s = strings.ToLower(s)
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return strings.ToUpper(string(r)) + s[size:]
}
