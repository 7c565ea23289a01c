package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hailam/gencorpus/internal/ports"
)

// --- Mock Implementations ---

// MockSizeParser is a mock for ports.SizeParser
type MockSizeParser struct {
	ParseFunc func(spec string) (int64, error)
}

func (m *MockSizeParser) Parse(spec string) (int64, error) {
	if m.ParseFunc != nil {
		return m.ParseFunc(spec)
	}
	switch spec {
	case "10KB":
		return 10 * 1024, nil
	case "1MB":
		return 1024 * 1024, nil
	case "badsize":
		return 0, errors.New("mock parse error")
	default:
		return 0, fmt.Errorf("unexpected size spec in mock: %s", spec)
	}
}

// MockFileGenerator is a mock for ports.FileGenerator
type MockFileGenerator struct {
	GenerateFunc   func(ctx context.Context, sizeBytes int64) (ports.Stats, error)
	GenerateCalled bool
	CalledWithSize int64
}

func (m *MockFileGenerator) Generate(ctx context.Context, sizeBytes int64) (ports.Stats, error) {
	m.GenerateCalled = true
	m.CalledWithSize = sizeBytes
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, sizeBytes)
	}
	return ports.Stats{Path: "mock.txt", Lines: 1, Bytes: sizeBytes}, nil
}

// MockPrompter replays scripted answers and records what was shown.
type MockPrompter struct {
	Answers []string
	Prompts []string
	Said    []string
	// AskFunc, when set, replaces the scripted answers.
	AskFunc func(ctx context.Context, prompt string) (string, error)
}

func (m *MockPrompter) Ask(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.AskFunc != nil {
		return m.AskFunc(ctx, prompt)
	}
	if len(m.Answers) == 0 {
		return "", ports.ErrInputClosed
	}
	a := m.Answers[0]
	m.Answers = m.Answers[1:]
	return a, nil
}

func (m *MockPrompter) Say(msg string) {
	m.Said = append(m.Said, msg)
}

// --- Test Cases ---

func TestFileService_CreateFile(t *testing.T) {
	tests := []struct {
		name          string
		opts          Options
		answers       []string
		setupGen      func(*MockFileGenerator)
		expectedErr   error  // matched with errors.Is
		expectedMsg   string // substring of the error message
		wantGenerate  bool
		wantSize      int64
		wantPrompts   int
		wantErrorSaid int
	}{
		{
			name:         "Interactive 1 KB",
			answers:      []string{"1", "4", "yes"},
			wantGenerate: true,
			wantSize:     1024,
			wantPrompts:  3,
		},
		{
			name:         "Interactive TB with decimals",
			answers:      []string{"0.5", "1", "Yes"},
			wantGenerate: true,
			wantSize:     1 << 39,
			wantPrompts:  3,
		},
		{
			name:          "Retries bad input without losing state",
			answers:       []string{"abc", "-3", "0", "2", "9", "3", "maybe", "YES"},
			wantGenerate:  true,
			wantSize:      2 << 20,
			wantPrompts:   8,
			wantErrorSaid: 5,
		},
		{
			name:         "Back restarts input",
			answers:      []string{"5", "4", "back", "7", "5", "yes"},
			wantGenerate: true,
			wantSize:     7,
			wantPrompts:  6,
		},
		{
			name:        "No cancels without generating",
			answers:     []string{"1", "2", "no"},
			expectedErr: ports.ErrCancelled,
			wantPrompts: 3,
		},
		{
			name:        "Input closes before confirmation",
			answers:     []string{"1", "2"},
			expectedErr: ports.ErrInputClosed,
			wantPrompts: 3,
		},
		{
			name:         "Size flag with assume yes skips prompts",
			opts:         Options{Size: "10KB", AssumeYes: true},
			wantGenerate: true,
			wantSize:     10 * 1024,
			wantPrompts:  0,
		},
		{
			name:         "Size flag still confirms",
			opts:         Options{Size: "1MB"},
			answers:      []string{"yes"},
			wantGenerate: true,
			wantSize:     1024 * 1024,
			wantPrompts:  1,
		},
		{
			name:         "Size flag then back goes interactive",
			opts:         Options{Size: "1MB"},
			answers:      []string{"back", "3", "4", "yes"},
			wantGenerate: true,
			wantSize:     3 * 1024,
			wantPrompts:  4,
		},
		{
			name:        "Bad size flag",
			opts:        Options{Size: "badsize"},
			expectedMsg: "invalid size 'badsize': mock parse error",
		},
		{
			name:    "Error during generation",
			answers: []string{"10", "4", "yes"},
			setupGen: func(mg *MockFileGenerator) {
				mg.GenerateFunc = func(context.Context, int64) (ports.Stats, error) {
					return ports.Stats{Lines: 3}, errors.New("mock generation error")
				}
			},
			expectedMsg:  "failed to generate corpus: mock generation error",
			wantGenerate: true,
			wantSize:     10 * 1024,
			wantPrompts:  3,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockGenerator := &MockFileGenerator{}
			if tc.setupGen != nil {
				tc.setupGen(mockGenerator)
			}
			prompter := &MockPrompter{Answers: tc.answers}
			service := NewFileService(mockGenerator, &MockSizeParser{}, prompter)

			stats, err := service.CreateFile(context.Background(), tc.opts)

			switch {
			case tc.expectedErr != nil:
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedErr)
			case tc.expectedMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedMsg)
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.wantSize, stats.Bytes)
			}

			assert.Equal(t, tc.wantGenerate, mockGenerator.GenerateCalled)
			if tc.wantGenerate {
				assert.Equal(t, tc.wantSize, mockGenerator.CalledWithSize)
			}
			assert.Len(t, prompter.Prompts, tc.wantPrompts)

			var errorsSaid int
			for _, msg := range prompter.Said {
				if len(msg) > 7 && msg[:7] == "Error: " {
					errorsSaid++
					assert.NotContains(t, msg, "invalid input")
				}
			}
			assert.Equal(t, tc.wantErrorSaid, errorsSaid)
		})
	}
}

func TestFileService_CancelledWhilePrompting(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	prompter := &MockPrompter{
		AskFunc: func(ctx context.Context, prompt string) (string, error) {
			cancel()
			<-ctx.Done()
			return "", ctx.Err()
		},
	}
	mockGenerator := &MockFileGenerator{}
	service := NewFileService(mockGenerator, &MockSizeParser{}, prompter)

	_, err := service.CreateFile(ctx, Options{})
	assert.ErrorIs(t, err, ports.ErrCancelled)
	assert.False(t, mockGenerator.GenerateCalled)
}

func TestFileService_PrompterFailure(t *testing.T) {
	prompter := &MockPrompter{
		AskFunc: func(context.Context, string) (string, error) {
			return "", io.ErrUnexpectedEOF
		},
	}
	service := NewFileService(&MockFileGenerator{}, &MockSizeParser{}, prompter)

	_, err := service.Negotiate(context.Background(), Options{})
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestFileService_InterruptedRunIsNotAnError(t *testing.T) {
	mockGenerator := &MockFileGenerator{
		GenerateFunc: func(context.Context, int64) (ports.Stats, error) {
			return ports.Stats{Lines: 42, Bytes: 4200, Interrupted: true}, nil
		},
	}
	service := NewFileService(mockGenerator, &MockSizeParser{}, &MockPrompter{})

	stats, err := service.CreateFile(context.Background(), Options{Size: "1MB", AssumeYes: true})
	require.NoError(t, err)
	assert.True(t, stats.Interrupted)
	assert.Equal(t, int64(42), stats.Lines)
}
