package ports

import "context"

// Prompter is the port for the interactive side of the CLI.
type Prompter interface {
	// Ask writes prompt and blocks until a line of input arrives or ctx is done.
	Ask(ctx context.Context, prompt string) (string, error)
	// Say writes a message for the user.
	Say(msg string)
}
