package ports

import "github.com/pkg/errors"

var (
	// ErrInvalidInput marks input that is rejected and re-prompted.
	ErrInvalidInput = errors.New("invalid input")
	// ErrCancelled marks a user decision to stop before anything was written.
	ErrCancelled = errors.New("operation cancelled by user")
	// ErrInputClosed marks input ending before a decision was made.
	ErrInputClosed = errors.New("input closed before confirmation")
)
