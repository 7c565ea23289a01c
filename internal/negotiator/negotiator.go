// Package negotiator turns user input into a confirmed target size.
//
// The negotiator is a small state machine. Each call to Step consumes one
// line of input and either leaves the state unchanged (the input was
// rejected), advances to the next state, or ends the negotiation.
package negotiator

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/hailam/gencorpus/internal/ports"
)

// State is a position in the negotiation.
type State int

const (
	StateSize State = iota
	StateUnit
	StateConfirm
	StateDone
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateSize:
		return "size"
	case StateUnit:
		return "unit"
	case StateConfirm:
		return "confirm"
	case StateDone:
		return "done"
	case StateCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Outcome is what a single Step did.
type Outcome int

const (
	// OutcomeRetry means the input was rejected and the state is unchanged.
	OutcomeRetry Outcome = iota
	// OutcomeAdvance means the machine moved to the next input state.
	OutcomeAdvance
	// OutcomeBack means the pending target was discarded and input restarts.
	OutcomeBack
	// OutcomeConfirmed means Target holds the agreed byte count.
	OutcomeConfirmed
	// OutcomeCancelled means the user declined.
	OutcomeCancelled
)

// Negotiator collects a size value, a unit and a confirmation.
type Negotiator struct {
	state  State
	value  float64
	label  string
	target int64
}

// New returns a Negotiator waiting for a size value.
func New() *Negotiator {
	return &Negotiator{state: StateSize}
}

// Preset skips straight to confirmation for an already parsed target.
// label is how the size is described back to the user.
func (n *Negotiator) Preset(target int64, label string) error {
	if target < 1 {
		return errors.Wrapf(ports.ErrInvalidInput, "size must be at least 1 byte, got %d", target)
	}
	n.reset()
	n.target = target
	n.label = label
	n.state = StateConfirm
	return nil
}

// State returns the current position in the negotiation.
func (n *Negotiator) State() State { return n.state }

// Target returns the confirmed byte count, or 0 if the negotiation has not
// been confirmed.
func (n *Negotiator) Target() int64 {
	if n.state != StateDone {
		return 0
	}
	return n.target
}

// Prompt returns the text to show for the current state.
func (n *Negotiator) Prompt() string {
	switch n.state {
	case StateSize:
		return "Enter File Data Size: "
	case StateUnit:
		var b strings.Builder
		b.WriteString("\nSelect Size Format:\n")
		for i, u := range ports.Units {
			fmt.Fprintf(&b, "[%d] %s\n", i+1, u.Label())
		}
		b.WriteString("Choose option (1-5): ")
		return b.String()
	case StateConfirm:
		return fmt.Sprintf("\nYou sure to create a ~%s file (%s)? (Type 'Yes', 'No', or 'back'): ",
			n.label, humanize.IBytes(uint64(n.target)))
	default:
		return ""
	}
}

// Step consumes one line of input. A non-nil error always wraps
// ports.ErrInvalidInput and comes with OutcomeRetry.
func (n *Negotiator) Step(input string) (Outcome, error) {
	input = strings.TrimSpace(input)
	switch n.state {
	case StateSize:
		return n.stepSize(input)
	case StateUnit:
		return n.stepUnit(input)
	case StateConfirm:
		return n.stepConfirm(input)
	default:
		return OutcomeRetry, errors.Wrapf(ports.ErrInvalidInput, "negotiation already finished (%s)", n.state)
	}
}

func (n *Negotiator) stepSize(input string) (Outcome, error) {
	if input == "" {
		return OutcomeRetry, errors.Wrap(ports.ErrInvalidInput, "input cannot be empty, please enter a number")
	}
	v, err := strconv.ParseFloat(input, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return OutcomeRetry, errors.Wrap(ports.ErrInvalidInput, "invalid number, please enter a numeric value (e.g. 5.5)")
	}
	if v <= 0 {
		return OutcomeRetry, errors.Wrap(ports.ErrInvalidInput, "size must be greater than 0")
	}
	n.value = v
	n.state = StateUnit
	return OutcomeAdvance, nil
}

func (n *Negotiator) stepUnit(input string) (Outcome, error) {
	unit, ok := unitChoice(input)
	if !ok {
		return OutcomeRetry, errors.Wrap(ports.ErrInvalidInput, "invalid choice, please select 1-5")
	}
	target, err := TargetBytes(n.value, unit)
	if err != nil {
		return OutcomeRetry, err
	}
	n.target = target
	n.label = strconv.FormatFloat(n.value, 'f', -1, 64) + " " + string(unit)
	n.state = StateConfirm
	return OutcomeAdvance, nil
}

func (n *Negotiator) stepConfirm(input string) (Outcome, error) {
	switch strings.ToLower(input) {
	case "yes":
		n.state = StateDone
		return OutcomeConfirmed, nil
	case "no":
		n.state = StateCancelled
		return OutcomeCancelled, nil
	case "back":
		n.reset()
		return OutcomeBack, nil
	default:
		return OutcomeRetry, errors.Wrap(ports.ErrInvalidInput, "please type 'Yes', 'No', or 'back'")
	}
}

func (n *Negotiator) reset() {
	*n = Negotiator{state: StateSize}
}

// TargetBytes returns floor(value × unit multiplier). Results below one byte
// or beyond the int64 range are rejected as invalid input.
func TargetBytes(value float64, unit ports.Unit) (int64, error) {
	mult := unit.Multiplier()
	if mult == 0 {
		return 0, errors.Wrapf(ports.ErrInvalidInput, "unknown unit %q", unit)
	}
	bytes := math.Floor(value * float64(mult))
	if bytes < 1 {
		return 0, errors.Wrapf(ports.ErrInvalidInput, "%g %s is less than one byte, pick a larger unit", value, unit)
	}
	if bytes >= math.MaxInt64 {
		return 0, errors.Wrapf(ports.ErrInvalidInput, "%g %s is too large, pick a smaller unit", value, unit)
	}
	return int64(bytes), nil
}

func unitChoice(input string) (ports.Unit, bool) {
	if i, err := strconv.Atoi(input); err == nil {
		if i < 1 || i > len(ports.Units) {
			return "", false
		}
		return ports.Units[i-1], true
	}
	if input == "" {
		return "", false
	}
	return ports.ParseUnit(input)
}
