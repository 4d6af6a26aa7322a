package stepper

import (
	"errors"
	"fmt"

	"github.com/san-kum/sortviz/internal/dataset"
)

var (
	// ErrEmpty indicates a visualizer constructed without elements. It
	// matches dataset.ErrEmpty.
	ErrEmpty = fmt.Errorf("stepper: no elements to visualize: %w", dataset.ErrEmpty)

	// ErrNotRunning indicates Step was called outside the Running state.
	ErrNotRunning = errors.New("stepper: not running")

	// ErrCompleted indicates Start on a finished run; Reset replays it.
	ErrCompleted = errors.New("stepper: run already completed")

	// ErrLengthMismatch indicates a settled result of the wrong size.
	ErrLengthMismatch = errors.New("stepper: result length does not match dataset")
)

// TransitionError rejects a control that is not valid in the current state.
type TransitionError struct {
	Op   string
	From State
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("stepper: cannot %s while %s", e.Op, e.From)
}

func (e *TransitionError) Is(target error) bool { return target == ErrInvalidTransition }

// ErrInvalidTransition matches every *TransitionError via errors.Is.
var ErrInvalidTransition = errors.New("stepper: invalid state transition")
