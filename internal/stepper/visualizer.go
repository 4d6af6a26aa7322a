package stepper

import (
	"cmp"

	"github.com/san-kum/sortviz/internal/sortalg"
)

// Visualizer replays bubble sort one micro-step per Step call. It owns its
// working array and never touches the dataset it was built from.
//
// Step must not be called concurrently with itself; the host calls it at its
// own cadence and withholds calls to pause.
type Visualizer[T cmp.Ordered] struct {
	dataset []T
	working []T
	order   sortalg.Order
	outer   int
	inner   int
	swapped bool
	state   State
	stats   sortalg.Stats
}

// New copies data; later changes to data do not affect the visualizer.
func New[T cmp.Ordered](data []T, order sortalg.Order) (*Visualizer[T], error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	v := &Visualizer[T]{
		dataset: sortalg.Clone(data),
		order:   order,
	}
	v.Reset()
	return v, nil
}

func (v *Visualizer[T]) State() State         { return v.state }
func (v *Visualizer[T]) Order() sortalg.Order { return v.order }
func (v *Visualizer[T]) Cursor() Cursor       { return Cursor{Outer: v.outer, Inner: v.inner} }
func (v *Visualizer[T]) Stats() sortalg.Stats { return v.stats }

func (v *Visualizer[T]) Start() error {
	switch v.state {
	case Idle:
		v.state = Running
		return nil
	case Completed:
		return ErrCompleted
	}
	return &TransitionError{Op: "start", From: v.state}
}

func (v *Visualizer[T]) Pause() error {
	if v.state != Running {
		return &TransitionError{Op: "pause", From: v.state}
	}
	v.state = Paused
	return nil
}

func (v *Visualizer[T]) Resume() error {
	if v.state != Paused {
		return &TransitionError{Op: "resume", From: v.state}
	}
	v.state = Running
	return nil
}

// Reset restores the working array from the dataset and returns to Idle. A
// run started afterwards is identical to the first one.
func (v *Visualizer[T]) Reset() {
	v.working = sortalg.Clone(v.dataset)
	v.outer, v.inner = 0, 0
	v.swapped = false
	v.stats = sortalg.Stats{}
	v.state = Idle
}

// Step performs one micro-step: a single compare-and-maybe-swap, or the close
// of a pass. A pass without swaps completes the run.
func (v *Visualizer[T]) Step() (Snapshot[T], error) {
	if v.state != Running {
		return Snapshot[T]{}, ErrNotRunning
	}

	n := len(v.working)
	if v.inner < n-v.outer-1 {
		v.stats.Comparisons++
		if sortalg.OutOfOrder(v.working[v.inner], v.working[v.inner+1], v.order) {
			v.working[v.inner], v.working[v.inner+1] = v.working[v.inner+1], v.working[v.inner]
			v.stats.Swaps++
			v.swapped = true
		}
		v.inner++
		return v.Snapshot(), nil
	}

	v.stats.Passes++
	if !v.swapped {
		v.complete()
		return v.Snapshot(), nil
	}
	v.outer++
	v.inner = 0
	v.swapped = false
	if v.outer >= n {
		v.complete()
	}
	return v.Snapshot(), nil
}

// Settle jumps straight to a final answer computed elsewhere, for algorithms
// that are not animated. sorted is copied.
func (v *Visualizer[T]) Settle(sorted []T) error {
	if len(sorted) != len(v.dataset) {
		return ErrLengthMismatch
	}
	if v.state == Running || v.state == Paused {
		return &TransitionError{Op: "settle", From: v.state}
	}
	copy(v.working, sorted)
	v.complete()
	return nil
}

func (v *Visualizer[T]) complete() {
	v.outer = len(v.working)
	v.inner = 0
	v.swapped = false
	v.state = Completed
}

func (v *Visualizer[T]) Snapshot() Snapshot[T] {
	return Snapshot[T]{
		Values: sortalg.Clone(v.working),
		Cursor: v.Cursor(),
		State:  v.state,
		Stats:  v.stats,
	}
}

// Run starts the visualizer and steps it to completion, returning every
// snapshot in order. It is the headless equivalent of a host ticking Step.
func (v *Visualizer[T]) Run() ([]Snapshot[T], error) {
	if err := v.Start(); err != nil {
		return nil, err
	}
	trace := make([]Snapshot[T], 0, len(v.working))
	for v.state == Running {
		snap, err := v.Step()
		if err != nil {
			return trace, err
		}
		trace = append(trace, snap)
	}
	return trace, nil
}
