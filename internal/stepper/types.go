package stepper

import (
	"cmp"
	"fmt"

	"github.com/san-kum/sortviz/internal/sortalg"
)

type State int

const (
	Idle State = iota
	Running
	Paused
	Completed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Cursor is the animation progress: Outer passes are closed and the next
// comparison is between Inner and Inner+1.
type Cursor struct {
	Outer int `json:"outer"`
	Inner int `json:"inner"`
}

// Snapshot is what the renderer draws after one tick.
type Snapshot[T cmp.Ordered] struct {
	Values []T           `json:"values"`
	Cursor Cursor        `json:"cursor"`
	State  State         `json:"state"`
	Stats  sortalg.Stats `json:"stats"`
}

func (s Snapshot[T]) Done() bool { return s.State == Completed }

// Role returns how the renderer should highlight bar i.
func (s Snapshot[T]) Role(i int) Role {
	return RoleOf(i, len(s.Values), s.Cursor)
}

type Role int

const (
	Unsorted Role = iota
	Comparing
	Settled
)

func (r Role) String() string {
	switch r {
	case Unsorted:
		return "unsorted"
	case Comparing:
		return "comparing"
	case Settled:
		return "settled"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// RoleOf is the highlight rule renderers depend on: the trailing c.Outer
// positions are settled, the pair at c.Inner and c.Inner+1 is being compared
// and everything else is unsorted.
func RoleOf(i, n int, c Cursor) Role {
	switch {
	case i >= n-c.Outer:
		return Settled
	case i == c.Inner || i == c.Inner+1:
		return Comparing
	}
	return Unsorted
}
