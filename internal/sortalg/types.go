package sortalg

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownKind  = errors.New("sortalg: unknown algorithm kind")
	ErrUnknownOrder = errors.New("sortalg: unknown sort order")
)

type Order int

const (
	Ascending Order = iota
	Descending
)

func (o Order) String() string {
	switch o {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// Toggle returns the opposite order.
func (o Order) Toggle() Order {
	if o == Ascending {
		return Descending
	}
	return Ascending
}

func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending", "":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, s)
}

// OutOfOrder reports whether a must come after b under o.
// Equal elements are never out of order.
func OutOfOrder[T cmp.Ordered](a, b T, o Order) bool {
	if o == Descending {
		return a < b
	}
	return a > b
}

type Kind int

const (
	Bubble Kind = iota
	Selection
	Insertion
	Merge
	Quick
	RandomizedQuick
)

var kindNames = [...]string{
	Bubble:          "bubble",
	Selection:       "selection",
	Insertion:       "insertion",
	Merge:           "merge",
	Quick:           "quick",
	RandomizedQuick: "randomized_quick",
}

func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) Valid() bool { return k >= Bubble && k <= RandomizedQuick }

// Animated reports whether the kind is replayed step by step by the
// visualizer. Every other kind jumps straight to its final answer.
func (k Kind) Animated() bool { return k == Bubble }

// Kinds lists every algorithm in display order.
func Kinds() []Kind {
	return []Kind{Bubble, Selection, Insertion, Merge, Quick, RandomizedQuick}
}

// Stats counts the work an algorithm did. It is instrumentation only.
type Stats struct {
	Comparisons int `json:"comparisons" yaml:"comparisons"`
	Swaps       int `json:"swaps" yaml:"swaps"`
	Passes      int `json:"passes" yaml:"passes"`
}

func (s Stats) String() string {
	return fmt.Sprintf("comparisons=%d swaps=%d passes=%d", s.Comparisons, s.Swaps, s.Passes)
}

func swap[T any](s []T, i, j int) {
	s[i], s[j] = s[j], s[i]
}
