package sortalg

import (
	"cmp"
	"fmt"
	"math/rand"
	"time"
)

// Result is one timed engine run over a private copy of the input.
type Result[T cmp.Ordered] struct {
	Kind    Kind
	Order   Order
	Input   []T
	Sorted  []T
	Elapsed time.Duration
	Stats   Stats
}

// Seconds reports the elapsed time as fractional seconds, for display only.
func (r *Result[T]) Seconds() float64 { return r.Elapsed.Seconds() }

// Millis reports the elapsed time as fractional milliseconds.
func (r *Result[T]) Millis() float64 {
	return float64(r.Elapsed.Nanoseconds()) / float64(time.Millisecond)
}

// Sort sorts s in place with the given algorithm. rng is only consulted by
// RandomizedQuick; a nil rng falls back to a time-seeded source.
func Sort[T cmp.Ordered](kind Kind, s []T, order Order, rng *rand.Rand) (Stats, error) {
	switch kind {
	case Bubble:
		return BubbleSort(s, order), nil
	case Selection:
		return SelectionSort(s, order), nil
	case Insertion:
		return InsertionSort(s, order), nil
	case Merge:
		return MergeSort(s, order), nil
	case Quick:
		return QuickSort(s, order), nil
	case RandomizedQuick:
		if rng == nil {
			rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		return RandomizedQuickSort(s, order, rng), nil
	}
	return Stats{}, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
}

// Run copies data, sorts the copy and times only the algorithm call.
// data itself is never modified.
func Run[T cmp.Ordered](kind Kind, data []T, order Order, rng *rand.Rand) (*Result[T], error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	work := Clone(data)

	start := time.Now()
	stats, err := Sort(kind, work, order, rng)
	elapsed := time.Since(start)
	if err != nil {
		return nil, err
	}

	return &Result[T]{
		Kind:    kind,
		Order:   order,
		Input:   Clone(data),
		Sorted:  work,
		Elapsed: elapsed,
		Stats:   stats,
	}, nil
}

// IsSorted reports whether no adjacent pair of s is out of order.
func IsSorted[T cmp.Ordered](s []T, order Order) bool {
	for i := 1; i < len(s); i++ {
		if OutOfOrder(s[i-1], s[i], order) {
			return false
		}
	}
	return true
}

func Clone[T any](s []T) []T {
	c := make([]T, len(s))
	copy(c, s)
	return c
}
