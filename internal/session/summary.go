package session

import (
	"cmp"
	"time"

	"github.com/san-kum/sortviz/internal/sortalg"
)

// Summary is the text a render sink shows after a run.
type Summary[T cmp.Ordered] struct {
	Dataset   string
	Algorithm string
	Kind      sortalg.Kind
	Order     sortalg.Order
	Size      int
	Elapsed   time.Duration
	Original  []T
	Sorted    []T
	Stats     sortalg.Stats
}

var registry = sortalg.NewRegistry()

func (s *Session[T]) Summary() (Summary[T], error) {
	if s.result == nil {
		return Summary[T]{}, ErrNoDataset
	}
	return Summary[T]{
		Dataset:   s.name,
		Algorithm: registry.Title(s.kind),
		Kind:      s.kind,
		Order:     s.order,
		Size:      len(s.data),
		Elapsed:   s.result.Elapsed,
		Original:  sortalg.Clone(s.data),
		Sorted:    sortalg.Clone(s.result.Sorted),
		Stats:     s.result.Stats,
	}, nil
}
