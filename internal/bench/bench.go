// Package bench sweeps dataset sizes across algorithms and reports how the
// running time and work counters grow.
package bench

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"slices"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/sortviz/internal/sortalg"
)

var (
	ErrNoSizes     = errors.New("bench: no sizes to sweep")
	ErrInvalidSize = errors.New("bench: invalid size")
)

// Config describes one sweep.
type Config struct {
	Kinds   []sortalg.Kind
	Sizes   []int
	Order   sortalg.Order
	Seed    int64
	Repeats int
	Workers int
}

// DefaultSizes grows geometrically so quadratic and n log n curves separate.
func DefaultSizes() []int {
	return []int{100, 250, 500, 1000, 2000, 4000}
}

func DefaultConfig() Config {
	return Config{
		Kinds:   sortalg.Kinds(),
		Sizes:   DefaultSizes(),
		Order:   sortalg.Ascending,
		Seed:    1,
		Repeats: 3,
		Workers: runtime.NumCPU(),
	}
}

// Point is the best of Repeats runs of one algorithm at one size.
type Point struct {
	Kind    sortalg.Kind  `json:"kind"`
	Size    int           `json:"size"`
	Elapsed time.Duration `json:"elapsed_ns"`
	Stats   sortalg.Stats `json:"stats"`
}

func (p Point) Millis() float64 {
	return float64(p.Elapsed.Nanoseconds()) / float64(time.Millisecond)
}

// Report holds the sweep results, one series per algorithm ordered by size.
type Report struct {
	Sizes  []int
	Kinds  []sortalg.Kind
	Series map[sortalg.Kind][]Point
}

// Millis returns the per-size timings of one algorithm.
func (r *Report) Millis(k sortalg.Kind) []float64 {
	pts := r.Series[k]
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = p.Millis()
	}
	return out
}

// RandomInts returns n values in [0, 10n].
func RandomInts(n int, rng *rand.Rand) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = rng.Intn(10*n + 1)
	}
	return s
}

// Sweep runs every (kind, size) pair on its own goroutine, bounded by
// Workers. Every kind at a given size sorts the same input.
func Sweep(ctx context.Context, cfg Config) (*Report, error) {
	if len(cfg.Sizes) == 0 {
		return nil, ErrNoSizes
	}
	for _, n := range cfg.Sizes {
		if n < 1 {
			return nil, fmt.Errorf("%w %d", ErrInvalidSize, n)
		}
	}
	if len(cfg.Kinds) == 0 {
		cfg.Kinds = sortalg.Kinds()
	}
	if cfg.Repeats < 1 {
		cfg.Repeats = 1
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	sizes := slices.Clone(cfg.Sizes)
	slices.Sort(sizes)
	sizes = slices.Compact(sizes)

	inputs := make([][]int, len(sizes))
	for i, n := range sizes {
		inputs[i] = RandomInts(n, rand.New(rand.NewSource(cfg.Seed+int64(n))))
	}

	points := make([][]Point, len(cfg.Kinds))
	for i := range points {
		points[i] = make([]Point, len(sizes))
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for ki, kind := range cfg.Kinds {
		for si := range sizes {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				pt, err := measure(kind, inputs[si], cfg.Order, cfg.Seed, cfg.Repeats)
				if err != nil {
					return err
				}
				points[ki][si] = pt
				log.WithFields(log.Fields{
					"algorithm": kind.String(),
					"size":      pt.Size,
					"ms":        pt.Millis(),
				}).Debug("bench point")
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rep := &Report{Sizes: sizes, Kinds: slices.Clone(cfg.Kinds), Series: make(map[sortalg.Kind][]Point, len(cfg.Kinds))}
	for ki, kind := range cfg.Kinds {
		rep.Series[kind] = points[ki]
	}
	return rep, nil
}

func measure(kind sortalg.Kind, data []int, order sortalg.Order, seed int64, repeats int) (Point, error) {
	best := Point{Kind: kind, Size: len(data)}
	for r := 0; r < repeats; r++ {
		res, err := sortalg.Run(kind, data, order, rand.New(rand.NewSource(seed+int64(r))))
		if err != nil {
			return Point{}, err
		}
		if !sortalg.IsSorted(res.Sorted, order) {
			return Point{}, fmt.Errorf("bench: %s produced unsorted output at size %d", kind, len(data))
		}
		if r == 0 || res.Elapsed < best.Elapsed {
			best.Elapsed = res.Elapsed
			best.Stats = res.Stats
		}
	}
	return best, nil
}
