package bench

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/san-kum/sortviz/internal/sortalg"
)

func smallConfig() Config {
	return Config{
		Kinds:   []sortalg.Kind{sortalg.Bubble, sortalg.Merge, sortalg.Quick},
		Sizes:   []int{64, 16, 32, 16},
		Seed:    7,
		Repeats: 2,
		Workers: 4,
	}
}

func TestSweep(t *testing.T) {
	rep, err := Sweep(context.Background(), smallConfig())
	if err != nil {
		t.Fatalf("Sweep() error = %v", err)
	}

	wantSizes := []int{16, 32, 64}
	if len(rep.Sizes) != len(wantSizes) {
		t.Fatalf("Sizes = %v, want %v", rep.Sizes, wantSizes)
	}
	for i, n := range wantSizes {
		if rep.Sizes[i] != n {
			t.Errorf("Sizes[%d] = %d, want %d", i, rep.Sizes[i], n)
		}
	}

	for _, k := range rep.Kinds {
		pts := rep.Series[k]
		if len(pts) != len(wantSizes) {
			t.Fatalf("%s: %d points, want %d", k, len(pts), len(wantSizes))
		}
		for i, p := range pts {
			if p.Kind != k || p.Size != wantSizes[i] {
				t.Errorf("%s point %d = %+v", k, i, p)
			}
			if p.Stats.Comparisons == 0 {
				t.Errorf("%s size %d: no comparisons recorded", k, p.Size)
			}
		}
	}
}

func TestSweepSameInputAcrossKinds(t *testing.T) {
	cfg := smallConfig()
	cfg.Kinds = []sortalg.Kind{sortalg.Bubble, sortalg.Insertion}
	rep, err := Sweep(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Sweep() error = %v", err)
	}
	// bubble swaps and insertion shifts both count inversions
	for i := range rep.Sizes {
		b := rep.Series[sortalg.Bubble][i].Stats.Swaps
		in := rep.Series[sortalg.Insertion][i].Stats.Swaps
		if b != in {
			t.Errorf("size %d: bubble swaps %d != insertion shifts %d", rep.Sizes[i], b, in)
		}
	}
}

func TestSweepErrors(t *testing.T) {
	if _, err := Sweep(context.Background(), Config{}); !errors.Is(err, ErrNoSizes) {
		t.Errorf("empty sizes: err = %v, want ErrNoSizes", err)
	}

	for _, n := range []int{-5, 0} {
		cfg := smallConfig()
		cfg.Sizes = []int{10, n}
		if _, err := Sweep(context.Background(), cfg); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("size %d: err = %v, want ErrInvalidSize", n, err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Sweep(ctx, smallConfig()); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled: err = %v, want context.Canceled", err)
	}
}

func TestRandomInts(t *testing.T) {
	a := RandomInts(50, rand.New(rand.NewSource(3)))
	b := RandomInts(50, rand.New(rand.NewSource(3)))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed differs at %d", i)
		}
		if a[i] < 0 || a[i] > 500 {
			t.Errorf("value %d out of range", a[i])
		}
	}
}

func TestPlotAndTable(t *testing.T) {
	rep, err := Sweep(context.Background(), smallConfig())
	if err != nil {
		t.Fatal(err)
	}

	plot := Plot(rep, 40, 8)
	if !strings.Contains(plot, "time (ms) by size: 16, 32, 64") {
		t.Errorf("plot missing caption:\n%s", plot)
	}
	for _, k := range rep.Kinds {
		if !strings.Contains(plot, k.String()) {
			t.Errorf("plot legend missing %s", k)
		}
	}

	table := Table(rep)
	lines := strings.Split(strings.TrimSpace(table), "\n")
	if want := 1 + len(rep.Kinds)*len(rep.Sizes); len(lines) != want {
		t.Errorf("table has %d lines, want %d", len(lines), want)
	}
	if !strings.HasPrefix(lines[0], "ALGORITHM") {
		t.Errorf("table header = %q", lines[0])
	}
}

func TestFastest(t *testing.T) {
	rep := &Report{
		Sizes: []int{10, 20},
		Kinds: []sortalg.Kind{sortalg.Bubble, sortalg.Merge},
		Series: map[sortalg.Kind][]Point{
			sortalg.Bubble: {{Elapsed: 1}, {Elapsed: 50}},
			sortalg.Merge:  {{Elapsed: 2}, {Elapsed: 10}},
		},
	}
	k, ok := Fastest(rep)
	if !ok || k != sortalg.Merge {
		t.Errorf("Fastest() = %v, %v; want merge", k, ok)
	}
	if _, ok := Fastest(&Report{}); ok {
		t.Error("Fastest() on empty report reported a winner")
	}
}

func BenchmarkSorts(b *testing.B) {
	data := RandomInts(1000, rand.New(rand.NewSource(1)))
	for _, k := range sortalg.Kinds() {
		b.Run(k.String(), func(b *testing.B) {
			rng := rand.New(rand.NewSource(1))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := sortalg.Run(k, data, sortalg.Ascending, rng); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
