package stepper_test

import (
	"errors"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/dataset"
	"github.com/san-kum/sortviz/internal/sortalg"
	"github.com/san-kum/sortviz/internal/stepper"
)

func cursors[T int | string](trace []stepper.Snapshot[T]) []stepper.Cursor {
	out := make([]stepper.Cursor, len(trace))
	for i, s := range trace {
		out[i] = s.Cursor
	}
	return out
}

var _ = Describe("Visualizer", func() {
	Describe("construction", func() {
		It("rejects an empty dataset", func() {
			_, err := stepper.New([]int{}, sortalg.Ascending)
			Expect(err).To(MatchError(stepper.ErrEmpty))
			Expect(errors.Is(err, dataset.ErrEmpty)).To(BeTrue())
		})

		It("starts idle with a copy of the data", func() {
			data := []int{3, 1, 2}
			v, err := stepper.New(data, sortalg.Ascending)
			Expect(err).NotTo(HaveOccurred())
			data[0] = 99

			Expect(v.State()).To(Equal(stepper.Idle))
			Expect(v.Snapshot().Values).To(Equal([]int{3, 1, 2}))
			Expect(v.Cursor()).To(Equal(stepper.Cursor{}))
		})
	})

	Describe("bubble sort trace", func() {
		It("matches the hand-computed descending trace for [5 3 8 1]", func() {
			v, err := stepper.New([]int{5, 3, 8, 1}, sortalg.Descending)
			Expect(err).NotTo(HaveOccurred())

			trace, err := v.Run()
			Expect(err).NotTo(HaveOccurred())

			Expect(cursors(trace)).To(Equal([]stepper.Cursor{
				{Outer: 0, Inner: 1},
				{Outer: 0, Inner: 2},
				{Outer: 0, Inner: 3},
				{Outer: 1, Inner: 0},
				{Outer: 1, Inner: 1},
				{Outer: 1, Inner: 2},
				{Outer: 2, Inner: 0},
				{Outer: 2, Inner: 1},
				{Outer: 4, Inner: 0},
			}))
			Expect(trace[1].Values).To(Equal([]int{5, 8, 3, 1}))
			Expect(trace[4].Values).To(Equal([]int{8, 5, 3, 1}))

			last := trace[len(trace)-1]
			Expect(last.Done()).To(BeTrue())
			Expect(last.Values).To(Equal([]int{8, 5, 3, 1}))
			Expect(last.Stats).To(Equal(sortalg.Stats{Comparisons: 6, Swaps: 2, Passes: 3}))
		})

		It("completes sorted input after exactly one pass with no swaps", func() {
			v, _ := stepper.New([]int{1, 2, 3}, sortalg.Ascending)
			trace, err := v.Run()
			Expect(err).NotTo(HaveOccurred())

			Expect(trace).To(HaveLen(3))
			Expect(cursors(trace)).To(Equal([]stepper.Cursor{
				{Outer: 0, Inner: 1},
				{Outer: 0, Inner: 2},
				{Outer: 3, Inner: 0},
			}))
			stats := v.Stats()
			Expect(stats.Passes).To(Equal(1))
			Expect(stats.Swaps).To(BeZero())
		})

		It("completes a single element on the first tick", func() {
			v, _ := stepper.New([]string{"only"}, sortalg.Descending)
			trace, err := v.Run()
			Expect(err).NotTo(HaveOccurred())
			Expect(trace).To(HaveLen(1))
			Expect(trace[0].Done()).To(BeTrue())
		})

		DescribeTable("ends with the engine's bubble sort result",
			func(order sortalg.Order, seed int64) {
				rng := rand.New(rand.NewSource(seed))
				data := make([]int, 40)
				for i := range data {
					data[i] = rng.Intn(50) - 10
				}

				want, err := sortalg.Run(sortalg.Bubble, data, order, nil)
				Expect(err).NotTo(HaveOccurred())

				v, _ := stepper.New(data, order)
				trace, err := v.Run()
				Expect(err).NotTo(HaveOccurred())
				Expect(trace[len(trace)-1].Values).To(Equal(want.Sorted))
				Expect(v.Stats().Swaps).To(Equal(want.Stats.Swaps))
				Expect(v.Stats().Comparisons).To(Equal(want.Stats.Comparisons))
			},
			Entry("ascending", sortalg.Ascending, int64(1)),
			Entry("descending", sortalg.Descending, int64(2)),
			Entry("ascending again", sortalg.Ascending, int64(3)),
		)

		It("sorts strings lexicographically", func() {
			v, _ := stepper.New([]string{"banana", "apple", "cherry"}, sortalg.Ascending)
			trace, err := v.Run()
			Expect(err).NotTo(HaveOccurred())
			Expect(trace[len(trace)-1].Values).To(Equal([]string{"apple", "banana", "cherry"}))
		})

		It("keeps the working array a permutation of the dataset on every tick", func() {
			data := []int{4, 4, 9, 0, -3, 4, 7}
			v, _ := stepper.New(data, sortalg.Ascending)
			trace, _ := v.Run()
			for _, snap := range trace {
				Expect(snap.Values).To(ConsistOf(4, 4, 9, 0, -3, 4, 7))
			}
		})
	})

	Describe("pause and resume", func() {
		It("produces the same trace as an uninterrupted run", func() {
			data := []int{9, 2, 7, 7, 1, 5}

			straight, _ := stepper.New(data, sortalg.Descending)
			want, _ := straight.Run()

			v, _ := stepper.New(data, sortalg.Descending)
			Expect(v.Start()).To(Succeed())
			var got []stepper.Snapshot[int]
			for v.State() != stepper.Completed {
				snap, err := v.Step()
				Expect(err).NotTo(HaveOccurred())
				got = append(got, snap)

				if len(got)%2 == 0 && !snap.Done() {
					Expect(v.Pause()).To(Succeed())
					before := v.Snapshot()
					_, err := v.Step()
					Expect(err).To(MatchError(stepper.ErrNotRunning))
					Expect(v.Snapshot()).To(Equal(before))
					Expect(v.Resume()).To(Succeed())
				}
			}
			Expect(got).To(Equal(want))
		})

		It("rejects pause when not running and resume when not paused", func() {
			v, _ := stepper.New([]int{2, 1}, sortalg.Ascending)
			Expect(v.Pause()).To(MatchError(stepper.ErrInvalidTransition))
			Expect(v.Resume()).To(MatchError(stepper.ErrInvalidTransition))

			Expect(v.Start()).To(Succeed())
			Expect(v.Start()).To(MatchError(stepper.ErrInvalidTransition))
			Expect(v.Resume()).To(MatchError(stepper.ErrInvalidTransition))
		})

		It("refuses to step while idle", func() {
			v, _ := stepper.New([]int{2, 1}, sortalg.Ascending)
			_, err := v.Step()
			Expect(err).To(MatchError(stepper.ErrNotRunning))
			Expect(v.Cursor()).To(Equal(stepper.Cursor{}))
		})
	})

	Describe("reset and replay", func() {
		It("reproduces an identical trace", func() {
			v, _ := stepper.New([]int{6, 1, 8, 3, 3, 0}, sortalg.Ascending)
			first, err := v.Run()
			Expect(err).NotTo(HaveOccurred())

			Expect(v.Start()).To(MatchError(stepper.ErrCompleted))

			v.Reset()
			Expect(v.State()).To(Equal(stepper.Idle))
			Expect(v.Snapshot().Values).To(Equal([]int{6, 1, 8, 3, 3, 0}))
			Expect(v.Stats()).To(Equal(sortalg.Stats{}))

			second, err := v.Run()
			Expect(err).NotTo(HaveOccurred())
			Expect(second).To(Equal(first))
		})

		It("can reset mid-run", func() {
			v, _ := stepper.New([]int{3, 2, 1}, sortalg.Ascending)
			Expect(v.Start()).To(Succeed())
			_, _ = v.Step()
			_, _ = v.Step()
			Expect(v.Pause()).To(Succeed())

			v.Reset()
			Expect(v.Snapshot().Values).To(Equal([]int{3, 2, 1}))
			Expect(v.Cursor()).To(Equal(stepper.Cursor{}))
		})
	})

	Describe("settle", func() {
		It("jumps straight to a completed final answer", func() {
			v, _ := stepper.New([]int{3, 1, 2}, sortalg.Ascending)
			Expect(v.Settle([]int{1, 2, 3})).To(Succeed())
			Expect(v.State()).To(Equal(stepper.Completed))

			snap := v.Snapshot()
			Expect(snap.Values).To(Equal([]int{1, 2, 3}))
			for i := range snap.Values {
				Expect(snap.Role(i)).To(Equal(stepper.Settled))
			}
		})

		It("rejects a result of the wrong length", func() {
			v, _ := stepper.New([]int{3, 1, 2}, sortalg.Ascending)
			Expect(v.Settle([]int{1, 2})).To(MatchError(stepper.ErrLengthMismatch))
			Expect(v.State()).To(Equal(stepper.Idle))
		})

		It("rejects settling during a run", func() {
			v, _ := stepper.New([]int{3, 1, 2}, sortalg.Ascending)
			Expect(v.Start()).To(Succeed())
			Expect(v.Settle([]int{1, 2, 3})).To(MatchError(stepper.ErrInvalidTransition))
		})
	})
})

var _ = Describe("RoleOf", func() {
	It("marks the trailing outer positions settled", func() {
		c := stepper.Cursor{Outer: 2, Inner: 1}
		roles := make([]stepper.Role, 6)
		for i := range roles {
			roles[i] = stepper.RoleOf(i, 6, c)
		}
		Expect(roles).To(Equal([]stepper.Role{
			stepper.Unsorted, stepper.Comparing, stepper.Comparing,
			stepper.Unsorted, stepper.Settled, stepper.Settled,
		}))
	})

	It("settles everything once outer covers the array", func() {
		for i := 0; i < 4; i++ {
			Expect(stepper.RoleOf(i, 4, stepper.Cursor{Outer: 4})).To(Equal(stepper.Settled))
		}
	})
})
