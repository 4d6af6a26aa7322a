package viz

import (
	"cmp"
	"slices"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/stepper"
)

// Bars maps values to bar heights in (0, 1]. Integers are proportional after
// shifting so the minimum still shows; strings are ranked.
func Bars[T cmp.Ordered](values []T) []float64 {
	heights := make([]float64, len(values))
	if len(values) == 0 {
		return heights
	}

	if ints, ok := any(values).([]int); ok {
		lo, hi := slices.Min(ints), slices.Max(ints)
		// float64 so the full int range cannot overflow the span
		span := float64(hi) - float64(lo) + 1
		for i, v := range ints {
			heights[i] = (float64(v) - float64(lo) + 1) / span
		}
		return heights
	}

	distinct := slices.Clone(values)
	slices.Sort(distinct)
	distinct = slices.Compact(distinct)
	for i, v := range values {
		rank, _ := slices.BinarySearch(distinct, v)
		heights[i] = float64(rank+1) / float64(len(distinct))
	}
	return heights
}

func roleColor(r stepper.Role, th Theme) lipgloss.Color {
	switch r {
	case stepper.Settled:
		return th.Sorted
	case stepper.Comparing:
		return th.Compare
	}
	return th.Bar
}

// Draw paints a snapshot onto the canvas. With more elements than columns,
// each column samples one element; otherwise elements get equal-width bars
// with a one column gap when there is room.
func Draw[T cmp.Ordered](c *Canvas, snap stepper.Snapshot[T], th Theme) {
	c.Clear()
	n := len(snap.Values)
	if n == 0 {
		return
	}
	heights := Bars(snap.Values)

	if n >= c.Width {
		for x := 0; x < c.Width; x++ {
			i := x * n / c.Width
			c.SetColumn(x, heights[i], roleColor(snap.Role(i), th))
		}
		return
	}

	bw := c.Width / n
	gap := 0
	if bw >= 3 {
		gap = 1
	}
	for i, h := range heights {
		color := roleColor(snap.Role(i), th)
		for dx := 0; dx < bw-gap; dx++ {
			c.SetColumn(i*bw+dx, h, color)
		}
	}
}

// RenderBars draws a snapshot into a fresh width x height chart.
func RenderBars[T cmp.Ordered](snap stepper.Snapshot[T], width, height int, th Theme) string {
	c := NewCanvas(width, height)
	Draw(c, snap, th)
	return c.String()
}
