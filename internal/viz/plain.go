package viz

import (
	"cmp"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/san-kum/sortviz/internal/stepper"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// PlainRenderer draws snapshots as uncolored text frames, for terminals
// where the full TUI is unavailable or for piping a trace to a file.
type PlainRenderer struct {
	w             io.Writer
	width, height int
	animate       bool
	delay         time.Duration
	canvas        *Canvas
}

// NewPlainRenderer writes frames to w. With animate set, each frame clears
// the screen and waits delay before returning.
func NewPlainRenderer(w io.Writer, width, height int, animate bool, delay time.Duration) *PlainRenderer {
	return &PlainRenderer{
		w:       w,
		width:   width,
		height:  height,
		animate: animate,
		delay:   delay,
		canvas:  NewCanvas(width, height),
	}
}

func (r *PlainRenderer) Start() {
	if r.animate {
		fmt.Fprint(r.w, hideCursor)
	}
}

func (r *PlainRenderer) Stop() {
	if r.animate {
		fmt.Fprint(r.w, showCursor)
	}
}

// markers returns one rune per column: '^' under compared bars, '=' under
// settled ones.
func markers[T cmp.Ordered](snap stepper.Snapshot[T], width int) string {
	n := len(snap.Values)
	row := []rune(strings.Repeat(" ", width))
	if n == 0 {
		return string(row)
	}
	for x := 0; x < width; x++ {
		var i int
		if n >= width {
			i = x * n / width
		} else {
			i = x / (width / n)
			if i >= n {
				break
			}
		}
		switch snap.Role(i) {
		case stepper.Comparing:
			row[x] = '^'
		case stepper.Settled:
			row[x] = '='
		}
	}
	return string(row)
}

// Frame renders one snapshot without writing it.
func Frame[T cmp.Ordered](r *PlainRenderer, step int, snap stepper.Snapshot[T]) string {
	Draw(r.canvas, snap, ThemeMinimal)

	var b strings.Builder
	if r.animate {
		b.WriteString(clearScreen)
	}
	fmt.Fprintf(&b, "  step %d  pass %d  index %d  %s\n", step, snap.Cursor.Outer, snap.Cursor.Inner, snap.State)
	b.WriteString("  " + strings.Repeat("-", r.width) + "\n")
	for _, line := range strings.Split(strings.TrimRight(r.canvas.Plain(), "\n"), "\n") {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("  " + markers(snap, r.width) + "\n")
	b.WriteString("  " + strings.Repeat("-", r.width) + "\n")
	fmt.Fprintf(&b, "  %s\n", snap.Stats)
	return b.String()
}

// Render writes one frame and, when animating, sleeps for the frame delay.
func Render[T cmp.Ordered](r *PlainRenderer, step int, snap stepper.Snapshot[T]) error {
	if _, err := io.WriteString(r.w, Frame(r, step, snap)); err != nil {
		return err
	}
	if r.animate && r.delay > 0 {
		time.Sleep(r.delay)
	}
	return nil
}
