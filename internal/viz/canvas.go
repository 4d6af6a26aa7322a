package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Eighth blocks, lowest to full. A cell shows levels 0..8.
var blocks = [9]rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Canvas is a grid of vertical bars. Each column has a height in eighths of
// a cell and a color.
type Canvas struct {
	Width, Height int
	levels        []int
	colors        []lipgloss.Color
}

func NewCanvas(w, h int) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Canvas{
		Width:  w,
		Height: h,
		levels: make([]int, w),
		colors: make([]lipgloss.Color, w),
	}
}

// SetColumn sets column x to a height fraction in [0, 1].
func (c *Canvas) SetColumn(x int, frac float64, color lipgloss.Color) {
	if x < 0 || x >= c.Width {
		return
	}
	switch {
	case frac < 0:
		frac = 0
	case frac > 1:
		frac = 1
	}
	c.levels[x] = int(frac*float64(c.Height*8) + 0.5)
	c.colors[x] = color
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.levels {
		c.levels[i] = 0
		c.colors[i] = ""
	}
}

// cell returns the block for column x on row y, counted from the top.
func (c *Canvas) cell(x, y int) rune {
	floor := (c.Height - 1 - y) * 8
	switch level := c.levels[x] - floor; {
	case level >= 8:
		return blocks[8]
	case level <= 0:
		return blocks[0]
	default:
		return blocks[level]
	}
}

// Plain renders the canvas without color.
func (c *Canvas) Plain() string {
	var b strings.Builder
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			b.WriteRune(c.cell(x, y))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// String renders the canvas with each run of same-colored cells styled once.
func (c *Canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.Height; y++ {
		x := 0
		for x < c.Width {
			color := c.colors[x]
			var run strings.Builder
			for x < c.Width && c.colors[x] == color {
				run.WriteRune(c.cell(x, y))
				x++
			}
			if color == "" {
				b.WriteString(run.String())
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(color).Render(run.String()))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
