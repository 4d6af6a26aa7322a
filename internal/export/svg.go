package export

import (
	"cmp"
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/sortviz/internal/stepper"
	"github.com/san-kum/sortviz/internal/viz"
)

// SnapshotToSVG draws one visualizer snapshot as a bar chart, each bar
// colored by its role under th.
func SnapshotToSVG[T cmp.Ordered](snap stepper.Snapshot[T], th viz.Theme, width, height int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, th.Panel))

	n := len(snap.Values)
	if n > 0 {
		heights := viz.Bars(snap.Values)
		bw := float64(width) / float64(n)
		gap := 0.0
		if bw >= 4 {
			gap = bw * 0.15
		}
		for i, h := range heights {
			bh := h * float64(height)
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, float64(i)*bw+gap/2, float64(height)-bh, bw-gap, bh, roleFill(snap.Role(i), th)))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func roleFill(r stepper.Role, th viz.Theme) string {
	switch r {
	case stepper.Settled:
		return string(th.Sorted)
	case stepper.Comparing:
		return string(th.Compare)
	}
	return string(th.Bar)
}

type Point struct{ X, Y float64 }

// Series is one named polyline.
type Series struct {
	Name   string
	Color  string
	Points []Point
}

// SeriesToSVG plots every series on shared axes, scaled to the joint bounds
// with 10% padding. Series with fewer than two points are skipped.
func SeriesToSVG(series []Series, width, height int) string {
	first := true
	var minX, maxX, minY, maxY float64
	for _, s := range series {
		for _, p := range s.Points {
			if first {
				minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
				first = false
				continue
			}
			minX, maxX = min(minX, p.X), max(maxX, p.X)
			minY, maxY = min(minY, p.Y), max(maxY, p.Y)
		}
	}
	if first {
		return ""
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for li, s := range series {
		if len(s.Points) < 2 {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, s.Color))
		for i, p := range s.Points {
			x := (p.X - minX) / rangeX * float64(width)
			y := float64(height) - (p.Y-minY)/rangeY*float64(height)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
		sb.WriteString(fmt.Sprintf(`<text x="8" y="%d" fill="%s" font-family="monospace" font-size="12">%s</text>
`, 16+14*li, s.Color, s.Name))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func WriteFile(path, svg string) error {
	return os.WriteFile(path, []byte(svg), 0644)
}
