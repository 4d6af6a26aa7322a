package bench

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/sortviz/internal/sortalg"
)

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Red,
	asciigraph.Yellow,
	asciigraph.Green,
	asciigraph.Blue,
	asciigraph.Magenta,
	asciigraph.Cyan,
}

// Plot draws one line per algorithm, time in milliseconds against the
// sweep's sizes.
func Plot(r *Report, width, height int) string {
	data := make([][]float64, 0, len(r.Kinds))
	colors := make([]asciigraph.AnsiColor, 0, len(r.Kinds))
	legend := make([]string, 0, len(r.Kinds))
	for i, k := range r.Kinds {
		data = append(data, r.Millis(k))
		c := seriesColors[i%len(seriesColors)]
		colors = append(colors, c)
		legend = append(legend, c.String()+"━ "+k.String()+asciigraph.Default.String())
	}

	sizes := make([]string, len(r.Sizes))
	for i, n := range r.Sizes {
		sizes[i] = fmt.Sprint(n)
	}

	graph := asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.SeriesColors(colors...),
		asciigraph.Caption("time (ms) by size: "+strings.Join(sizes, ", ")),
	)
	return graph + "\n" + strings.Join(legend, "  ") + "\n"
}

// Table renders the report as aligned columns: size, time and work.
func Table(r *Report) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tSIZE\tTIME (ms)\tCOMPARISONS\tSWAPS\tPASSES")
	for _, k := range r.Kinds {
		for _, p := range r.Series[k] {
			fmt.Fprintf(w, "%s\t%d\t%.3f\t%d\t%d\t%d\n",
				k, p.Size, p.Millis(), p.Stats.Comparisons, p.Stats.Swaps, p.Stats.Passes)
		}
	}
	w.Flush()
	return b.String()
}

// Fastest returns the algorithm with the lowest time at the largest size.
func Fastest(r *Report) (sortalg.Kind, bool) {
	if len(r.Sizes) == 0 || len(r.Kinds) == 0 {
		return 0, false
	}
	last := len(r.Sizes) - 1
	best := r.Kinds[0]
	for _, k := range r.Kinds[1:] {
		if r.Series[k][last].Elapsed < r.Series[best][last].Elapsed {
			best = k
		}
	}
	return best, true
}
