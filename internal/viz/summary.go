package viz

import (
	"cmp"
	"fmt"
	"strings"
	"time"

	"github.com/san-kum/sortviz/internal/session"
)

// DefaultLimit is how many elements a sequence shows before truncating.
const DefaultLimit = 100

// FormatSequence renders values as [a, b, c]. With limit > 0, only the
// first limit elements are shown followed by a truncation note.
func FormatSequence[T cmp.Ordered](values []T, limit int) string {
	shown := values
	truncated := limit > 0 && len(values) > limit
	if truncated {
		shown = values[:limit]
	}

	var b strings.Builder
	b.WriteString("[")
	for i, v := range shown {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, v)
	}
	b.WriteString("]")
	if truncated {
		fmt.Fprintf(&b, " ... (truncated, total %d elements)", len(values))
	}
	return b.String()
}

func formatMillis(d time.Duration) string {
	return fmt.Sprintf("%.3f", float64(d.Nanoseconds())/float64(time.Millisecond))
}

// FormatSummary is the result text for one run.
func FormatSummary[T cmp.Ordered](s session.Summary[T], limit int) string {
	var b strings.Builder
	if s.Dataset != "" {
		fmt.Fprintf(&b, "Dataset:    %s\n", s.Dataset)
	}
	fmt.Fprintf(&b, "Algorithm:  %s\n", s.Algorithm)
	fmt.Fprintf(&b, "Order:      %s\n", s.Order)
	fmt.Fprintf(&b, "Size:       %d\n", s.Size)
	fmt.Fprintf(&b, "Time (ms):  %s\n", formatMillis(s.Elapsed))
	fmt.Fprintf(&b, "Time (s):   %.9f\n", s.Elapsed.Seconds())
	fmt.Fprintf(&b, "Work:       %s\n", s.Stats)
	fmt.Fprintf(&b, "\nOriginal:\n%s\n", FormatSequence(s.Original, limit))
	fmt.Fprintf(&b, "\nSorted:\n%s\n", FormatSequence(s.Sorted, limit))
	return b.String()
}

// FormatLoaded is the text shown right after a dataset is loaded.
func FormatLoaded[T cmp.Ordered](s session.Summary[T], limit int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dataset:    %s\n", s.Dataset)
	fmt.Fprintf(&b, "Size:       %d\n", s.Size)
	fmt.Fprintf(&b, "Algorithm:  %s (%s)\n", s.Algorithm, s.Order)
	fmt.Fprintf(&b, "Original:   %s\n", FormatSequence(s.Original, limit))
	return b.String()
}
