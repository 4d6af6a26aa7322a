package sortalg

import (
	"cmp"
	"math/rand"
)

// QuickSort sorts s with Lomuto partitioning around the last element.
func QuickSort[T cmp.Ordered](s []T, order Order) Stats {
	var st Stats
	quickSort(s, 0, len(s)-1, order, nil, &st)
	return st
}

// RandomizedQuickSort swaps a uniformly chosen element of the active range
// into the pivot slot before every partition. rng must not be nil.
func RandomizedQuickSort[T cmp.Ordered](s []T, order Order, rng *rand.Rand) Stats {
	var st Stats
	quickSort(s, 0, len(s)-1, order, rng, &st)
	return st
}

// quickSort recurses into the smaller partition and loops on the larger one,
// so stack depth stays logarithmic even on adversarial input.
func quickSort[T cmp.Ordered](s []T, lo, hi int, order Order, rng *rand.Rand, st *Stats) {
	for lo < hi {
		if rng != nil {
			r := lo + rng.Intn(hi-lo+1)
			if r != hi {
				swap(s, r, hi)
				st.Swaps++
			}
		}
		p := partition(s, lo, hi, order, st)
		if p-lo < hi-p {
			quickSort(s, lo, p-1, order, rng, st)
			lo = p + 1
		} else {
			quickSort(s, p+1, hi, order, rng, st)
			hi = p - 1
		}
	}
}

func partition[T cmp.Ordered](s []T, lo, hi int, order Order, st *Stats) int {
	st.Passes++
	pivot := s[hi]
	i := lo - 1
	for j := lo; j < hi; j++ {
		st.Comparisons++
		if !OutOfOrder(s[j], pivot, order) {
			i++
			if i != j {
				swap(s, i, j)
				st.Swaps++
			}
		}
	}
	if i+1 != hi {
		swap(s, i+1, hi)
		st.Swaps++
	}
	return i + 1
}
