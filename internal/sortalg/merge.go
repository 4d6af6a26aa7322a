package sortalg

import "cmp"

// MergeSort is a stable top-down merge sort. A single auxiliary buffer of
// len(s) is shared by every merge. Swaps counts element writes back into s.
func MergeSort[T cmp.Ordered](s []T, order Order) Stats {
	var st Stats
	if len(s) < 2 {
		return st
	}
	aux := make([]T, len(s))
	mergeSort(s, aux, 0, len(s), order, &st)
	return st
}

func mergeSort[T cmp.Ordered](s, aux []T, lo, hi int, order Order, st *Stats) {
	if hi-lo < 2 {
		return
	}
	mid := lo + (hi-lo)/2
	mergeSort(s, aux, lo, mid, order, st)
	mergeSort(s, aux, mid, hi, order, st)
	merge(s, aux, lo, mid, hi, order, st)
}

func merge[T cmp.Ordered](s, aux []T, lo, mid, hi int, order Order, st *Stats) {
	st.Passes++
	copy(aux[lo:hi], s[lo:hi])
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		st.Comparisons++
		// ties come from the left run
		if !OutOfOrder(aux[i], aux[j], order) {
			s[k] = aux[i]
			i++
		} else {
			s[k] = aux[j]
			j++
		}
		k++
		st.Swaps++
	}
	for ; i < mid; i, k = i+1, k+1 {
		s[k] = aux[i]
		st.Swaps++
	}
	for ; j < hi; j, k = j+1, k+1 {
		s[k] = aux[j]
		st.Swaps++
	}
}
