package sortalg

import "cmp"

// BubbleSort sorts s in place with adjacent swaps. Each pass leaves one more
// element settled at the end; a pass without swaps ends the sort.
func BubbleSort[T cmp.Ordered](s []T, order Order) Stats {
	var st Stats
	n := len(s)
	for i := 0; i < n-1; i++ {
		st.Passes++
		swapped := false
		for j := 0; j < n-1-i; j++ {
			st.Comparisons++
			if OutOfOrder(s[j], s[j+1], order) {
				swap(s, j, j+1)
				st.Swaps++
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return st
}

// SelectionSort moves the extreme of the unsorted suffix into place, one
// position per pass.
func SelectionSort[T cmp.Ordered](s []T, order Order) Stats {
	var st Stats
	n := len(s)
	for i := 0; i < n-1; i++ {
		st.Passes++
		best := i
		for j := i + 1; j < n; j++ {
			st.Comparisons++
			if OutOfOrder(s[best], s[j], order) {
				best = j
			}
		}
		if best != i {
			swap(s, i, best)
			st.Swaps++
		}
	}
	return st
}

// InsertionSort shifts each element left until it meets one that is not out
// of order with it. Swaps counts element shifts.
func InsertionSort[T cmp.Ordered](s []T, order Order) Stats {
	var st Stats
	for i := 1; i < len(s); i++ {
		st.Passes++
		key := s[i]
		j := i - 1
		for j >= 0 {
			st.Comparisons++
			if !OutOfOrder(s[j], key, order) {
				break
			}
			s[j+1] = s[j]
			st.Swaps++
			j--
		}
		s[j+1] = key
	}
	return st
}
