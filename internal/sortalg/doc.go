// Package sortalg implements the sort engine: six classic comparison sorts
// over ordered elements (ints and strings), in ascending or descending order.
//
//   - [BubbleSort], [SelectionSort], [InsertionSort]: quadratic, in place
//   - [MergeSort]: stable, one shared auxiliary buffer
//   - [QuickSort], [RandomizedQuickSort]: Lomuto partition around the last element
//
// Every function sorts in place and returns [Stats] describing the work done.
// [Run] sorts a private copy and measures the algorithm call alone.
//
// # Example
//
//	res, _ := sortalg.Run(sortalg.Merge, []string{"banana", "apple"}, sortalg.Ascending, nil)
//	fmt.Println(res.Sorted, res.Seconds())
//
// All kinds produce the same output for the same input and order. Only merge
// sort is stable, which is invisible here since equal elements are identical.
package sortalg
