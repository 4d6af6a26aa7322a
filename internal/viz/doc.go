// Package viz renders sorting sessions in the terminal.
//
// The interactive front end is a Bubble Tea [Model] wrapping a
// session. Bars are drawn on a [Canvas] of eighth-block cells, colored by
// the role each element plays in the current step:
//
//   - bar color: not yet examined
//   - compare color: the adjacent pair under comparison
//   - sorted color: settled at the end of the sequence
//
// # Key Bindings
//
//	Space - Play / pause / resume
//	R     - Replay from the original dataset
//	A     - Next algorithm
//	O     - Toggle sort order
//	+/-   - Faster / slower
//	T     - Cycle color themes
//	?     - Show help overlay
//
// [PlainRenderer] draws the same frames without color for piping.
package viz
