// Package stepper replays bubble sort as a state machine, one micro-step per
// external tick, so a renderer can draw progress without blocking.
//
// States:
//
//	Idle -> Running -> Completed
//	Running <-> Paused
//	any -> Idle (Reset)
//
// A micro-step is either one comparison (with a possible swap) or the close of
// a pass. Every [Snapshot] carries the working array and the [Cursor]; the
// renderer derives highlights from them with [RoleOf].
//
// # Thread Safety
//
// A Visualizer is NOT thread-safe. The host calls Step from a single loop.
package stepper
