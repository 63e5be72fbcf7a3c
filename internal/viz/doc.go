// Package viz provides terminal-based visualization for solver runs.
//
// Static plots render trajectories as ASCII line charts, overlaying the
// numeric solution with the analytic reference when one exists. The
// [Live] model implements an interactive Bubble Tea view that steps a
// solve at a fixed frame rate.
//
// # Key Bindings (live view)
//
//	Space - Pause/Resume
//	R     - Reset to the initial state
//	Q     - Quit
package viz
