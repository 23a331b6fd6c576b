// Package viz provides the terminal viewer for sorting traces.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: plays one run, pulling a step per tick
//   - [RenderBars]: vertical bar chart with highlighted positions
//   - the menu app: algorithm selection and input settings
//   - five built-in color themes
//
// # Key Bindings
//
//	Space - Pause/Resume
//	N     - Single step while paused
//	R     - Restart the run on the same input
//	+/-   - Faster/slower
//	T     - Cycle color themes
//	?     - Show help overlay
//
// Pacing lives here, not in the engines: the viewer asks for the next step
// only when its tick fires.
package viz
