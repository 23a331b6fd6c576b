// Package engines implements the five sorting algorithms as lazy step producers.
//
// Each engine takes ownership of a working array, sorts it in place and
// yields a [trace.Step] after every state-changing operation:
//
//   - [Bubble]: one step per adjacent swap
//   - [Selection]: one step per outer position, self-swaps included
//   - [Insertion]: one step per shift plus one placement step per key
//   - [Merge]: one step per element written back during a merge
//   - [Quick]: one step per partition swap plus one per pivot placement
//
// The sequences are single-use [iter.Seq] values. Nothing runs until the
// consumer pulls, and an engine returns as soon as the consumer stops
// pulling, so abandoning a run leaves the array exactly as the last
// consumed step showed it.
//
// # Trace quirks
//
// Three behaviours are kept on purpose because consumers count steps:
//
//   - Selection logs the two values read after the swap, and still swaps
//     (and emits) when the minimum is already in place.
//   - Insertion always emits a placement step after the shift loop, even
//     when nothing moved; that step does not add a log line.
//   - Quick recurses explicitly only on the low side of the pivot. The high
//     side is sorted by the same call continuing its loop.
package engines
