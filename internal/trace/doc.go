// Package trace defines the data units shared by every sorting engine.
//
// A sorting run produces a sequence of [Step] values:
//
//   - [Step]: snapshot of the working array, the positions just touched and
//     the cumulative operation log at the moment of emission
//   - [Log]: append-only list of human-readable operations for one run
//   - [Algorithm]: closed set of supported engines
//
// # Snapshots
//
// Step.Array is a copy taken when the step is emitted. Step.Log is a
// capacity-clipped view of the run's [Log]; log entries are never rewritten,
// so a step keeps showing exactly the lines that existed when it was emitted.
// Consumers must treat both slices as read-only.
//
// # Defects
//
// A broken invariant (array length changing mid-run, a highlighted position
// outside the array) is a programming error. Engines panic with a
// [*DefectError]; the driver recovers it where a caller asked for an error.
package trace
