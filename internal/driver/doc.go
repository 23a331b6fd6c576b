// Package driver selects a sorting engine by name and hands its steps to a
// consumer one at a time.
//
//	run, err := driver.Start("quick", []int{5, 3, 8, 1})
//	if err != nil {
//	    return err // trace.ErrUnknownAlgorithm, before any step exists
//	}
//	defer run.Stop()
//	for step, ok := run.Next(); ok; step, ok = run.Next() {
//	    render(step)
//	}
//
// A [Run] is pull-based: the engine is suspended between calls to
// [Run.Next] and never computes ahead of the consumer. Pacing is entirely
// the consumer's business. Runs are not safe for concurrent use; each
// consumer starts its own.
package driver
