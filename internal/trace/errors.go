package trace

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownAlgorithm indicates a selector outside the supported set.
	ErrUnknownAlgorithm = errors.New("trace: unknown algorithm")

	// ErrInvariant indicates an engine broke a trace invariant.
	ErrInvariant = errors.New("trace: invariant violated")
)

// DefectError reports an internal inconsistency detected during a run.
type DefectError struct {
	Algorithm Algorithm
	Step      int
	Reason    string
	Wrapped   error
}

func (e *DefectError) Error() string {
	msg := fmt.Sprintf("%s sort, step %d: %s", e.Algorithm, e.Step, e.Reason)
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

func (e *DefectError) Unwrap() error {
	if e.Wrapped == nil {
		return ErrInvariant
	}
	return e.Wrapped
}
