// Package solver: sentinel error set.
//
// As in core and event, sentinels are returned verbatim and wrapped
// with fmt.Errorf("%w: ...") at the point of failure for positional
// context. A run-time failure observed by a worker (INVALID_RATE,
// NEGATIVE_STATE, an event error, a model error) is recorded on that
// worker's thread-local state and surfaced by the orchestrator after
// the day completes — see Run.
package solver

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocMemoryBuffer indicates a setup-time allocation or input
	// validation failure (e.g. a dense sink sized inconsistently with
	// Dims).
	ErrAllocMemoryBuffer = errors.New("solver: allocation or setup failed")

	// ErrInvalidThreadCount indicates a negative thread count was
	// requested. Zero means "use all available"; negative is always
	// rejected.
	ErrInvalidThreadCount = errors.New("solver: invalid thread count")

	// ErrNegativeState indicates a transition or event drove a
	// compartment below zero.
	ErrNegativeState = errors.New("solver: compartment went negative")

	// ErrInvalidRate indicates a propensity function returned NaN,
	// +/-Inf, or a negative value.
	ErrInvalidRate = errors.New("solver: propensity returned a non-finite or negative rate")

	// ErrRateDrift indicates the debug-mode rate-rebuild assertion
	// found the incrementally maintained sum_t_rate diverged from a
	// fresh reduction by more than the allowed tolerance.
	ErrRateDrift = errors.New("solver: incremental rate sum diverged from a fresh rebuild")

	// ErrSinkNotConfigured indicates neither a dense nor a sparse sink
	// was supplied in Input.
	ErrSinkNotConfigured = errors.New("solver: no trajectory sink configured")
)

// ModelError wraps a *core.ModelError surfaced by a post-step hook so
// callers can distinguish "the model rejected this" from a framework
// sentinel above, while still satisfying Run's single error return.
type ModelError struct {
	Code int
	Node int
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("solver: model reported error code %d at node %d", e.Code, e.Node)
}
