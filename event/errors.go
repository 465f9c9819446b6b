// Package event: sentinel error set.
//
// As in core, every sentinel is returned verbatim by validators and
// wrapped with fmt.Errorf("%w: ...") at the call site when positional
// context (which event index, which node) is available.
package event

import "errors"

var (
	// ErrNodeOutOfRange indicates an event's Node (or, for
	// EXTERNAL_TRANSFER, Dest) field falls outside [0, Nn).
	ErrNodeOutOfRange = errors.New("event: node out of range")

	// ErrSelectOutOfRange indicates an event's Select field does not
	// index a valid column of E.
	ErrSelectOutOfRange = errors.New("event: select out of range")

	// ErrShiftOutOfRange indicates an event's Shift field does not
	// index a valid column of S_shift.
	ErrShiftOutOfRange = errors.New("event: shift out of range")

	// ErrProportionOutOfRange indicates N == 0 and Proportion is
	// outside [0,1]. N == 0 with Proportion == 0 is accepted and
	// requests zero individuals.
	ErrProportionOutOfRange = errors.New("event: proportion out of range")

	// ErrUndefinedEvent indicates an event's Kind does not match any
	// of EXIT, ENTER, INTERNAL_TRANSFER, EXTERNAL_TRANSFER.
	ErrUndefinedEvent = errors.New("event: undefined event kind")

	// ErrInsufficientSubpop indicates a sampled count k exceeds the
	// total population available under the event's selector.
	ErrInsufficientSubpop = errors.New("event: requested count exceeds selected subpopulation")

	// ErrMultiTargetEnter indicates an ENTER event's selector column
	// names more than one compartment; ENTER requires a single-target
	// selector.
	ErrMultiTargetEnter = errors.New("event: ENTER requires a single-target selector")

	// ErrShiftTargetOutOfRange indicates an INTERNAL_TRANSFER or
	// EXTERNAL_TRANSFER shift moved a compartment index outside
	// [0, Nc).
	ErrShiftTargetOutOfRange = errors.New("event: shifted compartment index out of range")

	// ErrNegativeState indicates an event would drive a compartment
	// below zero.
	ErrNegativeState = errors.New("event: compartment would go negative")
)
