// Package core: sentinel error set.
//
// Callers match every sentinel below with errors.Is. Where positional
// context is available (which column, which row, which transition), the
// constructors and validators in this package wrap the sentinel with
// fmt.Errorf("%w: ...") at the point of failure; ErrNilPostStep is
// returned as is. Wrapping preserves errors.Is.
package core

import "errors"

var (
	// ErrBadShape is returned when a requested dimension is invalid
	// (e.g. a negative or zero Nc/Nt/Nd/Nld/Nn where a positive value
	// is required).
	ErrBadShape = errors.New("core: invalid shape")

	// ErrJcLength indicates a Pattern's Jc slice does not have exactly
	// ncol+1 entries.
	ErrJcLength = errors.New("core: jc has wrong length")

	// ErrJcNotMonotonic indicates Jc is not non-decreasing, or
	// Jc[0] != 0.
	ErrJcNotMonotonic = errors.New("core: jc is not monotonically non-decreasing from 0")

	// ErrIrNotStrictMonotonic indicates that row indices within a
	// single column are not strictly increasing.
	ErrIrNotStrictMonotonic = errors.New("core: row indices within a column are not strictly increasing")

	// ErrIrOutOfRange indicates a row index in Ir falls outside
	// [0, nrow).
	ErrIrOutOfRange = errors.New("core: row index out of range")

	// ErrPayloadLength indicates a CSC/CSCInt payload (Pr) does not
	// have the same length as Ir.
	ErrPayloadLength = errors.New("core: payload length does not match nnz")

	// ErrNilPropensity indicates a Model was built with a nil entry in
	// its propensity function list.
	ErrNilPropensity = errors.New("core: nil propensity function")

	// ErrNilPostStep indicates a Model was built with a nil post-step
	// hook.
	ErrNilPostStep = errors.New("core: nil post-step function")

	// ErrInvalidRate indicates a propensity function returned NaN,
	// +/-Inf, or a negative value.
	ErrInvalidRate = errors.New("core: propensity returned a non-finite or negative rate")
)
