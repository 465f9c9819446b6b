package event

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/siminf/core"
)

// ApplyE1 applies a local event (EXIT, ENTER, INTERNAL_TRANSFER) to u,
// the Nc-length compartment vector of the event's own node. Callers
// must not pass an EXTERNAL_TRANSFER event here — use ApplyE2.
//
// Errors: ErrUndefinedEvent, ErrMultiTargetEnter,
// ErrInsufficientSubpop, ErrShiftTargetOutOfRange.
//
// Complexity: O(len(selector column) * k).
func ApplyE1(r *rand.Rand, e Event, E core.Pattern, shift core.CSCInt, u []int) error {
	cols := E.Column(e.Select)
	total := subpopTotal(u, cols)
	k := e.count(total)

	switch e.Kind {
	case EXIT:
		drawn, err := SampleSubpop(r, u, cols, k)
		if err != nil {
			return err
		}
		for i, c := range cols {
			u[c] -= drawn[i]
		}
		return nil

	case ENTER:
		if len(cols) != 1 {
			return ErrMultiTargetEnter
		}
		u[cols[0]] += k
		return nil

	case INTERNAL_TRANSFER:
		drawn, err := SampleSubpop(r, u, cols, k)
		if err != nil {
			return err
		}
		for i, c := range cols {
			if drawn[i] == 0 {
				continue
			}
			if target := c + shiftOffset(shift, e.Shift, c); target < 0 || target >= len(u) {
				return fmt.Errorf("%w: compartment %d + shift -> %d", ErrShiftTargetOutOfRange, c, target)
			}
		}
		for i, c := range cols {
			x := drawn[i]
			if x == 0 {
				continue
			}
			target := c + shiftOffset(shift, e.Shift, c)
			u[c] -= x
			u[target] += x
		}
		return nil

	default:
		return fmt.Errorf("%w: kind=%d in ApplyE1", ErrUndefinedEvent, e.Kind)
	}
}

// ApplyE2 applies an EXTERNAL_TRANSFER event, sampling from uSrc (the
// source node's compartment vector) and adding the shifted multiset
// into uDest (the destination node's compartment vector). It is the
// caller's responsibility to serialize calls to ApplyE2 so that no two
// calls touch the same node concurrently — the single-writer
// discipline of the E2 stage.
//
// Errors: ErrInsufficientSubpop, ErrShiftTargetOutOfRange.
//
// Complexity: O(len(selector column) * k).
func ApplyE2(r *rand.Rand, e Event, E core.Pattern, shift core.CSCInt, uSrc, uDest []int) error {
	cols := E.Column(e.Select)
	total := subpopTotal(uSrc, cols)
	k := e.count(total)

	drawn, err := SampleSubpop(r, uSrc, cols, k)
	if err != nil {
		return err
	}
	for i, c := range cols {
		if drawn[i] == 0 {
			continue
		}
		if target := c + shiftOffset(shift, e.Shift, c); target < 0 || target >= len(uDest) {
			return fmt.Errorf("%w: compartment %d + shift -> %d", ErrShiftTargetOutOfRange, c, target)
		}
	}
	for i, c := range cols {
		x := drawn[i]
		if x == 0 {
			continue
		}
		target := c + shiftOffset(shift, e.Shift, c)
		uSrc[c] -= x
		uDest[target] += x
	}
	return nil
}

func subpopTotal(u []int, cols []int) int {
	total := 0
	for _, c := range cols {
		total += u[c]
	}
	return total
}

// shiftOffset returns the offset S_shift[col][row], or 0 if row is not
// present in that column (the implicit identity relabeling).
func shiftOffset(shift core.CSCInt, col, row int) int {
	rows := shift.Column(col)
	vals := shift.ColumnValues(col)
	for i, rr := range rows {
		if rr == row {
			return vals[i]
		}
	}
	return 0
}
