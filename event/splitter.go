package event

import (
	"fmt"

	"github.com/katalvlaran/siminf/core"
)

// Split partitions a time-sorted event stream into nthread per-worker
// E1 queues and one shared E2 queue, per the partitioning rule: an
// event belongs to worker i iff its Node falls in worker i's node
// range and its Kind is not EXTERNAL_TRANSFER; EXTERNAL_TRANSFER events
// always go to the single E2 queue regardless of source node.
//
// Within a queue, relative order is preserved — Split never reorders
// events, only distributes them, so events sharing (Time, Node) keep
// their input arrival order.
//
// nn and nthread determine node ownership via core.WorkerOf. nSelect
// and nShift are the column counts of E and S_shift, used to validate
// Select and Shift.
//
// Errors: ErrNodeOutOfRange, ErrSelectOutOfRange, ErrShiftOutOfRange,
// ErrProportionOutOfRange, ErrUndefinedEvent.
//
// Complexity: O(len(events)).
func Split(events []Event, nn, nthread, nSelect, nShift int) (e1 [][]Event, e2 []Event, err error) {
	e1 = make([][]Event, nthread)
	for idx, e := range events {
		if err := validate(e, nn, nSelect, nShift, idx); err != nil {
			return nil, nil, err
		}
		if e.Kind == EXTERNAL_TRANSFER {
			e2 = append(e2, e)
			continue
		}
		w := core.WorkerOf(e.Node, nn, nthread)
		e1[w] = append(e1[w], e)
	}
	return e1, e2, nil
}

func validate(e Event, nn, nSelect, nShift, idx int) error {
	switch e.Kind {
	case EXIT, ENTER, INTERNAL_TRANSFER, EXTERNAL_TRANSFER:
	default:
		return fmt.Errorf("%w: event %d kind=%d", ErrUndefinedEvent, idx, e.Kind)
	}
	if e.Node < 0 || e.Node >= nn {
		return fmt.Errorf("%w: event %d node=%d (nn=%d)", ErrNodeOutOfRange, idx, e.Node, nn)
	}
	if e.Kind == EXTERNAL_TRANSFER && (e.Dest < 0 || e.Dest >= nn) {
		return fmt.Errorf("%w: event %d dest=%d (nn=%d)", ErrNodeOutOfRange, idx, e.Dest, nn)
	}
	if e.Select < 0 || e.Select >= nSelect {
		return fmt.Errorf("%w: event %d select=%d (nselect=%d)", ErrSelectOutOfRange, idx, e.Select, nSelect)
	}
	if (e.Kind == INTERNAL_TRANSFER || e.Kind == EXTERNAL_TRANSFER) && (e.Shift < 0 || e.Shift >= nShift) {
		return fmt.Errorf("%w: event %d shift=%d (nshift=%d)", ErrShiftOutOfRange, idx, e.Shift, nShift)
	}
	if e.N == 0 && (e.Proportion < 0 || e.Proportion > 1) {
		return fmt.Errorf("%w: event %d proportion=%g", ErrProportionOutOfRange, idx, e.Proportion)
	}
	return nil
}
