package solver

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/katalvlaran/siminf/core"
	"github.com/katalvlaran/siminf/event"
)

// runSSAAndE1 runs stepNode for every node this worker owns, then
// applies every E1 event at the head of its queue whose Time equals
// day. It is safe to run concurrently across workers: each only
// touches its own node range.
func runSSAAndE1(model core.Model, w *workerState, day int, nextDay float64, debugRateCheck bool) {
	if w.err != nil {
		return
	}
	for ln := 0; ln < w.hi-w.lo; ln++ {
		if err := stepNode(model, w, ln, nextDay, debugRateCheck); err != nil {
			w.err = err
			return
		}
	}
	for w.e1Pos < len(w.e1) && w.e1[w.e1Pos].Time == day {
		e := w.e1[w.e1Pos]
		w.e1Pos++
		ln := e.Node - w.lo
		if err := event.ApplyE1(w.rng, e, model.E, model.Shift, w.uNode(ln)); err != nil {
			w.err = fmt.Errorf("day %d node %d: %w", day, e.Node, err)
			return
		}
		w.updateNode[e.Node] = 1
	}
}

// runE2 applies every E2 event at the head of the shared queue whose
// Time equals day. Cross-node transfers mutate both endpoints, so this
// must be called by exactly one worker, after the E1 barrier and
// before the next barrier — never concurrently with runSSAAndE1.
func runE2(model core.Model, e2 []event.Event, pos *int, day int, r *rand.Rand, u []int, nc int, updateNode []int) error {
	for *pos < len(e2) && e2[*pos].Time == day {
		e := e2[*pos]
		*pos++
		uSrc := u[e.Node*nc : (e.Node+1)*nc]
		uDest := u[e.Dest*nc : (e.Dest+1)*nc]
		if err := event.ApplyE2(r, e, model.E, model.Shift, uSrc, uDest); err != nil {
			return fmt.Errorf("day %d node %d->%d: %w", day, e.Node, e.Dest, err)
		}
		updateNode[e.Node] = 1
		updateNode[e.Dest] = 1
	}
	return nil
}

// runPostStep runs the model's post-step hook for every node this
// worker owns, refreshing rates in full when the hook requests it or
// when the node was touched by an E1/E2 event this day.
func runPostStep(model core.Model, w *workerState, t float64) {
	if w.err != nil {
		return
	}
	for ln := 0; ln < w.hi-w.lo; ln++ {
		node := w.lo + ln
		needsUpdate, err := model.PostStep(w.vNewNode(ln), w.uNode(ln), w.vNode(ln), w.ldataNode(ln), w.gdata, w.sd[ln], node, t)
		if err != nil {
			if me, ok := err.(*core.ModelError); ok {
				w.err = &ModelError{Code: me.Code, Node: node}
			} else {
				w.err = err
			}
			return
		}
		if needsUpdate || w.updateNode[node] != 0 {
			tr := w.tRateNode(ln)
			old := make([]float64, len(tr))
			copy(old, tr)
			if err := refreshAllRates(model, w.uNode(ln), w.vNewNode(ln), w.ldataNode(ln), w.gdata, w.sd[ln], t, tr); err != nil {
				w.err = err
				return
			}
			for i := range tr {
				w.sumTRate[ln] += tr[i] - old[i]
			}
			if w.sumTRate[ln] < 0 {
				w.sumTRate[ln] = 0
			}
			w.updateNode[node] = 0
		}
	}
}

// runWorkersParallel runs fn for every worker concurrently and waits
// for all to finish. Workers are plain goroutines spawned fresh for
// this phase, joined with a WaitGroup — there is no persistent pool.
func runWorkersParallel(workers []*workerState, fn func(*workerState)) {
	var wg sync.WaitGroup
	wg.Add(len(workers))
	for _, w := range workers {
		go func(w *workerState) {
			defer wg.Done()
			fn(w)
		}(w)
	}
	wg.Wait()
}

// firstError returns the first non-nil error across workers, in
// worker-index order, so a run's failure is deterministic regardless
// of which goroutine happened to fail first.
func firstError(workers []*workerState) error {
	for _, w := range workers {
		if w.err != nil {
			return w.err
		}
	}
	return nil
}
