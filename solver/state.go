package solver

import (
	"math/rand"

	"github.com/katalvlaran/siminf/core"
	"github.com/katalvlaran/siminf/event"
)

// workerState is the thread-local state of one worker: a contiguous
// node range, a transition-rate matrix for that range, per-node rate
// sums and local times, an independent RNG, and the worker's own E1
// queue. u, v, vNew, ldata and sd are disjoint ranges of Run's shared
// arrays and updateNode is the shared global array itself; tRate,
// sumTRate and tTime are allocated for each worker at setup. The day
// loop is not allocation-free: runPostStep copies a node's old rates
// before a full refresh, event sampling allocates its result slice,
// and goroutines are spawned for every parallel phase.
type workerState struct {
	id     int
	lo, hi int // owned node range [lo, hi)
	nc, nd, nld, nt int

	u     []int     // this range's compartment state, (hi-lo)*nc
	v     []float64 // this range's continuous state, (hi-lo)*nd
	vNew  []float64 // this range's next continuous state, (hi-lo)*nd
	ldata []float64 // this range's local parameters, (hi-lo)*nld
	gdata []float64 // shared global parameters, read-only
	sd    []int     // this range's sub-domain tags, (hi-lo)

	tRate    []float64 // (hi-lo)*nt, row-major per local node
	sumTRate []float64 // (hi-lo)
	tTime    []float64 // (hi-lo)

	updateNode []int // GLOBAL, length Nn; this worker only writes [lo,hi) except during E2

	rng *rand.Rand

	e1    []event.Event
	e1Pos int

	err error // first error this worker observed, nil otherwise
}

func (w *workerState) uNode(localNode int) []int {
	return w.u[localNode*w.nc : (localNode+1)*w.nc]
}

func (w *workerState) vNode(localNode int) []float64 {
	return w.v[localNode*w.nd : (localNode+1)*w.nd]
}

func (w *workerState) vNewNode(localNode int) []float64 {
	return w.vNew[localNode*w.nd : (localNode+1)*w.nd]
}

func (w *workerState) ldataNode(localNode int) []float64 {
	return w.ldata[localNode*w.nld : (localNode+1)*w.nld]
}

func (w *workerState) tRateNode(localNode int) []float64 {
	return w.tRate[localNode*w.nt : (localNode+1)*w.nt]
}

// initRates computes every node's full rate vector and sum_t_rate at
// t = t0, rejecting any non-finite or negative rate.
func (w *workerState) initRates(model core.Model, t0 float64) error {
	for ln := 0; ln < w.hi-w.lo; ln++ {
		w.tTime[ln] = t0
		tr := w.tRateNode(ln)
		if err := refreshAllRates(model, w.uNode(ln), w.vNode(ln), w.ldataNode(ln), w.gdata, w.sd[ln], t0, tr); err != nil {
			return err
		}
		sum := 0.0
		for _, x := range tr {
			sum += x
		}
		w.sumTRate[ln] = sum
	}
	return nil
}
