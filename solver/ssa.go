package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/siminf/core"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// refreshAllRates recomputes every transition's propensity for one
// node from scratch, writing into tRate. Used at setup and whenever
// the post-step hook (or a debug rebuild check) requires a full
// refresh rather than the dependency-graph partial refresh stepNode
// uses on its hot path.
func refreshAllRates(model core.Model, u []int, v []float64, ldata, gdata []float64, sd int, t float64, tRate []float64) error {
	for tr := 0; tr < model.Dims.Nt; tr++ {
		rate, err := model.Propensities[tr](u, v, ldata, gdata, sd, t)
		if err != nil {
			return err
		}
		if err := validateRate(rate, tr); err != nil {
			return err
		}
		tRate[tr] = rate
	}
	return nil
}

func validateRate(rate float64, transition int) error {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
		return fmt.Errorf("%w: transition %d rate=%v", ErrInvalidRate, transition, rate)
	}
	return nil
}

// stepNode runs the direct-method SSA loop for one node until its
// local time reaches nextDay.
func stepNode(model core.Model, w *workerState, localNode int, nextDay float64, debugRateCheck bool) error {
	node := w.lo + localNode
	tRate := w.tRateNode(localNode)
	u := w.uNode(localNode)
	v := w.vNode(localNode)
	ldata := w.ldataNode(localNode)
	sd := w.sd[localNode]

	for w.tTime[localNode] < nextDay {
		if w.sumTRate[localNode] <= 0 {
			w.tTime[localNode] = nextDay
			break
		}

		tau := distuv.Exponential{Rate: w.sumTRate[localNode], Src: w.rng}.Rand()
		if w.tTime[localNode]+tau >= nextDay {
			w.tTime[localNode] = nextDay
			break
		}
		w.tTime[localNode] += tau

		target := w.rng.Float64() * w.sumTRate[localNode]
		tr := selectTransition(tRate, target)
		if tr < 0 {
			w.sumTRate[localNode] = 0
			break
		}

		cols := model.S.Column(tr)
		vals := model.S.ColumnValues(tr)
		for i, c := range cols {
			u[c] += vals[i]
			if u[c] < 0 {
				return fmt.Errorf("%w: node %d compartment %d", ErrNegativeState, node, c)
			}
		}

		for _, dep := range model.G.Column(tr) {
			old := tRate[dep]
			newRate, err := model.Propensities[dep](u, v, ldata, w.gdata, sd, w.tTime[localNode])
			if err != nil {
				return err
			}
			if err := validateRate(newRate, dep); err != nil {
				return err
			}
			tRate[dep] = newRate
			w.sumTRate[localNode] += newRate - old
		}
		if w.sumTRate[localNode] < 0 {
			w.sumTRate[localNode] = 0
		}

		if debugRateCheck {
			rebuilt := floats.Sum(tRate)
			if !floats.EqualWithinAbsOrRel(w.sumTRate[localNode], rebuilt, 1e-9, 1e-9) {
				return fmt.Errorf("%w: node %d incremental=%v rebuilt=%v", ErrRateDrift, node, w.sumTRate[localNode], rebuilt)
			}
		}
	}
	return nil
}

// selectTransition finds the smallest index tr such that the
// cumulative sum of rate[0..tr] is >= target, then walks backward over
// any zero-rate entries reached only because of floating-point
// rounding in the cumulative sum. Returns -1 if no positive-rate
// transition exists.
func selectTransition(rate []float64, target float64) int {
	tr := -1
	cum := 0.0
	for i, r := range rate {
		cum += r
		if cum >= target {
			tr = i
			break
		}
	}
	if tr == -1 {
		tr = len(rate) - 1
	}
	for tr >= 0 && rate[tr] == 0 {
		tr--
	}
	return tr
}
