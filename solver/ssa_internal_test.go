package solver

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/siminf/core"
	"github.com/stretchr/testify/require"
)

func TestSelectTransitionPicksCumulativeBucket(t *testing.T) {
	rate := []float64{1, 2, 3}
	require.Equal(t, 0, selectTransition(rate, 0.5))
	require.Equal(t, 1, selectTransition(rate, 1.5))
	require.Equal(t, 2, selectTransition(rate, 5.9))
}

func TestSelectTransitionWalksBackwardOverZeroRate(t *testing.T) {
	rate := []float64{1, 0, 0}
	require.Equal(t, 0, selectTransition(rate, 2.9))
}

func TestSelectTransitionReturnsMinusOneWhenAllZero(t *testing.T) {
	rate := []float64{0, 0}
	require.Equal(t, -1, selectTransition(rate, 0.5))
}

func constRateModel(t *testing.T, rate float64) core.Model {
	t.Helper()
	s, err := core.NewCSCInt([]int{0, 1}, []int{0}, []int{-1}, 1)
	require.NoError(t, err)
	g, err := core.NewPattern([]int{0, 1}, []int{0}, 1)
	require.NoError(t, err)
	e, err := core.NewPattern([]int{0, 1}, []int{0}, 1)
	require.NoError(t, err)
	shift, err := core.NewCSCInt([]int{0}, nil, nil, 1)
	require.NoError(t, err)
	return core.Model{
		Dims: core.Dims{Nn: 1, Nc: 1, Nt: 1},
		Propensities: []core.PropensityFunc{
			func(u []int, v []float64, ldata []float64, gdata []float64, sd int, t float64) (float64, error) {
				return rate, nil
			},
		},
		PostStep: func(vNew []float64, u []int, v []float64, ldata []float64, gdata []float64, sd int, node int, t float64) (bool, error) {
			return false, nil
		},
		S: s, G: g, E: e, Shift: shift,
	}
}

func TestStepNodeHaltsWhenRateIsZero(t *testing.T) {
	model := constRateModel(t, 0)
	w := &workerState{
		lo: 0, hi: 1, nc: 1, nt: 1,
		u:        []int{5},
		sd:       []int{0},
		tRate:    []float64{0},
		sumTRate: []float64{0},
		tTime:    []float64{0},
		rng:      rand.New(rand.NewSource(1)),
	}
	require.NoError(t, stepNode(model, w, 0, 1.0, false))
	require.Equal(t, 1.0, w.tTime[0])
	require.Equal(t, 5, w.u[0])
}

func TestStepNodeDecrementsOnEachFiring(t *testing.T) {
	model := constRateModel(t, 0) // propensity list replaced below
	rateFn := func(u []int, v []float64, ldata []float64, gdata []float64, sd int, t float64) (float64, error) {
		if u[0] <= 0 {
			return 0, nil
		}
		return 1.0, nil
	}
	model.Propensities = []core.PropensityFunc{rateFn}

	w := &workerState{
		lo: 0, hi: 1, nc: 1, nt: 1,
		u:        []int{3},
		sd:       []int{0},
		tRate:    []float64{1},
		sumTRate: []float64{1},
		tTime:    []float64{0},
		rng:      rand.New(rand.NewSource(42)),
	}
	require.NoError(t, stepNode(model, w, 0, 100.0, false))
	require.Equal(t, 0, w.u[0])
	require.Equal(t, 100.0, w.tTime[0])
}
