package solver_test

import (
	"testing"

	"github.com/katalvlaran/siminf/core"
	"github.com/katalvlaran/siminf/solver"
	"github.com/stretchr/testify/require"
)

func TestDenseSinkRoundTrip(t *testing.T) {
	s := solver.NewDenseSink(2, 1, 0)
	require.NoError(t, s.Open(2))
	require.NoError(t, s.WriteColumnU(0, []int{5, 0}))
	require.NoError(t, s.WriteColumnU(1, []int{0, 5}))
	require.Equal(t, []int{5, 0}, s.U[0:2])
	require.Equal(t, []int{0, 5}, s.U[2:4])
}

func TestDenseSinkRejectsWrongWidth(t *testing.T) {
	s := solver.NewDenseSink(2, 1, 0)
	require.NoError(t, s.Open(1))
	require.Error(t, s.WriteColumnU(0, []int{1}))
}

func TestSparseSinkSelectsSubsetOfRows(t *testing.T) {
	rowsU, err := core.NewPattern([]int{0, 1, 2}, []int{0, 2}, 4)
	require.NoError(t, err)
	rowsV, err := core.NewPattern([]int{0, 0, 0}, nil, 0)
	require.NoError(t, err)

	s := solver.NewSparseSink(rowsU, rowsV)
	require.NoError(t, s.Open(2))
	require.NoError(t, s.WriteColumnU(0, []int{1, 2, 3, 4}))
	require.NoError(t, s.WriteColumnU(1, []int{9, 8, 7, 6}))
	require.Equal(t, []int{1, 7}, s.PrU)
}
