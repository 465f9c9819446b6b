package solver

import (
	"fmt"

	"github.com/katalvlaran/siminf/core"
)

// Sink receives the simulation trajectory one tspan column at a time.
// Open is called exactly once, before the first WriteColumnU/V call,
// with the total number of columns the run will produce. Columns are
// written in increasing k order, k in [0, tlen).
type Sink interface {
	Open(tlen int) error
	WriteColumnU(k int, u []int) error
	WriteColumnV(k int, v []float64) error
}

// DenseSink stores every compartment and every continuous state for
// every node at every tspan column: column k's U-slab has node i's Nc
// values at row offset i*Nc.
type DenseSink struct {
	Nn, Nc, Nd int

	U    []int
	V    []float64
	tlen int
}

// NewDenseSink returns a DenseSink sized for nn nodes with nc
// compartments and nd continuous states. Call Open before using it.
func NewDenseSink(nn, nc, nd int) *DenseSink {
	return &DenseSink{Nn: nn, Nc: nc, Nd: nd}
}

func (s *DenseSink) Open(tlen int) error {
	s.tlen = tlen
	s.U = make([]int, s.Nn*s.Nc*tlen)
	s.V = make([]float64, s.Nn*s.Nd*tlen)
	return nil
}

func (s *DenseSink) WriteColumnU(k int, u []int) error {
	width := s.Nn * s.Nc
	if len(u) != width {
		return fmt.Errorf("%w: dense U column has %d values, want %d", ErrAllocMemoryBuffer, len(u), width)
	}
	copy(s.U[k*width:(k+1)*width], u)
	return nil
}

func (s *DenseSink) WriteColumnV(k int, v []float64) error {
	width := s.Nn * s.Nd
	if len(v) != width {
		return fmt.Errorf("%w: dense V column has %d values, want %d", ErrAllocMemoryBuffer, len(v), width)
	}
	copy(s.V[k*width:(k+1)*width], v)
	return nil
}

// SparseSink persists only a caller-selected subset of rows per
// column: column k's recorded rows are RowsU.Column(k) (flat
// node*Nc+compartment indices into u), written into PrU at the
// matching offset. RowsV/PrV are analogous for v.
type SparseSink struct {
	RowsU core.Pattern
	RowsV core.Pattern

	PrU []int
	PrV []float64
}

// NewSparseSink returns a SparseSink that will persist rowsU.Column(k)
// of u and rowsV.Column(k) of v at every column k. Both patterns must
// have exactly tlen columns; Open validates this.
func NewSparseSink(rowsU, rowsV core.Pattern) *SparseSink {
	return &SparseSink{RowsU: rowsU, RowsV: rowsV}
}

func (s *SparseSink) Open(tlen int) error {
	if s.RowsU.Ncol() != tlen {
		return fmt.Errorf("%w: sparse U row pattern has %d columns, want tlen=%d", ErrAllocMemoryBuffer, s.RowsU.Ncol(), tlen)
	}
	if s.RowsV.Ncol() != tlen {
		return fmt.Errorf("%w: sparse V row pattern has %d columns, want tlen=%d", ErrAllocMemoryBuffer, s.RowsV.Ncol(), tlen)
	}
	s.PrU = make([]int, len(s.RowsU.Ir))
	s.PrV = make([]float64, len(s.RowsV.Ir))
	return nil
}

func (s *SparseSink) WriteColumnU(k int, u []int) error {
	rows := s.RowsU.Column(k)
	base := s.RowsU.Jc[k]
	for i, row := range rows {
		if row < 0 || row >= len(u) {
			return fmt.Errorf("%w: sparse U row %d out of range (len %d)", ErrAllocMemoryBuffer, row, len(u))
		}
		s.PrU[base+i] = u[row]
	}
	return nil
}

func (s *SparseSink) WriteColumnV(k int, v []float64) error {
	rows := s.RowsV.Column(k)
	base := s.RowsV.Jc[k]
	for i, row := range rows {
		if row < 0 || row >= len(v) {
			return fmt.Errorf("%w: sparse V row %d out of range (len %d)", ErrAllocMemoryBuffer, row, len(v))
		}
		s.PrV[base+i] = v[row]
	}
	return nil
}
