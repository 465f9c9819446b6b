package core

import "fmt"

// Pattern is a non-owning compressed-column view with no numeric
// payload: column j occupies row indices Ir[Jc[j]:Jc[j+1]]. It is used
// for matrices that select rows without carrying values — the
// dependency graph G and the selector matrix E.
//
// Pattern is read-only after construction; NewPattern validates once
// so that every later column scan (the solver's hot path) can trust
// Jc/Ir without re-checking bounds.
type Pattern struct {
	Jc []int // length Ncol()+1, non-decreasing, Jc[0] == 0
	Ir []int // length Jc[Ncol()], row indices, strictly increasing within a column
}

// NewPattern validates jc/ir against nrow and returns a Pattern.
//
// Errors: ErrJcLength, ErrJcNotMonotonic, ErrIrOutOfRange,
// ErrIrNotStrictMonotonic.
//
// Complexity: O(nnz).
func NewPattern(jc, ir []int, nrow int) (Pattern, error) {
	if err := validateCompressedColumn(jc, ir, nrow); err != nil {
		return Pattern{}, err
	}
	return Pattern{Jc: jc, Ir: ir}, nil
}

// Ncol returns the number of columns in the view.
//
// Complexity: O(1).
func (p Pattern) Ncol() int {
	if len(p.Jc) == 0 {
		return 0
	}
	return len(p.Jc) - 1
}

// Column returns the row indices of column j. The returned slice
// aliases p.Ir and must not be modified or retained past p's lifetime.
//
// Complexity: O(1).
func (p Pattern) Column(j int) []int {
	return p.Ir[p.Jc[j]:p.Jc[j+1]]
}

// CSC is a Pattern plus a float64 payload, one value per entry in Ir.
// It represents a matrix that carries numeric deltas per row/column
// pair, e.g. a fractional-rate variant of the state-change matrix N.
type CSC struct {
	Pattern
	Pr []float64 // length len(Ir); Pr[k] is the value at row Ir[k] of its column
}

// NewCSC validates jc/ir/pr against nrow and returns a CSC.
//
// Errors: as NewPattern, plus ErrPayloadLength if len(pr) != len(ir).
//
// Complexity: O(nnz).
func NewCSC(jc, ir []int, pr []float64, nrow int) (CSC, error) {
	pat, err := NewPattern(jc, ir, nrow)
	if err != nil {
		return CSC{}, err
	}
	if len(pr) != len(ir) {
		return CSC{}, fmt.Errorf("%w: got %d values for %d row indices", ErrPayloadLength, len(pr), len(ir))
	}
	return CSC{Pattern: pat, Pr: pr}, nil
}

// ColumnValues returns the values of column j, aligned with Column(j).
//
// Complexity: O(1).
func (m CSC) ColumnValues(j int) []float64 {
	return m.Pr[m.Jc[j]:m.Jc[j+1]]
}

// CSCInt is a Pattern plus an int payload. It represents the
// stoichiometry matrix S (per-transition compartment deltas) and the
// shift matrix S_shift (per-shift compartment offsets).
type CSCInt struct {
	Pattern
	Pr []int // length len(Ir); Pr[k] is the value at row Ir[k] of its column
}

// NewCSCInt validates jc/ir/pr against nrow and returns a CSCInt.
//
// Errors: as NewPattern, plus ErrPayloadLength if len(pr) != len(ir).
//
// Complexity: O(nnz).
func NewCSCInt(jc, ir []int, pr []int, nrow int) (CSCInt, error) {
	pat, err := NewPattern(jc, ir, nrow)
	if err != nil {
		return CSCInt{}, err
	}
	if len(pr) != len(ir) {
		return CSCInt{}, fmt.Errorf("%w: got %d values for %d row indices", ErrPayloadLength, len(pr), len(ir))
	}
	return CSCInt{Pattern: pat, Pr: pr}, nil
}

// ColumnValues returns the values of column j, aligned with Column(j).
//
// Complexity: O(1).
func (m CSCInt) ColumnValues(j int) []int {
	return m.Pr[m.Jc[j]:m.Jc[j+1]]
}

// validateCompressedColumn checks the structural invariants every
// compressed-column view must hold, regardless of payload type: Jc
// non-decreasing, Jc[0] == 0, row indices in range and strictly
// increasing within each column.
func validateCompressedColumn(jc, ir []int, nrow int) error {
	if len(jc) == 0 {
		return fmt.Errorf("%w: jc must have at least one entry", ErrJcLength)
	}
	if jc[0] != 0 {
		return fmt.Errorf("%w: jc[0] = %d", ErrJcNotMonotonic, jc[0])
	}
	ncol := len(jc) - 1
	for j := 0; j < ncol; j++ {
		if jc[j+1] < jc[j] {
			return fmt.Errorf("%w: jc[%d]=%d > jc[%d]=%d", ErrJcNotMonotonic, j, jc[j], j+1, jc[j+1])
		}
	}
	if jc[ncol] != len(ir) {
		return fmt.Errorf("%w: jc[%d]=%d but len(ir)=%d", ErrJcLength, ncol, jc[ncol], len(ir))
	}
	for j := 0; j < ncol; j++ {
		prev := -1
		for k := jc[j]; k < jc[j+1]; k++ {
			row := ir[k]
			if row < 0 || row >= nrow {
				return fmt.Errorf("%w: row %d in column %d (nrow=%d)", ErrIrOutOfRange, row, j, nrow)
			}
			if row <= prev {
				return fmt.Errorf("%w: column %d", ErrIrNotStrictMonotonic, j)
			}
			prev = row
		}
	}
	return nil
}
