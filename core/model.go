package core

import "fmt"

// PropensityFunc computes the instantaneous rate of one transition in
// one node. It MUST be pure (no side effects, no retained state) and
// MUST return a finite, non-negative rate whenever the invariants of
// Dims hold for its arguments; violating that contract surfaces as
// solver.ErrInvalidRate from the solver.
//
//   - u: the node's compartment state, length Dims.Nc.
//   - v: the node's continuous state, length Dims.Nd.
//   - ldata: the node's local parameters, length Dims.Nld.
//   - gdata: the shared global parameter vector.
//   - sd: the node's sub-domain tag.
//   - t: current simulation time.
type PropensityFunc func(u []int, v []float64, ldata []float64, gdata []float64, sd int, t float64) (float64, error)

// PostStepFunc runs once per node at the end of every simulation day,
// after scheduled events have been applied. It writes the node's next
// continuous state into vNew and reports whether the node's rates must
// be recomputed in full (true) or left alone (false).
//
// A non-nil error aborts the run; a model that wants to report a
// domain-specific failure code (rather than a generic error) should
// return a *ModelError so the orchestrator can surface the code
// unchanged, per spec.
type PostStepFunc func(vNew []float64, u []int, v []float64, ldata []float64, gdata []float64, sd int, nodeGlobalIndex int, t float64) (needsUpdate bool, err error)

// ModelError is returned by a PostStepFunc to report a domain-specific
// failure code that must pass through the solver unchanged.
type ModelError struct {
	Code int
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("core: model reported error code %d", e.Code)
}

// Model bundles the size parameters, the sparse matrices, and the two
// callback sets that together fully describe a CTMC to simulate. It is
// the sole argument a model author constructs; the solver treats it as
// read-only for the duration of a run.
type Model struct {
	Dims Dims

	// Propensities holds one function per transition, indexed
	// 0..Dims.Nt-1.
	Propensities []PropensityFunc

	// PostStep is called once per node per day.
	PostStep PostStepFunc

	// S is the state-change matrix (Dims.Nc x Dims.Nt): column t lists
	// the compartment deltas applied when transition t fires. Some
	// sources call this matrix N; the semantics are identical.
	S CSCInt

	// G is the dependency graph (Dims.Nt x Dims.Nt): column t lists
	// the transitions whose propensity must be recomputed after
	// transition t fires.
	G Pattern

	// E is the event selector matrix (Dims.Nc x Nselect): each column
	// is a subset of compartment indices usable by scheduled events.
	E Pattern

	// Shift is the relabeling-offset matrix (Dims.Nc x Nshift) used by
	// INTERNAL_TRANSFER/EXTERNAL_TRANSFER events.
	Shift CSCInt
}

// Validate checks internal consistency of a Model: the matrices'
// declared widths against Dims, one propensity function per
// transition, and a non-nil post-step hook.
//
// Errors: ErrBadShape, ErrNilPropensity, ErrNilPostStep.
//
// Complexity: O(Nt).
func (m Model) Validate() error {
	if m.Dims.Nc <= 0 || m.Dims.Nt < 0 || m.Dims.Nn <= 0 || m.Dims.Nd < 0 || m.Dims.Nld < 0 {
		return fmt.Errorf("%w: %+v", ErrBadShape, m.Dims)
	}
	if len(m.Propensities) != m.Dims.Nt {
		return fmt.Errorf("%w: %d propensity functions for Nt=%d", ErrBadShape, len(m.Propensities), m.Dims.Nt)
	}
	for i, fn := range m.Propensities {
		if fn == nil {
			return fmt.Errorf("%w: transition %d", ErrNilPropensity, i)
		}
	}
	if m.PostStep == nil {
		return ErrNilPostStep
	}
	if m.S.Ncol() != m.Dims.Nt {
		return fmt.Errorf("%w: S has %d columns, want Nt=%d", ErrBadShape, m.S.Ncol(), m.Dims.Nt)
	}
	if m.G.Ncol() != m.Dims.Nt {
		return fmt.Errorf("%w: G has %d columns, want Nt=%d", ErrBadShape, m.G.Ncol(), m.Dims.Nt)
	}
	return nil
}
