package core

// Dims bundles the five size parameters threaded through every solver
// call: node count, compartment count, transition count, continuous
// state width, and local-parameter width.
//
// Dims is a plain value type — no validation happens at construction;
// the solver and event packages validate the combinations they need
// (e.g. a Pattern's column count against Dims.Nt) at the point where
// the mismatch would otherwise corrupt state.
type Dims struct {
	Nn  int // number of nodes
	Nc  int // number of compartments per node
	Nt  int // number of transitions
	Nd  int // number of continuous state variables per node
	Nld int // number of local parameters per node
}
