package solver

import "github.com/katalvlaran/siminf/event"

// Input bundles everything Run needs beyond the model itself: initial
// state, the tspan grid, per-node parameters, the scheduled-event
// stream, and a trajectory sink. It is a literal Go-native restatement
// of the argument bundle the original core's single entry point
// accepted, minus host-language marshalling.
type Input struct {
	U0    []int     // Nn*Nc, initial compartment state
	V0    []float64 // Nn*Nd, initial continuous state
	Tspan []float64 // strictly increasing, Tspan[0] is the start time

	Ldata []float64 // Nn*Nld, per-node local parameters
	Gdata []float64 // shared global parameters, read-only
	Sd    []int     // Nn, per-node sub-domain tag

	Events []event.Event // sorted by Time non-decreasing

	Sink Sink // required
}

// Result holds the outcome of a completed Run: the populated sink and
// the seed actually used (useful when the caller didn't supply one via
// WithSeed, so it can log the seed for later reproduction).
type Result struct {
	Sink   Sink
	Seed   int64
	Thread int
}
