// Package siminf implements a parallel stochastic disease-spread
// simulation core: a direct-method Gillespie SSA solver running one
// continuous-time Markov chain per population node, interleaved with
// a scheduled discrete-event engine, over a sparse compressed-column
// matrix data model.
//
// Everything is organized under four subpackages:
//
//	core/    — Dims, Model, the CSC/CSCInt/Pattern sparse views, and the sentinel error set
//	rng/     — per-worker deterministic RNG derivation from a single master seed
//	event/   — scheduled-event types, the E1/E2 partitioner, and the sampling/apply primitives
//	solver/  — the day-loop orchestrator, the SSA step, trajectory sinks, and functional options
//
// No concrete epidemiological model ships with the module. A model
// author builds a core.Model (dimensions, the stoichiometry and
// dependency matrices, one propensity function per transition, and a
// post-step hook), then calls solver.Run with the initial state, a
// tspan grid, and a Sink to collect the trajectory:
//
//	model := core.Model{Dims: dims, Propensities: props, PostStep: post, S: s, G: g, E: e, Shift: shift}
//	sink := solver.NewDenseSink(nn, nc, nd)
//	result, err := solver.Run(model, solver.Input{
//	        U0: u0, V0: v0, Tspan: tspan, Sd: sd, Gdata: gdata, Sink: sink,
//	}, solver.WithSeed(42), solver.WithThreads(4))
//
// Same (seed, thread count, inputs) always reproduces the same
// trajectory bit for bit — see rng's package doc for how.
package siminf
