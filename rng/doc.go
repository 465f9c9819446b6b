// Package rng derives independent, deterministic per-worker random
// streams from a single master seed.
//
// Why
//
//   - The solver seeds one *rand.Rand per worker goroutine at setup so
//     that (seed, Nthread) fully determines the run: reusing the same
//     master seed with a different worker must not correlate the
//     resulting streams, and re-running with the same (seed, Nthread)
//     must reproduce a bitwise-identical trajectory.
//   - Changing Nthread changes how many per-worker streams are carved
//     out of the master seed, so it necessarily changes the sequence
//     each worker sees — this is a documented, intentional property,
//     not a bug: see solver's package doc for the reproducibility
//     contract.
//
// How
//
//	A SplitMix64 avalanche mix (DeriveSeed) turns (parent seed, stream
//	id) into a new 64-bit seed with strong bit diffusion: nearby parent
//	seeds or nearby stream ids produce uncorrelated children. PerWorker
//	applies it once per worker index against a single master
//	*rand.Rand, consuming one Int63 from the master first to decorrelate
//	successive derivations.
//
// Concurrency
//
//	*rand.Rand is not goroutine-safe; PerWorker returns one exclusively
//	owned by its caller. Do not share a derived *rand.Rand across
//	goroutines.
package rng
