// Package solver runs the parallel SSA/Gillespie simulation: it owns
// the per-worker thread-local state, the per-node direct-method SSA
// loop, the day-boundary event/post-step/snapshot sequencing, and the
// dense/sparse trajectory sink.
//
// Why
//
//   - The per-node inner loop (stepNode) is the hot path: it must not
//     allocate, must not perform I/O, and must be safe to run
//     concurrently across disjoint node ranges with no shared mutable
//     state other than what the day-boundary barriers explicitly
//     publish.
//   - Reproducibility is a first-class contract: a run is fully
//     determined by (seed, Nthread, inputs), and this package is
//     where that contract is either honored or broken, so RNG
//     derivation happens once at setup (rng.PerWorker) and never
//     again mid-run.
//
// How
//
//	Run partitions nodes across Nthread workers (core.WorkerRange),
//	seeds one *rand.Rand per worker, and then iterates days: each
//	worker runs stepNode for every node it owns until the node's local
//	time reaches the day boundary, then applies its E1 queue. A
//	barrier follows. Run's own goroutine then applies the shared E2
//	queue with worker 0's RNG, under the single-writer discipline
//	event.ApplyE2 requires, and advances tt. Each worker then runs the
//	model's post-step hook per node and refreshes rates if requested.
//	A second barrier follows, after which Run writes any trajectory
//	snapshots whose tspan boundary tt has just crossed.
//
// Concurrency
//
//	Workers are plain goroutines, spawned fresh each day and joined
//	with sync.WaitGroup — there is no persistent worker pool, since
//	Nthread is small and bounded and the per-day dispatch cost is
//	negligible next to the SSA inner loop it guards.
package solver
