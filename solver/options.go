package solver

import "log"

// config holds the resolved settings a Run call uses. It is built from
// Options applied in order; Run fills in defaults (all CPUs, a
// time-derived seed) for anything left unset.
type config struct {
	nthread        int // 0 means "resolve to runtime.NumCPU() at Run time"
	seed           int64
	seedSet        bool
	logger         *log.Logger
	debugRateCheck bool
}

// Option customizes a Run call by mutating a config before the run
// starts. Option constructors validate eagerly and panic only on
// programmer error (a nil logger); user-data problems never panic and
// always surface as a returned error from Run.
type Option func(*config)

// WithThreads sets the number of worker goroutines. 0 (the default)
// means "use all available CPUs" (runtime.NumCPU()). A negative count
// is rejected by Run with ErrInvalidThreadCount rather than by this
// constructor. Run does not compare the count with Nn: surplus workers
// own empty node ranges (see core.WorkerRange).
func WithThreads(n int) Option {
	return func(c *config) {
		c.nthread = n
	}
}

// WithSeed fixes the master RNG seed, making the run reproducible for
// a fixed (seed, Nthread, inputs) triple. Without WithSeed, Run
// resolves a seed from rng.TimeSeed() and reports it on Result.Seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.seedSet = true
	}
}

// WithLogger attaches a lifecycle logger (run start/stop, per-day
// progress). It is never consulted on the per-step hot path. Passing
// nil panics immediately — the caller almost certainly meant to omit
// the option entirely rather than pass an explicit nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("solver: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithDebugRateCheck enables a rate-rebuild assertion: after every
// transition, sum_t_rate is recomputed from scratch and compared
// against the incrementally maintained value, failing the run with
// ErrRateDrift if they diverge beyond tolerance. It costs an O(Nt)
// rebuild per transition and is intended for tests, not production
// runs.
func WithDebugRateCheck(enabled bool) Option {
	return func(c *config) {
		c.debugRateCheck = enabled
	}
}
