package solver

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"

	"github.com/katalvlaran/siminf/core"
	"github.com/katalvlaran/siminf/event"
	"github.com/katalvlaran/siminf/rng"
)

// Run simulates model against input and returns the populated sink
// from input.Sink. It is the single entry point of the core, mirroring
// run_solver's role in the original implementation.
func Run(model core.Model, input Input, opts ...Option) (*Result, error) {
	if err := model.Validate(); err != nil {
		return nil, err
	}
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.nthread < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidThreadCount, cfg.nthread)
	}
	nthread := cfg.nthread
	if nthread == 0 {
		nthread = runtime.NumCPU()
	}

	seed := cfg.seed
	if !cfg.seedSet {
		seed = rng.TimeSeed()
	}

	if input.Sink == nil {
		return nil, ErrSinkNotConfigured
	}
	if err := validateInputShapes(model, input); err != nil {
		return nil, err
	}

	nn, nc, nd, nld, nt := model.Dims.Nn, model.Dims.Nc, model.Dims.Nd, model.Dims.Nld, model.Dims.Nt

	if cfg.logger != nil {
		cfg.logger.Printf("run start: nn=%d nc=%d nt=%d nthread=%d seed=%d", nn, nc, nt, nthread, seed)
	}

	u := make([]int, nn*nc)
	copy(u, input.U0)
	v := make([]float64, nn*nd)
	copy(v, input.V0)
	vNew := make([]float64, nn*nd)
	ldata := make([]float64, nn*nld)
	copy(ldata, input.Ldata)
	sd := make([]int, nn)
	copy(sd, input.Sd)
	updateNode := make([]int, nn)

	e1, e2, err := event.Split(input.Events, nn, nthread, model.E.Ncol(), model.Shift.Ncol())
	if err != nil {
		return nil, err
	}

	master := rand.New(rand.NewSource(seed))
	workers := make([]*workerState, nthread)
	for i := 0; i < nthread; i++ {
		lo, hi := core.WorkerRange(nn, nthread, i)
		w := &workerState{
			id: i, lo: lo, hi: hi,
			nc: nc, nd: nd, nld: nld, nt: nt,
			u:          u[lo*nc : hi*nc],
			v:          v[lo*nd : hi*nd],
			vNew:       vNew[lo*nd : hi*nd],
			ldata:      ldata[lo*nld : hi*nld],
			gdata:      input.Gdata,
			sd:         sd[lo:hi],
			tRate:      make([]float64, (hi-lo)*nt),
			sumTRate:   make([]float64, hi-lo),
			tTime:      make([]float64, hi-lo),
			updateNode: updateNode,
			rng:        rng.PerWorker(master, i),
			e1:         e1[i],
		}
		if err := w.initRates(model, input.Tspan[0]); err != nil {
			return nil, err
		}
		workers[i] = w
	}

	tlen := len(input.Tspan)
	if err := input.Sink.Open(tlen); err != nil {
		return nil, err
	}
	if tlen > 0 {
		if err := input.Sink.WriteColumnU(0, u); err != nil {
			return nil, err
		}
		if err := input.Sink.WriteColumnV(0, v); err != nil {
			return nil, err
		}
	}
	it := 1

	tt := input.Tspan[0]
	nextDay := math.Floor(tt) + 1.0
	day := int(math.Floor(tt))
	e2Pos := 0

	for it < tlen {
		runWorkersParallel(workers, func(w *workerState) {
			runSSAAndE1(model, w, day, nextDay, cfg.debugRateCheck)
		})

		if firstError(workers) == nil {
			if err := runE2(model, e2, &e2Pos, day, workers[0].rng, u, nc, updateNode); err != nil {
				workers[0].err = err
			}
		}

		tt = nextDay
		runWorkersParallel(workers, func(w *workerState) {
			runPostStep(model, w, tt)
		})

		if err := firstError(workers); err != nil {
			return nil, err
		}

		for it < tlen && tt > input.Tspan[it] {
			if err := input.Sink.WriteColumnU(it, u); err != nil {
				return nil, err
			}
			if err := input.Sink.WriteColumnV(it, vNew); err != nil {
				return nil, err
			}
			it++
		}

		v, vNew = vNew, v
		for _, w := range workers {
			w.v, w.vNew = w.vNew, w.v
		}

		if cfg.logger != nil {
			cfg.logger.Printf("day %d complete: t=%g columns written=%d/%d", day, tt, it, tlen)
		}

		day++
		nextDay += 1.0
	}

	if cfg.logger != nil {
		cfg.logger.Printf("run stop: %d columns written", tlen)
	}

	return &Result{Sink: input.Sink, Seed: seed, Thread: nthread}, nil
}

func validateInputShapes(model core.Model, input Input) error {
	nn, nc, nd, nld := model.Dims.Nn, model.Dims.Nc, model.Dims.Nd, model.Dims.Nld
	if len(input.U0) != nn*nc {
		return fmt.Errorf("%w: U0 has %d entries, want Nn*Nc=%d", ErrAllocMemoryBuffer, len(input.U0), nn*nc)
	}
	if len(input.V0) != nn*nd {
		return fmt.Errorf("%w: V0 has %d entries, want Nn*Nd=%d", ErrAllocMemoryBuffer, len(input.V0), nn*nd)
	}
	if len(input.Ldata) != nn*nld {
		return fmt.Errorf("%w: Ldata has %d entries, want Nn*Nld=%d", ErrAllocMemoryBuffer, len(input.Ldata), nn*nld)
	}
	if len(input.Sd) != nn {
		return fmt.Errorf("%w: Sd has %d entries, want Nn=%d", ErrAllocMemoryBuffer, len(input.Sd), nn)
	}
	if len(input.Tspan) == 0 {
		return fmt.Errorf("%w: Tspan must have at least one entry", ErrAllocMemoryBuffer)
	}
	for i := 1; i < len(input.Tspan); i++ {
		if input.Tspan[i] <= input.Tspan[i-1] {
			return fmt.Errorf("%w: Tspan must be strictly increasing", ErrAllocMemoryBuffer)
		}
	}
	return nil
}
