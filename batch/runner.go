// Package batch fans independent element computations out over a fixed
// worker pool. Compute is pure and touches no shared state, so requests
// need no coordination beyond collecting outcomes.
package batch

import (
	"context"
	"runtime"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/signalsfoundry/orbital-elements/coe"
	"github.com/signalsfoundry/orbital-elements/internal/logging"
	"github.com/signalsfoundry/orbital-elements/internal/observability"
	"github.com/signalsfoundry/orbital-elements/results"
)

const tracerName = "github.com/signalsfoundry/orbital-elements/batch"

// Request names one state-vector computation.
type Request struct {
	Name string
	R, V coe.Vec3
	Mu   float64 // km^3/s^2; zero means Earth
}

// Outcome is the per-request result: either a complete element record
// or the validation error that rejected the input.
type Outcome struct {
	Name     string
	Elements coe.OrbitalElements
	Err      error
}

// Runner executes batches of requests. The zero value runs with
// runtime.NumCPU() workers, no logging, no metrics, and no store.
type Runner struct {
	Workers int
	Log     logging.Logger
	Metrics *observability.SolverCollector
	Store   *results.Store
}

// Run solves every request and returns outcomes in request order.
// Invalid state vectors fail their own outcome only; the rest of the
// batch is unaffected.
func (r *Runner) Run(ctx context.Context, reqs []Request) []Outcome {
	log := r.Log
	if log == nil {
		log = logging.Noop()
	}
	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(reqs) && len(reqs) > 0 {
		workers = len(reqs)
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "batch.Run",
		trace.WithAttributes(
			attribute.Int("batch.requests", len(reqs)),
			attribute.Int("batch.workers", workers),
		),
	)
	defer span.End()

	start := time.Now()
	outcomes := make([]Outcome, len(reqs))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				outcomes[idx] = r.solve(ctx, log, reqs[idx])
			}
		}()
	}
	for i := range reqs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	failed := 0
	for _, out := range outcomes {
		if out.Err != nil {
			failed++
		}
	}
	span.SetAttributes(attribute.Int("batch.failed", failed))

	log.Info(ctx, "batch complete",
		logging.Int("requests", len(reqs)),
		logging.Int("failed", failed),
		logging.Float64("elapsed_seconds", time.Since(start).Seconds()),
	)
	return outcomes
}

func (r *Runner) solve(ctx context.Context, log logging.Logger, req Request) Outcome {
	start := time.Now()

	mu := req.Mu
	if mu == 0 {
		mu = coe.MuEarth
	}
	sv, err := coe.NewStateVector(req.R, req.V, mu)
	if err != nil {
		r.Metrics.ObserveComputation(observability.OutcomeInvalid, time.Since(start))
		log.Warn(ctx, "state vector rejected",
			logging.String("request", req.Name),
			logging.String("error", err.Error()),
		)
		return Outcome{Name: req.Name, Err: err}
	}

	el := coe.Compute(sv)
	r.Metrics.ObserveComputation(observability.OutcomeOK, time.Since(start))
	r.Metrics.RecordGeometry(el)

	if r.Store != nil {
		if err := r.Store.Put(req.Name, el); err != nil {
			log.Warn(ctx, "result not stored",
				logging.String("request", req.Name),
				logging.String("error", err.Error()),
			)
			return Outcome{Name: req.Name, Elements: el, Err: err}
		}
	}
	return Outcome{Name: req.Name, Elements: el}
}
