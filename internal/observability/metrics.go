package observability

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/signalsfoundry/orbital-elements/coe"
)

// Computation outcome labels.
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid_state"
)

// Degenerate geometry labels.
const (
	GeometryEquatorial = "equatorial"
	GeometryCircular   = "circular"
	GeometryParabolic  = "parabolic"
)

// SolverCollector bundles Prometheus metrics for element computations
// and provides a ready-to-use /metrics handler.
type SolverCollector struct {
	gatherer prometheus.Gatherer

	Computations *prometheus.CounterVec
	Durations    prometheus.Histogram
	Degenerate   *prometheus.CounterVec
}

// NewSolverCollector registers solver Prometheus metrics against the
// provided registerer, defaulting to the global Prometheus registry
// when nil.
func NewSolverCollector(reg prometheus.Registerer) (*SolverCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	computations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "coe_computations_total",
		Help: "Total number of element computations, labeled by outcome.",
	}, []string{"outcome"})
	computations, err := registerCounterVec(reg, computations, "coe_computations_total")
	if err != nil {
		return nil, err
	}

	durations := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "coe_computation_duration_seconds",
		Help:    "Element computation latency in seconds, including validation.",
		Buckets: []float64{1e-6, 5e-6, 1e-5, 5e-5, 1e-4, 5e-4, 1e-3, 5e-3, 1e-2},
	})
	durations, err = registerHistogram(reg, durations, "coe_computation_duration_seconds")
	if err != nil {
		return nil, err
	}

	degenerate := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "coe_degenerate_geometry_total",
		Help: "Computations that hit a degenerate geometry, labeled by kind.",
	}, []string{"kind"})
	degenerate, err = registerCounterVec(reg, degenerate, "coe_degenerate_geometry_total")
	if err != nil {
		return nil, err
	}

	return &SolverCollector{
		gatherer:     gatherer,
		Computations: computations,
		Durations:    durations,
		Degenerate:   degenerate,
	}, nil
}

// ObserveComputation records one computation attempt.
func (c *SolverCollector) ObserveComputation(outcome string, d time.Duration) {
	if c == nil {
		return
	}
	if c.Computations != nil {
		c.Computations.WithLabelValues(outcome).Inc()
	}
	if c.Durations != nil {
		c.Durations.Observe(d.Seconds())
	}
}

// RecordGeometry counts the degenerate geometries present in el.
func (c *SolverCollector) RecordGeometry(el coe.OrbitalElements) {
	if c == nil || c.Degenerate == nil {
		return
	}
	if el.Equatorial() {
		c.Degenerate.WithLabelValues(GeometryEquatorial).Inc()
	}
	if el.Circular() {
		c.Degenerate.WithLabelValues(GeometryCircular).Inc()
	}
	if math.IsInf(el.SemiMajorAxis, 1) {
		c.Degenerate.WithLabelValues(GeometryParabolic).Inc()
	}
}

// Handler exposes a ready-to-use /metrics handler.
func (c *SolverCollector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogram(reg prometheus.Registerer, hist prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(hist); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return hist, nil
}
