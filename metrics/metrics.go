// Package metrics wires a Planner's search activity into Prometheus
// counters. It exists to give a dstarlite.MetricsRecorder a concrete,
// scrapeable implementation for the demo CLI; library callers that
// don't want Prometheus can implement the interface themselves or pass
// nil.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder implements dstarlite.MetricsRecorder over a private
// Prometheus registry. It does not touch prometheus.DefaultRegisterer,
// so multiple Recorders (or a Recorder alongside unrelated Prometheus
// instrumentation in the same binary) never collide.
type Recorder struct {
	registry   *prometheus.Registry
	iterations prometheus.Counter
	replans    *prometheus.CounterVec
}

// New builds a Recorder with its own registry and registers its
// collectors on it. namespace is applied as the Prometheus metric
// namespace (e.g. "dstarlite"); pass "" to omit it.
func New(namespace string) *Recorder {
	registry := prometheus.NewRegistry()

	iterations := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "compute_iterations_total",
		Help:      "Number of ComputeShortestPath repair-loop iterations executed.",
	})
	replans := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "replans_total",
		Help:      "Number of Replan calls, partitioned by outcome.",
	}, []string{"result"})

	registry.MustRegister(iterations, replans)

	return &Recorder{
		registry:   registry,
		iterations: iterations,
		replans:    replans,
	}
}

// Registry exposes the private registry so a caller can serve it, e.g.
// via promhttp.HandlerFor.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveComputeIteration implements dstarlite.MetricsRecorder.
func (r *Recorder) ObserveComputeIteration() {
	r.iterations.Inc()
}

// ObserveReplan implements dstarlite.MetricsRecorder.
func (r *Recorder) ObserveReplan(success bool, steps int) {
	result := "success"
	if !success {
		result = "failure"
	}
	r.replans.WithLabelValues(result).Inc()
	_ = steps // step count is exposed via the iterations counter, not per-replan
}
