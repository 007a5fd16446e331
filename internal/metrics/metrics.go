// Package metrics records pipeline counters on a private Prometheus registry.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "siteicons"

type Recorder struct {
	registry *prometheus.Registry

	candidates    *prometheus.CounterVec
	probes        *prometheus.CounterVec
	probeDuration prometheus.Histogram
}

func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		candidates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidates_total",
			Help:      "Icon candidate references found, by source kind (link, meta, fallback).",
		}, []string{"kind"}),
		probes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "probes_total",
			Help:      "Candidate probes by outcome.",
		}, []string{"outcome"}),
		probeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "probe_duration_seconds",
			Help:      "Wall time of a single resolve, fetch and sniff probe.",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
	r.registry.MustRegister(r.candidates, r.probes, r.probeDuration)
	return r
}

func (r *Recorder) Candidate(kind string) {
	r.candidates.WithLabelValues(kind).Inc()
}

func (r *Recorder) Probe(outcome string, elapsed time.Duration) {
	r.probes.WithLabelValues(outcome).Inc()
	if elapsed > 0 {
		r.probeDuration.Observe(elapsed.Seconds())
	}
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteFile dumps the registry in the text exposition format.
func (r *Recorder) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}
	return nil
}

// Nop satisfies ports.Recorder without recording anything.
type Nop struct{}

func (Nop) Candidate(string)            {}
func (Nop) Probe(string, time.Duration) {}
