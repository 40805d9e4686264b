// Package metrics exposes Prometheus instrumentation for the scoring engine.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics holds the engine collectors. All metrics are prefixed with "hh_scorer_".
//
//   - hh_scorer_evaluations_total{decision}
//   - hh_scorer_evaluation_duration_seconds
//   - hh_scorer_stage_fallbacks_total{stage}
//   - hh_scorer_batch_failures_total
//   - hh_scorer_embedding_cache_hits_total
//   - hh_scorer_embedding_cache_misses_total
//   - hh_scorer_embedding_cache_size
type Metrics struct {
	EvaluationsTotal   *prometheus.CounterVec
	EvaluationDuration prometheus.Histogram
	StageFallbacks     *prometheus.CounterVec
	BatchFailures      prometheus.Counter

	CacheHitsTotal   prometheus.Counter
	CacheMissesTotal prometheus.Counter
	CacheSize        prometheus.Gauge
}

// New returns the process-wide metrics, registering them with the default
// registry on first use.
func New() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			EvaluationsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "hh_scorer_evaluations_total",
					Help: "Total number of candidate evaluations by decision",
				},
				[]string{"decision"},
			),
			EvaluationDuration: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Name:    "hh_scorer_evaluation_duration_seconds",
					Help:    "Duration of a single candidate evaluation in seconds",
					Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
				},
			),
			StageFallbacks: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "hh_scorer_stage_fallbacks_total",
					Help: "Total number of enrichment stages that fell back to a neutral default",
				},
				[]string{"stage"},
			),
			BatchFailures: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "hh_scorer_batch_failures_total",
					Help: "Total number of candidates that failed inside a batch",
				},
			),
			CacheHitsTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "hh_scorer_embedding_cache_hits_total",
					Help: "Total number of embedding cache hits",
				},
			),
			CacheMissesTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "hh_scorer_embedding_cache_misses_total",
					Help: "Total number of embedding cache misses",
				},
			),
			CacheSize: promauto.NewGauge(
				prometheus.GaugeOpts{
					Name: "hh_scorer_embedding_cache_size",
					Help: "Current number of cached skill embeddings",
				},
			),
		}
	})
	return globalMetrics
}

// WriteFile dumps the default registry in the text exposition format, for
// node_exporter's textfile collector.
func WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
