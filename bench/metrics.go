package bench

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records benchmark results. Every Runner owns its own set,
// registered with the Registerer passed to NewMetrics.
type Metrics struct {
	scanDuration    *prometheus.HistogramVec
	scannedElements *prometheus.CounterVec
	mismatches      *prometheus.CounterVec
	checks          prometheus.Counter
}

// NewMetrics creates and registers the benchmark metrics. A nil Registerer
// creates unregistered metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		scanDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "findint_scan_duration_seconds",
			Help:    "Wall clock time of one search call.",
			Buckets: prometheus.ExponentialBuckets(1e-9, 4, 16),
		}, []string{"variant"}),
		scannedElements: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "findint_scanned_elements_total",
			Help: "Elements covered by timed search calls (sequence length times calls).",
		}, []string{"variant"}),
		mismatches: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "findint_mismatches_total",
			Help: "Searches whose result disagreed with the reference.",
		}, []string{"variant"}),
		checks: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "findint_checks_total",
			Help: "Result comparisons performed.",
		}),
	}
}

// observe records one timing.
func (m *Metrics) observe(size int, t Timing) {
	if m == nil {
		return
	}
	m.scanDuration.WithLabelValues(t.Variant).Observe(t.PerOp().Seconds())
	m.scannedElements.WithLabelValues(t.Variant).Add(float64(size) * float64(t.Iterations))
}

// ObserveCheck records a result comparison, failed or not.
func (m *Metrics) ObserveCheck(variant string, ok bool) {
	if m == nil {
		return
	}
	m.checks.Inc()
	if !ok {
		m.mismatches.WithLabelValues(variant).Inc()
	}
}

// AddPassedChecks records n comparisons that agreed.
func (m *Metrics) AddPassedChecks(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.checks.Add(float64(n))
}
