package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "finance_atlas_"

	resultSuccess = "success"
	resultError   = "error"
)

var (
	registerOnce sync.Once

	analysesTotal   *prometheus.CounterVec
	analysisLatency *prometheus.HistogramVec

	solverIterations prometheus.Histogram

	exportsTotal *prometheus.CounterVec
)

// Init registers the collectors on the default registry. Safe to call more
// than once.
func Init() {
	registerOnce.Do(func() {
		analysesTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "plan_analyses_total",
				Help: "Total plan analyses by result",
			},
			[]string{"result"},
		)
		analysisLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "plan_analysis_latency_seconds",
				Help:    "Plan analysis latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)

		solverIterations = prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "rate_solver_iterations",
				Help:    "Bisection iterations spent per solved rate",
				Buckets: []float64{10, 20, 30, 40, 50, 75, 100, 150, 200},
			},
		)

		exportsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "plan_exports_total",
				Help: "Total analysis exports by format and result",
			},
			[]string{"format", "result"},
		)

		prometheus.MustRegister(
			analysesTotal,
			analysisLatency,
			solverIterations,
			exportsTotal,
		)
	})
}

// ObserveAnalysis records one analysis run.
func ObserveAnalysis(result string, duration time.Duration) {
	if result == "" {
		result = resultSuccess
	}
	if analysesTotal != nil {
		analysesTotal.WithLabelValues(result).Inc()
	}
	if analysisLatency != nil {
		analysisLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
}

// ObserveSolverIterations records how hard the rate solver had to work.
func ObserveSolverIterations(iterations int) {
	if solverIterations != nil {
		solverIterations.Observe(float64(iterations))
	}
}

// IncExport counts one export by format.
func IncExport(format, result string) {
	if format == "" {
		format = "unknown"
	}
	if result == "" {
		result = resultSuccess
	}
	if exportsTotal != nil {
		exportsTotal.WithLabelValues(format, result).Inc()
	}
}

// Exported constants for callers.
const (
	ResultSuccess = resultSuccess
	ResultError   = resultError
)
