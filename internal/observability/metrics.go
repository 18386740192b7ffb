// Package observability holds the Prometheus instrumentation for the
// ingestion pipeline.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the incident
// ingestion pipeline.
type Metrics struct {
	DocumentsProcessed *prometheus.CounterVec // labels: operator, status
	RecordsInserted    prometheus.Counter
	Duplicates         prometheus.Counter
	Unrecognized       prometheus.Counter
	ExtractionErrors   prometheus.Counter
	InvalidCoordinates prometheus.Counter
	InvalidNumerics    prometheus.Counter

	RunDuration      prometheus.Histogram
	DocumentDuration prometheus.Histogram
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		DocumentsProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "incident_etl",
			Name:      "documents_processed_total",
			Help:      "Report documents processed, by operator and final status.",
		}, []string{"operator", "status"}),
		RecordsInserted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "incident_etl",
			Name:      "records_inserted_total",
			Help:      "Incident records persisted to the store.",
		}),
		Duplicates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "incident_etl",
			Name:      "duplicates_total",
			Help:      "Documents skipped because their incident id already existed.",
		}),
		Unrecognized: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "incident_etl",
			Name:      "unrecognized_total",
			Help:      "Documents matching no registered operator format.",
		}),
		ExtractionErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "incident_etl",
			Name:      "extraction_errors_total",
			Help:      "Documents whose text could not be read or yielded no incident id.",
		}),
		InvalidCoordinates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "incident_etl",
			Name:      "invalid_coordinates_total",
			Help:      "Records whose coordinates were unparseable or outside the valid range.",
		}),
		InvalidNumerics: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "incident_etl",
			Name:      "invalid_numerics_total",
			Help:      "Numeric fields dropped because their value was outside the valid range.",
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "incident_etl",
			Name:      "run_duration_seconds",
			Help:      "Duration of a complete ingestion run.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}),
		DocumentDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "incident_etl",
			Name:      "document_duration_seconds",
			Help:      "Duration of processing a single report document.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
	}

	prometheus.MustRegister(
		m.DocumentsProcessed,
		m.RecordsInserted,
		m.Duplicates,
		m.Unrecognized,
		m.ExtractionErrors,
		m.InvalidCoordinates,
		m.InvalidNumerics,
		m.RunDuration,
		m.DocumentDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics with unregistered collectors to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		DocumentsProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "incident_etl", Name: "documents_processed_total"}, []string{"operator", "status"}),
		RecordsInserted:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "incident_etl", Name: "records_inserted_total"}),
		Duplicates:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "incident_etl", Name: "duplicates_total"}),
		Unrecognized:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "incident_etl", Name: "unrecognized_total"}),
		ExtractionErrors:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "incident_etl", Name: "extraction_errors_total"}),
		InvalidCoordinates: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "incident_etl", Name: "invalid_coordinates_total"}),
		InvalidNumerics:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "incident_etl", Name: "invalid_numerics_total"}),
		RunDuration:        prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "incident_etl", Name: "run_duration_seconds"}),
		DocumentDuration:   prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "incident_etl", Name: "document_duration_seconds"}),
	}
}
