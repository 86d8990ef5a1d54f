package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "api_requests_total",
		Help: "Total number of API requests received",
	}, []string{"method", "endpoint", "status"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "request_duration_seconds",
		Help:    "Time spent processing request in seconds",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1.0, 2.5, 5.0, 10.0},
	}, []string{"method", "endpoint"})

	ActiveRequests = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "active_requests_current",
		Help: "Number of currently active requests",
	})

	DocumentsProcessedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "documents_processed_total",
		Help: "Total documents processed by operation",
	}, []string{"operation"})

	SimplificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "simplifications_total",
		Help: "Total simplifications performed by document type",
	}, []string{"document_type"})

	SimplificationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "simplification_duration_seconds",
		Help:    "Time spent simplifying documents in seconds",
		Buckets: []float64{0.1, 0.5, 1.0, 2.0, 5.0, 10.0},
	}, []string{"document_type"})

	AnalysisDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "analysis_duration_seconds",
		Help:    "Time spent analyzing documents in seconds",
		Buckets: []float64{0.1, 0.5, 1.0, 2.0, 5.0},
	}, []string{"analysis_type"})

	RisksDetectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "risks_detected_total",
		Help: "Total risk findings by level",
	}, []string{"level"})
)

// RecordDocumentOperation increments the document operation counter
func RecordDocumentOperation(operation string) {
	DocumentsProcessedTotal.WithLabelValues(operation).Inc()
}

// RecordSimplification records one simplification and its duration
func RecordSimplification(duration time.Duration, documentType string) {
	SimplificationsTotal.WithLabelValues(documentType).Inc()
	SimplificationDuration.WithLabelValues(documentType).Observe(duration.Seconds())
}

// RecordAnalysis records analysis duration for a given analysis type
func RecordAnalysis(duration time.Duration, analysisType string) {
	AnalysisDuration.WithLabelValues(analysisType).Observe(duration.Seconds())
}

// Handler exposes the metrics endpoint
func Handler() http.Handler {
	return promhttp.Handler()
}
