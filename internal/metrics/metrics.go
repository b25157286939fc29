package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds all Prometheus metrics for the scoring service
type Metrics struct {
	ScoringRequests     *prometheus.CounterVec
	ScoreDuration       *prometheus.HistogramVec
	WindowQueryDuration *prometheus.HistogramVec
	StoreFallbacks      *prometheus.CounterVec

	// Database metrics, shared by every PostgresStore query
	DBQueries       *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec
	DBConnections   *prometheus.GaugeVec
}
