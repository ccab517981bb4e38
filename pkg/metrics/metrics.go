// Package metrics provides Prometheus metrics for the prompt repository.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// httpRequestsTotal counts handled HTTP requests.
	// Labels:
	//   - method: HTTP method
	//   - route: matched gin route pattern, "unmatched" for 404s without a route
	//   - status: response status code
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	promptsCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "prompts_created_total",
			Help: "Total number of prompt records inserted",
		},
	)

	promptsSeededTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "prompts_seeded_total",
			Help: "Total number of example prompt records inserted by the startup seeder",
		},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(promptsCreatedTotal)
	prometheus.MustRegister(promptsSeededTotal)
}

// RecordRequest records one handled HTTP request.
func RecordRequest(method, route, status string, durationSeconds float64) {
	httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(durationSeconds)
}

// RecordPromptCreated records one inserted prompt.
func RecordPromptCreated() {
	promptsCreatedTotal.Inc()
}

// RecordPromptsSeeded records n prompts inserted by the seeder.
func RecordPromptsSeeded(n int) {
	promptsSeededTotal.Add(float64(n))
}
