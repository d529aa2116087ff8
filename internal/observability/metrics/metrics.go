package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	EntitySubmissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "entity_submissions_total",
			Help: "Total number of entity creation submissions.",
		},
		[]string{"entity", "result"},
	)

	PhotoUploadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "photo_uploads_total",
			Help: "Total number of photo uploads to object storage.",
		},
		[]string{"result"},
	)
)

// MustRegister registers all collectors with the service name attached as a
// constant label. Call once from main.
func MustRegister(serviceName string) {
	reg := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": serviceName},
		prometheus.DefaultRegisterer,
	)
	reg.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDurationSeconds,
		EntitySubmissionsTotal,
		PhotoUploadsTotal,
	)
}
