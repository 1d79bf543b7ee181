package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// Business metrics
	RegistrationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pg_registrations_total",
			Help: "Total number of PG businesses registered",
		},
	)

	LoginFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pg_login_failures_total",
			Help: "Total number of rejected login attempts",
		},
	)

	PaymentsRecordedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pg_payments_recorded_total",
			Help: "Total number of rent payments recorded",
		},
		[]string{"method"},
	)

	DocumentsUploadedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pg_documents_uploaded_total",
			Help: "Total number of tenant documents uploaded",
		},
	)
)

// ObserveRequest records one served HTTP request
func ObserveRequest(method, route, status string, elapsed time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route, status).Observe(elapsed.Seconds())
}

// RecordRegistration increments the registration counter
func RecordRegistration() {
	RegistrationsTotal.Inc()
}

// RecordLoginFailure increments the failed login counter
func RecordLoginFailure() {
	LoginFailuresTotal.Inc()
}

// RecordPayment increments the payments counter for method
func RecordPayment(method string) {
	PaymentsRecordedTotal.WithLabelValues(method).Inc()
}

// RecordDocumentUpload increments the document upload counter
func RecordDocumentUpload() {
	DocumentsUploadedTotal.Inc()
}

// Handler exposes the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
