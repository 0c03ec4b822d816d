package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portfolio_http_request_duration_seconds",
			Help:    "Histogram of response durations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	// ContactSubmissions counts stored contact messages
	ContactSubmissions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "portfolio_contact_submissions_total",
			Help: "Number of contact messages stored",
		},
	)

	// AnalyticsEvents counts tracking writes by result (tracked|failed)
	AnalyticsEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_analytics_events_total",
			Help: "Number of analytics tracking attempts",
		},
		[]string{"result"},
	)

	ValidationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_validation_failures_total",
			Help: "Number of rejected payloads per resource",
		},
		[]string{"resource"},
	)
)

var once sync.Once

// Init registers every collector with the default registry. Safe to call more than once.
func Init() {
	once.Do(func() {
		prometheus.MustRegister(RequestCount, RequestDuration, ContactSubmissions, AnalyticsEvents, ValidationFailures)
	})
}
