package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jobboard_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "jobboard_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	registrations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jobboard_registrations_total",
		Help: "Accounts created by role",
	}, []string{"role"})

	logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jobboard_logins_total",
		Help: "Login attempts by result",
	}, []string{"result"})

	jobsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jobboard_jobs_created_total",
		Help: "Job postings created",
	})

	applicationsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jobboard_applications_submitted_total",
		Help: "Application submissions by result",
	}, []string{"result"})

	applicationStatusChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jobboard_application_status_changes_total",
		Help: "Application status updates by target status",
	}, []string{"status"})
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	httpRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}

func ObserveRegistration(role string) {
	registrations.WithLabelValues(role).Inc()
}

// ObserveLogin counts a login attempt; result is "success" or "failure".
func ObserveLogin(result string) {
	logins.WithLabelValues(result).Inc()
}

func ObserveJobCreated() {
	jobsCreated.Inc()
}

// ObserveApplication counts a submission; result is "accepted", "duplicate" or "closed".
func ObserveApplication(result string) {
	applicationsSubmitted.WithLabelValues(result).Inc()
}

func ObserveStatusChange(status string) {
	applicationStatusChanges.WithLabelValues(status).Inc()
}
