package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters and histograms exported on /metrics. Registered on the default
// registry so promhttp picks them up without extra wiring.
var (
	ContentMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "folio_content_mutations_total",
		Help: "Content mutations by entity and operation.",
	}, []string{"entity", "operation"})

	ActivityDrops = promauto.NewCounter(prometheus.CounterOpts{
		Name: "folio_activity_drops_total",
		Help: "Audit records lost because persistence failed.",
	})

	ContactSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "folio_contact_submissions_total",
		Help: "Inbound contact submissions by outcome.",
	}, []string{"outcome"})

	UploadRejects = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "folio_upload_rejects_total",
		Help: "Rejected uploads by reason.",
	}, []string{"reason"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "folio_http_request_duration_seconds",
		Help:    "HTTP request latency by route and status.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)
