package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Total number of orders created",
	})

	PaymentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payments_total",
		Help: "Total number of payments by status",
	}, []string{"status"})

	SuggestionsSubmittedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "suggestions_submitted_total",
		Help: "Total number of user suggestions submitted",
	}, []string{"type"})

	SuggestionsModeratedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "suggestions_moderated_total",
		Help: "Total number of user suggestions moderated",
	}, []string{"resolution"})

	BalanceOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "balance_operations_total",
		Help: "Total number of balance ledger operations",
	}, []string{"operation"})

	VinDecodeLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "vin_decode_latency_seconds",
		Help:    "Latency of VIN decode requests to the external API",
		Buckets: prometheus.DefBuckets,
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
