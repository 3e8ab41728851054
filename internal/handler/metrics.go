package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	paymentsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_coordinator",
			Subsystem: "payment_consumer",
			Name:      "events_processed_total",
			Help:      "Total number of applied payment events by payment status",
		},
		[]string{"payment_status"},
	)

	paymentsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_coordinator",
			Subsystem: "payment_consumer",
			Name:      "events_failed_total",
			Help:      "Total number of payment events that could not be applied",
		},
	)

	paymentsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_coordinator",
			Subsystem: "payment_consumer",
			Name:      "events_dlq_total",
			Help:      "Total number of payment events written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_coordinator",
			Subsystem: "payment_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	paymentProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "order_coordinator",
			Subsystem: "payment_consumer",
			Name:      "event_processing_duration_seconds",
			Help:      "Histogram of payment event processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

// RegisterMetrics registers the payment consumer metrics with the default registry.
func RegisterMetrics() {
	prometheus.MustRegister(
		paymentsProcessed,
		paymentsFailed,
		paymentsDLQ,
		commitErrors,
		paymentProcessingDuration,
	)
}
