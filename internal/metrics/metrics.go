package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	PaymentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_total",
			Help: "Admitted payments, split by created vs idempotent replay",
		},
		[]string{"result"},
	)

	PaymentAmounts = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "payment_amounts",
			Help:    "Distribution of admitted payment amounts",
			Buckets: prometheus.ExponentialBuckets(1, 10, 8),
		},
		[]string{"currency"},
	)

	NotificationsProcessedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_processed_total",
			Help: "Delivery outcomes observed by the consumer",
		},
		[]string{"status"},
	)

	NotificationRetriesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "notification_retries_total",
			Help: "In-message retry attempts performed by the consumer",
		},
	)

	DeadLetterRepublishedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dead_letter_republished_total",
			Help: "Messages republished from the dead letter queue",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		PaymentsTotal,
		PaymentAmounts,
		NotificationsProcessedTotal,
		NotificationRetriesTotal,
		DeadLetterRepublishedTotal,
	)
}
