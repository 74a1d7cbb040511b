package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PaymentMetrics covers the gateway calls and the stored-card vault.
type PaymentMetrics struct {
	PaymentsTotal       prometheus.CounterVec
	PaymentAmountTotal  prometheus.CounterVec
	GatewayDuration     prometheus.HistogramVec
	GatewayErrorsTotal  prometheus.CounterVec
	StoredCardsCreated  prometheus.Counter
	StoredCardsDeleted  prometheus.Counter
	ValidationFailTotal prometheus.Counter
}

func NewPaymentMetrics() *PaymentMetrics {
	return &PaymentMetrics{
		PaymentsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trexle_payments_total",
				Help: "Gateway calls by action and outcome",
			},
			[]string{"action", "status", "currency"},
		),
		PaymentAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trexle_payment_amount_minor_units_total",
				Help: "Processed amount in minor units by action",
			},
			[]string{"action", "currency"},
		),
		GatewayDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "trexle_gateway_request_duration_seconds",
				Help:    "Gateway round-trip latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		GatewayErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trexle_gateway_errors_total",
				Help: "Transport-level gateway failures",
			},
			[]string{"operation"},
		),
		StoredCardsCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "trexle_stored_cards_created_total",
				Help: "Stored card tokens saved",
			},
		),
		StoredCardsDeleted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "trexle_stored_cards_deleted_total",
				Help: "Stored card tokens deleted by customers",
			},
		),
		ValidationFailTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "trexle_card_validation_failures_total",
				Help: "Card validation failures before any gateway call",
			},
		),
	}
}
