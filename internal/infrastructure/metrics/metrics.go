package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OrderMetrics covers the order workflow.
type OrderMetrics struct {
	OrdersCreatedTotal      *prometheus.CounterVec
	OrdersCancelledTotal    *prometheus.CounterVec
	StatusTransitionsTotal  *prometheus.CounterVec
	OversellRejectionsTotal *prometheus.CounterVec
	CreateDuration          *prometheus.HistogramVec
}

func NewOrderMetrics() *OrderMetrics {
	return &OrderMetrics{
		OrdersCreatedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_total",
				Help: "Orders persisted with status PENDING",
			},
			[]string{"store_id"},
		),
		OrdersCancelledTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_cancelled_total",
				Help: "Orders moved to CANCELLED with stock restored",
			},
			[]string{"store_id"},
		),
		StatusTransitionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_status_transitions_total",
				Help: "Accepted order status transitions",
			},
			[]string{"from", "to"},
		),
		OversellRejectionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_oversell_rejections_total",
				Help: "Order creations rejected for insufficient stock",
			},
			[]string{"store_id"},
		),
		CreateDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "order_create_duration_seconds",
				Help:    "End-to-end CreateOrder transaction duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
	}
}

func (m *OrderMetrics) ObserveCreate(start time.Time, outcome string) {
	m.CreateDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
}

// PaymentMetrics covers the payment workflow and the gateway call.
type PaymentMetrics struct {
	PaymentsTotal          *prometheus.CounterVec
	AmountMismatchTotal    prometheus.Counter
	GatewayChargeDuration  *prometheus.HistogramVec
	PaymentsVerifiedTotal  prometheus.Counter
	SettledAmountTotal     *prometheus.CounterVec
}

func NewPaymentMetrics() *PaymentMetrics {
	return &PaymentMetrics{
		PaymentsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_total",
				Help: "Payments recorded, by final status and method",
			},
			[]string{"status", "method"},
		),
		AmountMismatchTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "payment_amount_mismatch_total",
				Help: "Payments rejected because the amount missed the order total",
			},
		),
		GatewayChargeDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "payment_gateway_charge_duration_seconds",
				Help:    "Latency of gateway Charge calls",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
		PaymentsVerifiedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "payments_verified_total",
				Help: "Payments force-settled by an admin",
			},
		),
		SettledAmountTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_settled_amount_total",
				Help: "Sum of completed payment amounts",
			},
			[]string{"method"},
		),
	}
}
