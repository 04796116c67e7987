// Package metrics defines the Prometheus collectors exposed on /metrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	OrdersCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "laundromart_orders_created_total",
			Help: "Total number of orders created",
		},
	)

	OrderTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "laundromart_order_transitions_total",
			Help: "Total number of successful order status transitions",
		},
		[]string{"to_status"},
	)

	ClaimConflictsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "laundromart_claim_conflicts_total",
			Help: "Total number of claim attempts that lost the race for an order",
		},
	)

	OrdersByStatus = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "laundromart_orders_by_status",
			Help: "Current number of orders per status",
		},
		[]string{"status"},
	)

	DeliveredRevenue = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "laundromart_delivered_revenue",
			Help: "Total amount across delivered orders",
		},
	)
)

// Register registers all Prometheus metrics.
func Register() {
	prometheus.MustRegister(OrdersCreatedTotal)
	prometheus.MustRegister(OrderTransitionsTotal)
	prometheus.MustRegister(ClaimConflictsTotal)
	prometheus.MustRegister(OrdersByStatus)
	prometheus.MustRegister(DeliveredRevenue)
}
