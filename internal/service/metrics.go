package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "order_coordinator",
		Subsystem: "orders",
		Name:      "placed_total",
		Help:      "Total number of orders persisted after catalog validation.",
	})

	placementRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "order_coordinator",
		Subsystem: "orders",
		Name:      "placement_rejections_total",
		Help:      "Total number of rejected order placements by reason.",
	}, []string{"reason"})

	deliveryTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "order_coordinator",
		Subsystem: "deliveries",
		Name:      "transitions_total",
		Help:      "Total number of fully applied delivery operations.",
	}, []string{"operation"})

	partialFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "order_coordinator",
		Subsystem: "deliveries",
		Name:      "partial_failures_total",
		Help:      "Total number of delivery operations that stopped after applying some steps.",
	}, []string{"operation", "step"})
)
