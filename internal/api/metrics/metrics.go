// Package metrics defines all custom Prometheus metrics for the marketplace
// API. It is the single source of truth for metric names, labels, and help
// strings; everything registers against the default registry at init time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// GraphQLOperationsTotal counts executed GraphQL operations.
// Labels:
//   - operation: the operation name sent by the client, or "anonymous"
//   - outcome: "ok" or "error"
var GraphQLOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "graphql_operations_total",
		Help:      "Total number of GraphQL operations executed, by outcome.",
	},
	[]string{"operation", "outcome"},
)

// AuthLoginsTotal counts login attempts.
// Label:
//   - outcome: "ok" or "denied"
var AuthLoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// NotificationsQueuedTotal counts notifications accepted onto the dispatcher.
var NotificationsQueuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_queued_total",
		Help:      "Total number of notifications enqueued for mock delivery.",
	},
)

// NotificationErrorsTotal counts failed deliveries.
var NotificationErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_errors_total",
		Help:      "Total number of notification deliveries that failed.",
	},
)

// NotificationDeliveryDuration measures mock delivery latency per
// notification, from dequeue to completion.
var NotificationDeliveryDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "notification_delivery_duration_seconds",
		Help:      "Duration of notification delivery from dequeue to completion.",
		Buckets:   prometheus.DefBuckets,
	},
)
