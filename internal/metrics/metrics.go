// Package metrics defines the custom Prometheus metrics of the LightBnB API.
// HTTP request metrics come from the echoprometheus middleware; the metrics
// here cover store queries and domain writes.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lightbnb"

// ── Store metrics ─────────────────────────────────────────────────────────────

// StoreQueriesTotal counts store operations.
// Labels:
//   - operation: e.g. "user_find_by_email", "reservation_list_by_guest"
//   - outcome: "ok", "not_found" or "error"
var StoreQueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_queries_total",
		Help:      "Total number of store operations, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// StoreQueryDuration measures store round-trip latency.
var StoreQueryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "store_query_duration_seconds",
		Help:      "Duration of store operations.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// ── Domain metrics ────────────────────────────────────────────────────────────

// UsersRegisteredTotal counts successful registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of registered users.",
	},
)

// PropertiesCreatedTotal counts stored properties.
// Label:
//   - store: the property write store ("memory", "postgres" or "mongo")
var PropertiesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "properties_created_total",
		Help:      "Total number of properties created, by write store.",
	},
	[]string{"store"},
)

// IdempotencyChecksTotal counts Idempotency-Key claims.
// Label:
//   - result: "fresh", "replay" or "error"
var IdempotencyChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "idempotency_checks_total",
		Help:      "Total number of idempotency key claims, by result.",
	},
	[]string{"result"},
)

// ObserveQuery records one store operation.
func ObserveQuery(operation, outcome string, start time.Time) {
	StoreQueriesTotal.WithLabelValues(operation, outcome).Inc()
	StoreQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
