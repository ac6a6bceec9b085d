// Package metrics defines and registers all custom Prometheus metrics for the
// POS server. It is the single source of truth for metric names, labels and
// help strings. Metrics register with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pos"

// ── Balance metrics ──────────────────────────────────────────────────────────

// BalanceOperationsTotal counts balance operations by outcome.
// Labels:
//   - operation: deposit, spend, purchase or transfer
//   - result: "ok", "not_found", "duplicate" or "error"
var BalanceOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "balance_operations_total",
		Help:      "Total number of balance operations, by operation and result.",
	},
	[]string{"operation", "result"},
)

// BalanceAmountTotal sums the absolute amount moved by committed operations.
var BalanceAmountTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "balance_amount_total",
		Help:      "Sum of absolute minor-unit amounts moved by committed balance operations.",
	},
	[]string{"operation"},
)

// IdempotencyTotal counts idempotency claims.
// Label:
//   - result: "claimed", "duplicate" or "unavailable"
var IdempotencyTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "idempotency_claims_total",
		Help:      "Total number of idempotency key claims, by result.",
	},
	[]string{"result"},
)

// ── Entity metrics ───────────────────────────────────────────────────────────

// EntitiesCreatedTotal counts created records.
// Label:
//   - kind: "product" or "user"
var EntitiesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entities_created_total",
		Help:      "Total number of products and users created.",
	},
	[]string{"kind"},
)

// ── Journal metrics ──────────────────────────────────────────────────────────

// JournalQueueDepth tracks pending events in each dispatcher worker channel.
var JournalQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "journal_queue_depth",
		Help:      "Current number of balance events pending in each journal worker channel.",
	},
	[]string{"worker_id"},
)

// JournalDroppedTotal counts events discarded because a worker queue was full.
var JournalDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "journal_dropped_total",
		Help:      "Total number of balance events dropped on a full journal queue.",
	},
)

// JournalWriteErrorsTotal counts events the journal store rejected.
var JournalWriteErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "journal_write_errors_total",
		Help:      "Total number of balance events that failed to persist.",
	},
)

// ── HTTP metrics ─────────────────────────────────────────────────────────────

// HTTPRequestDuration measures request latency.
// Labels:
//   - method: HTTP method
//   - route: registered route path, e.g. "/api/v3/users/:id"
//   - status: response status code
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests by method, route and status.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route", "status"},
)
