// Package metrics defines and registers all custom Prometheus metrics for the
// SweetTreats storefront. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry at package
// init through promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bakery"

// ── Catalog ───────────────────────────────────────────────────────────────────

// CatalogMutationsTotal counts successful staff catalog changes.
// Label:
//   - op: "add", "update" or "delete"
var CatalogMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_mutations_total",
		Help:      "Total number of catalog items added, updated or deleted.",
	},
	[]string{"op"},
)

// ── Orders ────────────────────────────────────────────────────────────────────

// CartLinesAddedTotal counts lines appended to customer carts.
var CartLinesAddedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_lines_added_total",
		Help:      "Total number of lines added to carts.",
	},
)

// CheckoutsTotal counts successful checkouts (each repeat counts).
var CheckoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkouts_total",
		Help:      "Total number of successful checkouts.",
	},
)

// PaymentsTotal counts completed payments.
var PaymentsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_total",
		Help:      "Total number of completed payments.",
	},
)

// PaymentAmount observes the total of each completed payment.
var PaymentAmount = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "payment_amount",
		Help:      "Order totals of completed payments.",
		Buckets:   []float64{5, 10, 20, 40, 80, 160},
	},
)

// OperationsRejectedTotal counts storefront operations that returned a
// user-correctable error.
// Labels:
//   - op: the operation (e.g. "checkout", "add_item")
//   - kind: the error kind (e.g. "EmptyCartCheckout", "AccessDenied")
var OperationsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "operations_rejected_total",
		Help:      "Total number of rejected storefront operations, by operation and error kind.",
	},
	[]string{"op", "kind"},
)

// ── Operation queue ───────────────────────────────────────────────────────────

// OperationQueueDepth tracks operations waiting for the serializer worker.
var OperationQueueDepth = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "operation_queue_depth",
		Help:      "Current number of storefront operations waiting to run.",
	},
)
