// Package metrics defines and registers the custom Prometheus metrics of the
// registry API. It is the single source of truth for metric names, labels and
// help strings. Metrics register with the default registry on package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "registry"

// Resource label values.
const (
	ResourceUsers = "users"
	ResourceForms = "forms"
)

// RecordsCreatedTotal counts records stored by a create request.
// Label:
//   - resource: "users" or "forms"
var RecordsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_created_total",
		Help:      "Total number of records created, by resource.",
	},
	[]string{"resource"},
)

// ValidationFailuresTotal counts create requests rejected with blocking issues.
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of create requests rejected by validation, by resource.",
	},
	[]string{"resource"},
)

// ValidationWarningsTotal counts advisory issues returned with accepted creates.
var ValidationWarningsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_warnings_total",
		Help:      "Total number of validation warnings attached to accepted creates, by resource.",
	},
	[]string{"resource"},
)

// IdempotentReplaysTotal counts creates answered from an earlier Idempotency-Key.
var IdempotentReplaysTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "idempotent_replays_total",
		Help:      "Total number of create requests served as idempotent replays, by resource.",
	},
	[]string{"resource"},
)
