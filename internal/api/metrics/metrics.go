// Package metrics defines all custom Prometheus metrics for the employee
// directory API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Collectors register with the default Prometheus registry on package init;
// the router exposes them together with the per-router HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "employee_directory"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "accepted" or "rejected"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Employee metrics ──────────────────────────────────────────────────────────

// EmployeeMutationsTotal counts employee records written.
// Label:
//   - op: "create", "update", "delete", "bulk_delete" or "bulk_status"
var EmployeeMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "employee_mutations_total",
		Help:      "Total number of employee records changed, by operation.",
	},
	[]string{"op"},
)

// ── QA fault injection ────────────────────────────────────────────────────────

// FaultsInjectedTotal counts faults applied by the QA middleware.
// Label:
//   - kind: "delay", "forced_failure" or "random_failure"
var FaultsInjectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "qa_faults_injected_total",
		Help:      "Total number of delays and failures injected into API requests.",
	},
	[]string{"kind"},
)

// FaultDelaySeconds observes injected delays.
var FaultDelaySeconds = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "qa_fault_delay_seconds",
		Help:      "Artificial delay applied to API requests by the QA middleware.",
		Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	},
)
