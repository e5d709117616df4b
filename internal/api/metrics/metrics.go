// Package metrics defines and registers all custom Prometheus metrics for the
// project tracking API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metric vars are promauto-registered with the default registry at package
// init; the /metrics route is served by echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sitetracker"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokensIssuedTotal counts identity tokens issued (register + login).
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of identity tokens issued.",
	},
)

// AuthFailuresTotal counts requests rejected by the auth middleware.
// Label:
//   - reason: "no_token" (missing/malformed header) or "invalid_token"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected during token verification.",
	},
	[]string{"reason"},
)

// ForbiddenTotal counts role-policy denials.
// Label:
//   - route: the registered route path
var ForbiddenTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "forbidden_total",
		Help:      "Total number of requests denied by role policy.",
	},
	[]string{"route"},
)

// ── Resource metrics ──────────────────────────────────────────────────────────

// ProjectsCreatedTotal counts newly created projects.
// Label:
//   - status: initial project status ("PLANNED", "ACTIVE", …)
var ProjectsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projects_created_total",
		Help:      "Total number of projects created, by initial status.",
	},
	[]string{"status"},
)

// ReportsCreatedTotal counts daily progress reports filed.
var ReportsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_created_total",
		Help:      "Total number of daily progress reports created.",
	},
)

// ReportQueueDepth tracks the events waiting in each activity worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ReportQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "report_queue_depth",
		Help:      "Current number of report events pending in each activity worker channel.",
	},
	[]string{"worker_id"},
)
