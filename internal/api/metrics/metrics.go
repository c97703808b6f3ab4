// Package metrics defines and registers all custom Prometheus metrics for
// the Export Base marketplace API. It is the single source of truth for
// metric names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at init time via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "exportbase"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Labels:
//   - role: the resolved role on success, or "none" on failure
//   - result: "success" or "invalid"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by resolved role and result.",
	},
	[]string{"role", "result"},
)

// SignupsTotal counts completed signups by chosen role.
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of completed signups, by role.",
	},
	[]string{"role"},
)

// LoginDuration measures the wall time of a login or signup call, including
// the simulated identity-provider round trip.
var LoginDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "login_duration_seconds",
		Help:      "Duration of login/signup calls end-to-end.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// ── Route guard metrics ───────────────────────────────────────────────────────

// GuardDecisionsTotal counts route guard outcomes.
// Label:
//   - decision: "loading", "unauthenticated", "unauthorized", or "authorized"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of route guard evaluations, by decision.",
	},
	[]string{"decision"},
)

// ── Lead metrics ──────────────────────────────────────────────────────────────

// LeadsSubmittedTotal counts new buyer inquiries.
var LeadsSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leads_submitted_total",
		Help:      "Total number of leads submitted by marketers.",
	},
)

// LeadTransitionsTotal counts lead status transitions.
// Label:
//   - status: the new lead status applied
var LeadTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lead_transitions_total",
		Help:      "Total number of lead status transitions, by new status.",
	},
	[]string{"status"},
)

// LeadNotificationsTotal counts lead events delivered by the notification
// pipeline.
var LeadNotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lead_notifications_total",
		Help:      "Total number of lead event notifications delivered, by status.",
	},
	[]string{"status"},
)
