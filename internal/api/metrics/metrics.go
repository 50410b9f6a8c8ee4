// Package metrics defines and registers all custom Prometheus metrics for the
// gym-platform admin API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gym_admin"

// LoginsTotal counts login attempts.
// Label:
//   - outcome: "success", "invalid_credentials", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// IdentityResolutionsTotal counts /auth/me identity resolutions.
// Label:
//   - outcome: "success", "expired", "revoked", or "error"
var IdentityResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "identity_resolutions_total",
		Help:      "Total number of bearer-token identity resolutions, by outcome.",
	},
	[]string{"outcome"},
)

// AccessDecisionsTotal counts role-gate decisions on protected routes.
// Labels:
//   - route: the registered route path
//   - decision: "granted" or "denied"
var AccessDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_decisions_total",
		Help:      "Total number of role-based access decisions on protected routes.",
	},
	[]string{"route", "decision"},
)

// RevokedTokenHitsTotal counts requests rejected because their token was
// revoked by a logout.
var RevokedTokenHitsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "revoked_token_hits_total",
		Help:      "Total number of requests carrying a revoked bearer token.",
	},
)

// GymsCreatedTotal counts newly registered gyms.
var GymsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gyms_created_total",
		Help:      "Total number of gyms registered through the dashboard.",
	},
)
