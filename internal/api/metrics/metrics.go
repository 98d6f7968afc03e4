// Package metrics defines and registers the custom Prometheus metrics of the
// PlacementIQ API. HTTP request metrics come from the echoprometheus
// middleware; the counters here track domain activity.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "placementiq"

// ── Entity metrics ────────────────────────────────────────────────────────────

// EntitiesCreatedTotal counts successful creations.
// Label:
//   - entity: "student", "company", "drive" or "offer"
var EntitiesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entities_created_total",
		Help:      "Total number of records created, by entity.",
	},
	[]string{"entity"},
)

// EntitiesUpdatedTotal counts successful full-record updates.
var EntitiesUpdatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entities_updated_total",
		Help:      "Total number of records updated, by entity.",
	},
	[]string{"entity"},
)

// EntitiesDeletedTotal counts successful deletions.
var EntitiesDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entities_deleted_total",
		Help:      "Total number of records deleted, by entity.",
	},
	[]string{"entity"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthRequestsTotal counts register and login attempts.
// Labels:
//   - action: "register" or "login"
//   - result: "success" or "failure"
var AuthRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_requests_total",
		Help:      "Total number of registration and login attempts, by outcome.",
	},
	[]string{"action", "result"},
)

// TokenRejectionsTotal counts bearer tokens refused by the auth middleware.
// Label:
//   - reason: "missing_header", "malformed_header" or "invalid_token"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of requests rejected by bearer token validation.",
	},
	[]string{"reason"},
)

// ── Seed metrics ──────────────────────────────────────────────────────────────

// SeedRunsTotal counts seed invocations.
// Label:
//   - result: "seeded", "skipped" or "error"
var SeedRunsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "seed_runs_total",
		Help:      "Total number of seed runs, by outcome.",
	},
	[]string{"result"},
)
