package portal

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	portalGrantsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_grants_total",
			Help: "Network access grants issued, by membership tier",
		},
		[]string{"tier"},
	)

	portalGrantFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "portal_grant_failures_total",
			Help: "Grants aborted because the router did not confirm",
		},
	)

	portalRevokesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_revokes_total",
			Help: "Network access revocations, by reason (logout, sweep, supersede, admin, check)",
		},
		[]string{"reason"},
	)

	portalAuthFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_auth_failures_total",
			Help: "Failed portal authentications, by internal reason",
		},
		[]string{"reason"},
	)

	portalSweepReclaimedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "portal_sweep_reclaimed_total",
			Help: "Expired sessions reclaimed by the background sweep",
		},
	)

	portalActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "portal_active_sessions",
			Help: "Sessions currently in the active state",
		},
	)
)
