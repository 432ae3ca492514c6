package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors for the session authority.
type Metrics struct {
	LoginAttempts      *prometheus.CounterVec
	AuthFailures       prometheus.Counter
	TokenVerifications *prometheus.CounterVec
	AdminsSeeded       prometheus.Counter
	SeedRacesLost      prometheus.Counter
}

// New registers and returns auth metrics collectors on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		LoginAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dotback_login_attempts_total",
			Help: "Total number of login attempts by result",
		}, []string{"result"}),
		AuthFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "dotback_auth_failures_total",
			Help: "Total number of authentication failures",
		}),
		TokenVerifications: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dotback_token_verifications_total",
			Help: "Total number of session token verifications by result",
		}, []string{"result"}),
		AdminsSeeded: factory.NewCounter(prometheus.CounterOpts{
			Name: "dotback_admins_seeded_total",
			Help: "Total number of default admin records created by seeding",
		}),
		SeedRacesLost: factory.NewCounter(prometheus.CounterOpts{
			Name: "dotback_seed_races_lost_total",
			Help: "Total number of seeding attempts that lost a cross-process race",
		}),
	}
}
