// Package metrics defines prometheus collectors for the auth service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the request-outcome counters exposed on /metrics.
type Metrics struct {
	SignupsTotal       *prometheus.CounterVec
	LoginsTotal        *prometheus.CounterVec
	SessionChecksTotal *prometheus.CounterVec
}

// New registers the auth counters with the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SignupsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "auth_signups_total",
			Help: "Signup attempts by result.",
		}, []string{"result"}),
		LoginsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "auth_logins_total",
			Help: "Login attempts by result.",
		}, []string{"result"}),
		SessionChecksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "auth_session_checks_total",
			Help: "Session check requests by result.",
		}, []string{"result"}),
	}
}
