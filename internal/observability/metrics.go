// Package observability provides Prometheus metrics and OpenTelemetry tracing
// for the application.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AuthFailuresTotal counts rejected authentications by reason.
	AuthFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_auth_failures_total",
		Help: "Total number of rejected authentications by reason",
	}, []string{"reason"})

	// OwnershipDenialsTotal counts mutations rejected because the caller is
	// not the resource author.
	OwnershipDenialsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_ownership_denials_total",
		Help: "Total number of mutations rejected by the ownership check",
	}, []string{"resource"})

	// RedisErrorsTotal counts Redis errors by command.
	RedisErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})
)
