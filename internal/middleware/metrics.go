package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis command failures by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scamwatch_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// ReportsSubmitted counts report submissions by report type.
	ReportsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scamwatch_reports_submitted_total",
		Help: "Total number of scam reports submitted by type",
	}, []string{"type"})

	// VotesCast counts community votes by direction.
	VotesCast = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scamwatch_votes_cast_total",
		Help: "Total number of votes cast by direction",
	}, []string{"direction"})

	// StatusTransitions counts moderator status changes by target status.
	StatusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scamwatch_status_transitions_total",
		Help: "Total number of report status transitions by new status",
	}, []string{"status"})

	// NotificationsCreated counts notifications created by type.
	NotificationsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scamwatch_notifications_created_total",
		Help: "Total number of notifications created by type",
	}, []string{"type"})
)

// InitMetrics creates the Prometheus middleware and registers the /metrics endpoint handler.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the request instrumentation handler for the given collector.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
