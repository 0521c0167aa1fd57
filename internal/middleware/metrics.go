package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "saisonnalite_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// CatalogQueries counts weekly catalog queries by filter mode.
	CatalogQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "saisonnalite_catalog_queries_total",
		Help: "Total number of weekly catalog queries by filter mode",
	}, []string{"filter"})

	// FavoriteToggles counts favorite toggles by outcome.
	FavoriteToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "saisonnalite_favorite_toggles_total",
		Help: "Total number of favorite toggles by resulting state",
	}, []string{"state"})

	// RateLimitRejections counts throttled requests by resource name.
	RateLimitRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "saisonnalite_rate_limit_rejections_total",
		Help: "Total number of requests rejected by the rate limiter",
	}, []string{"resource"})
)

// InitMetrics creates the Prometheus middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware wraps the fiberprometheus middleware as a fiber.Handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
