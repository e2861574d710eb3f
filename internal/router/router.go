package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/mishasvintus/pr_range_explorer/internal/handler"
	"github.com/mishasvintus/pr_range_explorer/internal/logger"
	"github.com/mishasvintus/pr_range_explorer/internal/metrics"
)

// Options carries the cross-cutting pieces the engine is built with.
type Options struct {
	AllowedOrigins []string
	Metrics        metrics.Metrics
	Log            logrus.FieldLogger
}

// SetupRoutes configures all API routes.
func SetupRoutes(
	prHandler *handler.PRHandler,
	healthHandler *handler.HealthHandler,
	opts Options,
) *gin.Engine {
	r := gin.New()

	r.Use(requestID())
	if opts.Log != nil {
		r.Use(logger.GinMiddleware(opts.Log))
	}
	if opts.Metrics != nil {
		r.Use(metricsMiddleware(opts.Metrics))
	}
	r.Use(gin.Recovery())
	r.Use(cors.New(corsConfig(opts.AllowedOrigins)))

	// Pull request endpoint
	r.GET("/pulls", prHandler.GetPulls)

	// Probes
	r.GET("/healthz", healthHandler.Health)
	if opts.Metrics != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Metrics.GetRegistry(), promhttp.HandlerOpts{})))
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
