package api

import (
	"github.com/Conceptual-Machines/songbook-api/internal/api/handlers"
	apimiddleware "github.com/Conceptual-Machines/songbook-api/internal/api/middleware"
	"github.com/Conceptual-Machines/songbook-api/internal/config"
	"github.com/Conceptual-Machines/songbook-api/internal/metrics"
	"github.com/Conceptual-Machines/songbook-api/internal/services"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires middleware and routes. cw may be nil when CloudWatch is off.
func SetupRouter(cfg *config.Config, svc *services.ChordService, cw *metrics.Client, version string) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking(cw))

	// CORS middleware
	router.Use(apimiddleware.CORS(cfg.CORSAllowedOrigins))

	// Health check
	healthHandler := handlers.NewHealthHandler(svc)
	router.GET("/health", healthHandler.HealthCheck)

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(version, svc)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	v1 := router.Group("/api/v1")
	{
		chordHandler := handlers.NewChordHandler(svc, cw)

		chords := v1.Group("/chords")
		chords.POST("/normalize", chordHandler.Normalize)
		chords.POST("/parse", chordHandler.Parse)
		chords.POST("/transpose", chordHandler.Transpose)

		v1.GET("/keys/interval", chordHandler.Interval)
		v1.GET("/suggestions", chordHandler.Suggestions)
		v1.POST("/sheets/transpose", chordHandler.TransposeSheet)
	}

	return router
}
