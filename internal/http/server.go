// Package http provides the HTTP server, routing, and middleware for the identifier API.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	otelmetric "go.opentelemetry.io/otel/metric"

	"github.com/allisson/codeval/internal/config"
	eanHTTP "github.com/allisson/codeval/internal/ean/http"
	eicHTTP "github.com/allisson/codeval/internal/eic/http"
	"github.com/allisson/codeval/internal/metrics"
)

// Version is the API version reported by the service info endpoint.
const Version = "0.1.0"

// Server represents the HTTP server for the identifier API.
type Server struct {
	server   *http.Server
	logger   *slog.Logger
	draining atomic.Bool
}

// NewServer creates a new HTTP server with all routes and middleware registered.
// The meterProvider may be nil when metrics are disabled.
func NewServer(
	cfg *config.Config,
	logger *slog.Logger,
	meterProvider otelmetric.MeterProvider,
	eanHandler *eanHTTP.EANHandler,
	eicHandler *eicHTTP.EICHandler,
) *Server {
	s := &Server{logger: logger}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(logger))

	if cfg.MetricsEnabled && meterProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(meterProvider, cfg.MetricsNamespace))
	}

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	router.GET("/", s.rootHandler)
	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	// Bulk generation endpoints are rate limited per client IP; the cheap
	// single-code endpoints are not.
	bulkMiddleware := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		if cfg.RateLimitEnabled {
			limiter := RateLimitMiddleware(cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, logger)
			return []gin.HandlerFunc{limiter, handler}
		}
		return []gin.HandlerFunc{handler}
	}

	ean := router.Group("/ean")
	{
		ean.POST("/validate", eanHandler.ValidateHandler)
		ean.POST("/generate", eanHandler.GenerateHandler)
		ean.POST("/generate/random", eanHandler.GenerateRandomHandler)
		ean.POST("/generate/bulk", bulkMiddleware(eanHandler.GenerateBulkHandler)...)
	}

	eic := router.Group("/eic")
	{
		eic.POST("/validate", eicHandler.ValidateHandler)
		eic.POST("/generate", eicHandler.GenerateHandler)
		eic.POST("/generate/bulk", bulkMiddleware(eicHandler.GenerateBulkHandler)...)
	}

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server. The readiness endpoint
// starts reporting not ready as soon as shutdown begins.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	s.draining.Store(true)
	return s.server.Shutdown(ctx)
}

// rootHandler returns service information and the available endpoints.
func (s *Server) rootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "codeval",
		"version": Version,
		"endpoints": gin.H{
			"ean_validate":        "POST /ean/validate",
			"ean_generate":        "POST /ean/generate",
			"ean_generate_random": "POST /ean/generate/random",
			"ean_generate_bulk":   "POST /ean/generate/bulk",
			"eic_validate":        "POST /eic/validate",
			"eic_generate":        "POST /eic/generate",
			"eic_generate_bulk":   "POST /eic/generate/bulk",
			"health":              "GET /health",
			"ready":               "GET /ready",
		},
	})
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server is accepting traffic.
func (s *Server) readinessHandler(c *gin.Context) {
	if s.draining.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
