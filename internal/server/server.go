// Package server exposes the store locator over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tournevent/storelocator/internal/service"
	"github.com/tournevent/storelocator/internal/telemetry"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Server is the HTTP server for the store locator service.
type Server struct {
	port    int
	locator *service.Locator
	logger  *otelzap.Logger
	metrics *telemetry.Metrics
}

// Config holds server configuration.
type Config struct {
	Port int
}

// New creates a new server instance.
func New(cfg Config, locator *service.Locator, metrics *telemetry.Metrics, logger *otelzap.Logger) *Server {
	return &Server{
		port:    cfg.Port,
		locator: locator,
		logger:  logger,
		metrics: metrics,
	}
}

// Handler builds the gin engine with all routes mounted.
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery(), s.telemetryMiddleware())

	router.GET("/health", s.handleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Cheap flow: great-circle distance computed in the database.
	router.GET("/lojas", s.handleNearby)

	stores := router.Group("/store")
	stores.GET("", s.handleFindByCEP)
	stores.POST("", s.handleCreate)
	stores.GET("/list-all", s.handleListAll)
	stores.GET("/fee", s.handleFee)
	stores.GET("/state/:state", s.handleListByState)
	stores.GET("/:id", s.handleGet)
	stores.PUT("/:id", s.handleUpdate)
	stores.DELETE("/:id", s.handleDelete)

	return router
}

// Run starts the HTTP server and blocks until context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting server", zap.Int("port", s.port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for context cancellation or error
	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// telemetryMiddleware tags each request with a correlation ID and records
// the route metrics and an access log entry.
func (s *Server) telemetryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()
		duration := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		s.metrics.RecordRequest(route, status, duration.Seconds())
		s.logger.Info("Request handled",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.String("status", status),
			zap.Duration("duration", duration),
		)
	}
}
