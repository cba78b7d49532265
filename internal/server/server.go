// Package server exposes the service-mode HTTP surface: liveness, a
// health snapshot of the assistant and Prometheus metrics. Conversations
// themselves never travel over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pudimbot/pudim-go/internal/bot"
	"github.com/pudimbot/pudim-go/internal/config"
	"github.com/pudimbot/pudim-go/internal/ctxutil"
	"github.com/pudimbot/pudim-go/internal/logger"
	"github.com/pudimbot/pudim-go/internal/storage"
)

const healthCheckTimeout = 2 * time.Second

// Server is the service-mode HTTP server.
type Server struct {
	cfg    *config.Config
	log    *logger.Logger
	bot    *bot.Bot
	db     *storage.DB
	router *gin.Engine
	http   *http.Server
}

// New builds the router and the underlying HTTP server.
func New(cfg *config.Config, log *logger.Logger, b *bot.Bot, db *storage.DB, registry *prometheus.Registry) *Server {
	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(securityHeadersMiddleware())
	router.Use(loggingMiddleware(log))

	s := &Server{
		cfg:    cfg,
		log:    log.WithModule("server"),
		bot:    b,
		db:     db,
		router: router,
	}

	router.GET("/livez", s.livenessCheck)
	router.HEAD("/livez", s.livenessCheck)
	router.GET("/healthz", s.healthCheck)
	router.HEAD("/healthz", s.healthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	s.http = &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return s
}

// Router returns the gin engine, used by tests to drive requests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start runs the HTTP server until Shutdown is called. http.ErrServerClosed
// is swallowed so a clean shutdown reads as a nil error.
func (s *Server) Start() error {
	s.log.WithField("port", s.cfg.Port).Info("HTTP server starting")
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests within the configured timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

func (s *Server) livenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

// healthCheck reports the bot snapshot plus database reachability. The
// database is only read at startup, but losing it still degrades restarts,
// so it fails the check.
func (s *Server) healthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	status := s.bot.Status()

	if err := s.db.Ping(ctx); err != nil {
		s.log.WithError(err).Warn("Health check failed: database unavailable")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"reason": "database unavailable",
			"bot":    status,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ready",
		"database": "connected",
		"bot":      status,
	})
}

// securityHeadersMiddleware adds security headers to responses.
func securityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Content-Security-Policy", "default-src 'none'")
		c.Next()
	}
}

// loggingMiddleware logs requests with status-based levels:
// 5xx=Error, 4xx=Warn, everything else Debug.
func loggingMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		requestID := c.GetHeader("X-Request-Id")
		if requestID == "" {
			requestID = c.GetHeader("X-Correlation-Id")
		}
		if requestID != "" {
			ctx := ctxutil.WithRequestID(c.Request.Context(), requestID)
			c.Request = c.Request.WithContext(ctx)
		}

		c.Next()

		status := c.Writer.Status()
		entry := log.WithField("http_method", method).
			WithField("http_path", path).
			WithField("http_status", status).
			WithField("duration_ms", time.Since(start).Milliseconds()).
			WithField("client_ip", c.ClientIP())

		if requestID != "" {
			entry = entry.WithField("request_id", requestID)
		}

		switch {
		case status >= 500:
			entry.Error("HTTP request failed")
		case status >= 400:
			entry.Warn("HTTP request rejected")
		default:
			entry.Debug("HTTP request completed")
		}
	}
}
