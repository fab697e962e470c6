package health

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/giveaway-bot/internal/common/clock"
	"github.com/KirkDiggler/giveaway-bot/internal/common/logger"
)

const (
	serviceName  = "giveaway-bot"
	aliveMessage = "Giveaway Bot is alive!"
	checkTimeout = 2 * time.Second
)

// CheckFunc reports whether a dependency is reachable
type CheckFunc func(ctx context.Context) error

// Check is a named readiness probe
type Check struct {
	Name string
	Func CheckFunc
}

// Config holds configuration for the health server
type Config struct {
	// Addr is the listen address, e.g. ":3000"
	Addr string

	// Checks run in order on every readiness request
	Checks []Check

	Clock clock.Clock
	Debug bool
}

// Server exposes liveness and readiness over HTTP
type Server struct {
	router *gin.Engine
	server *http.Server
	checks []Check
	clock  clock.Clock
}

// New creates a health server; it does not start listening
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Addr == "" {
		return nil, errors.New("listen address cannot be empty")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		router: router,
		checks: cfg.Checks,
		clock:  cfg.Clock,
	}

	router.GET("/", s.handleRoot)
	router.GET("/health", s.handleHealth)
	router.GET("/ready", s.handleReady)

	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the routed HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens in the background until Shutdown
func (s *Server) Start() {
	go func() {
		logger.Info().Str("addr", s.server.Addr).Msg("Starting health server")
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Str("addr", s.server.Addr).Msg("Health server stopped")
		}
	}()
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down health server: %w", err)
	}
	return nil
}

func (s *Server) handleRoot(c *gin.Context) {
	c.String(http.StatusOK, aliveMessage)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": s.clock.Now(),
		"service":   serviceName,
	})
}

func (s *Server) handleReady(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
	defer cancel()

	for _, check := range s.checks {
		if err := check.Func(ctx); err != nil {
			logger.Warn().Err(err).Str("check", check.Name).Msg("Readiness check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unready",
				"error":   check.Name + " unavailable",
				"details": err.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ready",
		"timestamp": s.clock.Now(),
		"service":   serviceName,
	})
}
