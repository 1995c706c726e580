// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"xisms.app/internal/core/verification"
	"xisms.app/internal/ports"
	"xisms.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router              *gin.Engine
	server              *http.Server
	config              ServerConfig
	verificationUseCase VerificationUseCase
	healthChecker       ports.SystemHealthChecker
	metricsHandler      http.Handler
}

// VerificationUseCase is the slice of the verification core the HTTP adapter depends on
type VerificationUseCase interface {
	SendCode(ctx context.Context, params verification.SendCodeParams) (ports.DeliveryResult, error)
	VerifyCode(ctx context.Context, params verification.VerifyCodeParams) error
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config              ServerConfig
	VerificationUseCase VerificationUseCase
	HealthChecker       ports.SystemHealthChecker
	// MetricsHandler serves /metrics; defaults to promhttp.Handler()
	MetricsHandler http.Handler
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}
	if err := RegisterValidations(); err != nil {
		return nil, fmt.Errorf("register validations: %w", err)
	}

	metricsHandler := opts.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}

	server := &HTTPServerAdapter{
		router:              gin.Default(),
		config:              opts.Config,
		verificationUseCase: opts.VerificationUseCase,
		healthChecker:       opts.HealthChecker,
		metricsHandler:      metricsHandler,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.VerificationUseCase == nil {
		return errors.NewInvalidInputError("verification use case is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewInvalidInputError("health checker is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	s.router.GET("/", s.index)
	s.router.POST("/", s.sendCode)

	api := s.router.Group("/api")
	{
		api.POST("/send-code", s.sendCode)
		api.POST("/verify-code", s.verifyCode)
		api.GET("/health", s.health)
	}

	s.router.GET("/metrics", gin.WrapH(s.metricsHandler))
}

// Start serves HTTP until Shutdown is called
func (s *HTTPServerAdapter) Start() error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.config.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("Starting HTTP server", "port", s.config.Port)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("listen and serve: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server, waiting for in-flight requests
func (s *HTTPServerAdapter) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
