package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"xisms.app/internal/adapters/api"
	"xisms.app/internal/config"
	"xisms.app/internal/core/mailtemplate"
	"xisms.app/internal/core/verification"
	"xisms.app/internal/ports"
)

type Application struct {
	config *config.Config

	// Use Cases
	verificationUseCase *verification.UseCase

	// Adapters
	httpAdapter   *api.HTTPServerAdapter
	healthChecker ports.SystemHealthChecker

	// Infrastructure
	deps     *DependencyContainer
	ports    *ports.ApplicationPorts
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	return newApplication(cfg, NewDependencyContainer)
}

// newApplication releases the container when the application cannot be built on top of it
func newApplication(cfg *config.Config, newDeps func(*config.Config) (*DependencyContainer, error)) (*Application, error) {
	deps, err := newDeps(cfg)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, deps)
	if err != nil {
		if cleanupErr := deps.Cleanup(); cleanupErr != nil {
			slog.Error("Failed to release dependencies", "error", cleanupErr)
		}
		return nil, err
	}

	return app, nil
}

// NewApplicationWithDependencies creates an application with provided dependencies
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config:   cfg,
		deps:     deps,
		ports:    deps.ApplicationPorts(),
		stopChan: make(chan struct{}),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	brand := a.ports.ConfigProvider.GetBrandConfig()
	renderer := mailtemplate.NewRenderer(mailtemplate.Brand{
		Name:       brand.Name,
		TermsURL:   brand.TermsURL,
		PrivacyURL: brand.PrivacyURL,
		ContactURL: brand.ContactURL,
	})

	verificationUseCase, err := verification.NewUseCase(verification.UseCaseDependencies{
		EmailProvider: a.ports.EmailProvider,
		CodeStore:     a.ports.CodeStore,
		Renderer:      renderer,
		Config:        a.ports.ConfigProvider,
		Logger:        a.ports.Logger,
		Metrics:       a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create verification use case: %w", err)
	}
	a.verificationUseCase = verificationUseCase

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	a.healthChecker = a.deps.HealthChecker()

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port: a.config.Server.Port,
		},
		VerificationUseCase: a.verificationUseCase,
		HealthChecker:       a.healthChecker,
		MetricsHandler:      a.deps.MetricsHandler(),
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}
	a.httpAdapter = httpAdapter

	slog.Info("Adapters initialized successfully")
	return nil
}

// Start runs the expired-code purge loop and serves HTTP until shutdown
func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	go a.startCleanup(ctx)

	if err := a.httpAdapter.Start(); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

func (a *Application) startCleanup(ctx context.Context) {
	interval := a.config.Code.CleanupInterval()
	slog.Info("Starting expired code cleanup", "interval", interval.String())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Code cleanup stopped due to context cancellation")
			return
		case <-a.stopChan:
			slog.Info("Code cleanup stopped")
			return
		case <-ticker.C:
			if _, err := a.verificationUseCase.PurgeExpired(ctx); err != nil {
				slog.Error("Error purging expired codes", "error", err)
			}
		}
	}
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	a.stopOnce.Do(func() { close(a.stopChan) })

	if err := a.httpAdapter.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.httpAdapter.GetRouter()
}

// GetVerificationUseCase returns the verification use case for testing
func (a *Application) GetVerificationUseCase() *verification.UseCase {
	return a.verificationUseCase
}

// HealthChecker returns the aggregate component health check
func (a *Application) HealthChecker() ports.SystemHealthChecker {
	return a.healthChecker
}
