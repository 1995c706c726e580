package app

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"xisms.app/internal/adapters/database"
	"xisms.app/internal/adapters/external"
	"xisms.app/internal/adapters/infrastructure"
	"xisms.app/internal/config"
	"xisms.app/internal/ports"
	"xisms.app/pkg/logger"
)

type DependencyContainer struct {
	config   *config.Config
	db       *gorm.DB
	ports    *ports.ApplicationPorts
	registry *prometheus.Registry
	closers  []io.Closer
}

// NewDependencyContainer wires every port from cfg. A database connection is
// opened only when codes are kept in the database.
func NewDependencyContainer(cfg *config.Config) (*DependencyContainer, error) {
	container := &DependencyContainer{config: cfg}

	if cfg.Code.Store == config.CodeStoreDatabase {
		if err := container.initializeDatabase(); err != nil {
			return nil, fmt.Errorf("initialize database: %w", err)
		}
	}

	if err := container.initializePorts(); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

// NewDependencyContainerWithDatabase wires ports on top of an already opened
// database connection.
func NewDependencyContainerWithDatabase(cfg *config.Config, db *gorm.DB) (*DependencyContainer, error) {
	container := &DependencyContainer{config: cfg}

	if db != nil {
		if err := container.runMigrations(db); err != nil {
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		container.db = db
	}

	if err := container.initializePorts(); err != nil {
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializeDatabase() error {
	slog.Info("Initializing database connection...")

	db, err := gorm.Open(postgres.Open(c.config.Database.GetDSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	if err := c.runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	c.db = db
	slog.Info("Database connection established successfully")
	return nil
}

func (c *DependencyContainer) runMigrations(db *gorm.DB) error {
	slog.Info("Running database migrations...")

	if err := db.AutoMigrate(&database.VerificationCodeModel{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	slog.Info("Database migrations completed successfully")
	return nil
}

func (c *DependencyContainer) initializePorts() error {
	slog.Info("Initializing ports...")

	appLogger := c.initializeLogger()

	providerFactory := external.NewEmailProviderFactory(appLogger)
	provider, err := providerFactory.CreateEmailProvider(&c.config.Email)
	if err != nil {
		return fmt.Errorf("create email provider: %w", err)
	}
	emailProvider := external.NewEmailProviderLoggingDecorator(provider, appLogger)

	storeFactory := external.NewCodeStoreFactory()
	codeStore, err := storeFactory.CreateCodeStore(c.config, c.db)
	if err != nil {
		return fmt.Errorf("create code store: %w", err)
	}
	if closer, ok := codeStore.(io.Closer); ok {
		c.closers = append(c.closers, closer)
	}

	slog.Info("Delivery initialized",
		"provider", emailProvider.Name(),
		"codeStore", c.config.Code.Store.String())

	c.registry = prometheus.NewRegistry()
	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	c.ports = &ports.ApplicationPorts{
		EmailProvider:  emailProvider,
		CodeStore:      codeStore,
		ConfigProvider: infrastructure.NewConfigProviderAdapter(c.config),
		Logger:         appLogger,
		Metrics:        infrastructure.NewPrometheusMetricsCollector(c.registry),
		Database:       c.db,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

// initializeLogger installs the process logger and, when LOG_FILE is set,
// mirrors application events into that file.
func (c *DependencyContainer) initializeLogger() ports.Logger {
	level := logger.ParseLevel(c.config.LogLevel)
	base := logger.NewWithLevel(level)
	base.SetDefault()

	var appLogger ports.Logger = infrastructure.NewSlogLoggerAdapter(base)
	if c.config.LogFile == "" {
		return appLogger
	}

	fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.LogFile, level)
	if err != nil {
		slog.Warn("Failed to create file logger, falling back to slog", "error", err)
		return appLogger
	}
	c.closers = append(c.closers, fileLogger)
	slog.Info("File logging enabled", "path", c.config.LogFile)
	return infrastructure.MultiLogger{appLogger, fileLogger}
}

// HealthChecker builds the aggregate health check over the wired components
func (c *DependencyContainer) HealthChecker() ports.SystemHealthChecker {
	checkers := map[string]ports.HealthChecker{
		"email":     infrastructure.NewEmailProviderHealthChecker(c.ports.EmailProvider, c.ports.ConfigProvider),
		"codeStore": infrastructure.NewCodeStoreHealthChecker(c.ports.CodeStore, c.config.Code.Store.String()),
	}
	if c.db != nil {
		checkers["database"] = infrastructure.NewDatabaseHealthChecker(c.db)
	}
	return infrastructure.NewSystemHealthChecker(checkers)
}

// MetricsHandler exposes the container's registry in the Prometheus text format
func (c *DependencyContainer) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) Database() *gorm.DB {
	return c.db
}

// Cleanup releases the code store, log file and database connection
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil

	if c.db != nil {
		if db, err := c.db.DB(); err == nil {
			if err := db.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
