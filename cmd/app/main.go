package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"xisms.app/internal/app"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading it")
	}

	application, err := app.NewApplication()
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	cfg := application.Config()
	slog.Info("Configuration loaded successfully",
		"port", cfg.Server.Port,
		"emailProvider", cfg.Email.Provider.String(),
		"codeStore", cfg.Code.Store.String())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := setupGracefulShutdown(cancel, application)

	slog.Info("Starting XiSMS mailer...")
	if err := application.Start(ctx); err != nil {
		slog.Error("Failed to start application", "error", err)
		os.Exit(1)
	}

	<-done
}

// setupGracefulShutdown drains in-flight requests on SIGINT or SIGTERM. The
// returned channel closes once shutdown has finished.
func setupGracefulShutdown(cancel context.CancelFunc, app *app.Application) <-chan struct{} {
	done := make(chan struct{})
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer close(done)
		<-c
		slog.Info("Received shutdown signal...")

		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := app.Shutdown(shutdownCtx); err != nil {
			slog.Error("Error during graceful shutdown", "error", err)
		}
	}()

	return done
}
