package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gymtrack-dev/gymtrack/internal/api"
	"github.com/gymtrack-dev/gymtrack/internal/auth"
	"github.com/gymtrack-dev/gymtrack/internal/config"
	"github.com/gymtrack-dev/gymtrack/internal/db"
	"github.com/gymtrack-dev/gymtrack/internal/logger"
)

// Version is set via ldflags at build time
var Version = "dev"

// @title Gymtrack API
// @version 1.0
// @description Personal workout tracking API
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	port := flag.Int("port", 0, "Port to run the server on (overrides config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	if *port != 0 {
		cfg.Server.Port = *port
	}

	logger.Init(cfg.Log.Format, cfg.Log.Level)
	slog.Info("Starting gymtrack server", "version", Version, "mode", cfg.Server.Mode)

	database, err := db.New(cfg.Database)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	slog.Info("Database initialized", "driver", cfg.Database.Driver)

	if err := db.Migrate(database); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed")

	// Pick the identity resolver once at startup: OIDC when the provider is
	// configured, the constant local-dev identity otherwise.
	var authenticator auth.Authenticator
	var oidcAuth *auth.OIDCAuthenticator
	if cfg.Auth.LocalDevMode() {
		authenticator = auth.NewLocalAuthenticator()
		slog.Warn("No identity provider configured, running in local-dev mode", "user_id", auth.LocalUserID)
	} else {
		oidcAuth, err = auth.NewOIDCAuthenticator(context.Background(), cfg.Auth)
		if err != nil {
			slog.Error("Failed to initialize OIDC authenticator", "error", err)
			os.Exit(1)
		}
		authenticator = oidcAuth
		slog.Info("OIDC authentication enabled", "issuer", cfg.Auth.IssuerURL)
	}

	router := api.NewRouter(cfg, database, authenticator, oidcAuth)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}
