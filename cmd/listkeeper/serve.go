// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Listkeeper Contributors

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/listkeeper/listkeeper/internal/auth"
	authpg "github.com/listkeeper/listkeeper/internal/auth/postgres"
	"github.com/listkeeper/listkeeper/internal/config"
	"github.com/listkeeper/listkeeper/internal/httpapi"
	"github.com/listkeeper/listkeeper/internal/logging"
	"github.com/listkeeper/listkeeper/internal/observability"
	"github.com/listkeeper/listkeeper/internal/store"
	"github.com/listkeeper/listkeeper/internal/todo"
	todopg "github.com/listkeeper/listkeeper/internal/todo/postgres"
	"github.com/listkeeper/listkeeper/internal/token"
)

const shutdownTimeout = 5 * time.Second

// ServeMigrator is the migration surface the serve command needs.
type ServeMigrator interface {
	Up() error
	Close() error
}

// ServeDeps holds injectable dependencies for the serve command.
// Nil fields fall back to production implementations.
type ServeDeps struct {
	ConnectDB   func(ctx context.Context, databaseURL string) (*pgxpool.Pool, error)
	NewMigrator func(databaseURL string) (ServeMigrator, error)
}

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long: `Start the HTTP API server along with the metrics/health endpoint.
Configuration is read from defaults, the --config file, and flags.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configFile, cmd.Flags())
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg, nil)
		},
	}

	cmd.Flags().String("listen-addr", config.DefaultListenAddr, "HTTP API listen address")
	cmd.Flags().String("metrics-addr", config.DefaultMetricsAddr, "metrics/health HTTP address (empty = disabled)")
	cmd.Flags().String("database-url", "", "PostgreSQL connection string (default: DATABASE_URL)")
	cmd.Flags().String("jwt-secret", "", "token signing secret (default: LISTKEEPER_JWT_SECRET)")
	cmd.Flags().String("token-ttl", config.DefaultTokenTTL, "session token lifetime")
	cmd.Flags().String("cookie-name", config.DefaultCookieName, "session cookie name")
	cmd.Flags().String("log-format", config.DefaultLogFormat, "log format (json or text)")
	cmd.Flags().Bool("auto-migrate", false, "run pending schema migrations on startup")

	return cmd
}

// runServe starts the server with injectable dependencies.
// If deps is nil, default implementations are used.
func runServe(ctx context.Context, cfg config.Config, deps *ServeDeps) error {
	if deps == nil {
		deps = &ServeDeps{}
	}
	if deps.ConnectDB == nil {
		deps.ConnectDB = store.Connect
	}
	if deps.NewMigrator == nil {
		deps.NewMigrator = func(databaseURL string) (ServeMigrator, error) {
			return store.NewMigrator(databaseURL)
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logging.SetDefault("listkeeper", version, cfg.LogFormat)

	slog.Info("starting server",
		"listen_addr", cfg.ListenAddr,
		"log_format", cfg.LogFormat,
	)

	if cfg.AutoMigrate {
		migrator, err := deps.NewMigrator(cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to create migrator: %w", err)
		}
		migrateErr := migrator.Up()
		if closeErr := migrator.Close(); closeErr != nil {
			slog.Warn("error closing migrator", "error", closeErr)
		}
		if migrateErr != nil {
			return fmt.Errorf("failed to run migrations: %w", migrateErr)
		}
		slog.Info("migrations applied")
	}

	pool, err := deps.ConnectDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	slog.Info("connected to database")

	codec, err := token.NewCodec(cfg.JWTSecret, cfg.TokenLifetime())
	if err != nil {
		return fmt.Errorf("failed to create token codec: %w", err)
	}

	sessions, err := auth.NewService(
		authpg.NewUserRepository(pool),
		auth.NewArgon2idHasher(),
		codec,
		cfg.CookieName,
	)
	if err != nil {
		return fmt.Errorf("failed to create session service: %w", err)
	}

	todos, err := todo.NewService(
		todopg.NewListRepository(pool),
		todopg.NewItemRepository(pool),
	)
	if err != nil {
		return fmt.Errorf("failed to create todo service: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Start observability server if configured
	var obsServer *observability.Server
	var metrics *observability.Metrics
	if cfg.MetricsAddr != "" {
		obsServer = observability.NewServer(cfg.MetricsAddr, func() bool {
			pingCtx, pingCancel := context.WithTimeout(context.Background(), time.Second)
			defer pingCancel()
			return pool.Ping(pingCtx) == nil
		})
		obsErrChan, obsErr := obsServer.Start()
		if obsErr != nil {
			return fmt.Errorf("failed to start observability server: %w", obsErr)
		}
		metrics = obsServer.Metrics()
		go monitorServerErrors(ctx, cancel, obsErrChan, "observability")
	}

	router := httpapi.NewRouter(sessions, todos, metrics)
	httpServer := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	errChan := make(chan error, 1)
	go func() {
		if serveErr := httpServer.ListenAndServe(); serveErr != nil && serveErr != http.ErrServerClosed {
			errChan <- serveErr
		}
	}()

	slog.Info("server ready", "addr", cfg.ListenAddr)

	// Wait for shutdown signal or error
	select {
	case sig := <-sigChan:
		slog.Info("received shutdown signal", "signal", sig)
	case err := <-errChan:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		slog.Info("context cancelled, shutting down")
	}

	// Graceful shutdown
	slog.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Warn("error stopping HTTP server", "error", err)
	}
	if obsServer != nil {
		if err := obsServer.Stop(shutdownCtx); err != nil {
			slog.Warn("error stopping observability server", "error", err)
		}
	}

	slog.Info("shutdown complete")
	return nil
}

// monitorServerErrors cancels the run context when a background server
// reports a failure.
func monitorServerErrors(ctx context.Context, cancel context.CancelFunc, errChan <-chan error, name string) {
	select {
	case err, ok := <-errChan:
		if ok && err != nil {
			slog.Error("background server failed", "server", name, "error", err)
			cancel()
		}
	case <-ctx.Done():
	}
}
