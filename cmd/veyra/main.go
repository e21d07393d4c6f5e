package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/veyra-lab/project-veyra/internal/analytics"
	"github.com/veyra-lab/project-veyra/internal/auth"
	corecfg "github.com/veyra-lab/project-veyra/internal/core/config"
	"github.com/veyra-lab/project-veyra/internal/core/storage/postgres"
	"github.com/veyra-lab/project-veyra/internal/export"
	"github.com/veyra-lab/project-veyra/internal/facets"
	"github.com/veyra-lab/project-veyra/internal/migrations"
	"github.com/veyra-lab/project-veyra/internal/server"
)

func main() {
	configPath := flag.String("config", "veyra.yaml", "Path to configuration file")
	flag.Parse()

	// 0. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded config",
		"addr", fmtAddr(cfg.Server.Host, cfg.Server.Port),
		"users_file", cfg.Auth.UsersFile)

	// 2. Initialize Storage (PostgreSQL)
	dbAdapter, err := postgres.NewAdapter(cfg.Database.DSN, postgres.Options{
		MaxOpenConns:   cfg.Database.MaxOpenConns,
		MaxIdleConns:   cfg.Database.MaxIdleConns,
		ConnectTimeout: corecfg.Duration(cfg.Database.ConnectTimeout),
		CountTimeout:   corecfg.Duration(cfg.Export.CountTimeout),
		FetchTimeout:   corecfg.Duration(cfg.Export.FetchTimeout),
	})
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbAdapter.Close()

	// 2.1. Run Database Migrations
	if err := migrations.RunMigrations(dbAdapter.DB(), cfg.Database.AutoMigrate); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}

	// 3. Initialize Auth (static user store + session tokens)
	users, err := auth.LoadUserStore(cfg.Auth.UsersFile)
	if err != nil {
		slog.Error("Failed to load user store", "error", err)
		os.Exit(1)
	}
	tokens := auth.NewTokenService([]byte(cfg.Auth.JWTSecret), corecfg.Duration(cfg.Auth.TokenLifetime))
	authHandler := auth.NewHandler(users, tokens)

	// 4. Initialize Filter Resolution (cascading + unavailability)
	facetsSvc := facets.NewService(dbAdapter, corecfg.Duration(cfg.Facets.CacheTTL))

	// 5. Initialize Export Pipeline
	exportSvc := export.NewService(dbAdapter, export.Options{
		PageSize:       cfg.Export.PageSize,
		WarnThreshold:  cfg.Export.WarnThreshold,
		BlockThreshold: cfg.Export.BlockThreshold,
	})

	// 6. Initialize Analytics
	analyticsSvc := analytics.NewService(dbAdapter, analytics.Options{
		TopStores: cfg.Analytics.TopStores,
	})

	// 7. Initialize Server and route groups. Filters and exports admit the
	// csv_only role, analytics admits store_only, cache invalidation is
	// admin-only; "all" passes every gate.
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), dbAdapter.DB(), cfg.Server.Mode, cfg.Server.MaxBodySizeMB)
	api := srv.Engine.Group("/api/v1")
	authHandler.RegisterRoutes(api)

	csvRoutes := api.Group("", auth.RequireRoles(tokens, auth.RoleAll, auth.RoleCSVOnly))
	facetsSvc.RegisterRoutes(csvRoutes)
	exportSvc.RegisterRoutes(csvRoutes)

	storeRoutes := api.Group("", auth.RequireRoles(tokens, auth.RoleAll, auth.RoleStoreOnly))
	analyticsSvc.RegisterRoutes(storeRoutes)

	adminRoutes := api.Group("", auth.RequireRoles(tokens, auth.RoleAll))
	server.RegisterCacheInvalidation(adminRoutes, facetsSvc.InvalidateCaches, analyticsSvc.InvalidateCache)

	// 8. Start Services
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Signal handler triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
