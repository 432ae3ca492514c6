// main wires high-level dependencies, seeds the default admin, and keeps the
// server lifecycle small. Business logic lives in internal packages.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	authhandler "dotback/internal/auth/handler"
	authmetrics "dotback/internal/auth/metrics"
	"dotback/internal/auth/service"
	"dotback/internal/auth/session"
	authstore "dotback/internal/auth/store"
	"dotback/internal/jwttoken"
	"dotback/internal/levels"
	"dotback/internal/platform/config"
	"dotback/internal/platform/database"
	"dotback/internal/platform/health"
	"dotback/internal/platform/logger"
	"dotback/internal/transport/router"
	"dotback/internal/uploads"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)

	if cfg.JWTSecretIsDev {
		log.Warn("JWT_SECRET not configured; using the insecure development default")
	}

	log.Info("initializing dotback admin backend",
		"addr", cfg.Addr,
		"env", cfg.Env,
		"mongo", cfg.MongoURI != "",
	)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelStartup()

	healthHandler := health.New()

	adminStore, levelStore, dbClient, err := buildStores(startupCtx, cfg, healthHandler)
	if err != nil {
		log.Error("store initialization failed", "error", err)
		os.Exit(1)
	}
	if dbClient != nil {
		defer func() {
			if err := dbClient.Close(context.Background()); err != nil {
				log.Error("mongo disconnect failed", "error", err)
			}
		}()
	}

	tokens := jwttoken.New(cfg.JWTSecret, cfg.SessionTTL)
	sessions := session.NewManager(cfg.SessionTTL, !cfg.IsDevelopment())
	authSvc := service.New(adminStore, tokens, log, authmetrics.New(prometheus.DefaultRegisterer))

	if err := authSvc.Seed(startupCtx); err != nil {
		log.Error("admin seeding failed", "error", err)
		os.Exit(1)
	}

	levelSvc := levels.NewService(levelStore, cfg.UploadDir, log)

	handler := router.New(router.Deps{
		Auth:      authhandler.New(authSvc, sessions, log),
		Levels:    levels.NewHandler(levelSvc, log),
		Uploads:   uploads.NewHandler(cfg.UploadDir, cfg.UploadMaxBytes, log),
		Health:    healthHandler,
		Sessions:  sessions,
		Verifier:  authSvc,
		Logger:    log,
		UploadDir: cfg.UploadDir,
		Origin:    cfg.DashboardOrigin,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info("starting http server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}

// buildStores selects Mongo-backed stores when MONGO_URI is configured and
// falls back to in-memory stores for local development.
func buildStores(ctx context.Context, cfg config.Server, healthHandler *health.Handler) (authstore.Store, levels.Store, *database.Client, error) {
	dbCfg := database.DefaultConfig()
	dbCfg.URI = cfg.MongoURI
	dbCfg.Database = cfg.MongoDatabase

	client, err := database.New(ctx, dbCfg)
	if err != nil {
		return nil, nil, nil, err
	}
	if client == nil {
		return authstore.NewMemory(), levels.NewMemory(), nil, nil
	}

	adminStore, err := authstore.NewMongo(ctx, client.Database())
	if err != nil {
		return nil, nil, nil, err
	}
	levelStore, err := levels.NewMongo(ctx, client.Database())
	if err != nil {
		return nil, nil, nil, err
	}

	healthHandler.RegisterCheck("mongodb", client.HealthCheck())
	return adminStore, levelStore, client, nil
}
