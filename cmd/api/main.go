package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"deadletter-watchdog/config"
	helpdeskClient "deadletter-watchdog/internal/adapter/client/helpdesk"
	nodoClient "deadletter-watchdog/internal/adapter/client/nodo"
	httpHandler "deadletter-watchdog/internal/adapter/http/handler"
	pgStorage "deadletter-watchdog/internal/adapter/storage/postgres"
	redisStorage "deadletter-watchdog/internal/adapter/storage/redis"
	"deadletter-watchdog/internal/core/domain"
	"deadletter-watchdog/internal/core/ports"
	"deadletter-watchdog/internal/service"
	"deadletter-watchdog/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Dead-Letter Watchdog")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories and stores
	actionRepo := pgStorage.NewActionRepo(pool)
	operatorRepo := pgStorage.NewOperatorRepo(pool)
	detailCache := redisStorage.NewDetailCache(rdb, cfg.Redis.DetailTTL)

	// Initialize downstream API clients
	helpdesk := helpdeskClient.NewClient(
		cfg.Helpdesk.BaseURL,
		cfg.Helpdesk.APIKey,
		&http.Client{Timeout: cfg.Helpdesk.Timeout},
		log,
	)
	nodo := nodoClient.NewClient(
		cfg.Nodo.BaseURL,
		cfg.Nodo.APIKey,
		&http.Client{Timeout: cfg.Nodo.Timeout},
		log,
	)

	// Action taxonomy from configuration
	types := make([]domain.ActionType, 0, len(cfg.Actions.Types))
	for _, t := range cfg.Actions.Types {
		types = append(types, domain.ActionType{Value: t.Value, Terminal: t.Terminal})
	}
	taxonomy := domain.NewActionTaxonomy(types)

	// Initialize core services
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Initialize business services
	authSvc := service.NewAuthService(operatorRepo, hashSvc, tokenSvc)
	deadletterSvc := service.NewDeadletterService(helpdesk, nodo, detailCache, cfg.Nodo.Enabled, log)
	actionSvc := service.NewActionService(actionRepo, helpdesk, taxonomy, cfg.Actions.VerifyTransaction, log)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		DeadletterSvc:  deadletterSvc,
		ActionSvc:      actionSvc,
		TokenSvc:       tokenSvc,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
