// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

// Command api is the entry point for the Digital Mary catalog API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/digital-mary/catalog/internal/api"
	"github.com/digital-mary/catalog/internal/catalog/about"
	"github.com/digital-mary/catalog/internal/catalog/challenge"
	"github.com/digital-mary/catalog/internal/catalog/item"
	"github.com/digital-mary/catalog/internal/catalog/media"
	"github.com/digital-mary/catalog/internal/catalog/person"
	"github.com/digital-mary/catalog/internal/catalog/term"
	"github.com/digital-mary/catalog/internal/platform/captcha"
	"github.com/digital-mary/catalog/internal/platform/config"
	"github.com/digital-mary/catalog/internal/platform/constants"
	"github.com/digital-mary/catalog/internal/platform/mailer"
	"github.com/digital-mary/catalog/internal/platform/migration"
	pgstore "github.com/digital-mary/catalog/internal/platform/postgres"
	redisstore "github.com/digital-mary/catalog/internal/platform/redis"
	"github.com/digital-mary/catalog/internal/platform/sec"
	"github.com/digital-mary/catalog/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Token Service ──────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	curatorRepository := auth.NewPostgresCuratorRepository(pool)
	refreshTokenRepository := auth.NewRedisRefreshTokenRepository(rdb)
	authService := auth.NewService(curatorRepository, refreshTokenRepository, jwtSvc)
	authHandler := auth.NewHandler(authService)

	termRepository := term.NewPostgresRepository(pool)
	termCache := term.NewRedisOptionsCache(rdb)
	termService := term.NewService(termRepository, termCache, log)
	termHandler := term.NewHandler(termService)

	personRepository := person.NewPostgresRepository(pool)
	personService := person.NewService(personRepository, log)
	personHandler := person.NewHandler(personService)

	itemRepository := item.NewPostgresRepository(pool)
	itemService := item.NewService(itemRepository, log)
	itemHandler := item.NewHandler(itemService, termService)

	mediaStorage := media.NewStorage(cfg.MediaRoot)
	mediaRepository := media.NewPostgresRepository(pool)
	mediaService := media.NewService(mediaRepository, mediaStorage, log)
	mediaHandler := media.NewHandler(mediaService)

	smtpMailer := mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
	captchaVerifier := captcha.New(cfg.CaptchaVerifyURL, cfg.CaptchaSecret)

	challengeRepository := challenge.NewPostgresRepository(pool)
	challengeService := challenge.NewService(
		challengeRepository, captchaVerifier, smtpMailer, cfg.ChallengeRecipientList(), log)
	challengeHandler := challenge.NewHandler(challengeService)

	aboutRepository := about.NewPostgresRepository(pool)
	aboutService := about.NewService(aboutRepository, mediaStorage, log)
	aboutHandler := about.NewHandler(aboutService)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      authHandler,
		Term:      termHandler,
		Person:    personHandler,
		Item:      itemHandler,
		Media:     mediaHandler,
		Challenge: challengeHandler,
		About:     aboutHandler,
	}

	// The server owns a long-lived context for background middleware state
	// (rate limiter cleanup), tied to process lifetime.
	server := api.NewServer(context.Background(), cfg, log, jwtSvc, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
