// Copyright (c) 2026 Vocably. All rights reserved.

// Command api is the entry point for the Vocably HTTP API server.
//
// # Startup Sequence
//
//  1. Load .env if present (local development convenience).
//  2. Initialize structured logger.
//  3. Load configuration from environment variables.
//  4. Connect to MongoDB.
//  5. Wire token service, stores, services, guards, and HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
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

	"github.com/joho/godotenv"

	"github.com/vocably/server/internal/api"
	"github.com/vocably/server/internal/lesson"
	"github.com/vocably/server/internal/platform/config"
	"github.com/vocably/server/internal/platform/constants"
	"github.com/vocably/server/internal/platform/middleware"
	"github.com/vocably/server/internal/platform/mongodb"
	"github.com/vocably/server/internal/platform/sec"
	"github.com/vocably/server/internal/tutorial"
	"github.com/vocably/server/internal/users"
	"github.com/vocably/server/internal/vocabulary"
)

func main() {
	// ── 1. Environment ─────────────────────────────────────────────────────
	// A missing .env is fine; deployed environments provide real env vars.
	_ = godotenv.Load()

	// ── 2. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 3. Configuration ──────────────────────────────────────────────────
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

	// ── 4. MongoDB ────────────────────────────────────────────────────────
	client, err := mongodb.Connect(startupCtx, cfg.MongoURI, log)
	must(log, err, "connect to mongodb")
	defer func() {
		log.Info("closing mongodb client")
		if cerr := client.Disconnect(context.Background()); cerr != nil {
			log.Error("mongodb disconnect error", slog.Any("error", cerr))
		}
	}()

	collections := mongodb.NewCollections(client, cfg.MongoDatabase)

	// ── 5. Token Service ──────────────────────────────────────────────────
	tokenService, err := sec.NewTokenService(cfg.TokenSecret, constants.AccessTokenTTL)
	must(log, err, "initialize token service")

	// ── 6. Health handlers (wired with a real dependency checker) ─────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return mongodb.Ping(context.Background(), client)
		},
	}, log)

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	userService := users.NewService(users.NewMongoStore(collections.Users), tokenService, log)
	lessonService := lesson.NewService(lesson.NewMongoStore(collections.Lessons), log)
	vocabularyService := vocabulary.NewService(vocabulary.NewMongoStore(collections.Vocabulary), lessonService, log)
	tutorialService := tutorial.NewService(tutorial.NewMongoStore(collections.Tutorials), log)

	// The guard chain: token verification by the token service, role
	// resolution by a fresh users lookup on every guarded request.
	guards := middleware.NewGuards(tokenService, userService)

	// ── 8. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Users:      users.NewHandler(userService),
		Lessons:    lesson.NewHandler(lessonService),
		Vocabulary: vocabulary.NewHandler(vocabularyService),
		Tutorials:  tutorial.NewHandler(tutorialService),
	}

	server := api.NewServer(cfg, log, guards, handlers)

	// ── 9. Graceful Shutdown ──────────────────────────────────────────────
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
