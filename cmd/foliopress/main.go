// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the FolioPress admin API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foliopress/internal/analytics"
	"foliopress/internal/cache"
	"foliopress/internal/config"
	"foliopress/internal/database"
	"foliopress/internal/handlers"
	"foliopress/internal/router"
	"foliopress/internal/session"
	"foliopress/internal/storage"
	"foliopress/internal/store"
)

func main() {
	// Structured logger — text output works both locally and behind a
	// log collector.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (Redis-compatible session store + rollup cache).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// In non-development environments, mark session cookies as Secure.
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)

	// Asset storage: S3-compatible object storage when configured,
	// otherwise the local filesystem under the upload directory.
	var assetStorage storage.Storage
	if cfg.S3Configured() {
		s3Client, err := storage.NewS3(
			cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
			cfg.S3Bucket, cfg.S3PublicURL,
		)
		if err != nil {
			slog.Error("failed to initialize S3 storage", "error", err)
			os.Exit(1)
		}
		assetStorage = s3Client
		slog.Info("s3 storage connected",
			"endpoint", cfg.S3Endpoint,
			"bucket", cfg.S3Bucket,
		)
	} else {
		assetStorage = storage.NewLocal(cfg.UploadDir, cfg.UploadBaseURL)
		slog.Info("local storage active", "dir", cfg.UploadDir)
	}

	// Initialize data stores.
	userStore := store.NewUserStore(db)
	settingsStore := store.NewSettingsStore(db)
	visitStore := store.NewVisitStore(db)
	techStacks := store.NewTechStackStore(db)

	// Analytics service + short-lived rollup cache for the dashboard.
	analyticsService := analytics.New(visitStore)
	rollupCache := cache.NewRollupCache(valkeyClient, cache.DefaultRollupTTL)

	// Create handler groups with their dependencies.
	deps := router.Deps{
		Sessions:  sessionStore,
		Secure:    secureCookies,
		Auth:      handlers.NewAuth(sessionStore, userStore),
		Analytics: handlers.NewAnalytics(analyticsService, rollupCache),
		Settings:  handlers.NewSettings(settingsStore, assetStorage),

		Testimonials: handlers.NewTestimonialResource(store.NewTestimonialStore(db), assetStorage),
		Brands:       handlers.NewBrandResource(store.NewBrandStore(db), assetStorage),
		Certificates: handlers.NewCertificateResource(store.NewCertificateStore(db), assetStorage),
		FAQs:         handlers.NewFAQResource(store.NewFAQStore(db), assetStorage),
		Skills:       handlers.NewSkillResource(store.NewSkillStore(db), assetStorage),
		TechStacks:   handlers.NewTechStackResource(techStacks, assetStorage),
		Packages:     handlers.NewServicePackageResource(store.NewServicePackageStore(db), assetStorage),
		Banners:      handlers.NewBannerResource(store.NewBannerStore(db), assetStorage),
		Experiences:  handlers.NewExperienceResource(store.NewExperienceStore(db), assetStorage),
	}

	// Set up the Chi router with all middleware and routes.
	r := router.New(deps)

	// Create the HTTP server with sensible timeouts. WriteTimeout covers
	// the largest allowed upload on a slow connection.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
