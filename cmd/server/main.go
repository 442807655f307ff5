// Dietprefs - Dietary Preference Vendor Discovery
// Copyright 2026 The Dietprefs Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dietprefs/dietprefs

// Command server runs the dietprefs API: a vendor discovery backend
// matching one or two diners' dietary preferences against restaurant
// menus with geographic, tag, text and opening-hours filtering.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dietprefs/dietprefs/internal/api"
	"github.com/dietprefs/dietprefs/internal/config"
	"github.com/dietprefs/dietprefs/internal/database"
	"github.com/dietprefs/dietprefs/internal/logging"
	"github.com/dietprefs/dietprefs/internal/search"
	"github.com/dietprefs/dietprefs/internal/supervisor"
	"github.com/dietprefs/dietprefs/internal/supervisor/services"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:         cfg.Logging.Level,
		Format:        cfg.Logging.Format,
		IncludeCaller: cfg.Logging.IncludeCaller,
	})
	logging.Info().
		Str("addr", cfg.HTTP.Addr()).
		Str("db_path", cfg.Database.Path).
		Msg("Starting dietprefs server")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Failed to close database")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Database.SeedOnStartup {
		if err := db.Seed(ctx); err != nil {
			logging.Fatal().Err(err).Msg("Failed to seed database")
		}
	}

	engine := search.NewEngine(db, cfg.Location())
	handler := api.NewHandler(db, cfg, engine)

	server := &http.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      handler.SetupChi(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	})
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.HTTP.ShutdownTimeout))

	errCh := tree.ServeBackground(ctx)
	logging.Info().Str("addr", cfg.HTTP.Addr()).Msg("Server started")

	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received")
		if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor stopped with error")
		}
	case err := <-errCh:
		if err != nil {
			logging.Fatal().Err(err).Msg("Supervisor failed")
		}
	}

	logging.Info().Msg("Server stopped")
}
