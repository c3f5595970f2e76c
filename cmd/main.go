// cmd/main.go is the application entry point.
// It wires together all layers and starts the HTTP server.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mergington/activities/internal/config"
	"github.com/mergington/activities/internal/handler"
	"github.com/mergington/activities/internal/model"
	"github.com/mergington/activities/internal/observability"
	"github.com/mergington/activities/internal/roster"
	"github.com/mergington/activities/internal/service"
)

func main() {
	// ── 1. Configuration ─────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "error", err)
		os.Exit(1)
	}

	// ── 2. Seed the roster ───────────────────────────────────────────────
	var seed model.Roster
	if cfg.SeedFile != "" {
		seed, err = roster.LoadSeedFile(cfg.SeedFile)
		if err != nil {
			slog.Error("seed", "error", err)
			os.Exit(1)
		}
		slog.Info("roster seeded from file", "path", cfg.SeedFile, "activities", len(seed))
	} else {
		seed = roster.DefaultSeed()
		slog.Info("roster seeded with defaults", "activities", len(seed))
	}

	// ── 3. Wire up layers ────────────────────────────────────────────────
	store := roster.NewStore(seed, cfg.CapacityEnforced)
	observability.SetRosterSize(store.Count())
	svc := service.NewActivityService(store)
	h := handler.NewActivityHandler(svc)

	// ── 4. Build the router ──────────────────────────────────────────────
	r := handler.NewRouter(h)

	// Static HTML signup page served at the root.
	r.Handle("/*", http.FileServer(http.Dir(cfg.WebDir)))

	// ── 5. Start server with graceful shutdown ───────────────────────────
	srv := &http.Server{
		Addr:         cfg.HTTPAddress,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Run in a background goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server listening", "address", cfg.HTTPAddress, "capacity_enforced", cfg.CapacityEnforced)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server", "error", err)
			os.Exit(1)
		}
	}()

	// Block until SIGINT or SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
