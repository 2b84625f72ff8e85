// StudyGarden engine daemon.
//
// @title StudyGarden Engine API
// @version 1.0
// @description Garden simulation and reward engine for a spaced-repetition study tool
// @BasePath /api/v1
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/StudyGarden_Go/internal/analytics"
	"github.com/osse101/StudyGarden_Go/internal/clock"
	"github.com/osse101/StudyGarden_Go/internal/config"
	"github.com/osse101/StudyGarden_Go/internal/event"
	"github.com/osse101/StudyGarden_Go/internal/garden"
	"github.com/osse101/StudyGarden_Go/internal/handler"
	"github.com/osse101/StudyGarden_Go/internal/logger"
	"github.com/osse101/StudyGarden_Go/internal/server"
	"github.com/osse101/StudyGarden_Go/internal/shop"
	"github.com/osse101/StudyGarden_Go/internal/state"
	"github.com/osse101/StudyGarden_Go/internal/streak"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logFile, err := logger.Setup(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	handler.InitValidator()

	ctx := context.Background()
	clk := clock.NewRealClock()
	bus := event.NewMemoryBus()

	manager := state.NewManager(ctx, state.NewFileStore(cfg.StatePath()))

	analyticsStore, err := analytics.NewStore(cfg.AnalyticsPath())
	if err != nil {
		slog.Error("Failed to open analytics store", "error", err)
		os.Exit(1)
	}
	defer analyticsStore.Close()

	analyticsService := analytics.NewService(analyticsStore)
	analyticsService.Subscribe(bus)

	srv := server.NewServer(cfg.Port, cfg.APIKey,
		streak.NewService(manager, clk, bus),
		garden.NewService(manager, clk, bus),
		shop.NewService(manager, clk, bus),
		analyticsService,
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server stopped unexpectedly", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Shutdown complete")
}
