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

	"github.com/grapnel-games/tablet-tycoon/internal/attraction"
	"github.com/grapnel-games/tablet-tycoon/internal/bootstrap"
	"github.com/grapnel-games/tablet-tycoon/internal/config"
	"github.com/grapnel-games/tablet-tycoon/internal/conversion"
	"github.com/grapnel-games/tablet-tycoon/internal/gameevent"
	"github.com/grapnel-games/tablet-tycoon/internal/handler"
	"github.com/grapnel-games/tablet-tycoon/internal/income"
	"github.com/grapnel-games/tablet-tycoon/internal/scheduler"
	"github.com/grapnel-games/tablet-tycoon/internal/server"
	"github.com/grapnel-games/tablet-tycoon/internal/worker"
)

const (
	workerCount       = 4
	workerQueueSize   = 64
	shutdownTimeout   = 10 * time.Second
	conversionPollGap = time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	for _, w := range warnings {
		slog.Warn(w)
	}

	handler.InitValidator()

	game, err := bootstrap.BuildGame(cfg)
	if err != nil {
		slog.Error("Failed to assemble game", "error", err)
		os.Exit(1)
	}

	game.Hub.Start()

	pool := worker.NewPool(workerCount, workerQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(cfg.IncomeTickInterval, &income.Job{Ledger: game.Ledger, Boosts: game.Boosts})
	sched.Schedule(conversionPollGap, &conversion.PollJob{Engine: game.Convert})
	sched.Schedule(cfg.EventRollInterval, &gameevent.RollJob{Manager: game.Boosts})
	sched.Schedule(cfg.ShowroomRestockEvery, &attraction.RestockJob{Showroom: game.Showroom})
	sched.Start()

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, server.Deps{
		Catalog:  game.Catalog,
		Ledger:   game.Ledger,
		Roller:   game.Roller,
		Boosts:   game.Boosts,
		Convert:  game.Convert,
		Truck:    game.Truck,
		Wheel:    game.Wheel,
		Showroom: game.Showroom,
		Hub:      game.Hub,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:    srv,
		Scheduler: sched,
		Pool:      pool,
		Hub:       game.Hub,
	})
}
