package bootstrap

import (
	"context"
	"log/slog"

	"github.com/grapnel-games/tablet-tycoon/internal/scheduler"
	"github.com/grapnel-games/tablet-tycoon/internal/server"
	"github.com/grapnel-games/tablet-tycoon/internal/sse"
	"github.com/grapnel-games/tablet-tycoon/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server    *server.Server
	Scheduler *scheduler.Scheduler
	Pool      *worker.Pool
	Hub       *sse.Hub
}

// GracefulShutdown stops the application in order: the HTTP server first so
// no new requests arrive, then the scheduler so no new jobs are queued, then
// the worker pool once in-flight jobs drain, and finally the SSE hub.
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.Pool != nil {
		components.Pool.Stop()
	}
	if components.Hub != nil {
		components.Hub.Stop()
	}

	slog.Info(LogMsgServerStopped)
}
