package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/FruitClicker_Go/internal/server"
)

// GracefulShutdown stops the process in dependency order:
// 1. HTTP server (stop accepting new requests, drain in-flight ones)
// 2. Scheduler and worker pool (finish running production transactions)
// 3. Ledger store (close connections)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
// srv may be nil for processes that never served HTTP.
func GracefulShutdown(ctx context.Context, srv *server.Server, app *Application) {
	if srv != nil {
		slog.Info(LogMsgShuttingDownServer)
		if err := srv.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	slog.Info(LogMsgStoppingWorkers)
	app.Scheduler.Stop()
	app.Pool.Stop()

	if err := app.Ledger.Close(); err != nil {
		slog.Error(LogMsgLedgerCloseFailed, "error", err)
	}

	slog.Info(LogMsgServerStopped)
}
