package components

import (
	"context"
	"log/slog"

	"parking-reservation/internal/pkg/config"
	"parking-reservation/internal/usecase/commands"
	"parking-reservation/internal/usecase/reconcile"
	"parking-reservation/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(NewWorkerRunner),
	fx.Invoke(func(*worker.Runner) {}),
)

func NewWorkerRunner(
	lc fx.Lifecycle,
	cfg config.Config,
	reclaim commands.ReclaimCommands,
	reconciler reconcile.Reconciler,
	logger *slog.Logger,
) *worker.Runner {
	r := worker.NewRunner(logger,
		worker.SweepTask(reclaim, cfg.Reservation.SweepInterval),
		worker.ReconcileTask(reconciler, cfg.Reservation.ReconcileInterval, logger),
	)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			r.Start(ctx)
			return nil
		},
		OnStop: r.Stop,
	})
	return r
}
