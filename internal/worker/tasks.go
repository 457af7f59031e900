package worker

import (
	"context"
	"log/slog"
	"time"

	"parking-reservation/internal/usecase/commands"
	"parking-reservation/internal/usecase/reconcile"
)

func SweepTask(uc commands.ReclaimCommands, interval time.Duration) Task {
	return Task{
		Name:     "sweep_expired_holds",
		Interval: interval,
		Run: func(ctx context.Context) error {
			_, err := uc.ReclaimExpired(ctx)
			return err
		},
	}
}

func ReconcileTask(r reconcile.Reconciler, interval time.Duration, logger *slog.Logger) Task {
	return Task{
		Name:     "reconcile_ledger",
		Interval: interval,
		Run: func(ctx context.Context) error {
			report, err := r.Run(ctx)
			if err != nil {
				return err
			}
			if len(report.OrphanHolds) > 0 || len(report.OrphanBookings) > 0 {
				logger.Warn("reconciliation found drift",
					slog.Int("orphan_holds", len(report.OrphanHolds)),
					slog.Int("orphan_bookings", len(report.OrphanBookings)),
					slog.Int("released", report.Released),
				)
			}
			return nil
		},
	}
}
