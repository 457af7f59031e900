package components

import (
	"log/slog"

	"parking-reservation/internal/pkg/clock"
	"parking-reservation/internal/pkg/config"
	"parking-reservation/internal/usecase"
	"parking-reservation/internal/usecase/commands"
	"parking-reservation/internal/usecase/queries"
	"parking-reservation/internal/usecase/reconcile"
	"parking-reservation/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewReconciler,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationUseCase,
		commands.NewCapacityUseCase,
		commands.NewReclaimUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		NewCapacityQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewCapacityQueries(store shared.CapacityStore, cfg config.Config) queries.CapacityQueries {
	return queries.NewCapacityQueries(store, cfg.Reservation.DefaultCapacity)
}

func NewReconciler(ledger shared.HoldLedger, history shared.BookingHistory, clk clock.Clock, logger *slog.Logger, cfg config.Config) reconcile.Reconciler {
	return reconcile.NewReconciler(ledger, history, clk, logger, reconcile.Options{
		OrphanGrace: cfg.Reservation.OrphanGrace,
		MatchWindow: cfg.Reservation.MatchWindow,
		Repair:      cfg.Reservation.ReconcileRepair,
	})
}
