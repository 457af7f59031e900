package components

import (
	"context"
	"log/slog"

	"parking-reservation/internal/infra/db"
	"parking-reservation/internal/infra/memory"
	"parking-reservation/internal/infra/postgres"
	"parking-reservation/internal/infra/uow"
	"parking-reservation/internal/pkg/config"
	"parking-reservation/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewStores,
	),
)

type Stores struct {
	fx.Out

	Ledger   shared.HoldLedger
	History  shared.BookingHistory
	Capacity shared.CapacityStore
}

func NewStores(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (Stores, error) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		logger.Warn("using in-memory storage, reservations are lost on restart")
		return Stores{
			Ledger:   memory.NewHoldLedger(logger),
			History:  memory.NewBookingHistory(logger),
			Capacity: memory.NewCapacityStore(),
		}, nil
	}

	pool, err := NewDB(lc, cfg, logger)
	if err != nil {
		return Stores{}, err
	}
	return Stores{
		Ledger:   postgres.NewHoldLedger(pool, uow.NewPostgresUoW(pool, logger), cfg, logger),
		History:  postgres.NewBookingHistory(pool, cfg, logger),
		Capacity: postgres.NewCapacityStore(pool, cfg, logger),
	}, nil
}

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	if cfg.Storage.AutoMigrate {
		if err := db.Migrate(pool); err != nil {
			cleanup()
			return nil, err
		}
		logger.Info("database schema is up to date")
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return pool, nil
}
