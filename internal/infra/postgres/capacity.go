package postgres

import (
	"context"
	"errors"
	"log/slog"

	"parking-reservation/internal/domain/capacity"
	"parking-reservation/internal/pkg/config"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	capacityTable = "slot_capacity"
	capacityRowID = 1
)

type CapacityStore struct {
	base
}

func NewCapacityStore(pool *pgxpool.Pool, cfg config.Config, logger *slog.Logger) *CapacityStore {
	return &CapacityStore{base: newBase(pool, cfg.DB, logger)}
}

func (s *CapacityStore) Get(ctx context.Context) (capacity.SlotCapacity, bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query, args, err := psql.Select("total_slots").
		From(capacityTable).
		Where(squirrel.Eq{"id": capacityRowID}).
		ToSql()
	if err != nil {
		return capacity.SlotCapacity{}, false, s.buildErr("get capacity", err)
	}

	var total int
	if err := s.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return capacity.SlotCapacity{}, false, nil
		}
		return capacity.SlotCapacity{}, false, s.fail("get capacity", err)
	}
	return capacity.SlotCapacity{Total: total}, true, nil
}

func (s *CapacityStore) Upsert(ctx context.Context, c capacity.SlotCapacity) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query, args, err := psql.Insert(capacityTable).
		Columns("id", "total_slots", "updated_at").
		Values(capacityRowID, c.Total, squirrel.Expr("now()")).
		Suffix("ON CONFLICT (id) DO UPDATE SET total_slots = EXCLUDED.total_slots, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return s.buildErr("upsert capacity", err)
	}
	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return s.fail("upsert capacity", err)
	}
	return nil
}
