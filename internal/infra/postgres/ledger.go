package postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"parking-reservation/internal/domain/reservation"
	"parking-reservation/internal/infra"
	"parking-reservation/internal/infra/uow"
	"parking-reservation/internal/pkg/config"
	"parking-reservation/internal/pkg/errs"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const holdsTable = "reservation_holds"

var holdColumns = []string{"id", "slot_id", "holder_id", "resource_tag", "duration_label", "created_at", "expires_at"}

// Both statements run in one transaction. The advisory lock serializes
// inserts per slot, and each READ COMMITTED statement sees rows committed by
// the previous lock holder.
const (
	lockSlotSQL = `SELECT pg_advisory_xact_lock(hashtext('reservation_holds'), hashtext($1))`

	insertIfFreeSQL = `
INSERT INTO reservation_holds (id, slot_id, holder_id, resource_tag, duration_label, created_at, expires_at)
SELECT $1::uuid, $2::text, $3::text, $4::text, $5::text, $6::timestamptz, $7::timestamptz
WHERE NOT EXISTS (
    SELECT 1 FROM reservation_holds WHERE slot_id = $2::text AND expires_at > $6::timestamptz
)`
)

type HoldLedger struct {
	base
	uow *uow.PostgresUoW
}

func NewHoldLedger(pool *pgxpool.Pool, txRunner *uow.PostgresUoW, cfg config.Config, logger *slog.Logger) *HoldLedger {
	return &HoldLedger{base: newBase(pool, cfg.DB, logger), uow: txRunner}
}

func (l *HoldLedger) FindActive(ctx context.Context, slotID string, now time.Time) (*reservation.Hold, error) {
	ctx, cancel := l.withTimeout(ctx)
	defer cancel()

	query, args, err := psql.Select(holdColumns...).
		From(holdsTable).
		Where(squirrel.Eq{"slot_id": slotID}).
		Where(squirrel.Gt{"expires_at": now}).
		OrderBy("expires_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, l.buildErr("find active hold", err)
	}

	rows, err := l.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, l.fail("find active hold", err)
	}
	h, err := pgx.CollectExactlyOneRow(rows, scanHold)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, l.fail("find active hold", err)
	}
	return &h, nil
}

func (l *HoldLedger) Insert(ctx context.Context, h reservation.Hold) error {
	ctx, cancel := l.withTimeout(ctx)
	defer cancel()

	err := l.uow.Within(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, lockSlotSQL, h.SlotID); err != nil {
			return l.fail("lock slot", err)
		}
		tag, err := tx.Exec(ctx, insertIfFreeSQL,
			h.ID, h.SlotID, h.HolderID, h.ResourceTag, h.DurationLabel, h.CreatedAt, h.ExpiresAt)
		if err != nil {
			return l.fail("insert hold", err)
		}
		if tag.RowsAffected() == 0 {
			return infra.WrapRepoErr(l.logger, infra.KindConflict, "slot already held: "+h.SlotID, nil)
		}
		return nil
	})
	// begin and commit failures come back from the unit of work unclassified
	if err != nil && errs.Category(err) == nil {
		return l.fail("insert hold transaction", err)
	}
	return err
}

func (l *HoldLedger) DeleteBySlotAndTag(ctx context.Context, slotID, resourceTag string) (int64, error) {
	return l.delete(ctx, "delete holds by slot and tag", squirrel.Eq{"slot_id": slotID, "resource_tag": resourceTag})
}

func (l *HoldLedger) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := l.delete(ctx, "delete hold", squirrel.Eq{"id": id})
	return n > 0, err
}

func (l *HoldLedger) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return l.delete(ctx, "delete expired holds", squirrel.LtOrEq{"expires_at": now})
}

func (l *HoldLedger) ListActive(ctx context.Context, now time.Time) ([]reservation.Hold, error) {
	ctx, cancel := l.withTimeout(ctx)
	defer cancel()

	query, args, err := psql.Select(holdColumns...).
		From(holdsTable).
		Where(squirrel.Gt{"expires_at": now}).
		OrderBy("slot_id", "created_at").
		ToSql()
	if err != nil {
		return nil, l.buildErr("list active holds", err)
	}

	rows, err := l.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, l.fail("list active holds", err)
	}
	holds, err := pgx.CollectRows(rows, scanHold)
	if err != nil {
		return nil, l.fail("list active holds", err)
	}
	return holds, nil
}

func (l *HoldLedger) delete(ctx context.Context, msg string, pred squirrel.Sqlizer) (int64, error) {
	ctx, cancel := l.withTimeout(ctx)
	defer cancel()

	query, args, err := psql.Delete(holdsTable).Where(pred).ToSql()
	if err != nil {
		return 0, l.buildErr(msg, err)
	}
	tag, err := l.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, l.fail(msg, err)
	}
	return tag.RowsAffected(), nil
}

func scanHold(row pgx.CollectableRow) (reservation.Hold, error) {
	var h reservation.Hold
	err := row.Scan(&h.ID, &h.SlotID, &h.HolderID, &h.ResourceTag, &h.DurationLabel, &h.CreatedAt, &h.ExpiresAt)
	return h, err
}
