package postgres

import (
	"context"
	"errors"
	"log/slog"

	"parking-reservation/internal/domain/reservation"
	"parking-reservation/internal/infra"
	"parking-reservation/internal/pkg/config"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingsTable = "booking_entries"

var bookingColumns = []string{"booking_id", "holder_id", "slot_id", "resource_tag", "duration_label", "booked_at"}

type BookingHistory struct {
	base
}

func NewBookingHistory(pool *pgxpool.Pool, cfg config.Config, logger *slog.Logger) *BookingHistory {
	return &BookingHistory{base: newBase(pool, cfg.DB, logger)}
}

func (s *BookingHistory) Append(ctx context.Context, e reservation.BookingEntry) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query, args, err := psql.Insert(bookingsTable).
		Columns(bookingColumns...).
		Values(e.BookingID, e.HolderID, e.SlotID, e.ResourceTag, e.DurationLabel, e.BookedAt).
		ToSql()
	if err != nil {
		return s.buildErr("append booking", err)
	}
	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return s.fail("append booking", err)
	}
	return nil
}

func (s *BookingHistory) FindByID(ctx context.Context, bookingID uuid.UUID) (*reservation.BookingEntry, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query, args, err := psql.Select(bookingColumns...).
		From(bookingsTable).
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()
	if err != nil {
		return nil, s.buildErr("find booking", err)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, s.fail("find booking", err)
	}
	e, err := pgx.CollectExactlyOneRow(rows, scanBooking)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "booking "+bookingID.String(), nil)
		}
		return nil, s.fail("find booking", err)
	}
	return &e, nil
}

func (s *BookingHistory) Remove(ctx context.Context, bookingID uuid.UUID) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query, args, err := psql.Delete(bookingsTable).Where(squirrel.Eq{"booking_id": bookingID}).ToSql()
	if err != nil {
		return s.buildErr("remove booking", err)
	}
	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return s.fail("remove booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(s.logger, infra.KindNotFound, "booking "+bookingID.String(), nil)
	}
	return nil
}

func (s *BookingHistory) ListAll(ctx context.Context) ([]reservation.BookingEntry, error) {
	return s.list(ctx, "list bookings", nil, "holder_id", "booked_at", "booking_id")
}

func (s *BookingHistory) ListByHolder(ctx context.Context, holderID string) ([]reservation.BookingEntry, error) {
	return s.list(ctx, "list holder bookings", squirrel.Eq{"holder_id": holderID}, "booked_at", "booking_id")
}

func (s *BookingHistory) list(ctx context.Context, msg string, pred squirrel.Sqlizer, orderBy ...string) ([]reservation.BookingEntry, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	qb := psql.Select(bookingColumns...).From(bookingsTable).OrderBy(orderBy...)
	if pred != nil {
		qb = qb.Where(pred)
	}
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, s.buildErr(msg, err)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, s.fail(msg, err)
	}
	entries, err := pgx.CollectRows(rows, scanBooking)
	if err != nil {
		return nil, s.fail(msg, err)
	}
	return entries, nil
}

func scanBooking(row pgx.CollectableRow) (reservation.BookingEntry, error) {
	var e reservation.BookingEntry
	err := row.Scan(&e.BookingID, &e.HolderID, &e.SlotID, &e.ResourceTag, &e.DurationLabel, &e.BookedAt)
	return e, err
}
