//go:build e2e

package store_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"parking-reservation/internal/domain/capacity"
	"parking-reservation/internal/domain/reservation"
	"parking-reservation/internal/infra/postgres"
	"parking-reservation/internal/infra/uow"
	"parking-reservation/internal/pkg/errs"
	"parking-reservation/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type StoreSuite struct {
	e2e.SharedSuite
	ledger   *postgres.HoldLedger
	history  *postgres.BookingHistory
	capacity *postgres.CapacityStore
}

func TestStoreSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.ledger = postgres.NewHoldLedger(s.DB, uow.NewPostgresUoW(s.DB, logger), s.Config, logger)
	s.history = postgres.NewBookingHistory(s.DB, s.Config, logger)
	s.capacity = postgres.NewCapacityStore(s.DB, s.Config, logger)
}

// Postgres keeps microseconds.
var t0 = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func newHold(slot, holder, tag string, at time.Time, length time.Duration) reservation.Hold {
	return reservation.Hold{
		ID: uuid.New(), SlotID: slot, HolderID: holder, ResourceTag: tag,
		DurationLabel: "1 hr", CreatedAt: at, ExpiresAt: at.Add(length),
	}
}

func (s *StoreSuite) TestLedgerExclusivity() {
	ctx := context.Background()

	s.Run("second insert while held conflicts", func() {
		require.NoError(s.T(), s.ledger.Insert(ctx, newHold("A1", "alice", "ALI", t0, time.Hour)))

		err := s.ledger.Insert(ctx, newHold("A1", "bob", "BOB", t0.Add(time.Minute), time.Hour))
		s.True(errs.Is(err, errs.ErrConflict), "got %v", err)

		h, err := s.ledger.FindActive(ctx, "A1", t0.Add(30*time.Minute))
		s.Require().NoError(err)
		s.Require().NotNil(h)
		s.Equal("alice", h.HolderID)
	})

	s.Run("expiry instant frees the slot", func() {
		require.NoError(s.T(), s.ledger.Insert(ctx, newHold("B1", "alice", "ALI", t0, 30*time.Minute)))

		h, err := s.ledger.FindActive(ctx, "B1", t0.Add(30*time.Minute))
		s.Require().NoError(err)
		s.Nil(h)

		s.NoError(s.ledger.Insert(ctx, newHold("B1", "bob", "BOB", t0.Add(30*time.Minute), time.Hour)))
	})

	s.Run("concurrent inserts have one winner", func() {
		const racers = 12
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			ok        int
			conflicts int
		)
		for range racers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := s.ledger.Insert(ctx, newHold("C1", "racer", uuid.NewString(), t0, time.Hour))
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					ok++
				case errs.Is(err, errs.ErrConflict):
					conflicts++
				}
			}()
		}
		wg.Wait()

		s.Equal(1, ok)
		s.Equal(racers-1, conflicts)
	})
}

func (s *StoreSuite) TestLedgerDeletes() {
	ctx := context.Background()

	s.Run("sweep removes only expired holds", func() {
		expired := newHold("D1", "alice", "ALI", t0, 30*time.Minute)
		active := newHold("D2", "bob", "BOB", t0, 2*time.Hour)
		require.NoError(s.T(), s.ledger.Insert(ctx, expired))
		require.NoError(s.T(), s.ledger.Insert(ctx, active))

		n, err := s.ledger.DeleteExpired(ctx, t0.Add(time.Hour))
		s.Require().NoError(err)
		s.EqualValues(1, n)

		holds, err := s.ledger.ListActive(ctx, t0.Add(time.Hour))
		s.Require().NoError(err)
		s.Require().Len(holds, 1)
		s.Equal(active.ID, holds[0].ID)
	})

	s.Run("delete by slot and tag and by id", func() {
		h := newHold("E1", "alice", "ALI", t0, time.Hour)
		other := newHold("E2", "alice", "ALI", t0, time.Hour)
		require.NoError(s.T(), s.ledger.Insert(ctx, h))
		require.NoError(s.T(), s.ledger.Insert(ctx, other))

		n, err := s.ledger.DeleteBySlotAndTag(ctx, "E1", "ALI")
		s.Require().NoError(err)
		s.EqualValues(1, n)

		gone, err := s.ledger.DeleteByID(ctx, other.ID)
		s.Require().NoError(err)
		s.True(gone)

		gone, err = s.ledger.DeleteByID(ctx, other.ID)
		s.Require().NoError(err)
		s.False(gone)
	})
}

func (s *StoreSuite) TestBookingHistory() {
	ctx := context.Background()

	s.Run("append, find, list, remove", func() {
		e, err := reservation.MirrorHold(newHold("F1", "alice", "ALI", t0, time.Hour))
		s.Require().NoError(err)
		s.Require().NoError(s.history.Append(ctx, e))

		got, err := s.history.FindByID(ctx, e.BookingID)
		s.Require().NoError(err)
		s.Equal(e.SlotID, got.SlotID)
		s.True(e.BookedAt.Equal(got.BookedAt))

		mine, err := s.history.ListByHolder(ctx, "alice")
		s.Require().NoError(err)
		s.Len(mine, 1)

		none, err := s.history.ListByHolder(ctx, "nobody")
		s.Require().NoError(err)
		s.Empty(none)

		s.Require().NoError(s.history.Remove(ctx, e.BookingID))
		s.True(errs.Is(s.history.Remove(ctx, e.BookingID), errs.ErrNotFound))

		_, err = s.history.FindByID(ctx, e.BookingID)
		s.True(errs.Is(err, errs.ErrNotFound))
	})
}

func (s *StoreSuite) TestCapacityStore() {
	ctx := context.Background()

	_, found, err := s.capacity.Get(ctx)
	s.Require().NoError(err)
	s.False(found)

	s.Require().NoError(s.capacity.Upsert(ctx, capacity.SlotCapacity{Total: 8}))
	s.Require().NoError(s.capacity.Upsert(ctx, capacity.SlotCapacity{Total: 10}))

	c, found, err := s.capacity.Get(ctx)
	s.Require().NoError(err)
	s.True(found)
	s.Equal(10, c.Total)
}
