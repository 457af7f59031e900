//go:build unit

package uow

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"parking-reservation/internal/pkg/errs"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTx embeds pgx.Tx so only the methods the runner calls need bodies.
type fakeTx struct {
	pgx.Tx
	commitErr  error
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Commit(context.Context) error {
	if f.commitErr != nil {
		return f.commitErr
	}
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(context.Context) error {
	if f.committed {
		return pgx.ErrTxClosed
	}
	f.rolledBack = true
	return nil
}

type fakeBeginner struct {
	txs      []*fakeTx
	beginErr error
}

func (f *fakeBeginner) BeginTx(context.Context, pgx.TxOptions) (pgx.Tx, error) {
	if f.beginErr != nil {
		return nil, f.beginErr
	}
	tx := &fakeTx{}
	f.txs = append(f.txs, tx)
	return tx, nil
}

func newTestUoW(b Beginner) *PostgresUoW {
	u := newPostgresUoW(b, slog.New(slog.NewTextHandler(io.Discard, nil)))
	u.base = time.Millisecond
	return u
}

func TestWithinCommits(t *testing.T) {
	b := &fakeBeginner{}
	err := newTestUoW(b).Within(context.Background(), func(context.Context, pgx.Tx) error { return nil })
	require.NoError(t, err)
	require.Len(t, b.txs, 1)
	assert.True(t, b.txs[0].committed)
}

func TestWithinRollsBackOnError(t *testing.T) {
	b := &fakeBeginner{}
	boom := errors.New("boom")
	err := newTestUoW(b).Within(context.Background(), func(context.Context, pgx.Tx) error { return boom })
	assert.ErrorIs(t, err, boom)
	require.Len(t, b.txs, 1, "non-retryable errors are not retried")
	assert.True(t, b.txs[0].rolledBack)
}

func TestWithinRetriesSerializationFailure(t *testing.T) {
	b := &fakeBeginner{}
	calls := 0
	err := newTestUoW(b).Within(context.Background(), func(context.Context, pgx.Tx) error {
		calls++
		if calls < 3 {
			return &pgconn.PgError{Code: pgerrcode.SerializationFailure}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.True(t, b.txs[2].committed)
}

func TestWithinGivesUpAfterMaxRetries(t *testing.T) {
	b := &fakeBeginner{}
	err := newTestUoW(b).Within(context.Background(), func(context.Context, pgx.Tx) error {
		return &pgconn.PgError{Code: pgerrcode.DeadlockDetected}
	})
	assert.True(t, errs.Is(err, ErrMaxRetriesExceeded))
	assert.Len(t, b.txs, 4)
}

func TestWithinBeginFailure(t *testing.T) {
	b := &fakeBeginner{beginErr: errors.New("no connection")}
	err := newTestUoW(b).Within(context.Background(), func(context.Context, pgx.Tx) error { return nil })
	assert.True(t, errs.Is(err, ErrTransactionBegin))
}

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond
	for attempt := 0; attempt < 3; attempt++ {
		d := calculateBackoff(attempt, base)
		floor := time.Duration(1<<attempt) * base
		assert.GreaterOrEqual(t, d, floor)
		assert.Less(t, d, floor+floor/5+time.Nanosecond)
	}
}
