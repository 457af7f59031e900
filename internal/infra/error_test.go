//go:build unit

package infra_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"parking-reservation/internal/infra"
	"parking-reservation/internal/pkg/errs"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestWrapRepoErrCategories(t *testing.T) {
	cause := errors.New("driver said no")

	cases := []struct {
		kind infra.RepositoryErrorKind
		want error
	}{
		{infra.KindNotFound, errs.ErrNotFound},
		{infra.KindConflict, errs.ErrConflict},
		{infra.KindDuplicateKey, errs.ErrConflict},
		{infra.KindTimeout, errs.ErrUnavailable},
		{infra.KindDBFailure, errs.ErrUnavailable},
	}
	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			err := infra.WrapRepoErr(quiet, tc.kind, "op failed", cause)
			assert.True(t, errs.Is(err, tc.want))
			assert.True(t, infra.IsKind(err, tc.kind))
			assert.ErrorIs(t, err, cause)
			assert.Contains(t, err.Error(), "op failed")
		})
	}
}

func TestWrapRepoErrSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("ledger: %w", infra.WrapRepoErr(nil, infra.KindNotFound, "missing", nil))
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.True(t, errs.Is(errs.Wrap(err, "outer"), errs.ErrNotFound))
	assert.False(t, infra.IsKind(err, infra.KindConflict))
}

func TestClassifyPgError(t *testing.T) {
	assert.Equal(t, infra.KindNotFound, infra.ClassifyPgError(pgx.ErrNoRows))
	assert.Equal(t, infra.KindTimeout, infra.ClassifyPgError(context.DeadlineExceeded))
	assert.Equal(t, infra.KindDuplicateKey, infra.ClassifyPgError(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.Equal(t, infra.KindTimeout, infra.ClassifyPgError(&pgconn.PgError{Code: pgerrcode.QueryCanceled}))
	assert.Equal(t, infra.KindDBFailure, infra.ClassifyPgError(&pgconn.PgError{Code: pgerrcode.UndefinedTable}))
	assert.Equal(t, infra.KindDBFailure, infra.ClassifyPgError(errors.New("connection refused")))
}
