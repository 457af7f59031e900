// Package postgres holds the PostgreSQL implementations of the reservation
// ledger, booking history and slot capacity stores.
package postgres

import (
	"context"
	"log/slog"
	"time"

	"parking-reservation/internal/infra"
	"parking-reservation/internal/pkg/config"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type base struct {
	pool    *pgxpool.Pool
	timeout time.Duration
	logger  *slog.Logger
}

func newBase(pool *pgxpool.Pool, cfg config.DBConfig, logger *slog.Logger) base {
	timeout := cfg.QueryTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return base{pool: pool, timeout: timeout, logger: logger}
}

func (b base) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, b.timeout)
}

// fail classifies a pgx error and wraps it with its outward category.
func (b base) fail(msg string, err error) error {
	return infra.WrapRepoErr(b.logger, infra.ClassifyPgError(err), msg, err)
}

func (b base) buildErr(msg string, err error) error {
	return infra.WrapRepoErr(b.logger, infra.KindDBFailure, "build "+msg+" query", err)
}
