//go:build unit || e2e

package dbtest

import (
	"context"

	"mountworks/internal/infra/sqlc"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// StubDBTX satisfies sqlc.DBTX for tests that mock the query layer above it.
type StubDBTX struct{}

func (m *StubDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *StubDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *StubDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("StubDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}

// ImmediateTxRunner runs the callback inline with a stub handle, so command
// tests exercise transaction bodies without a live pool.
type ImmediateTxRunner struct {
	DB sqlc.DBTX
}

func NewImmediateTxRunner() *ImmediateTxRunner {
	return &ImmediateTxRunner{DB: &StubDBTX{}}
}

func (r *ImmediateTxRunner) Within(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, r.DB)
}

func (r *ImmediateTxRunner) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, r.DB)
}
