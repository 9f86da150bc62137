package shared

import (
	"context"

	"mountworks/internal/infra/sqlc"
)

// TxRunner abstracts transaction boundaries so commands stay testable
// without a live pool.
type TxRunner interface {
	// Within: full read-write transaction with serialization retry
	Within(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}
