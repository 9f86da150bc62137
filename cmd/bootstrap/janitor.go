package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"mountworks/internal/infra/repository"
	"mountworks/internal/infra/sqlc"
	"mountworks/internal/usecase/shared"

	"go.uber.org/fx"
)

const idempotencySweepInterval = time.Hour

var JanitorModule = fx.Module("janitor",
	fx.Invoke(
		StartIdempotencySweeper,
	),
)

// StartIdempotencySweeper periodically removes idempotency keys past their
// TTL so replay detection stays bounded. Expired keys stop protecting their
// request the moment they expire; the sweep only reclaims storage.
func StartIdempotencySweeper(
	lc fx.Lifecycle,
	runner shared.TxRunner,
	repo *repository.IdempotencyRepository,
	logger *slog.Logger,
) {
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				ticker := time.NewTicker(idempotencySweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-done:
						return
					case <-ticker.C:
						sweepExpiredKeys(runner, repo, logger)
					}
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			close(done)
			return nil
		},
	})
}

func sweepExpiredKeys(runner shared.TxRunner, repo *repository.IdempotencyRepository, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var deleted int64
	err := runner.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		deleted, err = repo.DeleteExpired(ctx, db)
		return err
	})
	if err != nil {
		logger.Warn("idempotency key sweep failed", "error", err)
		return
	}
	if deleted > 0 {
		logger.Info("swept expired idempotency keys", "deleted", deleted)
	}
}
