package repository

import (
	"context"

	"mountworks/internal/infra"
	"mountworks/internal/infra/sqlc"

	"github.com/google/uuid"
)

type WorkerWriteQueries interface {
	DeleteZipCoverageByWorker(ctx context.Context, db sqlc.DBTX, workerID uuid.UUID) error
	InsertZipCoverageFromAreas(ctx context.Context, db sqlc.DBTX, workerID uuid.UUID) (int64, error)
}

type WorkerRepository struct {
	queries WorkerWriteQueries
}

func NewWorkerRepository(queries WorkerWriteQueries) *WorkerRepository {
	return &WorkerRepository{queries: queries}
}

// RebuildCoverage re-derives the zip_coverage rows for a worker from its
// service areas. Coverage is a lookup table, not a source of truth, so the
// rebuild is a full delete-and-insert inside the caller's transaction.
func (r *WorkerRepository) RebuildCoverage(ctx context.Context, db sqlc.DBTX, workerID uuid.UUID) (int64, error) {
	if err := r.queries.DeleteZipCoverageByWorker(ctx, db, workerID); err != nil {
		return 0, infra.WrapRepoErr("failed to clear zip coverage", err)
	}

	inserted, err := r.queries.InsertZipCoverageFromAreas(ctx, db, workerID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to rebuild zip coverage", err)
	}
	return inserted, nil
}
