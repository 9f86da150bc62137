package commands

import (
	"context"

	"mountworks/internal/infra/sqlc"
	"mountworks/internal/pkg/errs"
	"mountworks/internal/usecase/shared"

	"github.com/google/uuid"
)

type CoverageRepository interface {
	RebuildCoverage(ctx context.Context, db sqlc.DBTX, workerID uuid.UUID) (int64, error)
}

type WorkerCommands interface {
	// RebuildCoverage re-derives zip_coverage after a worker's service areas
	// change. Lookups against the old coverage keep working until the swap
	// commits.
	RebuildCoverage(ctx context.Context, workerID uuid.UUID) (int64, error)
}

type workerUseCaseImpl struct {
	coverageRepo CoverageRepository
	runner       shared.TxRunner
}

func NewWorkerUseCase(coverageRepo CoverageRepository, runner shared.TxRunner) WorkerCommands {
	return &workerUseCaseImpl{
		coverageRepo: coverageRepo,
		runner:       runner,
	}
}

func (w *workerUseCaseImpl) RebuildCoverage(ctx context.Context, workerID uuid.UUID) (int64, error) {
	var zips int64
	err := w.runner.Within(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var rebuildErr error
		zips, rebuildErr = w.coverageRepo.RebuildCoverage(ctx, db, workerID)
		return rebuildErr
	})
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return zips, nil
}
