package readstore

import (
	"context"
	"time"

	"mountworks/internal/domain/schedule"
	"mountworks/internal/infra"
	"mountworks/internal/infra/sqlc"
	"mountworks/internal/pkg/pgconv"
	"mountworks/internal/usecase/shared"

	"github.com/google/uuid"
)

type WorkerViewQueries interface {
	GetWorkersByZip(ctx context.Context, db sqlc.DBTX, zip string) ([]sqlc.GetWorkersByZipRow, error)
	GetWorkerSchedule(ctx context.Context, db sqlc.DBTX, workerID uuid.UUID) ([]sqlc.WorkerSchedules, error)
}

// WorkerReadStore answers coverage lookups from the derived zip_coverage
// table. A zip with no rows means no service, full stop.
type WorkerReadStore struct {
	queries WorkerViewQueries
	db      sqlc.DBTX
}

func NewWorkerReadStore(queries WorkerViewQueries, db sqlc.DBTX) *WorkerReadStore {
	return &WorkerReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *WorkerReadStore) WorkersByZip(ctx context.Context, zip string) ([]shared.WorkerRef, error) {
	rows, err := r.queries.GetWorkersByZip(ctx, r.db, zip)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find workers by zip", err)
	}

	refs := make([]shared.WorkerRef, len(rows))
	for i, row := range rows {
		phone := ""
		if p := pgconv.StringPtrFromPgtype(row.Phone); p != nil {
			phone = *p
		}
		refs[i] = shared.WorkerRef{
			ID:    row.ID,
			Name:  row.Name,
			Email: row.Email,
			Phone: phone,
		}
	}
	return refs, nil
}

func (r *WorkerReadStore) ScheduleOf(ctx context.Context, workerID uuid.UUID) (schedule.WeeklySchedule, error) {
	rows, err := r.queries.GetWorkerSchedule(ctx, r.db, workerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load worker schedule", err)
	}

	ws := make(schedule.WeeklySchedule, len(rows))
	for _, row := range rows {
		ws[time.Weekday(row.Weekday)] = schedule.DayWindow{
			Weekday:  time.Weekday(row.Weekday),
			StartMin: int(row.StartMin),
			EndMin:   int(row.EndMin),
			Active:   row.Active,
		}
	}
	return ws, nil
}
