package readstore

import (
	"context"
	"time"

	"mountworks/internal/domain/schedule"
	"mountworks/internal/infra"
	"mountworks/internal/infra/repository/converter"
	"mountworks/internal/infra/sqlc"
	"mountworks/internal/pkg/pgconv"
	"mountworks/internal/usecase/queries"
	"mountworks/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingViewQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingByIDRow, error)
	GetWorkerBookedSlots(ctx context.Context, db sqlc.DBTX, arg sqlc.GetWorkerBookedSlotsParams) ([]sqlc.GetWorkerBookedSlotsRow, error)
	CountActiveBookingsByWorker(ctx context.Context, db sqlc.DBTX, assignedWorkerID pgtype.UUID) (int64, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
	loc     *time.Location
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX, loc *time.Location) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
		loc:     loc,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return r.rowToBookingView(row)
}

// SnapshotByID serves the write side: same row, command-facing shape.
func (r *BookingReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return &shared.BookingSnapshot{
		ID:                row.ID,
		UserID:            pgconv.UUIDPtrFromPgtype(row.UserID),
		GuestName:         pgconv.StringPtrFromPgtype(row.GuestName),
		GuestEmail:        pgconv.StringPtrFromPgtype(row.GuestEmail),
		GuestPhone:        pgconv.StringPtrFromPgtype(row.GuestPhone),
		ScheduledDate:     pgconv.DateFromPgtype(row.ScheduledDate, r.loc),
		StartMin:          int(row.StartMin),
		DurationMin:       int(row.DurationMin),
		TotalCents:        row.TotalCents,
		Status:            row.Status,
		PaymentStatus:     row.PaymentStatus,
		AuthorizationID:   row.AuthorizationID,
		AssignedWorkerID:  pgconv.UUIDPtrFromPgtype(row.AssignedWorkerID),
		PreferredWorkerID: pgconv.UUIDPtrFromPgtype(row.PreferredWorkerID),
		AssignmentStatus:  row.AssignmentStatus,
		Address:           row.Address,
		Zip:               row.Zip,
	}, nil
}

func (r *BookingReadStore) BookedSlotsFor(ctx context.Context, workerID uuid.UUID, date time.Time) ([]schedule.BookedSlot, error) {
	rows, err := r.queries.GetWorkerBookedSlots(ctx, r.db, sqlc.GetWorkerBookedSlotsParams{
		AssignedWorkerID: pgconv.UUIDToPgtype(workerID),
		ScheduledDate:    pgconv.DateToPgtype(date),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booked slots", err)
	}

	slots := make([]schedule.BookedSlot, len(rows))
	for i, row := range rows {
		slots[i] = schedule.BookedSlot{
			StartMin:    int(row.StartMin),
			DurationMin: int(row.DurationMin),
		}
	}
	return slots, nil
}

func (r *BookingReadStore) ActiveCountFor(ctx context.Context, workerID uuid.UUID) (int64, error) {
	count, err := r.queries.CountActiveBookingsByWorker(ctx, r.db, pgconv.UUIDToPgtype(workerID))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active bookings", err)
	}
	return count, nil
}

func (r *BookingReadStore) rowToBookingView(row sqlc.GetBookingByIDRow) (*queries.BookingView, error) {
	records, err := converter.ServiceItemsFromJSON(row.ServiceItems)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt service items payload", err)
	}

	items := make([]queries.ServiceItem, len(records))
	for i, rec := range records {
		items[i] = queries.ServiceItem{
			ServiceID:      rec.ServiceID,
			Name:           rec.Name,
			UnitPriceCents: rec.UnitPriceCents,
			Quantity:       rec.Quantity,
		}
	}

	return &queries.BookingView{
		ID:                 row.ID,
		UserID:             pgconv.UUIDPtrFromPgtype(row.UserID),
		GuestName:          pgconv.StringPtrFromPgtype(row.GuestName),
		GuestEmail:         pgconv.StringPtrFromPgtype(row.GuestEmail),
		ServiceItems:       items,
		ScheduledDate:      pgconv.DateFromPgtype(row.ScheduledDate, r.loc),
		StartMin:           int(row.StartMin),
		DurationMin:        int(row.DurationMin),
		TotalCents:         row.TotalCents,
		Status:             row.Status,
		PaymentStatus:      row.PaymentStatus,
		AuthorizationID:    row.AuthorizationID,
		AssignedWorkerID:   pgconv.UUIDPtrFromPgtype(row.AssignedWorkerID),
		AssignedWorkerName: pgconv.StringPtrFromPgtype(row.AssignedWorkerName),
		PreferredWorkerID:  pgconv.UUIDPtrFromPgtype(row.PreferredWorkerID),
		AssignmentStatus:   row.AssignmentStatus,
		Address:            row.Address,
		Zip:                row.Zip,
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
