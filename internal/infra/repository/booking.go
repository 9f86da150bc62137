package repository

import (
	"context"

	"mountworks/internal/domain/booking"
	"mountworks/internal/infra"
	"mountworks/internal/infra/repository/converter"
	"mountworks/internal/infra/sqlc"
	"mountworks/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (uuid.UUID, error)
	GetBookingIDByAuthorization(ctx context.Context, db sqlc.DBTX, authorizationID uuid.UUID) (uuid.UUID, error)
	MarkBookingAssigning(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	AssignWorkerIfFree(ctx context.Context, db sqlc.DBTX, arg sqlc.AssignWorkerIfFreeParams) (int64, error)
	MarkAssignmentFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkAssignmentFailedParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{queries: queries}
}

func (r *BookingRepository) Create(ctx context.Context, db sqlc.DBTX, b *booking.Booking) (uuid.UUID, error) {
	params, err := converter.BookingToInfra(b)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to convert booking", err)
	}

	resultID, err := r.queries.CreateBooking(ctx, db, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return resultID, nil
}

func (r *BookingRepository) FindIDByAuthorization(ctx context.Context, db sqlc.DBTX, authorizationID uuid.UUID) (uuid.UUID, error) {
	id, err := r.queries.GetBookingIDByAuthorization(ctx, db, authorizationID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("booking not found for authorization", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to find booking by authorization", err)
	}
	return id, nil
}

func (r *BookingRepository) MarkAssigning(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error) {
	affected, err := r.queries.MarkBookingAssigning(ctx, db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark booking assigning", err)
	}
	return affected > 0, nil
}

func (r *BookingRepository) AssignWorkerIfFree(ctx context.Context, db sqlc.DBTX, bookingID, workerID uuid.UUID) (bool, error) {
	affected, err := r.queries.AssignWorkerIfFree(ctx, db, sqlc.AssignWorkerIfFreeParams{
		ID:       bookingID,
		WorkerID: pgconv.UUIDToPgtype(workerID),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to assign worker", err)
	}
	return affected > 0, nil
}

func (r *BookingRepository) MarkAssignmentFailed(ctx context.Context, db sqlc.DBTX, id uuid.UUID, status string) error {
	_, err := r.queries.MarkAssignmentFailed(ctx, db, sqlc.MarkAssignmentFailedParams{
		ID:     id,
		Status: status,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark assignment failed", err)
	}
	return nil
}
