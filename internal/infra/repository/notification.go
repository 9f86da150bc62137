package repository

import (
	"context"

	"mountworks/internal/infra"
	"mountworks/internal/infra/sqlc"
	"mountworks/internal/pkg/pgconv"
	"mountworks/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationWriteQueries interface {
	GetNotificationSend(ctx context.Context, db sqlc.DBTX, arg sqlc.GetNotificationSendParams) (sqlc.NotificationSends, error)
	RecordNotificationSend(ctx context.Context, db sqlc.DBTX, arg sqlc.RecordNotificationSendParams) (int64, error)
	DeleteNotificationSend(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteNotificationSendParams) error
}

// NotificationRepository is the send-once ledger. One row per
// (booking, recipient, message type); the unique constraint is the actual
// dedupe mechanism, the repository just reports whether the insert landed.
type NotificationRepository struct {
	queries NotificationWriteQueries
}

func NewNotificationRepository(queries NotificationWriteQueries) *NotificationRepository {
	return &NotificationRepository{queries: queries}
}

func (r *NotificationRepository) Find(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID, recipient, messageType string) (*shared.SendRecord, error) {
	row, err := r.queries.GetNotificationSend(ctx, db, sqlc.GetNotificationSendParams{
		BookingID:   bookingID,
		Recipient:   recipient,
		MessageType: messageType,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("notification send not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get notification send", err)
	}

	return &shared.SendRecord{
		ID:                row.ID,
		BookingID:         row.BookingID,
		Recipient:         row.Recipient,
		MessageType:       row.MessageType,
		Channel:           row.Channel,
		Status:            row.Status,
		ProviderMessageID: pgconv.StringPtrFromPgtype(row.ProviderMessageID),
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func (r *NotificationRepository) TryRecord(ctx context.Context, db sqlc.DBTX, rec shared.SendRecord) (bool, error) {
	affected, err := r.queries.RecordNotificationSend(ctx, db, sqlc.RecordNotificationSendParams{
		ID:                rec.ID,
		BookingID:         rec.BookingID,
		Recipient:         rec.Recipient,
		MessageType:       rec.MessageType,
		Channel:           rec.Channel,
		Status:            rec.Status,
		ProviderMessageID: pgconv.StringPtrToPgtype(rec.ProviderMessageID),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to record notification send", err)
	}
	return affected > 0, nil
}

func (r *NotificationRepository) Delete(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID, recipient, messageType string) error {
	err := r.queries.DeleteNotificationSend(ctx, db, sqlc.DeleteNotificationSendParams{
		BookingID:   bookingID,
		Recipient:   recipient,
		MessageType: messageType,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to delete notification send", err)
	}
	return nil
}
