package commands

import (
	"context"
	"time"

	"mountworks/internal/domain/booking"
	"mountworks/internal/domain/payment"
	"mountworks/internal/infra/sqlc"
	"mountworks/internal/usecase/queries"
	"mountworks/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingRepository interface {
	Create(ctx context.Context, db sqlc.DBTX, b *booking.Booking) (uuid.UUID, error)
	FindIDByAuthorization(ctx context.Context, db sqlc.DBTX, authorizationID uuid.UUID) (uuid.UUID, error)
	MarkAssigning(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error)
	AssignWorkerIfFree(ctx context.Context, db sqlc.DBTX, bookingID, workerID uuid.UUID) (bool, error)
	MarkAssignmentFailed(ctx context.Context, db sqlc.DBTX, id uuid.UUID, status string) error
}

type AuthorizationRepository interface {
	TryInsert(ctx context.Context, db sqlc.DBTX, auth *payment.Authorization) (bool, error)
	GetByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*payment.Authorization, error)
	GetByIdempotencyKey(ctx context.Context, db sqlc.DBTX, key uuid.UUID) (*payment.Authorization, error)
	UpdateStatus(ctx context.Context, db sqlc.DBTX, id uuid.UUID, status payment.AuthorizationStatus) error
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, db sqlc.DBTX, key uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	Get(ctx context.Context, db sqlc.DBTX, key uuid.UUID) (*shared.IdempotencyRecord, error)
	UpdateStatusCompleted(ctx context.Context, db sqlc.DBTX, key uuid.UUID, resultBookingID uuid.UUID) error
}

type NotificationLedger interface {
	Find(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID, recipient, messageType string) (*shared.SendRecord, error)
	TryRecord(ctx context.Context, db sqlc.DBTX, rec shared.SendRecord) (bool, error)
}

// BookingReads exposes the write-side snapshots commands validate against.
type BookingReads interface {
	SnapshotByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error)
	ActiveCountFor(ctx context.Context, workerID uuid.UUID) (int64, error)
}

// PaymentGateway wraps the processor. Authorize places an uncaptured hold;
// Reverse releases it. The idempotency key travels to the processor so
// network retries cannot double-authorize.
type PaymentGateway interface {
	Authorize(ctx context.Context, req AuthorizeRequest) (*ChargeResult, error)
	Retrieve(ctx context.Context, chargeID string) (*ChargeResult, error)
	Capture(ctx context.Context, chargeID string) (*ChargeResult, error)
	Reverse(ctx context.Context, chargeID string) (*ChargeResult, error)
}

type AuthorizeRequest struct {
	AmountCents    int64
	Currency       string
	CardToken      string
	CustomerRef    string
	IdempotencyKey uuid.UUID
}

type ChargeResult struct {
	ChargeID       string
	Authorized     bool
	Captured       bool
	Reversed       bool
	Declined       bool
	FailureCode    *string
	FailureMessage *string
}

type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) (providerMessageID string, err error)
}

type SMSSender interface {
	Send(ctx context.Context, toE164, body string) (providerMessageID string, err error)
}

// EventPublisher fans notification outcomes out to the rest of the platform
// (dashboards, audit); best-effort, never part of the send transaction.
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// WorkerMatcher is the read-side candidate search the assignment engine
// consumes; implemented by queries.AvailabilityQueries so display and
// assignment share one conflict algorithm.
type WorkerMatcher interface {
	FindCandidates(ctx context.Context, zip string, date time.Time, startMin, durationMin int) ([]queries.Candidate, error)
}
