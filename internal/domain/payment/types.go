package payment

import (
	"time"

	"github.com/google/uuid"
)

// AuthorizationStatus mirrors the processor-side hold lifecycle.
type AuthorizationStatus string

const (
	StatusRequiresCapture AuthorizationStatus = "requires_capture"
	StatusSucceeded       AuthorizationStatus = "succeeded"
	StatusFailed          AuthorizationStatus = "failed"
	StatusCanceled        AuthorizationStatus = "canceled"
)

func (s AuthorizationStatus) String() string {
	return string(s)
}

// Capturable reports whether the hold can still be converted into a charge.
func (s AuthorizationStatus) Capturable() bool {
	return s == StatusRequiresCapture
}

// Authorization is the local mirror of a processor hold: a reference plus a
// status cache. The processor owns the real state; this row exists so the
// booking table can carry a uniqueness constraint against it.
type Authorization struct {
	ID               uuid.UUID
	ProviderChargeID string
	IdempotencyKey   uuid.UUID
	AmountCents      int64
	Currency         string
	Status           AuthorizationStatus
	FailureCode      *string
	FailureMessage   *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
