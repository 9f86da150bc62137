//go:build unit || e2e

package builder

import (
	"time"

	"mountworks/internal/domain/payment"

	"github.com/google/uuid"
)

type AuthorizationBuilder struct {
	ID               uuid.UUID
	ProviderChargeID string
	IdempotencyKey   uuid.UUID
	AmountCents      int64
	Currency         string
	Status           payment.AuthorizationStatus
	FailureCode      *string
	FailureMessage   *string
	Now              time.Time
}

func NewAuthorizationBuilder() *AuthorizationBuilder {
	return &AuthorizationBuilder{
		ID:               uuid.New(),
		ProviderChargeID: "chrg_test_5g0g0g0g0g0g",
		IdempotencyKey:   uuid.New(),
		AmountCents:      12900,
		Currency:         "usd",
		Status:           payment.StatusRequiresCapture,
		Now:              time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (a *AuthorizationBuilder) With(mutate func(*AuthorizationBuilder)) *AuthorizationBuilder {
	mutate(a)
	return a
}

func (a *AuthorizationBuilder) Build() *payment.Authorization {
	return &payment.Authorization{
		ID:               a.ID,
		ProviderChargeID: a.ProviderChargeID,
		IdempotencyKey:   a.IdempotencyKey,
		AmountCents:      a.AmountCents,
		Currency:         a.Currency,
		Status:           a.Status,
		FailureCode:      a.FailureCode,
		FailureMessage:   a.FailureMessage,
		CreatedAt:        a.Now,
		UpdatedAt:        a.Now,
	}
}
