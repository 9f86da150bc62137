package response

import (
	"time"

	"mountworks/internal/domain/payment"

	"github.com/google/uuid"
)

type AuthorizationResponse struct {
	ID             uuid.UUID `json:"id"`
	AmountCents    int64     `json:"amountCents"`
	Currency       string    `json:"currency"`
	Status         string    `json:"status"`
	FailureCode    *string   `json:"failureCode,omitempty"`
	FailureMessage *string   `json:"failureMessage,omitempty"`
	Replayed       bool      `json:"replayed"`
	CreatedAt      time.Time `json:"createdAt"`
}

func FromAuthorization(auth *payment.Authorization, replayed bool) *AuthorizationResponse {
	return &AuthorizationResponse{
		ID:             auth.ID,
		AmountCents:    auth.AmountCents,
		Currency:       auth.Currency,
		Status:         auth.Status.String(),
		FailureCode:    auth.FailureCode,
		FailureMessage: auth.FailureMessage,
		Replayed:       replayed,
		CreatedAt:      auth.CreatedAt,
	}
}
