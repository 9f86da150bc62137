package request

import (
	"strings"

	"mountworks/internal/domain/booking"

	"github.com/google/uuid"
)

type LineItemRequest struct {
	ServiceID      uuid.UUID `json:"service_id" binding:"required"`
	Name           string    `json:"name" binding:"required"`
	UnitPriceCents int64     `json:"unit_price_cents" binding:"required"`
	Quantity       int32     `json:"quantity" binding:"required,min=1"`
}

type CustomerRequest struct {
	UserID *uuid.UUID `json:"user_id,omitempty"`
	Name   *string    `json:"name,omitempty"`
	Email  *string    `json:"email,omitempty"`
	Phone  *string    `json:"phone,omitempty"`
}

type AuthorizeHoldRequest struct {
	Items     []LineItemRequest `json:"items" binding:"required,min=1,dive"`
	Currency  string            `json:"currency,omitempty"`
	CardToken string            `json:"card_token" binding:"required"`
	Customer  CustomerRequest   `json:"customer" binding:"required"`
}

func (r AuthorizeHoldRequest) GetCurrency() string {
	c := strings.ToLower(strings.TrimSpace(r.Currency))
	if c == "" {
		return "usd"
	}
	return c
}

func (r AuthorizeHoldRequest) ToItems() ([]booking.LineItem, error) {
	return toLineItems(r.Items)
}

func (r CustomerRequest) ToDomain() (booking.Customer, error) {
	if r.UserID != nil {
		return booking.NewRegisteredCustomer(*r.UserID)
	}
	return booking.NewGuestCustomer(booking.GuestContact{
		Name:  deref(r.Name),
		Email: deref(r.Email),
		Phone: deref(r.Phone),
	})
}

func toLineItems(items []LineItemRequest) ([]booking.LineItem, error) {
	out := make([]booking.LineItem, 0, len(items))
	for _, it := range items {
		item := booking.LineItem{
			ServiceID:      it.ServiceID,
			Name:           strings.TrimSpace(it.Name),
			UnitPriceCents: it.UnitPriceCents,
			Quantity:       it.Quantity,
		}
		if err := item.Validate(); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
