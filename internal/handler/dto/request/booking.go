package request

import (
	"strings"
	"time"

	"mountworks/internal/domain/booking"

	"github.com/google/uuid"
)

type AddressRequest struct {
	Address string `json:"address" binding:"required"`
	Zip     string `json:"zip" binding:"required"`
}

type CreateBookingRequest struct {
	AuthorizationID   uuid.UUID         `json:"authorization_id" binding:"required"`
	Items             []LineItemRequest `json:"items" binding:"required,min=1,dive"`
	Customer          CustomerRequest   `json:"customer" binding:"required"`
	Address           AddressRequest    `json:"address" binding:"required"`
	Date              string            `json:"date" binding:"required"`
	StartMin          int               `json:"start_min"`
	DurationMin       int               `json:"duration_min" binding:"required,min=1"`
	PreferredWorkerID *uuid.UUID        `json:"preferred_worker_id,omitempty"`
}

func (r CreateBookingRequest) ToItems() ([]booking.LineItem, error) {
	return toLineItems(r.Items)
}

func (r CreateBookingRequest) ToLocation() (booking.Location, error) {
	return booking.NewLocation(strings.TrimSpace(r.Address.Address), r.Address.Zip)
}

func (r CreateBookingRequest) ParseDate(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", strings.TrimSpace(r.Date), loc)
}

type AssignBookingRequest struct {
	PreferredWorkerID *uuid.UUID `json:"preferred_worker_id,omitempty"`
}

type NotifyBookingRequest struct {
	MessageType string `json:"message_type,omitempty"`
	Force       bool   `json:"force,omitempty"`
}

func (r NotifyBookingRequest) GetMessageType() string {
	t := strings.TrimSpace(r.MessageType)
	if t == "" {
		return "booking_confirmed"
	}
	return t
}
