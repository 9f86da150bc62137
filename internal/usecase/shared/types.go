package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type BookingSnapshot struct {
	ID                uuid.UUID
	UserID            *uuid.UUID
	GuestName         *string
	GuestEmail        *string
	GuestPhone        *string
	ScheduledDate     time.Time
	StartMin          int
	DurationMin       int
	TotalCents        int64
	Status            string
	PaymentStatus     string
	AuthorizationID   uuid.UUID
	AssignedWorkerID  *uuid.UUID
	PreferredWorkerID *uuid.UUID
	AssignmentStatus  string
	Address           string
	Zip               string
}

// CustomerEmail resolves the notification address for either customer shape.
func (s *BookingSnapshot) CustomerEmail() string {
	if s.GuestEmail != nil {
		return *s.GuestEmail
	}
	return ""
}

func (s *BookingSnapshot) CustomerPhone() string {
	if s.GuestPhone != nil {
		return *s.GuestPhone
	}
	return ""
}

type WorkerRef struct {
	ID    uuid.UUID
	Name  string
	Email string
	Phone string
}

type IdempotencyRecord struct {
	Key             uuid.UUID
	Endpoint        string
	Status          string
	RequestHash     string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}

type SendRecord struct {
	ID                uuid.UUID
	BookingID         uuid.UUID
	Recipient         string
	MessageType       string
	Channel           string
	Status            string
	ProviderMessageID *string
	CreatedAt         time.Time
}
