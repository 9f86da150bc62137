package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID                 uuid.UUID       `json:"id"`
	UserID             *uuid.UUID      `json:"user_id,omitempty"`
	GuestName          *string         `json:"guest_name,omitempty"`
	GuestEmail         *string         `json:"guest_email,omitempty"`
	ServiceItems       []ServiceItem   `json:"service_items"`
	ScheduledDate      time.Time       `json:"scheduled_date"`
	StartMin           int             `json:"start_min"`
	DurationMin        int             `json:"duration_min"`
	TotalCents         int64           `json:"total_cents"`
	Status             string          `json:"status"`
	PaymentStatus      string          `json:"payment_status"`
	AuthorizationID    uuid.UUID       `json:"authorization_id"`
	AssignedWorkerID   *uuid.UUID      `json:"assigned_worker_id,omitempty"`
	AssignedWorkerName *string         `json:"assigned_worker_name,omitempty"`
	PreferredWorkerID  *uuid.UUID      `json:"preferred_worker_id,omitempty"`
	AssignmentStatus   string          `json:"assignment_status"`
	Address            string          `json:"address"`
	Zip                string          `json:"zip"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

type ServiceItem struct {
	ServiceID      uuid.UUID `json:"service_id"`
	Name           string    `json:"name"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	Quantity       int32     `json:"quantity"`
}

type AuthorizationView struct {
	ID             uuid.UUID `json:"id"`
	AmountCents    int64     `json:"amount_cents"`
	Currency       string    `json:"currency"`
	Status         string    `json:"status"`
	FailureCode    *string   `json:"failure_code,omitempty"`
	FailureMessage *string   `json:"failure_message,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// Candidate is a worker able to serve a requested slot, in stable
// coverage-lookup order.
type Candidate struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"-"`
	Phone string    `json:"-"`
}

// SlotView is one free (date, start, duration) window and the workers open
// for it; this is the shape the booking UI renders.
type SlotView struct {
	Date        time.Time   `json:"date"`
	StartMin    int         `json:"start_min"`
	DurationMin int         `json:"duration_min"`
	WorkerIDs   []uuid.UUID `json:"worker_ids"`
}
