package booking

import (
	"time"

	"mountworks/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clk clock.Clock) *Factory {
	return &Factory{Clock: clk}
}

// NewBookingParams is the validated payload the booking UI must supply.
type NewBookingParams struct {
	Customer          Customer
	Items             []LineItem
	ScheduledDate     time.Time
	StartMin          int
	DurationMin       int
	AuthorizationID   uuid.UUID
	PreferredWorkerID *uuid.UUID
	Location          Location
}

// CreateBooking builds a confirmed, payment-authorized, unassigned booking.
// The total is computed from line items here and never recomputed; the
// authorization reference is mandatory because no booking row may exist
// before a successful hold.
func (f *Factory) CreateBooking(params NewBookingParams) (*Booking, error) {
	if params.AuthorizationID == uuid.Nil {
		return nil, ErrMissingAuthorization
	}
	if params.Customer.UserID() == nil && params.Customer.Guest() == nil {
		return nil, ErrCustomerRequired
	}
	if params.StartMin < 0 || params.DurationMin <= 0 {
		return nil, ErrInvalidSlot
	}

	total, err := TotalOf(params.Items)
	if err != nil {
		return nil, err
	}

	now := f.Clock.Now()
	return &Booking{
		id:                uuid.New(),
		customer:          params.Customer,
		items:             params.Items,
		scheduledDate:     params.ScheduledDate,
		startMin:          params.StartMin,
		durationMin:       params.DurationMin,
		total:             total,
		status:            StatusConfirmed,
		paymentStatus:     PaymentAuthorized,
		authorizationID:   params.AuthorizationID,
		preferredWorkerID: params.PreferredWorkerID,
		assignmentStatus:  AssignmentUnassigned,
		location:          params.Location,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}
