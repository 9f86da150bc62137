//go:build unit || e2e

package builder

import (
	"time"

	dombooking "mountworks/internal/domain/booking"
	reqdto "mountworks/internal/handler/dto/request"
	"mountworks/internal/pkg/clock"
	"mountworks/internal/usecase/queries"
	"mountworks/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID                uuid.UUID
	AuthorizationID   uuid.UUID
	GuestName         string
	GuestEmail        string
	GuestPhone        string
	ServiceID         uuid.UUID
	ServiceName       string
	UnitPriceCents    int64
	Quantity          int32
	Address           string
	Zip               string
	Date              string
	StartMin          int
	DurationMin       int
	Status            string
	PaymentStatus     string
	AssignmentStatus  string
	AssignedWorkerID  *uuid.UUID
	PreferredWorkerID *uuid.UUID
	Now               time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:               uuid.New(),
		AuthorizationID:  uuid.New(),
		GuestName:        "Alex Carter",
		GuestEmail:       "alex@example.com",
		GuestPhone:       "+14155552671",
		ServiceID:        uuid.New(),
		ServiceName:      "TV mounting up to 65 inch",
		UnitPriceCents:   12900,
		Quantity:         1,
		Address:          "400 Pine St, San Francisco, CA",
		Zip:              "94104",
		Date:             "2026-09-14",
		StartMin:         9 * 60,
		DurationMin:      120,
		Status:           "confirmed",
		PaymentStatus:    "authorized",
		AssignmentStatus: "unassigned",
		Now:              time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) scheduledDate() time.Time {
	d, _ := time.Parse("2006-01-02", b.Date)
	return d
}

func (b *BookingBuilder) totalCents() int64 {
	return b.UnitPriceCents * int64(b.Quantity)
}

// Build methods

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	factory := dombooking.NewFactory(clock.NewMockClock(b.Now))
	customer, err := dombooking.NewGuestCustomer(dombooking.GuestContact{
		Name:  b.GuestName,
		Email: b.GuestEmail,
		Phone: b.GuestPhone,
	})
	if err != nil {
		return nil, err
	}
	location, err := dombooking.NewLocation(b.Address, b.Zip)
	if err != nil {
		return nil, err
	}
	return factory.CreateBooking(dombooking.NewBookingParams{
		Customer: customer,
		Items: []dombooking.LineItem{{
			ServiceID:      b.ServiceID,
			Name:           b.ServiceName,
			UnitPriceCents: b.UnitPriceCents,
			Quantity:       b.Quantity,
		}},
		ScheduledDate:     b.scheduledDate(),
		StartMin:          b.StartMin,
		DurationMin:       b.DurationMin,
		AuthorizationID:   b.AuthorizationID,
		PreferredWorkerID: b.PreferredWorkerID,
		Location:          location,
	})
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		AuthorizationID: b.AuthorizationID,
		Items: []reqdto.LineItemRequest{{
			ServiceID:      b.ServiceID,
			Name:           b.ServiceName,
			UnitPriceCents: b.UnitPriceCents,
			Quantity:       b.Quantity,
		}},
		Customer: reqdto.CustomerRequest{
			Name:  &b.GuestName,
			Email: &b.GuestEmail,
			Phone: &b.GuestPhone,
		},
		Address: reqdto.AddressRequest{
			Address: b.Address,
			Zip:     b.Zip,
		},
		Date:              b.Date,
		StartMin:          b.StartMin,
		DurationMin:       b.DurationMin,
		PreferredWorkerID: b.PreferredWorkerID,
	}
}

func (b *BookingBuilder) BuildAuthorizeRequestDTO() reqdto.AuthorizeHoldRequest {
	return reqdto.AuthorizeHoldRequest{
		Items: []reqdto.LineItemRequest{{
			ServiceID:      b.ServiceID,
			Name:           b.ServiceName,
			UnitPriceCents: b.UnitPriceCents,
			Quantity:       b.Quantity,
		}},
		Currency:  "usd",
		CardToken: "tokn_test_visa",
		Customer: reqdto.CustomerRequest{
			Name:  &b.GuestName,
			Email: &b.GuestEmail,
			Phone: &b.GuestPhone,
		},
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:         b.ID,
		GuestName:  &b.GuestName,
		GuestEmail: &b.GuestEmail,
		ServiceItems: []queries.ServiceItem{{
			ServiceID:      b.ServiceID,
			Name:           b.ServiceName,
			UnitPriceCents: b.UnitPriceCents,
			Quantity:       b.Quantity,
		}},
		ScheduledDate:     b.scheduledDate(),
		StartMin:          b.StartMin,
		DurationMin:       b.DurationMin,
		TotalCents:        b.totalCents(),
		Status:            b.Status,
		PaymentStatus:     b.PaymentStatus,
		AuthorizationID:   b.AuthorizationID,
		AssignedWorkerID:  b.AssignedWorkerID,
		PreferredWorkerID: b.PreferredWorkerID,
		AssignmentStatus:  b.AssignmentStatus,
		Address:           b.Address,
		Zip:               b.Zip,
		CreatedAt:         b.Now,
		UpdatedAt:         b.Now,
	}
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:                b.ID,
		GuestName:         &b.GuestName,
		GuestEmail:        &b.GuestEmail,
		GuestPhone:        &b.GuestPhone,
		ScheduledDate:     b.scheduledDate(),
		StartMin:          b.StartMin,
		DurationMin:       b.DurationMin,
		TotalCents:        b.totalCents(),
		Status:            b.Status,
		PaymentStatus:     b.PaymentStatus,
		AuthorizationID:   b.AuthorizationID,
		AssignedWorkerID:  b.AssignedWorkerID,
		PreferredWorkerID: b.PreferredWorkerID,
		AssignmentStatus:  b.AssignmentStatus,
		Address:           b.Address,
		Zip:               b.Zip,
	}
}
