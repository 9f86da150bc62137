package converter

import (
	"encoding/json"
	"fmt"

	"mountworks/internal/domain/booking"
	"mountworks/internal/infra/sqlc"
	"mountworks/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// ServiceItemRecord is the JSONB shape of one line item inside
// bookings.service_items.
type ServiceItemRecord struct {
	ServiceID      uuid.UUID `json:"service_id"`
	Name           string    `json:"name"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	Quantity       int32     `json:"quantity"`
}

func BookingToInfra(b *booking.Booking) (sqlc.CreateBookingParams, error) {
	items, err := ServiceItemsToJSON(b.Items())
	if err != nil {
		return sqlc.CreateBookingParams{}, fmt.Errorf("marshal service items: %w", err)
	}

	params := sqlc.CreateBookingParams{
		ID:                b.ID(),
		ServiceItems:      items,
		ScheduledDate:     pgconv.DateToPgtype(b.ScheduledDate()),
		StartMin:          int32(b.StartMin()),
		DurationMin:       int32(b.DurationMin()),
		TotalCents:        b.Total().Cents(),
		Status:            b.Status().String(),
		PaymentStatus:     b.PaymentStatus().String(),
		AuthorizationID:   b.AuthorizationID(),
		PreferredWorkerID: pgconv.UUIDPtrToPgtype(b.PreferredWorkerID()),
		AssignmentStatus:  b.AssignmentStatus().String(),
		Address:           b.Location().Address(),
		Zip:               b.Location().Zip(),
	}

	customer := b.Customer()
	params.UserID = pgconv.UUIDPtrToPgtype(customer.UserID())
	if guest := customer.Guest(); guest != nil {
		params.GuestName = pgtype.Text{String: guest.Name, Valid: true}
		params.GuestEmail = pgtype.Text{String: guest.Email, Valid: true}
		if guest.Phone != "" {
			params.GuestPhone = pgtype.Text{String: guest.Phone, Valid: true}
		}
	}

	return params, nil
}

func ServiceItemsToJSON(items []booking.LineItem) ([]byte, error) {
	records := make([]ServiceItemRecord, 0, len(items))
	for _, li := range items {
		records = append(records, ServiceItemRecord{
			ServiceID:      li.ServiceID,
			Name:           li.Name,
			UnitPriceCents: li.UnitPriceCents,
			Quantity:       li.Quantity,
		})
	}
	return json.Marshal(records)
}

func ServiceItemsFromJSON(data []byte) ([]ServiceItemRecord, error) {
	var records []ServiceItemRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("unmarshal service items: %w", err)
	}
	return records, nil
}
