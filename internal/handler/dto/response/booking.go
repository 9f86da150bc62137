package response

import (
	"time"

	"mountworks/internal/usecase/commands"
	"mountworks/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceItemResponse struct {
	ServiceID      uuid.UUID `json:"serviceId"`
	Name           string    `json:"name"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	Quantity       int32     `json:"quantity"`
}

type BookingResponse struct {
	ID                 uuid.UUID             `json:"id"`
	UserID             *uuid.UUID            `json:"userId,omitempty"`
	GuestName          *string               `json:"guestName,omitempty"`
	GuestEmail         *string               `json:"guestEmail,omitempty"`
	ServiceItems       []ServiceItemResponse `json:"serviceItems"`
	ScheduledDate      string                `json:"scheduledDate"`
	StartMin           int                   `json:"startMin"`
	DurationMin        int                   `json:"durationMin"`
	TotalCents         int64                 `json:"totalCents"`
	Status             string                `json:"status"`
	PaymentStatus      string                `json:"paymentStatus"`
	AuthorizationID    uuid.UUID             `json:"authorizationId"`
	AssignedWorkerID   *uuid.UUID            `json:"assignedWorkerId,omitempty"`
	AssignedWorkerName *string               `json:"assignedWorkerName,omitempty"`
	AssignmentStatus   string                `json:"assignmentStatus"`
	Address            string                `json:"address"`
	Zip                string                `json:"zip"`
	CreatedAt          time.Time             `json:"createdAt"`
	UpdatedAt          time.Time             `json:"updatedAt"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	items := make([]ServiceItemResponse, len(rm.ServiceItems))
	for i, it := range rm.ServiceItems {
		items[i] = ServiceItemResponse{
			ServiceID:      it.ServiceID,
			Name:           it.Name,
			UnitPriceCents: it.UnitPriceCents,
			Quantity:       it.Quantity,
		}
	}

	return &BookingResponse{
		ID:                 rm.ID,
		UserID:             rm.UserID,
		GuestName:          rm.GuestName,
		GuestEmail:         rm.GuestEmail,
		ServiceItems:       items,
		ScheduledDate:      rm.ScheduledDate.Format("2006-01-02"),
		StartMin:           rm.StartMin,
		DurationMin:        rm.DurationMin,
		TotalCents:         rm.TotalCents,
		Status:             rm.Status,
		PaymentStatus:      rm.PaymentStatus,
		AuthorizationID:    rm.AuthorizationID,
		AssignedWorkerID:   rm.AssignedWorkerID,
		AssignedWorkerName: rm.AssignedWorkerName,
		AssignmentStatus:   rm.AssignmentStatus,
		Address:            rm.Address,
		Zip:                rm.Zip,
		CreatedAt:          rm.CreatedAt,
		UpdatedAt:          rm.UpdatedAt,
	}
}

type AssignResponse struct {
	BookingID uuid.UUID  `json:"bookingId"`
	WorkerID  *uuid.UUID `json:"workerId,omitempty"`
	Status    string     `json:"status"`
}

func FromAssignResult(res *commands.AssignResult) *AssignResponse {
	return &AssignResponse{
		BookingID: res.BookingID,
		WorkerID:  res.WorkerID,
		Status:    res.Status,
	}
}

type NotifyResponse struct {
	BookingID   uuid.UUID `json:"bookingId"`
	Recipient   string    `json:"recipient"`
	MessageType string    `json:"messageType"`
	Channel     string    `json:"channel"`
	Sent        bool      `json:"sent"`
	Deduped     bool      `json:"deduped"`
}

func FromSendResult(res *commands.SendResult) *NotifyResponse {
	return &NotifyResponse{
		BookingID:   res.BookingID,
		Recipient:   res.Recipient,
		MessageType: res.MessageType,
		Channel:     res.Channel,
		Sent:        res.Sent,
		Deduped:     res.Deduped,
	}
}
