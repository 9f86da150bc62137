package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus        = errors.New("invalid booking status")
	ErrInvalidSlot          = errors.New("invalid scheduled slot")
	ErrPaymentNotSettled    = errors.New("cannot assign worker while payment is pending")
	ErrAlreadyAssigned      = errors.New("booking already has an assigned worker")
	ErrMissingAuthorization = errors.New("booking requires a payment authorization reference")
)

type Booking struct {
	id                uuid.UUID
	customer          Customer
	items             []LineItem
	scheduledDate     time.Time // midnight, service timezone
	startMin          int
	durationMin       int
	total             Money
	status            Status
	paymentStatus     PaymentStatus
	authorizationID   uuid.UUID
	assignedWorkerID  *uuid.UUID
	preferredWorkerID *uuid.UUID
	assignmentStatus  AssignmentStatus
	location          Location
	createdAt         time.Time
	updatedAt         time.Time
}

func ReconstructBooking(
	id uuid.UUID,
	customer Customer,
	items []LineItem,
	scheduledDate time.Time,
	startMin, durationMin int,
	total Money,
	status Status,
	paymentStatus PaymentStatus,
	authorizationID uuid.UUID,
	assignedWorkerID, preferredWorkerID *uuid.UUID,
	assignmentStatus AssignmentStatus,
	location Location,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:                id,
		customer:          customer,
		items:             items,
		scheduledDate:     scheduledDate,
		startMin:          startMin,
		durationMin:       durationMin,
		total:             total,
		status:            status,
		paymentStatus:     paymentStatus,
		authorizationID:   authorizationID,
		assignedWorkerID:  assignedWorkerID,
		preferredWorkerID: preferredWorkerID,
		assignmentStatus:  assignmentStatus,
		location:          location,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID                      { return b.id }
func (b *Booking) Customer() Customer                 { return b.customer }
func (b *Booking) Items() []LineItem                  { return b.items }
func (b *Booking) ScheduledDate() time.Time           { return b.scheduledDate }
func (b *Booking) StartMin() int                      { return b.startMin }
func (b *Booking) DurationMin() int                   { return b.durationMin }
func (b *Booking) Total() Money                       { return b.total }
func (b *Booking) Status() Status                     { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus       { return b.paymentStatus }
func (b *Booking) AuthorizationID() uuid.UUID         { return b.authorizationID }
func (b *Booking) AssignedWorkerID() *uuid.UUID       { return b.assignedWorkerID }
func (b *Booking) PreferredWorkerID() *uuid.UUID      { return b.preferredWorkerID }
func (b *Booking) AssignmentStatus() AssignmentStatus { return b.assignmentStatus }
func (b *Booking) Location() Location                 { return b.location }
func (b *Booking) CreatedAt() time.Time               { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time               { return b.updatedAt }

// AssignWorker enforces the core invariant: a booking whose payment is still
// pending never gets a worker.
func (b *Booking) AssignWorker(workerID uuid.UUID) error {
	if b.paymentStatus == PaymentPending {
		return ErrPaymentNotSettled
	}
	if b.assignedWorkerID != nil {
		return ErrAlreadyAssigned
	}
	id := workerID
	b.assignedWorkerID = &id
	b.assignmentStatus = AssignmentAssigned
	return nil
}
