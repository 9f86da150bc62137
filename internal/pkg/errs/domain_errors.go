package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Booking errors
	ErrBookingNotFound        = errors.New("booking not found")
	ErrBookingCreationFailed  = errors.New("booking creation failed")
	ErrDuplicateBooking       = errors.New("duplicate booking request")
	ErrInvalidBookingPayload  = errors.New("invalid booking payload")
	ErrInvalidTimeSlot        = errors.New("invalid time slot")
	ErrInsufficientLeadTime   = errors.New("insufficient lead time")

	// Payment errors
	ErrPaymentDeclined         = errors.New("payment declined")
	ErrAuthorizationNotFound   = errors.New("authorization not found")
	ErrAuthorizationNotUsable  = errors.New("authorization not in a capturable state")
	ErrPaymentProviderFailed   = errors.New("payment provider request failed")

	// Assignment errors
	ErrAssignmentFailed     = errors.New("worker assignment failed")
	ErrAssignmentInProgress = errors.New("assignment already in progress")
	ErrNoWorkersAvailable   = errors.New("no workers available for slot")

	// Notification errors
	ErrInvalidRecipient    = errors.New("invalid notification recipient")
	ErrNotificationFailed  = errors.New("notification send failed")

	// Idempotency errors
	ErrIdempotencyKeyRequired = errors.New("idempotency key required")
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")
	ErrIdempotencyCheckFailed = errors.New("idempotency check failed")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
