package booking

type Status string

const (
	StatusPending           Status = "pending"
	StatusConfirmed         Status = "confirmed"
	StatusPaymentAuthorized Status = "payment_authorized"
	StatusInProgress        Status = "in_progress"
	StatusCompleted         Status = "completed"
	StatusCancelled         Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPaymentAuthorized,
		StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive reports whether the booking still claims worker capacity.
func (s Status) IsActive() bool {
	return s != StatusCancelled && s != StatusCompleted
}

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentAuthorized PaymentStatus = "authorized"
	PaymentCaptured   PaymentStatus = "captured"
	PaymentFailed     PaymentStatus = "failed"
	PaymentRefunded   PaymentStatus = "refunded"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentAuthorized, PaymentCaptured, PaymentFailed, PaymentRefunded:
		return true
	default:
		return false
	}
}

// MoneyHeld reports whether funds are reserved or taken. A booking in this
// state is never silently downgraded; failures route to manual intervention.
func (s PaymentStatus) MoneyHeld() bool {
	return s == PaymentAuthorized || s == PaymentCaptured
}

type AssignmentStatus string

const (
	AssignmentUnassigned AssignmentStatus = "unassigned"
	AssignmentAssigning  AssignmentStatus = "assigning"
	AssignmentAssigned   AssignmentStatus = "assigned"
	AssignmentFailed     AssignmentStatus = "assignment_failed"
)

func (s AssignmentStatus) String() string {
	return string(s)
}
