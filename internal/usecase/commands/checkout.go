package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"mountworks/internal/domain/booking"
	"mountworks/internal/domain/payment"
	"mountworks/internal/domain/schedule"
	reqdto "mountworks/internal/handler/dto/request"
	"mountworks/internal/infra"
	"mountworks/internal/infra/sqlc"
	"mountworks/internal/pkg/clock"
	"mountworks/internal/pkg/errs"
	"mountworks/internal/usecase/queries"
	"mountworks/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	minutesPerDay         = 24 * 60
	idempotencyKeyTTL     = 24 * time.Hour
	createBookingEndpoint = "POST /bookings"
)

type AuthorizeHoldResult struct {
	Authorization *payment.Authorization
	IsReplayed    bool
}

type CreateBookingResult struct {
	Booking    *queries.BookingView
	IsReplayed bool
}

type CheckoutCommands interface {
	AuthorizeHold(ctx context.Context, req reqdto.AuthorizeHoldRequest, idempotencyKey uuid.UUID) (*AuthorizeHoldResult, error)
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, idempotencyKey uuid.UUID) (*CreateBookingResult, error)
}

type checkoutUseCaseImpl struct {
	authRepo        AuthorizationRepository
	bookingRepo     BookingRepository
	idempotencyRepo IdempotencyRepository
	gateway         PaymentGateway
	bookingFactory  *booking.Factory
	bookingQueries  queries.BookingQueries
	runner          shared.TxRunner
	policy          schedule.Policy
	clock           clock.Clock
}

func NewCheckoutUseCase(
	authRepo AuthorizationRepository,
	bookingRepo BookingRepository,
	idempotencyRepo IdempotencyRepository,
	gateway PaymentGateway,
	bookingFactory *booking.Factory,
	bookingQueries queries.BookingQueries,
	runner shared.TxRunner,
	policy schedule.Policy,
	clock clock.Clock,
) CheckoutCommands {
	return &checkoutUseCaseImpl{
		authRepo:        authRepo,
		bookingRepo:     bookingRepo,
		idempotencyRepo: idempotencyRepo,
		gateway:         gateway,
		bookingFactory:  bookingFactory,
		bookingQueries:  bookingQueries,
		runner:          runner,
		policy:          policy,
		clock:           clock,
	}
}

// AuthorizeHold places an uncaptured charge for the cart total. The caller's
// idempotency key is both the local dedupe key and the processor-side one, so
// a retried request can never produce a second hold: a key already recorded
// replays the stored outcome, declines included.
func (c *checkoutUseCaseImpl) AuthorizeHold(
	ctx context.Context,
	req reqdto.AuthorizeHoldRequest,
	idempotencyKey uuid.UUID,
) (*AuthorizeHoldResult, error) {
	items, err := req.ToItems()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidBookingPayload)
	}
	total, err := booking.TotalOf(items)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidBookingPayload)
	}
	customer, err := req.Customer.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if existing, err := c.findExistingAuthorization(ctx, idempotencyKey); err != nil {
		return nil, err
	} else if existing != nil {
		if existing.AmountCents != total.Cents() {
			return nil, errs.ErrDuplicateBooking
		}
		return &AuthorizeHoldResult{Authorization: existing, IsReplayed: true}, nil
	}

	charge, err := c.gateway.Authorize(ctx, AuthorizeRequest{
		AmountCents:    total.Cents(),
		Currency:       req.GetCurrency(),
		CardToken:      req.CardToken,
		CustomerRef:    customerRef(customer),
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPaymentProviderFailed)
	}

	now := c.clock.Now()
	auth := &payment.Authorization{
		ID:               uuid.New(),
		ProviderChargeID: charge.ChargeID,
		IdempotencyKey:   idempotencyKey,
		AmountCents:      total.Cents(),
		Currency:         req.GetCurrency(),
		Status:           statusOfCharge(charge),
		FailureCode:      charge.FailureCode,
		FailureMessage:   charge.FailureMessage,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	var inserted bool
	err = c.runner.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var insertErr error
		inserted, insertErr = c.authRepo.TryInsert(ctx, db, auth)
		return insertErr
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !inserted {
		// Lost a race against a concurrent request with the same key.
		existing, err := c.findExistingAuthorization(ctx, idempotencyKey)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, errs.Mark(errs.New("authorization vanished after conflict"), errs.ErrIdempotencyCheckFailed)
		}
		return &AuthorizeHoldResult{Authorization: existing, IsReplayed: true}, nil
	}

	return &AuthorizeHoldResult{Authorization: auth, IsReplayed: false}, nil
}

// CreateBooking turns a capturable hold into a confirmed booking. No booking
// row is ever written without a verified hold, and a hold left orphaned by a
// failed write is reversed before the error surfaces.
func (c *checkoutUseCaseImpl) CreateBooking(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	idempotencyKey uuid.UUID,
) (*CreateBookingResult, error) {
	requestHash := c.calculateRequestHash(req)
	expiresAt := c.clock.Now().Add(idempotencyKeyTTL)

	replayed, err := c.handleIdempotency(ctx, idempotencyKey, requestHash, expiresAt)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return &CreateBookingResult{Booking: replayed, IsReplayed: true}, nil
	}

	bookingEntity, auth, err := c.buildBooking(ctx, req)
	if err != nil {
		return nil, err
	}

	return c.executeBookingTransaction(ctx, bookingEntity, auth, idempotencyKey)
}

func (c *checkoutUseCaseImpl) handleIdempotency(
	ctx context.Context,
	idempotencyKey uuid.UUID,
	requestHash string,
	expiresAt time.Time,
) (*queries.BookingView, error) {
	var inserted bool
	var existing *shared.IdempotencyRecord
	err := c.runner.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var insertErr error
		inserted, insertErr = c.idempotencyRepo.TryInsert(ctx, db, idempotencyKey, createBookingEndpoint, requestHash, expiresAt)
		if insertErr != nil || inserted {
			return insertErr
		}
		var getErr error
		existing, getErr = c.idempotencyRepo.Get(ctx, db, idempotencyKey)
		return getErr
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	if inserted {
		return nil, nil
	}

	switch existing.Status {
	case "completed":
		if existing.ResultBookingID != nil {
			return c.bookingQueries.GetByID(ctx, *existing.ResultBookingID)
		}
		return nil, errs.New("completed request missing result booking ID")

	case "processing":
		if existing.RequestHash != requestHash {
			return nil, errs.ErrDuplicateBooking
		}
		return nil, errs.ErrIdempotencyInProgress

	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (c *checkoutUseCaseImpl) buildBooking(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
) (*booking.Booking, *payment.Authorization, error) {
	items, err := req.ToItems()
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrInvalidBookingPayload)
	}
	customer, err := req.Customer.ToDomain()
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	location, err := req.ToLocation()
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrInvalidBookingPayload)
	}
	date, err := req.ParseDate(c.policy.Location)
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrInvalidTimeSlot)
	}
	date = c.policy.DayOf(date)

	if err := c.validateSlotTiming(date, req.StartMin, req.DurationMin); err != nil {
		return nil, nil, err
	}

	total, err := booking.TotalOf(items)
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrInvalidBookingPayload)
	}
	auth, err := c.verifyHold(ctx, req.AuthorizationID, total.Cents())
	if err != nil {
		return nil, nil, err
	}

	bookingEntity, err := c.bookingFactory.CreateBooking(booking.NewBookingParams{
		Customer:          customer,
		Items:             items,
		ScheduledDate:     date,
		StartMin:          req.StartMin,
		DurationMin:       req.DurationMin,
		AuthorizationID:   auth.ID,
		PreferredWorkerID: req.PreferredWorkerID,
		Location:          location,
	})
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return bookingEntity, auth, nil
}

func (c *checkoutUseCaseImpl) validateSlotTiming(date time.Time, startMin, durationMin int) error {
	if startMin < 0 || durationMin <= 0 || startMin+durationMin > minutesPerDay {
		return errs.ErrInvalidTimeSlot
	}

	now := c.clock.Now()
	today := c.policy.DayOf(now)
	if date.Before(today) {
		return errs.ErrInvalidTimeSlot
	}
	if date.Equal(today) {
		slot := schedule.Slot{Date: date, StartMin: startMin, DurationMin: durationMin}
		earliest := now.In(c.policy.Location).Add(time.Duration(c.policy.LeadTimeMin) * time.Minute)
		if slot.Start().Before(earliest) {
			return errs.ErrInsufficientLeadTime
		}
	}
	return nil
}

// verifyHold re-checks the hold against the processor, not just the local
// mirror. A hold the processor has expired or reversed since authorize time
// must not back a new booking.
func (c *checkoutUseCaseImpl) verifyHold(
	ctx context.Context,
	authorizationID uuid.UUID,
	expectedAmountCents int64,
) (*payment.Authorization, error) {
	var auth *payment.Authorization
	err := c.runner.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var findErr error
		auth, findErr = c.authRepo.GetByID(ctx, db, authorizationID)
		return findErr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrAuthorizationNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !auth.Status.Capturable() {
		return nil, errs.ErrAuthorizationNotUsable
	}
	if auth.AmountCents != expectedAmountCents {
		return nil, errs.ErrAuthorizationNotUsable
	}

	charge, err := c.gateway.Retrieve(ctx, auth.ProviderChargeID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPaymentProviderFailed)
	}
	if charge.Reversed || charge.Captured || !charge.Authorized {
		c.syncAuthorizationStatus(ctx, auth, charge)
		return nil, errs.ErrAuthorizationNotUsable
	}
	return auth, nil
}

func (c *checkoutUseCaseImpl) executeBookingTransaction(
	ctx context.Context,
	bookingEntity *booking.Booking,
	auth *payment.Authorization,
	idempotencyKey uuid.UUID,
) (*CreateBookingResult, error) {
	var bookingID uuid.UUID
	err := c.runner.Within(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var createErr error
		bookingID, createErr = c.bookingRepo.Create(ctx, db, bookingEntity)
		if createErr != nil {
			return createErr
		}
		return c.idempotencyRepo.UpdateStatusCompleted(ctx, db, idempotencyKey, bookingID)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			// Another request already consumed this hold; hand back its booking.
			return c.replayByAuthorization(ctx, auth.ID)
		}
		c.releaseHold(ctx, auth)
		return nil, errs.Mark(err, errs.ErrBookingCreationFailed)
	}

	view, err := c.bookingQueries.GetByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &CreateBookingResult{Booking: view, IsReplayed: false}, nil
}

func (c *checkoutUseCaseImpl) replayByAuthorization(ctx context.Context, authorizationID uuid.UUID) (*CreateBookingResult, error) {
	var bookingID uuid.UUID
	err := c.runner.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var findErr error
		bookingID, findErr = c.bookingRepo.FindIDByAuthorization(ctx, db, authorizationID)
		return findErr
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDuplicateBooking)
	}
	view, err := c.bookingQueries.GetByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &CreateBookingResult{Booking: view, IsReplayed: true}, nil
}

// releaseHold is the compensation path. Best effort: the booking failure
// surfaces either way, and an unreleased hold expires processor-side.
func (c *checkoutUseCaseImpl) releaseHold(ctx context.Context, auth *payment.Authorization) {
	charge, err := c.gateway.Reverse(ctx, auth.ProviderChargeID)
	if err != nil {
		slog.Warn("failed to release payment hold",
			"authorization_id", auth.ID,
			"charge_id", auth.ProviderChargeID,
			"error", err)
		return
	}
	c.syncAuthorizationStatus(ctx, auth, charge)
}

// syncAuthorizationStatus folds a fresh processor snapshot into the local
// mirror. Settled money is never downgraded: once captured locally, reversed
// or failed snapshots are ignored and left for reconciliation.
func (c *checkoutUseCaseImpl) syncAuthorizationStatus(ctx context.Context, auth *payment.Authorization, charge *ChargeResult) {
	next := statusOfCharge(charge)
	if auth.Status == payment.StatusSucceeded && next != payment.StatusSucceeded {
		slog.Warn("refusing to downgrade captured authorization",
			"authorization_id", auth.ID,
			"reported_status", next)
		return
	}
	err := c.runner.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		return c.authRepo.UpdateStatus(ctx, db, auth.ID, next)
	})
	if err != nil {
		slog.Warn("failed to sync authorization status",
			"authorization_id", auth.ID,
			"status", next,
			"error", err)
		return
	}
	auth.Status = next
}

func (c *checkoutUseCaseImpl) findExistingAuthorization(ctx context.Context, idempotencyKey uuid.UUID) (*payment.Authorization, error) {
	var auth *payment.Authorization
	err := c.runner.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var findErr error
		auth, findErr = c.authRepo.GetByIdempotencyKey(ctx, db, idempotencyKey)
		return findErr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return auth, nil
}

func (c *checkoutUseCaseImpl) calculateRequestHash(req reqdto.CreateBookingRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func statusOfCharge(charge *ChargeResult) payment.AuthorizationStatus {
	switch {
	case charge.Reversed:
		return payment.StatusCanceled
	case charge.Captured:
		return payment.StatusSucceeded
	case charge.Authorized:
		return payment.StatusRequiresCapture
	default:
		return payment.StatusFailed
	}
}

func customerRef(c booking.Customer) string {
	if id := c.UserID(); id != nil {
		return id.String()
	}
	if g := c.Guest(); g != nil {
		return g.Email
	}
	return ""
}
