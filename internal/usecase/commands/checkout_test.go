//go:build unit

package commands_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"testing"
	"time"

	"mountworks/internal/domain/booking"
	"mountworks/internal/domain/payment"
	"mountworks/internal/domain/schedule"
	reqdto "mountworks/internal/handler/dto/request"
	"mountworks/internal/infra"
	"mountworks/internal/pkg/clock"
	"mountworks/internal/pkg/errs"
	"mountworks/internal/usecase/commands"
	"mountworks/internal/usecase/shared"
	"mountworks/tests/common/builder"
	"mountworks/tests/common/dbtest"
	commandsmock "mountworks/tests/mock/commands"
	queriesmock "mountworks/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

type checkoutMocks struct {
	authRepo        *commandsmock.MockAuthorizationRepository
	bookingRepo     *commandsmock.MockBookingRepository
	idempotencyRepo *commandsmock.MockIdempotencyRepository
	gateway         *commandsmock.MockPaymentGateway
	bookingQueries  *queriesmock.MockBookingQueries
	runner          *dbtest.ImmediateTxRunner
}

func newCheckoutUseCase(t *testing.T) (commands.CheckoutCommands, checkoutMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	loc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	m := checkoutMocks{
		authRepo:        commandsmock.NewMockAuthorizationRepository(ctrl),
		bookingRepo:     commandsmock.NewMockBookingRepository(ctrl),
		idempotencyRepo: commandsmock.NewMockIdempotencyRepository(ctrl),
		gateway:         commandsmock.NewMockPaymentGateway(ctrl),
		bookingQueries:  queriesmock.NewMockBookingQueries(ctrl),
		runner:          dbtest.NewImmediateTxRunner(),
	}

	mockClock := clock.NewMockClock(testNow)
	uc := commands.NewCheckoutUseCase(
		m.authRepo,
		m.bookingRepo,
		m.idempotencyRepo,
		m.gateway,
		booking.NewFactory(mockClock),
		m.bookingQueries,
		m.runner,
		schedule.Policy{Location: loc, GranularityMin: 60, LeadTimeMin: 120, HorizonDays: 30},
		mockClock,
	)
	return uc, m
}

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

func requestHashOf(t *testing.T, req reqdto.CreateBookingRequest) string {
	t.Helper()
	data, err := json.Marshal(req)
	require.NoError(t, err)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func TestCheckoutUseCase_AuthorizeHold(t *testing.T) {
	t.Run("places a new hold and records it", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		b := builder.NewBookingBuilder()
		req := b.BuildAuthorizeRequestDTO()
		key := uuid.New()

		m.authRepo.EXPECT().
			GetByIdempotencyKey(gomock.Any(), m.runner.DB, key).
			Return(nil, notFoundErr("authorization not found"))
		m.gateway.EXPECT().
			Authorize(gomock.Any(), commands.AuthorizeRequest{
				AmountCents:    12900,
				Currency:       "usd",
				CardToken:      "tokn_test_visa",
				CustomerRef:    b.GuestEmail,
				IdempotencyKey: key,
			}).
			Return(&commands.ChargeResult{ChargeID: "chrg_new", Authorized: true}, nil)
		m.authRepo.EXPECT().
			TryInsert(gomock.Any(), m.runner.DB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, auth *payment.Authorization) (bool, error) {
				assert.Equal(t, "chrg_new", auth.ProviderChargeID)
				assert.Equal(t, key, auth.IdempotencyKey)
				assert.Equal(t, int64(12900), auth.AmountCents)
				assert.Equal(t, payment.StatusRequiresCapture, auth.Status)
				return true, nil
			})

		result, err := uc.AuthorizeHold(context.Background(), req, key)

		require.NoError(t, err)
		assert.False(t, result.IsReplayed)
		assert.Equal(t, "chrg_new", result.Authorization.ProviderChargeID)
		assert.True(t, result.Authorization.Status.Capturable())
	})

	t.Run("replays an existing hold for the same key", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		b := builder.NewBookingBuilder()
		req := b.BuildAuthorizeRequestDTO()
		existing := builder.NewAuthorizationBuilder().Build()

		m.authRepo.EXPECT().
			GetByIdempotencyKey(gomock.Any(), m.runner.DB, existing.IdempotencyKey).
			Return(existing, nil)

		result, err := uc.AuthorizeHold(context.Background(), req, existing.IdempotencyKey)

		require.NoError(t, err)
		assert.True(t, result.IsReplayed)
		assert.Equal(t, existing.ID, result.Authorization.ID)
	})

	t.Run("rejects key reuse with a different amount", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		b := builder.NewBookingBuilder()
		req := b.BuildAuthorizeRequestDTO()
		existing := builder.NewAuthorizationBuilder().
			With(func(a *builder.AuthorizationBuilder) { a.AmountCents = 9900 }).
			Build()

		m.authRepo.EXPECT().
			GetByIdempotencyKey(gomock.Any(), m.runner.DB, existing.IdempotencyKey).
			Return(existing, nil)

		result, err := uc.AuthorizeHold(context.Background(), req, existing.IdempotencyKey)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrDuplicateBooking)
	})

	t.Run("records a declined charge without error", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		b := builder.NewBookingBuilder()
		req := b.BuildAuthorizeRequestDTO()
		key := uuid.New()
		failureCode := "insufficient_fund"

		m.authRepo.EXPECT().
			GetByIdempotencyKey(gomock.Any(), m.runner.DB, key).
			Return(nil, notFoundErr("authorization not found"))
		m.gateway.EXPECT().
			Authorize(gomock.Any(), gomock.Any()).
			Return(&commands.ChargeResult{ChargeID: "chrg_declined", Declined: true, FailureCode: &failureCode}, nil)
		m.authRepo.EXPECT().
			TryInsert(gomock.Any(), m.runner.DB, gomock.Any()).
			Return(true, nil)

		result, err := uc.AuthorizeHold(context.Background(), req, key)

		require.NoError(t, err)
		assert.False(t, result.IsReplayed)
		assert.Equal(t, payment.StatusFailed, result.Authorization.Status)
		assert.Equal(t, &failureCode, result.Authorization.FailureCode)
	})

	t.Run("maps gateway failure to provider error", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		b := builder.NewBookingBuilder()
		req := b.BuildAuthorizeRequestDTO()
		key := uuid.New()

		m.authRepo.EXPECT().
			GetByIdempotencyKey(gomock.Any(), m.runner.DB, key).
			Return(nil, notFoundErr("authorization not found"))
		m.gateway.EXPECT().
			Authorize(gomock.Any(), gomock.Any()).
			Return(nil, errs.New("connection reset"))

		result, err := uc.AuthorizeHold(context.Background(), req, key)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrPaymentProviderFailed)
	})

	t.Run("replays the winner after losing an insert race", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		b := builder.NewBookingBuilder()
		req := b.BuildAuthorizeRequestDTO()
		key := uuid.New()
		winner := builder.NewAuthorizationBuilder().
			With(func(a *builder.AuthorizationBuilder) { a.IdempotencyKey = key }).
			Build()

		gomock.InOrder(
			m.authRepo.EXPECT().
				GetByIdempotencyKey(gomock.Any(), m.runner.DB, key).
				Return(nil, notFoundErr("authorization not found")),
			m.gateway.EXPECT().
				Authorize(gomock.Any(), gomock.Any()).
				Return(&commands.ChargeResult{ChargeID: "chrg_race", Authorized: true}, nil),
			m.authRepo.EXPECT().
				TryInsert(gomock.Any(), m.runner.DB, gomock.Any()).
				Return(false, nil),
			m.authRepo.EXPECT().
				GetByIdempotencyKey(gomock.Any(), m.runner.DB, key).
				Return(winner, nil),
		)

		result, err := uc.AuthorizeHold(context.Background(), req, key)

		require.NoError(t, err)
		assert.True(t, result.IsReplayed)
		assert.Equal(t, winner.ID, result.Authorization.ID)
	})

	t.Run("rejects an empty cart", func(t *testing.T) {
		uc, _ := newCheckoutUseCase(t)
		b := builder.NewBookingBuilder()
		req := b.BuildAuthorizeRequestDTO()
		req.Items = nil

		result, err := uc.AuthorizeHold(context.Background(), req, uuid.New())

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidBookingPayload)
	})
}

func TestCheckoutUseCase_CreateBooking(t *testing.T) {
	newHold := func(b *builder.BookingBuilder) *payment.Authorization {
		return builder.NewAuthorizationBuilder().
			With(func(a *builder.AuthorizationBuilder) {
				a.ID = b.AuthorizationID
				a.AmountCents = 12900
			}).
			Build()
	}

	t.Run("creates a booking backed by a verified hold", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		b := builder.NewBookingBuilder()
		req := b.BuildCreateRequestDTO()
		key := uuid.New()
		auth := newHold(b)
		view := b.BuildView()

		m.idempotencyRepo.EXPECT().
			TryInsert(gomock.Any(), m.runner.DB, key, "POST /bookings", requestHashOf(t, req), testNow.Add(24*time.Hour)).
			Return(true, nil)
		m.authRepo.EXPECT().
			GetByID(gomock.Any(), m.runner.DB, b.AuthorizationID).
			Return(auth, nil)
		m.gateway.EXPECT().
			Retrieve(gomock.Any(), auth.ProviderChargeID).
			Return(&commands.ChargeResult{ChargeID: auth.ProviderChargeID, Authorized: true}, nil)
		m.bookingRepo.EXPECT().
			Create(gomock.Any(), m.runner.DB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, created *booking.Booking) (uuid.UUID, error) {
				assert.Equal(t, auth.ID, created.AuthorizationID())
				assert.Equal(t, int64(12900), created.Total().Cents())
				return view.ID, nil
			})
		m.idempotencyRepo.EXPECT().
			UpdateStatusCompleted(gomock.Any(), m.runner.DB, key, view.ID).
			Return(nil)
		m.bookingQueries.EXPECT().
			GetByID(gomock.Any(), view.ID).
			Return(view, nil)

		result, err := uc.CreateBooking(context.Background(), req, key)

		require.NoError(t, err)
		assert.False(t, result.IsReplayed)
		assert.Equal(t, view.ID, result.Booking.ID)
		assert.Equal(t, "confirmed", result.Booking.Status)
	})

	t.Run("replays the stored booking for a completed key", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		b := builder.NewBookingBuilder()
		req := b.BuildCreateRequestDTO()
		key := uuid.New()
		view := b.BuildView()

		m.idempotencyRepo.EXPECT().
			TryInsert(gomock.Any(), m.runner.DB, key, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil)
		m.idempotencyRepo.EXPECT().
			Get(gomock.Any(), m.runner.DB, key).
			Return(&shared.IdempotencyRecord{
				Key:             key,
				Endpoint:        "POST /bookings",
				Status:          "completed",
				RequestHash:     requestHashOf(t, req),
				ResultBookingID: &view.ID,
			}, nil)
		m.bookingQueries.EXPECT().
			GetByID(gomock.Any(), view.ID).
			Return(view, nil)

		result, err := uc.CreateBooking(context.Background(), req, key)

		require.NoError(t, err)
		assert.True(t, result.IsReplayed)
		assert.Equal(t, view.ID, result.Booking.ID)
	})

	t.Run("rejects key reuse with a different payload", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		b := builder.NewBookingBuilder()
		req := b.BuildCreateRequestDTO()
		key := uuid.New()

		m.idempotencyRepo.EXPECT().
			TryInsert(gomock.Any(), m.runner.DB, key, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil)
		m.idempotencyRepo.EXPECT().
			Get(gomock.Any(), m.runner.DB, key).
			Return(&shared.IdempotencyRecord{
				Key:         key,
				Endpoint:    "POST /bookings",
				Status:      "processing",
				RequestHash: "different-hash",
			}, nil)

		result, err := uc.CreateBooking(context.Background(), req, key)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrDuplicateBooking)
	})

	t.Run("reports an identical request still in flight", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		b := builder.NewBookingBuilder()
		req := b.BuildCreateRequestDTO()
		key := uuid.New()

		m.idempotencyRepo.EXPECT().
			TryInsert(gomock.Any(), m.runner.DB, key, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil)
		m.idempotencyRepo.EXPECT().
			Get(gomock.Any(), m.runner.DB, key).
			Return(&shared.IdempotencyRecord{
				Key:         key,
				Endpoint:    "POST /bookings",
				Status:      "processing",
				RequestHash: requestHashOf(t, req),
			}, nil)

		result, err := uc.CreateBooking(context.Background(), req, key)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrIdempotencyInProgress)
	})

	t.Run("rejects an unknown authorization", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		b := builder.NewBookingBuilder()
		req := b.BuildCreateRequestDTO()
		key := uuid.New()

		m.idempotencyRepo.EXPECT().
			TryInsert(gomock.Any(), m.runner.DB, key, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil)
		m.authRepo.EXPECT().
			GetByID(gomock.Any(), m.runner.DB, b.AuthorizationID).
			Return(nil, notFoundErr("authorization not found"))

		result, err := uc.CreateBooking(context.Background(), req, key)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrAuthorizationNotFound)
	})

	t.Run("rejects a hold whose amount does not match the cart", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		b := builder.NewBookingBuilder()
		req := b.BuildCreateRequestDTO()
		key := uuid.New()
		auth := newHold(b)
		auth.AmountCents = 9900

		m.idempotencyRepo.EXPECT().
			TryInsert(gomock.Any(), m.runner.DB, key, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil)
		m.authRepo.EXPECT().
			GetByID(gomock.Any(), m.runner.DB, b.AuthorizationID).
			Return(auth, nil)

		result, err := uc.CreateBooking(context.Background(), req, key)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrAuthorizationNotUsable)
	})

	t.Run("rejects a hold already consumed or released", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		b := builder.NewBookingBuilder()
		req := b.BuildCreateRequestDTO()
		key := uuid.New()
		auth := newHold(b)
		auth.Status = payment.StatusCanceled

		m.idempotencyRepo.EXPECT().
			TryInsert(gomock.Any(), m.runner.DB, key, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil)
		m.authRepo.EXPECT().
			GetByID(gomock.Any(), m.runner.DB, b.AuthorizationID).
			Return(auth, nil)

		result, err := uc.CreateBooking(context.Background(), req, key)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrAuthorizationNotUsable)
	})

	t.Run("rejects a hold the processor has since reversed", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		b := builder.NewBookingBuilder()
		req := b.BuildCreateRequestDTO()
		key := uuid.New()
		auth := newHold(b)

		m.idempotencyRepo.EXPECT().
			TryInsert(gomock.Any(), m.runner.DB, key, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil)
		m.authRepo.EXPECT().
			GetByID(gomock.Any(), m.runner.DB, b.AuthorizationID).
			Return(auth, nil)
		m.gateway.EXPECT().
			Retrieve(gomock.Any(), auth.ProviderChargeID).
			Return(&commands.ChargeResult{ChargeID: auth.ProviderChargeID, Reversed: true}, nil)
		m.authRepo.EXPECT().
			UpdateStatus(gomock.Any(), m.runner.DB, auth.ID, payment.StatusCanceled).
			Return(nil)

		result, err := uc.CreateBooking(context.Background(), req, key)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrAuthorizationNotUsable)
		assert.Equal(t, payment.StatusCanceled, auth.Status)
	})

	t.Run("fails when the processor cannot be reached", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		b := builder.NewBookingBuilder()
		req := b.BuildCreateRequestDTO()
		key := uuid.New()
		auth := newHold(b)

		m.idempotencyRepo.EXPECT().
			TryInsert(gomock.Any(), m.runner.DB, key, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil)
		m.authRepo.EXPECT().
			GetByID(gomock.Any(), m.runner.DB, b.AuthorizationID).
			Return(auth, nil)
		m.gateway.EXPECT().
			Retrieve(gomock.Any(), auth.ProviderChargeID).
			Return(nil, errs.New("timeout"))

		result, err := uc.CreateBooking(context.Background(), req, key)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrPaymentProviderFailed)
	})

	t.Run("rejects same day slots inside the lead time window", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		// testNow is 05:00 in Los Angeles; a 06:00 start is under the
		// 120 minute lead time.
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Date = "2026-09-01"
			b.StartMin = 6 * 60
		})
		req := b.BuildCreateRequestDTO()
		key := uuid.New()

		m.idempotencyRepo.EXPECT().
			TryInsert(gomock.Any(), m.runner.DB, key, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil)

		result, err := uc.CreateBooking(context.Background(), req, key)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInsufficientLeadTime)
	})

	t.Run("rejects dates in the past", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Date = "2026-08-30"
		})
		req := b.BuildCreateRequestDTO()
		key := uuid.New()

		m.idempotencyRepo.EXPECT().
			TryInsert(gomock.Any(), m.runner.DB, key, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil)

		result, err := uc.CreateBooking(context.Background(), req, key)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidTimeSlot)
	})

	t.Run("hands back the earlier booking when the hold was already consumed", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		b := builder.NewBookingBuilder()
		req := b.BuildCreateRequestDTO()
		key := uuid.New()
		auth := newHold(b)
		view := b.BuildView()

		m.idempotencyRepo.EXPECT().
			TryInsert(gomock.Any(), m.runner.DB, key, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil)
		m.authRepo.EXPECT().
			GetByID(gomock.Any(), m.runner.DB, b.AuthorizationID).
			Return(auth, nil)
		m.gateway.EXPECT().
			Retrieve(gomock.Any(), auth.ProviderChargeID).
			Return(&commands.ChargeResult{ChargeID: auth.ProviderChargeID, Authorized: true}, nil)
		m.bookingRepo.EXPECT().
			Create(gomock.Any(), m.runner.DB, gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("duplicate authorization", nil, infra.KindDuplicateKey))
		m.bookingRepo.EXPECT().
			FindIDByAuthorization(gomock.Any(), m.runner.DB, auth.ID).
			Return(view.ID, nil)
		m.bookingQueries.EXPECT().
			GetByID(gomock.Any(), view.ID).
			Return(view, nil)

		result, err := uc.CreateBooking(context.Background(), req, key)

		require.NoError(t, err)
		assert.True(t, result.IsReplayed)
		assert.Equal(t, view.ID, result.Booking.ID)
	})

	t.Run("releases the hold when the booking write fails", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		b := builder.NewBookingBuilder()
		req := b.BuildCreateRequestDTO()
		key := uuid.New()
		auth := newHold(b)

		m.idempotencyRepo.EXPECT().
			TryInsert(gomock.Any(), m.runner.DB, key, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil)
		m.authRepo.EXPECT().
			GetByID(gomock.Any(), m.runner.DB, b.AuthorizationID).
			Return(auth, nil)
		m.gateway.EXPECT().
			Retrieve(gomock.Any(), auth.ProviderChargeID).
			Return(&commands.ChargeResult{ChargeID: auth.ProviderChargeID, Authorized: true}, nil)
		m.bookingRepo.EXPECT().
			Create(gomock.Any(), m.runner.DB, gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("connection lost", errs.New("broken pipe")))
		m.gateway.EXPECT().
			Reverse(gomock.Any(), auth.ProviderChargeID).
			Return(&commands.ChargeResult{ChargeID: auth.ProviderChargeID, Reversed: true}, nil)
		m.authRepo.EXPECT().
			UpdateStatus(gomock.Any(), m.runner.DB, auth.ID, payment.StatusCanceled).
			Return(nil)

		result, err := uc.CreateBooking(context.Background(), req, key)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrBookingCreationFailed)
	})

	t.Run("surfaces the booking failure even when release fails", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		b := builder.NewBookingBuilder()
		req := b.BuildCreateRequestDTO()
		key := uuid.New()
		auth := newHold(b)

		m.idempotencyRepo.EXPECT().
			TryInsert(gomock.Any(), m.runner.DB, key, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil)
		m.authRepo.EXPECT().
			GetByID(gomock.Any(), m.runner.DB, b.AuthorizationID).
			Return(auth, nil)
		m.gateway.EXPECT().
			Retrieve(gomock.Any(), auth.ProviderChargeID).
			Return(&commands.ChargeResult{ChargeID: auth.ProviderChargeID, Authorized: true}, nil)
		m.bookingRepo.EXPECT().
			Create(gomock.Any(), m.runner.DB, gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("connection lost", errs.New("broken pipe")))
		m.gateway.EXPECT().
			Reverse(gomock.Any(), auth.ProviderChargeID).
			Return(nil, errs.New("timeout"))

		result, err := uc.CreateBooking(context.Background(), req, key)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrBookingCreationFailed)
	})
}
