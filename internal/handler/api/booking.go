package api

import (
	"errors"
	"log/slog"
	"net/http"

	reqdto "mountworks/internal/handler/dto/request"
	resdto "mountworks/internal/handler/dto/response"
	"mountworks/internal/handler/httperr"
	"mountworks/internal/pkg/errs"
	"mountworks/internal/usecase/commands"
	"mountworks/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	checkout       commands.CheckoutCommands
	assignments    commands.AssignmentCommands
	notifications  commands.NotificationCommands
	bookingQueries queries.BookingQueries
}

func NewBookingHandler(
	checkout commands.CheckoutCommands,
	assignments commands.AssignmentCommands,
	notifications commands.NotificationCommands,
	bookingQueries queries.BookingQueries,
) *BookingHandler {
	return &BookingHandler{
		checkout:       checkout,
		assignments:    assignments,
		notifications:  notifications,
		bookingQueries: bookingQueries,
	}
}

// @Summary Create booking
// @Description Create a booking backed by an existing payment hold, then assign a worker
// @Tags bookings
// @Accept json
// @Produce json
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Idempotency-Key header is required")
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	result, err := h.checkout.CreateBooking(c.Request.Context(), req, idempotencyKey)
	if err != nil {
		h.abortCreateError(c, err)
		return
	}

	view := result.Booking
	if !result.IsReplayed {
		view = h.runPostCreatePipeline(c, view)
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromBookingView(view))
}

// runPostCreatePipeline sends the confirmation and runs assignment. Both are
// best effort from the customer's point of view: the booking is already
// created and paid, so their failures surface in logs and in the
// assignment_status field, never as an HTTP error.
func (h *BookingHandler) runPostCreatePipeline(c *gin.Context, view *queries.BookingView) *queries.BookingView {
	ctx := c.Request.Context()

	if _, err := h.notifications.Send(ctx, view.ID, "booking_confirmed", false); err != nil {
		slog.Warn("booking confirmation notification failed",
			"booking_id", view.ID,
			"error", err)
	}

	if _, err := h.assignments.Assign(ctx, view.ID, nil); err != nil {
		slog.Warn("automatic assignment failed",
			"booking_id", view.ID,
			"error", err)
	}

	fresh, err := h.bookingQueries.GetByID(ctx, view.ID)
	if err != nil {
		slog.Warn("failed to reload booking after assignment",
			"booking_id", view.ID,
			"error", err)
		return view
	}
	return fresh
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id")
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found")
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Assign a worker
// @Description Run the assignment engine for a booking (retry path after assignment_failed)
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.AssignBookingRequest false "Optional preferred worker override"
// @Success 200 {object} resdto.AssignResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/assign [post]
func (h *BookingHandler) AssignBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id")
		return
	}

	var req reqdto.AssignBookingRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
			return
		}
	}

	result, err := h.assignments.Assign(c.Request.Context(), id, req.PreferredWorkerID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found")
		case errors.Is(err, errs.ErrAssignmentInProgress):
			httperr.AbortWithError(c, http.StatusConflict, err, "Assignment already in progress")
		case errors.Is(err, errs.ErrNoWorkersAvailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "No workers available for this slot")
		case errors.Is(err, errs.ErrAssignmentFailed):
			httperr.AbortWithError(c, http.StatusConflict, err, "Assignment failed")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAssignResult(result))
}

// @Summary Resend a booking notification
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.NotifyBookingRequest false "Message type and force flag"
// @Success 200 {object} resdto.NotifyResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/notify [post]
func (h *BookingHandler) NotifyBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id")
		return
	}

	var req reqdto.NotifyBookingRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
			return
		}
	}

	result, err := h.notifications.Send(c.Request.Context(), id, req.GetMessageType(), req.Force)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found")
		case errors.Is(err, errs.ErrInvalidRecipient):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Booking has no deliverable contact")
		case errors.Is(err, errs.ErrNotificationFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Notification provider failed")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSendResult(result))
}

func (h *BookingHandler) abortCreateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidBookingPayload), errors.Is(err, errs.ErrInvalidTimeSlot):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking payload")
	case errors.Is(err, errs.ErrInsufficientLeadTime):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Insufficient lead time for booking")
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed")
	case errors.Is(err, errs.ErrAuthorizationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Authorization not found")
	case errors.Is(err, errs.ErrAuthorizationNotUsable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Authorization is not usable for this booking")
	case errors.Is(err, errs.ErrDuplicateBooking):
		httperr.AbortWithError(c, http.StatusConflict, err, "Duplicate booking request with different parameters")
	case errors.Is(err, errs.ErrIdempotencyInProgress):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking request is currently being processed")
	case errors.Is(err, errs.ErrPaymentProviderFailed):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment provider unavailable")
	case errors.Is(err, errs.ErrBookingCreationFailed):
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Booking creation failed, payment hold released")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
