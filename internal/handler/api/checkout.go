package api

import (
	"errors"
	"net/http"

	reqdto "mountworks/internal/handler/dto/request"
	resdto "mountworks/internal/handler/dto/response"
	"mountworks/internal/handler/httperr"
	"mountworks/internal/pkg/errs"
	"mountworks/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CheckoutHandler struct {
	checkout commands.CheckoutCommands
}

func NewCheckoutHandler(checkout commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// @Summary Authorize a payment hold
// @Description Place an uncaptured hold for the cart total before any booking exists
// @Tags checkout
// @Accept json
// @Produce json
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.AuthorizeHoldRequest true "Cart and card token"
// @Success 201 {object} resdto.AuthorizationResponse
// @Failure 400 {object} httperr.Response
// @Failure 402 {object} resdto.AuthorizationResponse
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /checkout/authorize [post]
func (h *CheckoutHandler) AuthorizeHold(c *gin.Context) {
	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Idempotency-Key header is required")
		return
	}

	var req reqdto.AuthorizeHoldRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	result, err := h.checkout.AuthorizeHold(c.Request.Context(), req, idempotencyKey)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidBookingPayload):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid line items")
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid customer")
		case errors.Is(err, errs.ErrDuplicateBooking):
			httperr.AbortWithError(c, http.StatusConflict, err, "Idempotency key reused with a different payload")
		case errors.Is(err, errs.ErrPaymentProviderFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment provider unavailable")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	body := resdto.FromAuthorization(result.Authorization, result.IsReplayed)
	switch {
	case !result.Authorization.Status.Capturable() && body.Status == "failed":
		c.JSON(http.StatusPaymentRequired, body)
	case result.IsReplayed:
		c.JSON(http.StatusOK, body)
	default:
		c.JSON(http.StatusCreated, body)
	}
}

func getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	raw := c.GetHeader("Idempotency-Key")
	if raw == "" {
		return uuid.Nil, errs.ErrIdempotencyKeyRequired
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrIdempotencyKeyRequired)
	}
	return key, nil
}
