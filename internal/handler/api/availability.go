package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"mountworks/internal/domain/schedule"
	"mountworks/internal/domain/worker"
	resdto "mountworks/internal/handler/dto/response"
	"mountworks/internal/handler/httperr"
	"mountworks/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availability queries.AvailabilityQueries
	policy       schedule.Policy
}

func NewAvailabilityHandler(availability queries.AvailabilityQueries, policy schedule.Policy) *AvailabilityHandler {
	return &AvailabilityHandler{
		availability: availability,
		policy:       policy,
	}
}

// @Summary Free slots for a zip and date
// @Tags availability
// @Produce json
// @Param zip query string true "5-digit service zip"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param duration_min query int true "Requested duration in minutes"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /availability [get]
func (h *AvailabilityHandler) FreeSlots(c *gin.Context) {
	zip, date, durationMin, err := h.parseSlotQuery(c, true)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters")
		return
	}

	slots, err := h.availability.FreeSlots(c.Request.Context(), zip, date, durationMin)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to compute availability")
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotViews(zip, slots))
}

// @Summary Next available date within the search horizon
// @Tags availability
// @Produce json
// @Param zip query string true "5-digit service zip"
// @Param duration_min query int true "Requested duration in minutes"
// @Success 200 {object} resdto.NextAvailableResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /availability/next [get]
func (h *AvailabilityHandler) NextAvailable(c *gin.Context) {
	zip, _, durationMin, err := h.parseSlotQuery(c, false)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters")
		return
	}

	date, slots, err := h.availability.NextAvailableDate(c.Request.Context(), zip, durationMin)
	if err != nil {
		if errors.Is(err, queries.ErrNoAvailability) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "No availability within the search horizon")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to compute availability")
		return
	}

	c.JSON(http.StatusOK, resdto.FromNextAvailable(zip, date.Format("2006-01-02"), slots))
}

func (h *AvailabilityHandler) parseSlotQuery(c *gin.Context, needDate bool) (zip string, date time.Time, durationMin int, err error) {
	zip, err = worker.NormalizeZip(c.Query("zip"))
	if err != nil {
		return "", time.Time{}, 0, err
	}

	durationMin, err = strconv.Atoi(c.Query("duration_min"))
	if err != nil || durationMin <= 0 {
		return "", time.Time{}, 0, errors.New("duration_min must be a positive integer")
	}

	if needDate {
		date, err = time.ParseInLocation("2006-01-02", c.Query("date"), h.policy.Location)
		if err != nil {
			return "", time.Time{}, 0, err
		}
	}
	return zip, date, durationMin, nil
}
