package api

import (
	"net/http"

	resdto "sauna-reservation/internal/handler/dto/response"
	"sauna-reservation/internal/handler/httperr"
	"sauna-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SaunaHandler struct {
	availability queries.AvailabilityQueries
	reservations queries.ReservationQueries
	clubSauna    queries.ClubSaunaQueries
}

func NewSaunaHandler(availability queries.AvailabilityQueries, reservations queries.ReservationQueries, clubSauna queries.ClubSaunaQueries) *SaunaHandler {
	return &SaunaHandler{
		availability: availability,
		reservations: reservations,
		clubSauna:    clubSauna,
	}
}

// @Summary Next available slot
// @Description Earliest bookable one hour slot for the sauna, with the reason it starts there
// @Tags saunas
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sauna ID"
// @Success 200 {object} resdto.NextAvailableResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/saunas/{id}/next-available [get]
func (h *SaunaHandler) NextAvailable(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid sauna id", nil)
		return
	}

	view, err := h.availability.NextAvailable(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromNextAvailableView(view))
}

// @Summary Sauna day schedule
// @Description Reservations of the sauna on a calendar day (YYYY-MM-DD)
// @Tags saunas
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sauna ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/saunas/{id}/reservations [get]
func (h *SaunaHandler) ListDay(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid sauna id", nil)
		return
	}

	views, err := h.reservations.ListSaunaDay(c.Request.Context(), id, c.Query("date"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	body, err := resdto.FromReservationViews(views)
	if err != nil {
		abortResponseMapping(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}

// @Summary Club sauna eligibility
// @Description Whether a club sauna session runs on the date and in which season
// @Tags club-sauna
// @Produce json
// @Security BearerAuth
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.ClubSaunaEligibilityResponse
// @Failure 400 {object} httperr.Response
// @Router /api/club-sauna/eligibility [get]
func (h *SaunaHandler) ClubSaunaEligibility(c *gin.Context) {
	view, err := h.clubSauna.Eligibility(c.Query("date"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromClubSaunaEligibilityView(view))
}
