package api

import (
	"net/http"

	resdto "sauna-reservation/internal/handler/dto/response"
	"sauna-reservation/internal/handler/httperr"
	"sauna-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BoatHandler struct {
	availability queries.AvailabilityQueries
}

func NewBoatHandler(availability queries.AvailabilityQueries) *BoatHandler {
	return &BoatHandler{availability: availability}
}

// @Summary Daily limit
// @Description Whether the boat may still take a sauna slot on the island that day
// @Tags boats
// @Produce json
// @Security BearerAuth
// @Param id path string true "Boat ID"
// @Param islandId query string true "Island ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.DailyLimitResponse
// @Failure 400 {object} httperr.Response
// @Router /api/boats/{id}/daily-limit [get]
func (h *BoatHandler) DailyLimit(c *gin.Context) {
	boatID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid boat id", nil)
		return
	}
	islandID, err := uuid.Parse(c.Query("islandId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid island id", nil)
		return
	}

	view, err := h.availability.DailyLimit(c.Request.Context(), boatID, islandID, c.Query("date"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDailyLimitView(view))
}
