package api

import (
	"net/http"

	reqdto "sauna-reservation/internal/handler/dto/request"
	resdto "sauna-reservation/internal/handler/dto/response"
	"sauna-reservation/internal/handler/httperr"
	"sauna-reservation/internal/handler/middleware"
	"sauna-reservation/internal/usecase/commands"
	"sauna-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SharedReservationHandler struct {
	cmds commands.SharedReservationCommands
	q    queries.SharedReservationQueries
}

func NewSharedReservationHandler(cmds commands.SharedReservationCommands, q queries.SharedReservationQueries) *SharedReservationHandler {
	return &SharedReservationHandler{cmds: cmds, q: q}
}

// @Summary Create shared reservation
// @Description Schedule a session any boat may join (admin only)
// @Tags shared-reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSharedReservationRequest true "Shared reservation request"
// @Success 201 {object} resdto.SharedReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/shared-reservations [post]
func (h *SharedReservationHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortMissingActor(c)
		return
	}

	var req reqdto.CreateSharedReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.CreateSharedReservation(c.Request.Context(), req, actor)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respondWithView(c, http.StatusCreated, result.SharedReservationID)
}

// @Summary Get shared reservation
// @Description Get a shared session with its participants and head counts
// @Tags shared-reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shared reservation ID"
// @Success 200 {object} resdto.SharedReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/shared-reservations/{id} [get]
func (h *SharedReservationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	body, err := resdto.FromSharedReservationView(view)
	if err != nil {
		abortResponseMapping(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}

// @Summary Join shared reservation
// @Description Add a boat and its party to a session that has not started
// @Tags shared-reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shared reservation ID"
// @Param request body reqdto.JoinSharedReservationRequest true "Join request"
// @Success 200 {object} resdto.SharedReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/shared-reservations/{id}/participants [post]
func (h *SharedReservationHandler) Join(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortMissingActor(c)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.JoinSharedReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	if err = h.cmds.JoinSharedReservation(c.Request.Context(), id, req, actor); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respondWithView(c, http.StatusOK, id)
}

// @Summary Leave shared reservation
// @Description Remove a boat from a session that has not started
// @Tags shared-reservations
// @Security BearerAuth
// @Param id path string true "Shared reservation ID"
// @Param boatId path string true "Boat ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/shared-reservations/{id}/participants/{boatId} [delete]
func (h *SharedReservationHandler) Leave(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortMissingActor(c)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	boatID, err := uuid.Parse(c.Param("boatId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid boat id", nil)
		return
	}

	if err = h.cmds.LeaveSharedReservation(c.Request.Context(), id, boatID, actor); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SharedReservationHandler) respondWithView(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load shared reservation", nil)
		return
	}
	body, err := resdto.FromSharedReservationView(view)
	if err != nil {
		abortResponseMapping(c, err)
		return
	}
	c.JSON(status, body)
}
