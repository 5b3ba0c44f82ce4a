package api

import (
	"net/http"

	"sauna-reservation/internal/domain/reservation"
	"sauna-reservation/internal/handler/httperr"
	"sauna-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithUseCaseError maps use case sentinels onto the HTTP error envelope.
func abortWithUseCaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", nil)
	case errs.Is(err, errs.ErrInsufficientLeadTime):
		httperr.AbortWithReason(c, http.StatusBadRequest, err, "Sauna cannot be heated by the requested start", "insufficient_lead_time")
	case errs.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Forbidden", nil)
	case errs.Is(err, errs.ErrSaunaNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Sauna not found", nil)
	case errs.Is(err, errs.ErrBoatNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Boat not found", nil)
	case errs.Is(err, errs.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	case errs.Is(err, errs.ErrSharedReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Shared reservation not found", nil)
	case errs.Is(err, errs.ErrNotParticipant):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Boat does not participate", nil)
	case errs.Is(err, errs.ErrDailyLimitReached):
		httperr.AbortWithReason(c, http.StatusConflict, err, "Daily limit reached", "daily_limit_reached")
	case errs.Is(err, errs.ErrReservationConflict):
		httperr.AbortWithReason(c, http.StatusConflict, err, "Slot is already taken", "slot_taken")
	case errs.Is(err, errs.ErrAlreadyParticipant):
		httperr.AbortWithReason(c, http.StatusConflict, err, "Boat already participates", "already_participant")
	case errs.Is(err, errs.ErrCannotCancel):
		reason, _ := reservation.CancelReasonOf(err)
		httperr.AbortWithReason(c, http.StatusConflict, err, "Reservation cannot be cancelled", reason.String())
	case errs.Is(err, errs.ErrNoSlotWithinLookahead):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "No free slot within lookahead", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func abortResponseMapping(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
}

func abortMissingActor(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("actor missing from context"), "Internal server error", nil)
}
