//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"sauna-reservation/internal/domain/dailylimit"
	"sauna-reservation/internal/domain/reservation"
	"sauna-reservation/internal/handler/api"
	resdto "sauna-reservation/internal/handler/dto/response"
	"sauna-reservation/internal/pkg/errs"
	"sauna-reservation/internal/usecase/commands"
	"sauna-reservation/internal/usecase/queries"
	"sauna-reservation/internal/usecase/shared"
	"sauna-reservation/tests/common/builder"
	"sauna-reservation/tests/common/httptest"
	"sauna-reservation/tests/common/testutil"
	commandsmock "sauna-reservation/tests/mock/commands"
	queriesmock "sauna-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	group := s.router.Group("/api/reservations")
	group.Use(newAuthMiddleware().RequireAuth())
	group.POST("", s.handler.CreateReservation)
	group.GET("/:id", s.handler.GetReservation)
	group.GET("/:id/cancellation", s.handler.CancelEligibility)
	group.POST("/:id/cancel", s.handler.CancelReservation)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseReservation struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreateReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/api/reservations"

	b := builder.NewReservationBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildView()
	expectedResult := &commands.CreateReservationResult{ReservationID: returnView.ID}

	bound := []testCaseReservation{
		{name: "party boundary OK (kids omitted)", mutate: testutil.Field("kids", nil), expectCode: http.StatusCreated},
		{name: "adults invalid (-1)", mutate: testutil.Field("adults", -1), expectCode: http.StatusBadRequest},
		{name: "kids invalid (-1)", mutate: testutil.Field("kids", -1), expectCode: http.StatusBadRequest},
	}

	missing := []testCaseReservation{
		{name: "missing field: saunaId (required)", mutate: testutil.Field("saunaId", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: boatId (required)", mutate: testutil.Field("boatId", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: startTime (required)", mutate: testutil.Field("startTime", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: endTime (required)", mutate: testutil.Field("endTime", nil), expectCode: http.StatusBadRequest},
	}

	malformed := []testCaseReservation{
		{name: "saunaId not a uuid", mutate: testutil.Field("saunaId", "sauna-1"), expectCode: http.StatusBadRequest},
		{name: "startTime not RFC3339", mutate: testutil.Field("startTime", "tomorrow 18:00"), expectCode: http.StatusBadRequest},
	}

	allValidationTestCases := [][]testCaseReservation{bound, missing, malformed}

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ any, actor shared.Actor) (*commands.CreateReservationResult, error) {
				s.Require().NotNil(actor.BoatID)
				s.Equal(b.BoatID, *actor.BoatID)
				s.Equal(shared.RoleMember, actor.Role)
				return expectedResult, nil
			}).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, memberToken(s.T(), b.BoatID))

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal(returnView.StartTime, body.StartTime)
		s.Equal("active", body.Status)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).
							Return(expectedResult, nil).Times(1)
						s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).Return(returnView, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, memberToken(s.T(), b.BoatID))

					s.Equal(tc.expectCode, rec.Code, rec.Body.String())
				})
			}
		}
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 401 with forged token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "forged.token.value")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	usecaseErrors := []struct {
		name       string
		err        error
		expectCode int
		reason     string
	}{
		{name: "slot validation", err: errs.Mark(reservation.ErrSlotInPast, errs.ErrDomainValidation), expectCode: http.StatusBadRequest},
		{name: "heating lead time", err: errs.ErrInsufficientLeadTime, expectCode: http.StatusBadRequest, reason: "insufficient_lead_time"},
		{name: "other boat", err: errs.ErrForbidden, expectCode: http.StatusForbidden},
		{name: "unknown sauna", err: errs.ErrSaunaNotFound, expectCode: http.StatusNotFound},
		{name: "unknown boat", err: errs.ErrBoatNotFound, expectCode: http.StatusNotFound},
		{name: "daily limit", err: errs.Mark(dailylimit.ErrLimitReached, errs.ErrDailyLimitReached), expectCode: http.StatusConflict, reason: "daily_limit_reached"},
		{name: "slot taken", err: errs.ErrReservationConflict, expectCode: http.StatusConflict, reason: "slot_taken"},
		{name: "database failure", err: errs.New("connection reset"), expectCode: http.StatusInternalServerError},
	}

	for _, tc := range usecaseErrors {
		s.Run("error: maps "+tc.name, func() {
			s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, tc.err).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, memberToken(s.T(), b.BoatID))

			httptest.AssertErrorReason(s.T(), rec, tc.expectCode, tc.reason)
		})
	}
}

// ================================================================================
// TestGetReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	view := builder.NewReservationBuilder().BuildView()

	s.Run("success: returns 200 with reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/"+view.ID.String(), nil, memberToken(s.T(), uuid.New()))

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.SaunaName, body.SaunaName)
		s.Equal(view.BoatName, body.BoatName)
		s.Equal(view.Adults, body.Adults)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/not-a-uuid", nil, adminToken(s.T()))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID format")
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/"+uuid.NewString(), nil, adminToken(s.T()))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: 500 when the view cannot be mapped", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/"+view.ID.String(), nil, adminToken(s.T()))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to build response")
	})
}

// ================================================================================
// TestCancellation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCancelEligibility() {
	id := uuid.New()

	s.Run("success: reports reason", func() {
		s.mockQueries.EXPECT().CancelEligibility(gomock.Any(), id).
			Return(&queries.CancellationView{ReservationID: id, Reason: "too_late"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/"+id.String()+"/cancellation", nil, adminToken(s.T()))

		var body resdto.CancellationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.CanCancel)
		s.Equal("too_late", body.Reason)
	})
}

func (s *ReservationHandlerTestSuite) TestCancelReservation() {
	b := builder.NewReservationBuilder().WithStatus(reservation.StatusCancelled)
	view := b.BuildView()
	url := "/api/reservations/" + view.ID.String() + "/cancel"

	s.Run("success: returns cancelled reservation", func() {
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), view.ID, gomock.Any()).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, memberToken(s.T(), b.BoatID))

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body.Status)
	})

	s.Run("error: 409 carries the refusal reason", func() {
		refusal := errs.Mark(&reservation.CancelError{Reason: reservation.ReasonTooLate}, errs.ErrCannotCancel)
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), view.ID, gomock.Any()).Return(refusal).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, memberToken(s.T(), b.BoatID))

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Reservation cannot be cancelled")
		httptest.AssertErrorReason(s.T(), rec, http.StatusConflict, "too_late")
	})

	s.Run("error: 403 for another boat", func() {
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), view.ID, gomock.Any()).Return(errs.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, memberToken(s.T(), uuid.New()))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})
}
