//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"sauna-reservation/internal/handler/api"
	resdto "sauna-reservation/internal/handler/dto/response"
	"sauna-reservation/internal/pkg/errs"
	"sauna-reservation/internal/usecase/commands"
	"sauna-reservation/internal/usecase/queries"
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

type SharedReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSharedReservationCommands
	mockQueries  *queriesmock.MockSharedReservationQueries
	handler      *api.SharedReservationHandler
}

func (s *SharedReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSharedReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSharedReservationQueries(s.mockCtrl)
	s.handler = api.NewSharedReservationHandler(s.mockCommands, s.mockQueries)

	auth := newAuthMiddleware()
	group := s.router.Group("/api/shared-reservations")
	group.Use(auth.RequireAuth())
	group.POST("", auth.RequireAdmin(), s.handler.Create)
	group.GET("/:id", s.handler.Get)
	group.POST("/:id/participants", s.handler.Join)
	group.DELETE("/:id/participants/:boatId", s.handler.Leave)
}

func (s *SharedReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSharedReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(SharedReservationHandlerTestSuite))
}

func sharedView(b *builder.SharedReservationBuilder, participants ...queries.ParticipantView) *queries.SharedReservationView {
	view := &queries.SharedReservationView{
		ID:           b.ID,
		SaunaID:      b.SaunaID,
		SaunaName:    "Rantasauna",
		IslandID:     b.IslandID,
		Name:         b.Name,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime(),
		Participants: participants,
		CreatedAt:    b.Now,
	}
	for _, p := range participants {
		view.TotalAdults += p.Adults
		view.TotalKids += p.Kids
	}
	return view
}

func (s *SharedReservationHandlerTestSuite) TestCreate() {
	url := "/api/shared-reservations"
	b := builder.NewSharedReservationBuilder()
	reqBody := b.BuildCreateRequestDTO()

	s.Run("success: admin schedules a session", func() {
		s.mockCommands.EXPECT().CreateSharedReservation(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.CreateSharedReservationResult{SharedReservationID: b.ID}, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(sharedView(b), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, adminToken(s.T()))

		var body resdto.SharedReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(b.ID, body.ID)
		s.NotNil(body.Participants)
		s.Empty(body.Participants)
	})

	s.Run("error: 403 for members", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, memberToken(s.T(), uuid.New()))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	cases := []testCaseReservation{
		{name: "missing field: name (required)", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
		{name: "name too long", mutate: testutil.Field("name", strings.Repeat("a", 256)), expectCode: http.StatusBadRequest},
		{name: "missing field: saunaId (required)", mutate: testutil.Field("saunaId", nil), expectCode: http.StatusBadRequest},
	}
	for _, tc := range cases {
		s.Run("error: "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), adminToken(s.T()))
			s.Equal(tc.expectCode, rec.Code, rec.Body.String())
		})
	}

	s.Run("error: 409 when the sauna is booked", func() {
		s.mockCommands.EXPECT().CreateSharedReservation(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrReservationConflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, adminToken(s.T()))

		httptest.AssertErrorReason(s.T(), rec, http.StatusConflict, "slot_taken")
	})
}

func (s *SharedReservationHandlerTestSuite) TestGet() {
	b := builder.NewSharedReservationBuilder()
	joined := time.Date(2025, 7, 3, 9, 0, 0, 0, time.UTC)
	view := sharedView(b,
		queries.ParticipantView{BoatID: uuid.New(), BoatName: "s/y Ilmatar", Adults: 2, Kids: 1, JoinedAt: joined},
		queries.ParticipantView{BoatID: uuid.New(), BoatName: "m/s Aalto", Adults: 3, JoinedAt: joined},
	)

	s.Run("success: participants and head counts", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/shared-reservations/"+b.ID.String(), nil, memberToken(s.T(), uuid.New()))

		var body resdto.SharedReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Participants, 2)
		s.Equal("s/y Ilmatar", body.Participants[0].BoatName)
		s.Equal(joined, body.Participants[0].JoinedAt)
		s.Equal(5, body.TotalAdults)
		s.Equal(1, body.TotalKids)
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, errs.ErrSharedReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/shared-reservations/"+uuid.NewString(), nil, adminToken(s.T()))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Shared reservation not found")
	})
}

func (s *SharedReservationHandlerTestSuite) TestJoin() {
	b := builder.NewSharedReservationBuilder()
	boatID := uuid.New()
	url := "/api/shared-reservations/" + b.ID.String() + "/participants"
	reqBody := b.BuildJoinRequestDTO(boatID, 2, 1)

	s.Run("success: returns the updated session", func() {
		s.mockCommands.EXPECT().JoinSharedReservation(gomock.Any(), b.ID, gomock.Any(), gomock.Any()).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).
			Return(sharedView(b, queries.ParticipantView{BoatID: boatID, Adults: 2, Kids: 1}), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, memberToken(s.T(), boatID))

		var body resdto.SharedReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Participants, 1)
	})

	conflicts := []struct {
		name   string
		err    error
		reason string
	}{
		{name: "already participant", err: errs.ErrAlreadyParticipant, reason: "already_participant"},
		{name: "daily limit", err: errs.ErrDailyLimitReached, reason: "daily_limit_reached"},
	}
	for _, tc := range conflicts {
		s.Run("error: 409 "+tc.name, func() {
			s.mockCommands.EXPECT().JoinSharedReservation(gomock.Any(), b.ID, gomock.Any(), gomock.Any()).Return(tc.err).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, memberToken(s.T(), boatID))

			httptest.AssertErrorReason(s.T(), rec, http.StatusConflict, tc.reason)
		})
	}
}

func (s *SharedReservationHandlerTestSuite) TestLeave() {
	b := builder.NewSharedReservationBuilder()
	boatID := uuid.New()
	url := "/api/shared-reservations/" + b.ID.String() + "/participants/" + boatID.String()

	s.Run("success: 204 No Content", func() {
		s.mockCommands.EXPECT().LeaveSharedReservation(gomock.Any(), b.ID, boatID, gomock.Any()).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, memberToken(s.T(), boatID))

		s.Equal(http.StatusNoContent, rec.Code)
		httptest.AssertNoBody(s.T(), rec)
	})

	s.Run("error: 404 when not on the list", func() {
		s.mockCommands.EXPECT().LeaveSharedReservation(gomock.Any(), b.ID, boatID, gomock.Any()).Return(errs.ErrNotParticipant).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, memberToken(s.T(), boatID))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Boat does not participate")
	})

	s.Run("error: 400 on malformed boat id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/shared-reservations/"+b.ID.String()+"/participants/x", nil, adminToken(s.T()))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid boat id")
	})
}
