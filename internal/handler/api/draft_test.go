//go:build unit

package api_test

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"stay-client/internal/domain/booking"
	"stay-client/internal/handler/api"
	resdto "stay-client/internal/handler/dto/response"
	"stay-client/internal/handler/middleware"
	"stay-client/internal/infra"
	"stay-client/internal/pkg/clock"
	"stay-client/internal/pkg/config"
	"stay-client/internal/usecase/drafts"
	"stay-client/tests/common/authtest"
	"stay-client/tests/common/builder"
	"stay-client/tests/common/httptest"
	"stay-client/tests/common/testutil"
	draftsmock "stay-client/tests/mock/drafts"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DraftHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	units        *draftsmock.MockUnitDirectory
	availability *draftsmock.MockAvailabilityService
	store        *draftsmock.MockReservationStore
	registry     *drafts.Registry
	logger       *slog.Logger
	jwt          *authtest.JWTHelper
	token        string
	unit         *booking.Unit
}

func (s *DraftHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.units = draftsmock.NewMockUnitDirectory(s.mockCtrl)
	s.availability = draftsmock.NewMockAvailabilityService(s.mockCtrl)
	s.store = draftsmock.NewMockReservationStore(s.mockCtrl)
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	s.unit = builder.NewUnitBuilder().MustBuild()

	clk := clock.NewMockClock(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	s.jwt = authtest.NewJWTHelper(clk.Now)
	s.token = s.jwt.GenerateToken(s.T(), "user-1")

	deps := drafts.Dependencies{
		Units:   s.units,
		Checker: drafts.NewAvailabilityChecker(s.availability, time.Second, s.logger),
		Store:   s.store,
		Pricing: booking.NewDefaultPricingCalculator(),
		Clock:   clk,
		Logger:  s.logger,
	}
	s.registry = drafts.NewRegistry(deps, config.DraftConfig{TTL: time.Minute, Capacity: 8}, s.logger)
	handler := api.NewDraftHandler(s.registry)

	sessions := middleware.NewSessionMiddleware(clk)
	group := s.router.Group("/api/drafts", sessions.DecodeSession())
	group.POST("", handler.Open)
	group.GET("/:id", handler.Get)
	group.POST("/:id/check", handler.Check)
	group.POST("/:id/edit", handler.Edit)
	group.POST("/:id/submit", handler.Submit)
	group.DELETE("/:id", handler.Discard)
}

func (s *DraftHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDraftHandlerSuite(t *testing.T) {
	suite.Run(t, new(DraftHandlerTestSuite))
}

func (s *DraftHandlerTestSuite) open() resdto.DraftResponse {
	s.units.EXPECT().GetUnit(gomock.Any(), gomock.Any(), s.unit.ID()).Return(s.unit, nil).Times(1)
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/drafts", map[string]string{"unitId": s.unit.ID()}, s.token)

	var body resdto.DraftResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
	return body
}

func (s *DraftHandlerTestSuite) quote(id string) resdto.DraftResponse {
	s.availability.EXPECT().CheckAvailability(gomock.Any(), gomock.Any(), s.unit.ID(), gomock.Any()).Return(true, nil).Times(1)
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/drafts/"+id+"/check", nil, s.token)

	var body resdto.DraftResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Equal("quoted", body.State)
	return body
}

func stayInput() map[string]any {
	return map[string]any{
		"startDate":       "2024-01-01",
		"endDate":         "2024-01-03",
		"guests":          2,
		"specialRequests": "late check-in",
		"holiday":         false,
	}
}

// draftError decodes the error envelope together with the draft carried in detail.
type draftError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail *resdto.DraftResponse `json:"detail"`
}

// ================================================================================
// TestOpen
// ================================================================================

func (s *DraftHandlerTestSuite) TestOpen() {
	s.Run("success: 201 with a ready draft for today", func() {
		body := s.open()

		s.NotEmpty(body.ID)
		s.Equal("ready", body.State)
		s.Equal("2024-01-01", body.StartDate)
		s.Equal("2024-01-02", body.EndDate)
		s.Equal(1, body.Guests)
		s.Equal(s.unit.ID(), body.Unit.ID)
		s.True(body.CanCheck)
		s.False(body.CanSubmit)
	})

	s.Run("error: 400 when unitId is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/drafts", map[string]string{}, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 401 with login intent when session is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/drafts", map[string]string{"unitId": s.unit.ID()}, "")

		var body draftError
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusUnauthorized, nil)
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &body))
		s.Require().NotNil(body.Detail)
		s.Equal("failed", body.Detail.State)
		s.Equal("auth_required", body.Detail.FailureReason)
		s.Require().NotNil(body.Detail.Next)
		s.Equal("login", body.Detail.Next.Kind)
		s.Equal("/units/"+s.unit.ID()+"/reserve", body.Detail.Next.ReturnTo)
		s.Zero(s.registry.Len())
	})

	s.Run("success: session from the access_token cookie", func() {
		s.units.EXPECT().GetUnit(gomock.Any(), gomock.Any(), s.unit.ID()).Return(s.unit, nil).Times(1)
		cookies := []*http.Cookie{{Name: "access_token", Value: s.token}}

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/api/drafts", map[string]string{"unitId": s.unit.ID()}, cookies, "")

		var body resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("ready", body.State)

		rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/drafts/"+body.ID, nil, s.token)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: maps unit load failures", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unit not found",
				err:            infra.WrapRemoteErr(s.logger, infra.KindNotFound, http.StatusNotFound, "no existe", nil),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Unit not found",
			},
			{
				name:           "upstream down",
				err:            infra.WrapRemoteErr(s.logger, infra.KindServer, http.StatusInternalServerError, "boom", nil),
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Unit could not be loaded",
			},
			{
				name:           "token rejected upstream",
				err:            infra.WrapRemoteErr(s.logger, infra.KindUnauthorized, http.StatusUnauthorized, "token", nil),
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Authentication required",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.units.EXPECT().GetUnit(gomock.Any(), gomock.Any(), s.unit.ID()).Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/drafts", map[string]string{"unitId": s.unit.ID()}, s.token)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet / TestDiscard
// ================================================================================

func (s *DraftHandlerTestSuite) TestGet() {
	s.Run("success: returns the current view", func() {
		opened := s.open()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/drafts/"+opened.ID, nil, s.token)

		var body resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(opened.ID, body.ID)
		s.Equal(opened.Version, body.Version)
	})

	s.Run("error: 404 for another user's draft", func() {
		opened := s.open()
		other := s.jwt.GenerateToken(s.T(), "user-2")
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/drafts/"+opened.ID, nil, other)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Draft not found")
	})

	s.Run("error: 404 for unknown id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/drafts/nope", nil, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Draft not found")
	})
}

func (s *DraftHandlerTestSuite) TestDiscard() {
	opened := s.open()

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/drafts/"+opened.ID, nil, s.token)
	s.Equal(http.StatusNoContent, rec.Code)

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/drafts/"+opened.ID, nil, s.token)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Draft not found")
}

// ================================================================================
// TestEdit
// ================================================================================

func (s *DraftHandlerTestSuite) TestEdit() {
	s.Run("success: quoted draft returns to ready without a quote", func() {
		opened := s.open()
		s.quote(opened.ID)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/drafts/"+opened.ID+"/edit", stayInput(), s.token)

		var body resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("ready", body.State)
		s.Nil(body.Quote)
		s.Equal(2, body.Guests)
		s.Equal("late check-in", body.SpecialRequests)
		s.False(body.CanSubmit)
	})

	s.Run("error: 400 on malformed input", func() {
		opened := s.open()

		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing startDate", mutate: testutil.Field("startDate", nil)},
			{name: "missing endDate", mutate: testutil.Field("endDate", nil)},
			{name: "bad date format", mutate: testutil.Field("startDate", "01/01/2024")},
			{name: "special requests too long", mutate: testutil.Field("specialRequests", strings.Repeat("a", 501))},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				req := stayInput()
				tc.mutate(req)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/drafts/"+opened.ID+"/edit", req, s.token)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})
}

// ================================================================================
// TestCheck
// ================================================================================

func (s *DraftHandlerTestSuite) TestCheck() {
	s.Run("success: available unit is quoted", func() {
		opened := s.open()
		s.availability.EXPECT().CheckAvailability(gomock.Any(), gomock.Any(), s.unit.ID(), gomock.Any()).Return(true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/drafts/"+opened.ID+"/check", stayInput(), s.token)

		var body resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("quoted", body.State)
		s.Equal("available", body.Availability)
		s.Require().NotNil(body.Quote)
		s.Equal(2, body.Quote.Nights)
		s.Equal(booking.MoneyFromFloat(200), body.Quote.Subtotal)
		s.Equal(booking.MoneyFromFloat(24), body.Quote.Tax)
		s.Equal(booking.MoneyFromFloat(224), body.Quote.Total)
		s.Equal(12.0, body.Quote.TaxPercent)
		s.True(body.CanSubmit)
	})

	s.Run("success: unavailable unit answers 200 with a notice", func() {
		opened := s.open()
		s.availability.EXPECT().CheckAvailability(gomock.Any(), gomock.Any(), s.unit.ID(), gomock.Any()).Return(false, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/drafts/"+opened.ID+"/check", stayInput(), s.token)

		var body resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("ready", body.State)
		s.Equal("unavailable", body.Availability)
		s.Equal("2024-01-03", body.EndDate)
		s.Equal(2, body.Guests)
		s.NotEmpty(body.Notice)
		s.Nil(body.Quote)
	})

	s.Run("error: 422 when guests exceed capacity, without a remote call", func() {
		opened := s.open()
		req := stayInput()
		req["guests"] = 3

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/drafts/"+opened.ID+"/check", req, s.token)

		var body draftError
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusUnprocessableEntity, nil)
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &body))
		s.Require().NotNil(body.Detail)
		s.Equal("This unit allows at most 2 guests.", body.Detail.Notice)
		s.Equal("ready", body.Detail.State)
	})

	s.Run("error: 422 when check-out is not after check-in", func() {
		opened := s.open()
		req := stayInput()
		req["endDate"] = "2024-01-01"

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/drafts/"+opened.ID+"/check", req, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid reservation details")
	})

	s.Run("error: 502 when the availability service fails", func() {
		opened := s.open()
		s.availability.EXPECT().CheckAvailability(gomock.Any(), gomock.Any(), s.unit.ID(), gomock.Any()).
			Return(false, infra.WrapRemoteErr(s.logger, infra.KindServer, http.StatusServiceUnavailable, "down", nil)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/drafts/"+opened.ID+"/check", nil, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Availability check failed")
	})

	s.Run("error: 401 keeps the inputs when the session expired", func() {
		opened := s.open()
		expired := s.jwt.CreateExpiredToken(s.T(), "user-1")

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/drafts/"+opened.ID+"/check", stayInput(), expired)

		var body draftError
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusUnauthorized, nil)
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &body))
		s.Require().NotNil(body.Detail)
		s.Equal("ready", body.Detail.State)
		s.Equal(2, body.Detail.Guests)
		s.Equal("2024-01-03", body.Detail.EndDate)
		s.Require().NotNil(body.Detail.Next)
		s.Equal("login", body.Detail.Next.Kind)
	})

	s.Run("error: 409 when checking a quoted draft without editing", func() {
		opened := s.open()
		s.quote(opened.ID)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/drafts/"+opened.ID+"/check", nil, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Action not allowed")
	})
}

// ================================================================================
// TestSubmit
// ================================================================================

func (s *DraftHandlerTestSuite) TestSubmit() {
	s.Run("success: 201 with confirmed reservation", func() {
		opened := s.open()
		s.quote(opened.ID)

		var sent booking.ReservationRequest
		s.store.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ any, req booking.ReservationRequest) (*booking.Reservation, error) {
				sent = req
				return &booking.Reservation{ID: "res-1", Code: "RES-0001", UnitID: s.unit.ID(), Status: booking.ReservationPending}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/drafts/"+opened.ID+"/submit", nil, s.token)

		var body resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("confirmed", body.State)
		s.Require().NotNil(body.Reservation)
		s.Equal("RES-0001", body.Reservation.Code)
		s.True(body.Reservation.Cancelable)
		s.Require().NotNil(body.Next)
		s.Equal("my_reservations", body.Next.Kind)
		s.NotEmpty(sent.IdempotencyKey)
		s.Equal(booking.MoneyFromFloat(112), sent.Quote.Total)

		rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/drafts/"+opened.ID, nil, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Draft not found")
		s.Zero(s.registry.Len())
	})

	s.Run("error: 401 with login intent when the session expired", func() {
		opened := s.open()
		s.quote(opened.ID)
		expired := s.jwt.CreateExpiredToken(s.T(), "user-1")

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/drafts/"+opened.ID+"/submit", nil, expired)

		var body draftError
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusUnauthorized, nil)
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &body))
		s.Equal("Authentication required", body.Error.Message)
		s.Require().NotNil(body.Detail)
		s.Equal(opened.ID, body.Detail.ID)
		s.Equal("quoted", body.Detail.State)
		s.NotNil(body.Detail.Quote)
		s.Require().NotNil(body.Detail.Next)
		s.Equal("login", body.Detail.Next.Kind)
		s.Equal("/units/"+s.unit.ID()+"/reserve", body.Detail.Next.ReturnTo)

		rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/drafts/"+opened.ID, nil, s.token)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 409 before a quote exists", func() {
		opened := s.open()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/drafts/"+opened.ID+"/submit", nil, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "no current quote")
	})

	s.Run("error: 409 when the dates were taken meanwhile", func() {
		opened := s.open()
		s.quote(opened.ID)
		s.store.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRemoteErr(s.logger, infra.KindConflict, http.StatusConflict, "ocupado", nil)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/drafts/"+opened.ID+"/submit", nil, s.token)

		var body draftError
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusConflict, nil)
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &body))
		s.Contains(body.Error.Message, "Dates no longer available")
		s.Equal("ready", body.Detail.State)
		s.Equal("unknown", body.Detail.Availability)
	})

	s.Run("error: 502 keeps the quote for a retry", func() {
		opened := s.open()
		s.quote(opened.ID)
		s.store.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRemoteErr(s.logger, infra.KindServer, http.StatusInternalServerError, "boom", nil)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/drafts/"+opened.ID+"/submit", nil, s.token)

		var body draftError
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusBadGateway, nil)
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &body))
		s.Equal("quoted", body.Detail.State)
		s.True(body.Detail.CanSubmit)
		s.NotNil(body.Detail.Quote)
	})
}
