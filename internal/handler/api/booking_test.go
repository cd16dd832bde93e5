//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"creator-booking/internal/domain/booking"
	"creator-booking/internal/handler/api"
	resdto "creator-booking/internal/handler/dto/response"
	"creator-booking/internal/pkg/errs"
	"creator-booking/internal/usecase/commands"
	"creator-booking/internal/usecase/queries"
	"creator-booking/tests/common/builder"
	"creator-booking/tests/common/httptest"
	"creator-booking/tests/common/testutil"
	commandsmock "creator-booking/tests/mock/commands"
	queriesmock "creator-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	auth := newAuthMiddleware().RequireAuth()
	s.router.POST("/bookings", auth, s.handler.Reserve)
	s.router.GET("/bookings/:id", s.handler.Get)
	s.router.GET("/bookings/:id/active", auth, s.handler.IsActive)
	s.router.GET("/users/:id/active-booking", auth, s.handler.ActiveBooking)
	s.router.GET("/users/:id/bookings", auth, s.handler.ListUserBookings)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *BookingHandlerTestSuite) TestReserve() {
	url := "/bookings"
	b := builder.NewBookingBuilder().WithPayer(viewer.ID)
	reqBody := b.BuildRequestDTO()
	created, err := b.BuildDomain()
	s.Require().NoError(err)

	s.Run("success: returns 201 with the settled booking", func() {
		s.mockCommands.EXPECT().Reserve(gomock.Any(), reqBody.ToInput(viewer.ID)).
			Return(&commands.ReserveResult{Booking: created}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, viewerToken)

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(uint64(1), response.ID)
		s.Equal(viewer.ID.String(), response.Payer)
		s.Equal(viewer.ID.String(), response.Owner)
		s.Equal(response.Amount, response.Fee+response.CreatorShare)
		s.Equal(b.Start.Unix(), response.Start)
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 401 Unauthorized with unknown token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "forged")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseBooking{
			{name: "missing field: creator_id", mutate: testutil.Field("creator_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: start", mutate: testutil.Field("start", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: end", mutate: testutil.Field("end", nil), expectCode: http.StatusBadRequest},
			{name: "malformed creator_id", mutate: testutil.Field("creator_id", "not-a-uuid"), expectCode: http.StatusBadRequest},
			{name: "malformed start", mutate: testutil.Field("start", "tomorrow"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, viewerToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"invalid window", errs.ErrInvalidTimeWindow, http.StatusBadRequest, "Invalid time window"},
			{"self booking", errs.ErrSelfBookingNotAllowed, http.StatusBadRequest, "Creators cannot book themselves"},
			{"creator not found", errs.ErrCreatorNotFound, http.StatusNotFound, "Creator not found"},
			{
				"payment failed over insufficient funds",
				errs.Mark(errs.Wrap(errs.ErrInsufficientFunds, "collect"), errs.ErrPaymentFailed),
				http.StatusPaymentRequired,
				"Payment failed",
			},
			{"id space exhausted", errs.ErrIdentifierSpaceExhausted, http.StatusServiceUnavailable, "Booking identifiers exhausted"},
			{"internal server error", errors.New("database error"), http.StatusInternalServerError, "Reservation failed"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Reserve(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, viewerToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	view := builder.NewBookingBuilder().WithID(7).BuildView()

	s.Run("success: returns booking with owner", func() {
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), booking.ID(7)).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/7", nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(uint64(7), response.ID)
		s.Equal(view.Owner.String(), response.Owner)
	})

	s.Run("success: burned receipt omits owner", func() {
		burned := *view
		burned.Owner = nil
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), booking.ID(7)).Return(&burned, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/7", nil, "")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.NotContains(response, "owner")
	})

	s.Run("error: 400 on malformed id", func() {
		for _, id := range []string{"abc", "0", "-1"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking id")
		}
	})

	s.Run("error: 404 when unknown", func() {
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), booking.ID(9)).Return(nil, errs.ErrNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/9", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

func (s *BookingHandlerTestSuite) TestIsActive() {
	s.Run("success: reports active flag for caller", func() {
		s.mockQueries.EXPECT().IsActive(gomock.Any(), viewer.ID, booking.ID(3)).Return(true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/3/active", nil, viewerToken)

		var response resdto.IsActiveResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(resdto.IsActiveResponse{BookingID: 3, Active: true}, response)
	})

	s.Run("error: 403 when caller may not check", func() {
		s.mockQueries.EXPECT().IsActive(gomock.Any(), viewer.ID, booking.ID(3)).Return(false, errs.ErrUnauthorized).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/3/active", nil, viewerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Not allowed")
	})

	s.Run("error: 404 after burn", func() {
		s.mockQueries.EXPECT().IsActive(gomock.Any(), viewer.ID, booking.ID(3)).Return(false, errs.ErrNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/3/active", nil, viewerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *BookingHandlerTestSuite) TestActiveBooking() {
	url := "/users/" + viewer.ID.String() + "/active-booking"

	s.Run("success: returns resolved id", func() {
		s.mockQueries.EXPECT().ResolveActive(gomock.Any(), viewer.ID, viewer.ID).Return(booking.ID(5), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, viewerToken)

		var response resdto.ActiveBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(uint64(5), response.BookingID)
		s.Equal(viewer.ID.String(), response.UserID)
	})

	s.Run("success: zero when nothing is active or upcoming", func() {
		s.mockQueries.EXPECT().ResolveActive(gomock.Any(), viewer.ID, viewer.ID).Return(booking.None, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, viewerToken)

		var response resdto.ActiveBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Zero(response.BookingID)
	})

	s.Run("error: 403 for another user under self policy", func() {
		other := uuid.New()
		s.mockQueries.EXPECT().ResolveActive(gomock.Any(), viewer.ID, other).Return(booking.None, errs.ErrUnauthorized).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/"+other.String()+"/active-booking", nil, viewerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("error: 400 on malformed user id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/nope/active-booking", nil, viewerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *BookingHandlerTestSuite) TestListUserBookings() {
	url := "/users/" + viewer.ID.String() + "/bookings"
	start := time.Date(2026, 1, 1, 1, 0, 0, 0, time.UTC)
	views := []queries.IndexEntryView{
		{BookingID: 1, Creator: uuid.New(), Start: start, End: start.Add(time.Hour), Expired: true},
		{BookingID: 2, Creator: uuid.New(), Start: start.Add(2 * time.Hour), End: start.Add(3 * time.Hour), Active: true},
	}

	s.Run("success: returns index entries in order", func() {
		s.mockQueries.EXPECT().ListUserIndex(gomock.Any(), viewer.ID, viewer.ID).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, viewerToken)

		var response []resdto.IndexEntryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal(uint64(1), response[0].BookingID)
		s.True(response[0].Expired)
		s.True(response[1].Active)
		s.Equal(start.Unix(), response[0].Start)
	})

	s.Run("success: empty index is an empty array", func() {
		s.mockQueries.EXPECT().ListUserIndex(gomock.Any(), viewer.ID, viewer.ID).Return([]queries.IndexEntryView{}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, viewerToken)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})
}
