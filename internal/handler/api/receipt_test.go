//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"creator-booking/internal/domain/booking"
	"creator-booking/internal/handler/api"
	reqdto "creator-booking/internal/handler/dto/request"
	"creator-booking/internal/pkg/errs"
	"creator-booking/tests/common/httptest"
	commandsmock "creator-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReceiptHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReceiptCommands
}

func (s *ReceiptHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReceiptCommands(s.mockCtrl)
	handler := api.NewReceiptHandler(s.mockCommands)

	auth := newAuthMiddleware().RequireAuth()
	s.router.POST("/receipts/:id/transfer", auth, handler.Transfer)
	s.router.DELETE("/receipts/:id", auth, handler.Burn)
}

func (s *ReceiptHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReceiptHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReceiptHandlerTestSuite))
}

func (s *ReceiptHandlerTestSuite) TestTransfer() {
	to := uuid.New()
	body := reqdto.TransferReceiptRequest{To: to}

	s.Run("success: 204 No Content", func() {
		s.mockCommands.EXPECT().Transfer(gomock.Any(), viewer.ID, booking.ID(4), to).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/receipts/4/transfer", body, viewerToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 when recipient is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/receipts/4/transfer", map[string]any{}, viewerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 403 when caller is not the holder", func() {
		s.mockCommands.EXPECT().Transfer(gomock.Any(), viewer.ID, booking.ID(4), to).Return(errs.ErrUnauthorized).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/receipts/4/transfer", body, viewerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Not allowed")
	})

	s.Run("error: 409 on transfer to self", func() {
		s.mockCommands.EXPECT().Transfer(gomock.Any(), viewer.ID, booking.ID(4), to).Return(errs.ErrNoOp).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/receipts/4/transfer", body, viewerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Value unchanged")
	})
}

func (s *ReceiptHandlerTestSuite) TestBurn() {
	s.Run("success: 204 No Content", func() {
		s.mockCommands.EXPECT().Burn(gomock.Any(), viewer.ID, booking.ID(4)).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/receipts/4", nil, viewerToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when already burned", func() {
		s.mockCommands.EXPECT().Burn(gomock.Any(), viewer.ID, booking.ID(4)).Return(errs.ErrNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/receipts/4", nil, viewerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/receipts/4", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}
