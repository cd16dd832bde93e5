//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"creator-booking/internal/domain/ledger"
	"creator-booking/internal/domain/user"
	"creator-booking/internal/handler/api"
	reqdto "creator-booking/internal/handler/dto/request"
	resdto "creator-booking/internal/handler/dto/response"
	"creator-booking/internal/pkg/errs"
	"creator-booking/tests/common/httptest"
	commandsmock "creator-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAdminCommands
	wallet       uuid.UUID
	custody      uuid.UUID
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAdminCommands(s.mockCtrl)
	handler := api.NewAdminHandler(s.mockCommands)
	s.wallet = uuid.MustParse("00000000-0000-0000-0000-00000000f00d")
	s.custody = uuid.MustParse("00000000-0000-0000-0000-0000000c0de0")

	mw := newAuthMiddleware()
	group := s.router.Group("/admin", mw.RequireAuth(), mw.RequireRoleAtLeast(user.RoleAdmin))
	group.PUT("/fee-rate", handler.SetFeeRate)
	group.PUT("/platform-wallet", handler.SetPlatformWallet)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) settings(ppm uint32, wallet uuid.UUID) *ledger.Settings {
	st, err := ledger.NewSettings(ppm, wallet, s.custody)
	s.Require().NoError(err)
	return st
}

func (s *AdminHandlerTestSuite) TestSetFeeRate() {
	url := "/admin/fee-rate"

	s.Run("success: returns new settings", func() {
		s.mockCommands.EXPECT().SetFeeRate(gomock.Any(), admin, uint32(25_000)).
			Return(s.settings(25_000, s.wallet), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqdto.FeeRateRequest{FeePPM: 25_000}, adminToken)

		var response resdto.SettingsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(uint32(25_000), response.FeePPM)
		s.Equal(s.wallet.String(), response.PlatformWallet)
		s.Equal(s.custody.String(), response.Custody)
	})

	s.Run("error: 403 for non-admin", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqdto.FeeRateRequest{FeePPM: 1}, viewerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"out of range", errs.ErrInvalidRate, http.StatusBadRequest, "Invalid rate"},
			{"unchanged", errs.ErrNoOp, http.StatusConflict, "Value unchanged"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().SetFeeRate(gomock.Any(), admin, gomock.Any()).Return(nil, tc.commandsError).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqdto.FeeRateRequest{FeePPM: 2_000_000}, adminToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AdminHandlerTestSuite) TestSetPlatformWallet() {
	url := "/admin/platform-wallet"
	next := uuid.New()

	s.Run("success: returns new settings", func() {
		s.mockCommands.EXPECT().SetPlatformWallet(gomock.Any(), admin, next).
			Return(s.settings(10_000, next), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqdto.PlatformWalletRequest{Wallet: next}, adminToken)

		var response resdto.SettingsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(next.String(), response.PlatformWallet)
	})

	s.Run("error: 400 on nil wallet", func() {
		s.mockCommands.EXPECT().SetPlatformWallet(gomock.Any(), admin, uuid.Nil).Return(nil, errs.ErrInvalidIdentity).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqdto.PlatformWalletRequest{}, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid identity")
	})
}
