package api

import (
	"net/http"

	reqdto "creator-booking/internal/handler/dto/request"
	resdto "creator-booking/internal/handler/dto/response"
	"creator-booking/internal/handler/httperr"
	"creator-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	cmds commands.AdminCommands
}

func NewAdminHandler(cmds commands.AdminCommands) *AdminHandler {
	return &AdminHandler{cmds: cmds}
}

// @Summary Set platform fee rate
// @Description Fee in parts-per-million of the hourly rate (10000 = 1%)
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.FeeRateRequest true "Fee rate"
// @Success 200 {object} resdto.SettingsResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/fee-rate [put]
func (h *AdminHandler) SetFeeRate(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.FeeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	settings, err := h.cmds.SetFeeRate(c.Request.Context(), actor, req.FeePPM)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Set fee rate failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSettings(settings))
}

// @Summary Set platform wallet
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PlatformWalletRequest true "Wallet"
// @Success 200 {object} resdto.SettingsResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/platform-wallet [put]
func (h *AdminHandler) SetPlatformWallet(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.PlatformWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	settings, err := h.cmds.SetPlatformWallet(c.Request.Context(), actor, req.Wallet)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Set platform wallet failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSettings(settings))
}
