package api

import (
	"net/http"

	reqdto "creator-booking/internal/handler/dto/request"
	resdto "creator-booking/internal/handler/dto/response"
	"creator-booking/internal/handler/httperr"
	"creator-booking/internal/usecase/commands"
	"creator-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FundsHandler struct {
	cmds  commands.FundsCommands
	admin commands.AdminCommands
	q     queries.FundsQueries
}

func NewFundsHandler(cmds commands.FundsCommands, admin commands.AdminCommands, q queries.FundsQueries) *FundsHandler {
	return &FundsHandler{cmds: cmds, admin: admin, q: q}
}

// @Summary Approve settlement allowance
// @Description Sets how much the settlement engine may collect from the caller
// @Tags funds
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.ApproveRequest true "Allowance"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /funds/approve [post]
func (h *FundsHandler) Approve(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.Approve(c.Request.Context(), actor.ID, req.Amount); err != nil {
		httperr.AbortWithDomainError(c, err, "Approve failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Own balance
// @Tags funds
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BalanceResponse
// @Router /funds/balance [get]
func (h *FundsHandler) Balance(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	view, err := h.q.Balance(c.Request.Context(), actor.ID)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to load balance")
		return
	}
	res, err := resdto.FromBalanceView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to encode balance", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Deposit funds
// @Description Credits an account. Operator tooling for funding test and custody accounts.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.DepositRequest true "Deposit"
// @Success 200 {object} resdto.DepositResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/funds/deposit [post]
func (h *FundsHandler) Deposit(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	balance, err := h.admin.Deposit(c.Request.Context(), actor, req.Account, req.Amount)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Deposit failed")
		return
	}
	c.JSON(http.StatusOK, resdto.DepositResponse{Account: req.Account.String(), Balance: balance})
}
