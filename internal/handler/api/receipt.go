package api

import (
	"net/http"

	reqdto "creator-booking/internal/handler/dto/request"
	"creator-booking/internal/handler/httperr"
	"creator-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ReceiptHandler struct {
	cmds commands.ReceiptCommands
}

func NewReceiptHandler(cmds commands.ReceiptCommands) *ReceiptHandler {
	return &ReceiptHandler{cmds: cmds}
}

// @Summary Transfer receipt
// @Tags receipts
// @Accept json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Param request body reqdto.TransferReceiptRequest true "Recipient"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /receipts/{id}/transfer [post]
func (h *ReceiptHandler) Transfer(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	var req reqdto.TransferReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.Transfer(c.Request.Context(), actor.ID, id, req.To); err != nil {
		httperr.AbortWithDomainError(c, err, "Transfer failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Burn receipt
// @Tags receipts
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /receipts/{id} [delete]
func (h *ReceiptHandler) Burn(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	if err := h.cmds.Burn(c.Request.Context(), actor.ID, id); err != nil {
		httperr.AbortWithDomainError(c, err, "Burn failed")
		return
	}
	c.Status(http.StatusNoContent)
}
