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

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Reserve a creator's time
// @Description Pays the creator's current rate and records the booking in one step
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReserveRequest true "Reservation"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Reserve(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Reserve(c.Request.Context(), req.ToInput(actor.ID))
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Reservation failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBooking(result.Booking))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	view, err := h.q.GetBooking(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to load booking")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Is booking active
// @Description Whether now falls inside the booking's window
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.IsActiveResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/active [get]
func (h *BookingHandler) IsActive(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	active, err := h.q.IsActive(c.Request.Context(), actor.ID, id)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to check booking")
		return
	}
	c.JSON(http.StatusOK, resdto.IsActiveResponse{BookingID: uint64(id), Active: active})
}

// @Summary Resolve active booking
// @Description The user's in-progress booking, else the next upcoming one, else 0
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} resdto.ActiveBookingResponse
// @Failure 403 {object} httperr.Response
// @Router /users/{id}/active-booking [get]
func (h *BookingHandler) ActiveBooking(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	userID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	id, err := h.q.ResolveActive(c.Request.Context(), actor.ID, userID)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to resolve booking")
		return
	}
	c.JSON(http.StatusOK, resdto.ActiveBookingResponse{UserID: userID.String(), BookingID: uint64(id)})
}

// @Summary List user's booking index
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {array} resdto.IndexEntryResponse
// @Failure 403 {object} httperr.Response
// @Router /users/{id}/bookings [get]
func (h *BookingHandler) ListUserBookings(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	userID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	views, err := h.q.ListUserIndex(c.Request.Context(), actor.ID, userID)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to list bookings")
		return
	}
	c.JSON(http.StatusOK, resdto.FromIndexEntries(views))
}
