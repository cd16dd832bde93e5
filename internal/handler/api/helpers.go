package api

import (
	"net/http"

	"creator-booking/internal/domain/booking"
	"creator-booking/internal/handler/httperr"
	"creator-booking/internal/handler/middleware"
	"creator-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func requireActor(c *gin.Context) (shared.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return shared.Actor{}, false
	}
	return actor, true
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

func bookingIDParam(c *gin.Context) (booking.ID, bool) {
	id, err := booking.ParseID(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return booking.None, false
	}
	return id, true
}
