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

type CreatorHandler struct {
	cmds commands.CreatorCommands
	q    queries.CreatorQueries
}

func NewCreatorHandler(cmds commands.CreatorCommands, q queries.CreatorQueries) *CreatorHandler {
	return &CreatorHandler{cmds: cmds, q: q}
}

// @Summary Register as creator
// @Description Publish an hourly rate and metadata URI under the caller's identity
// @Tags creators
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatorTermsRequest true "Creator terms"
// @Success 201 {object} resdto.CreatorResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /creators [post]
func (h *CreatorHandler) Register(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreatorTermsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	profile, err := h.cmds.Register(c.Request.Context(), actor.ID, req.Rate, req.MetadataURI)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Register creator failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromProfile(profile))
}

// @Summary Update own creator terms
// @Tags creators
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatorTermsRequest true "Creator terms"
// @Success 200 {object} resdto.CreatorResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /creators/me [put]
func (h *CreatorHandler) UpdateMe(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreatorTermsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	profile, err := h.cmds.Update(c.Request.Context(), actor.ID, req.Rate, req.MetadataURI)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Update creator failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromProfile(profile))
}

// @Summary Get creator
// @Description Registry lookup; unknown identities return exists=false
// @Tags creators
// @Produce json
// @Param id path string true "Creator ID"
// @Success 200 {object} resdto.CreatorResponse
// @Failure 400 {object} httperr.Response
// @Router /creators/{id} [get]
func (h *CreatorHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to load creator")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCreatorView(view))
}
