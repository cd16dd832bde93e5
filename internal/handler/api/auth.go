package api

import (
	"net/http"

	reqdto "creator-booking/internal/handler/dto/request"
	resdto "creator-booking/internal/handler/dto/response"
	"creator-booking/internal/handler/httperr"
	"creator-booking/internal/pkg/config"
	"creator-booking/internal/pkg/cookie"
	"creator-booking/internal/pkg/errs"
	"creator-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds      commands.AuthCommands
	cookieCfg config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:      cmds,
		cookieCfg: cfg.Cookie,
	}
}

// @Summary Sign up
// @Description Create an account. The account id is the caller's ledger identity.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.SignupRequest true "Signup request"
// @Success 201 {object} resdto.SignupResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req reqdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	account, err := h.cmds.Signup(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errs.Is(err, commands.ErrEmailTaken) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Email already registered", nil)
			return
		}
		if errs.Is(err, errs.ErrDatabaseOperationFailed) {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Signup failed", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid signup data", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.SignupResponse{
		ID:    account.ID().String(),
		Email: account.Email().Value(),
		Role:  account.Role().String(),
	})
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errs.Is(err, commands.ErrInvalidCredentials) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, result.AccessToken, result.ExpiresIn)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.AccessToken,
		UserID:      result.UserID.String(),
		Role:        result.Role.String(),
		ExpiresAt:   result.ExpiresAt.Unix(),
	})
}

// @Summary User logout
// @Description Clears the access token cookie
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// JWTs are stateless; bearer clients drop the token themselves.
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}
