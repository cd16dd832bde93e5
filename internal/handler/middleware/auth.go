package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"creator-booking/internal/domain/user"
	"creator-booking/internal/handler/httperr"
	"creator-booking/internal/pkg/cookie"
	"creator-booking/internal/usecase"
	"creator-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxActorKey = "actor"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Access token required", nil)
			return
		}

		actor, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxActorKey, actor)
		c.Next()
	}
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
			return
		}

		if !actor.Role.AtLeast(minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, nil, "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

// OptionalAuth authenticates the request if a token is present, but does not abort on failure.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		if actor, err := m.tokenValidator.ValidateToken(token); err == nil {
			c.Set(ctxActorKey, actor)
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetActor(c *gin.Context) (shared.Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return shared.Actor{}, false
	}
	actor, ok := v.(shared.Actor)
	return actor, ok
}

// GetUserID returns uuid.Nil for anonymous requests.
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	actor, ok := GetActor(c)
	if !ok {
		return uuid.Nil, false
	}
	return actor.ID, true
}
