//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"creator-booking/internal/domain/user"
	"creator-booking/internal/handler/middleware"
	"creator-booking/internal/pkg/cookie"
	"creator-booking/internal/pkg/jwt"
	"creator-booking/internal/usecase/shared"
	"creator-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator map[string]shared.Actor

func (v stubValidator) ValidateToken(token string) (shared.Actor, error) {
	actor, ok := v[token]
	if !ok {
		return shared.Actor{}, jwt.ErrInvalidToken
	}
	return actor, nil
}

var (
	operator = shared.Actor{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Role: user.RoleOperator}
	admin    = shared.Actor{ID: uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"), Role: user.RoleAdmin}
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := middleware.NewAuthMiddleware(stubValidator{"op": operator, "root": admin})
	r := gin.New()

	whoami := func(c *gin.Context) {
		id, ok := middleware.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"id": id.String(), "authenticated": ok})
	}
	r.GET("/private", mw.RequireAuth(), whoami)
	r.GET("/admin", mw.RequireAuth(), mw.RequireRoleAtLeast(user.RoleAdmin), whoami)
	r.GET("/optional", mw.OptionalAuth(), whoami)
	r.GET("/misconfigured", mw.RequireRoleAtLeast(user.RoleViewer), whoami)
	return r
}

func TestRequireAuth(t *testing.T) {
	r := newRouter()

	t.Run("bearer header", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/private", nil, "op")
		var body map[string]any
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, operator.ID.String(), body["id"])
	})

	t.Run("cookie takes precedence", func(t *testing.T) {
		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: "root"}}
		rec := httptest.PerformRequestWithCookies(t, r, http.MethodGet, "/private", nil, cookies, "op")
		var body map[string]any
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, admin.ID.String(), body["id"])
	})

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/private", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("invalid token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/private", nil, "forged")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestRequireRoleAtLeast(t *testing.T) {
	r := newRouter()

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/admin", nil, "root")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.PerformRequest(t, r, http.MethodGet, "/admin", nil, "op")
	httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Insufficient permissions")

	rec = httptest.PerformRequest(t, r, http.MethodGet, "/misconfigured", nil, "root")
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "")
}

func TestOptionalAuth(t *testing.T) {
	r := newRouter()

	for name, tc := range map[string]struct {
		token string
		authn bool
	}{
		"anonymous":     {"", false},
		"invalid token": {"forged", false},
		"valid token":   {"op", true},
	} {
		t.Run(name, func(t *testing.T) {
			rec := httptest.PerformRequest(t, r, http.MethodGet, "/optional", nil, tc.token)
			var body map[string]any
			httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
			assert.Equal(t, tc.authn, body["authenticated"])
			if !tc.authn {
				assert.Equal(t, uuid.Nil.String(), body["id"])
			}
		})
	}
}
