//go:build unit

package api_test

import (
	"creator-booking/internal/domain/user"
	"creator-booking/internal/handler/middleware"
	"creator-booking/internal/pkg/jwt"
	"creator-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	viewerToken = "viewer-token"
	adminToken  = "admin-token"
)

var (
	viewer = shared.Actor{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Role: user.RoleViewer}
	admin  = shared.Actor{ID: uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"), Role: user.RoleAdmin}
)

type stubValidator map[string]shared.Actor

func (v stubValidator) ValidateToken(token string) (shared.Actor, error) {
	actor, ok := v[token]
	if !ok {
		return shared.Actor{}, jwt.ErrInvalidToken
	}
	return actor, nil
}

func newAuthMiddleware() *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(stubValidator{viewerToken: viewer, adminToken: admin})
}
