//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"creator-booking/internal/domain/user"
	"creator-booking/internal/pkg/config"
	"creator-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration)
	token, err := service.GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs a token whose expiry is already in the past.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, -time.Minute)
	token, err := service.GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}
