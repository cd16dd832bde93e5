//go:build unit

package jwt

import (
	"testing"
	"time"

	"creator-booking/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	s := NewService("secret", time.Hour)
	id := uuid.New()

	token, err := s.GenerateAccessToken(id, user.RoleOperator)
	require.NoError(t, err)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "operator", claims.Role)
	assert.Equal(t, id.String(), claims.Subject)
}

func TestValidateRejects(t *testing.T) {
	s := NewService("secret", time.Hour)
	id := uuid.New()

	t.Run("expired", func(t *testing.T) {
		past := NewService("secret", time.Minute)
		past.now = func() time.Time { return time.Now().Add(-time.Hour) }
		token, err := past.GenerateAccessToken(id, user.RoleViewer)
		require.NoError(t, err)

		_, err = s.ValidateToken(token)
		require.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewService("other", time.Hour)
		token, err := other.GenerateAccessToken(id, user.RoleViewer)
		require.NoError(t, err)

		_, err = s.ValidateToken(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := s.ValidateToken("not-a-token")
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}
