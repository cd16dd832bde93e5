//go:build unit

package uow

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"serialization failure", &pgconn.PgError{Code: "40001"}, true},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, true},
		{"wrapped serialization failure", fmt.Errorf("commit: %w", &pgconn.PgError{Code: "40001"}), true},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestShouldRetry(t *testing.T) {
	retryable := &pgconn.PgError{Code: "40001"}

	assert.True(t, shouldRetry(retryable, 0, 3))
	assert.True(t, shouldRetry(retryable, 2, 3))
	assert.False(t, shouldRetry(retryable, 3, 3))
	assert.False(t, shouldRetry(errors.New("boom"), 0, 3))
}

func TestCalculateBackoff(t *testing.T) {
	base := 10 * time.Millisecond
	for attempt := range 4 {
		wait := time.Duration(1<<attempt) * base
		got := calculateBackoff(attempt, base)
		assert.GreaterOrEqual(t, got, wait)
		assert.Less(t, got, wait+wait/5+1)
	}
}

func TestCryptoRandInt63n(t *testing.T) {
	assert.Zero(t, cryptoRandInt63n(0))
	assert.Zero(t, cryptoRandInt63n(-5))
	for range 100 {
		n := cryptoRandInt63n(7)
		assert.GreaterOrEqual(t, n, int64(0))
		assert.Less(t, n, int64(7))
	}
}
