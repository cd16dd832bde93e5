//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"creator-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFundsBalance(t *testing.T) {
	ctx := context.Background()
	w := newWorld(t)
	q := queries.NewFundsQueries(w.store)

	p := w.payer(t, 10_000)
	view, err := q.Balance(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, &queries.BalanceView{Account: p, Balance: 10_000, Allowance: 10_000}, view)

	c := w.creator(t)
	id := w.reserve(t, p, c, time.Hour, 2*time.Hour)
	require.NotZero(t, id)

	after, err := q.Balance(ctx, p)
	require.NoError(t, err)
	spent := view.Balance - after.Balance
	assert.Positive(t, spent)
	assert.Equal(t, view.Allowance-spent, after.Allowance)

	stranger, err := q.Balance(ctx, uuid.New())
	require.NoError(t, err)
	assert.Zero(t, stranger.Balance)
	assert.Zero(t, stranger.Allowance)
}
