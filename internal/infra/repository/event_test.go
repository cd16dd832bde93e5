//go:build unit

package repository

import (
	"context"
	"testing"

	"creator-booking/internal/pkg/pgconv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEventFetchUnpublished(t *testing.T) {
	ctx := context.Background()

	t.Run("success: decodes rows in seq order", func(t *testing.T) {
		db := new(MockDBTX)
		rows := &fakeRows{rows: [][]any{
			{int64(4), "booking.created", []byte(`{"booking_id":"1"}`), pgconv.TimeToPgtype(t0)},
			{int64(5), "receipt.burned", []byte(`{"booking_id":"1"}`), pgconv.TimeToPgtype(t0)},
		}}
		db.On("Query", ctx, fetchUnpublished, []any{10}).Return(rows, nil)

		events, err := NewEventRepository(db).FetchUnpublished(ctx, 10)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, int64(4), events[0].Seq)
		assert.Equal(t, "booking.created", events[0].Event.Type)
		assert.Equal(t, "1", events[0].Event.Attributes["booking_id"])
		assert.True(t, events[0].Event.OccurredAt.Equal(t0))
		assert.Equal(t, int64(5), events[1].Seq)
	})

	t.Run("query runs in a read-only transaction", func(t *testing.T) {
		assert.NotContains(t, fetchUnpublished, "FOR UPDATE")
		assert.Contains(t, fetchUnpublished, "ORDER BY seq")
	})

	t.Run("success: marking nothing skips the database", func(t *testing.T) {
		db := new(MockDBTX)
		require.NoError(t, NewEventRepository(db).MarkPublished(ctx, nil, t0))
		db.AssertNotCalled(t, "Exec", mock.Anything, mock.Anything, mock.Anything)
	})
}
