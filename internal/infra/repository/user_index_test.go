//go:build unit

package repository

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"creator-booking/internal/domain/booking"
	"creator-booking/internal/infra"
	"creator-booking/internal/pkg/errs"
	"creator-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeRows serves fixed rows; each value is assigned to the matching Scan
// destination, which must have the value's type.
type fakeRows struct {
	rows   [][]any
	pos    int
	err    error
	closed bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.closed || r.pos >= len(r.rows) {
		r.closed = true
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.rows[r.pos-1]
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(row[i]))
	}
	return nil
}

func (r *fakeRows) Values() ([]any, error) {
	return r.rows[r.pos-1], nil
}

var (
	t0       = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	indexFor = uuid.MustParse("33333333-3333-3333-3333-333333333333")
)

func TestUserIndexLoad(t *testing.T) {
	ctx := context.Background()
	creatorID := uuid.New()

	t.Run("success: keeps insertion order and converts ids", func(t *testing.T) {
		db := new(MockDBTX)
		rows := &fakeRows{rows: [][]any{
			{int64(7), creatorID, pgconv.TimeToPgtype(t0.Add(3 * time.Hour)), pgconv.TimeToPgtype(t0.Add(4 * time.Hour))},
			{int64(2), creatorID, pgconv.TimeToPgtype(t0), pgconv.TimeToPgtype(t0.Add(time.Hour))},
		}}
		db.On("Query", ctx, listUserIndex, []any{indexFor}).Return(rows, nil)

		ix, err := NewUserIndexRepository(db).Load(ctx, indexFor)
		require.NoError(t, err)
		entries := ix.Entries()
		require.Len(t, entries, 2)
		assert.Equal(t, booking.ID(7), entries[0].BookingID)
		assert.Equal(t, booking.ID(2), entries[1].BookingID)
		assert.Equal(t, creatorID, entries[1].Creator)
		assert.True(t, entries[0].End.Equal(t0.Add(4*time.Hour)))
		assert.True(t, rows.closed)
	})

	t.Run("error: query failure is classified", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("Query", ctx, listUserIndex, []any{indexFor}).Return((*fakeRows)(nil), errors.New("conn reset"))

		_, err := NewUserIndexRepository(db).Load(ctx, indexFor)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestUserIndexDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("success: sends ids as int64 in one statement", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("Exec", ctx, deleteUserIndexEntries, []any{indexFor, []int64{1, 3, 4}}).Return(updated, nil)

		err := NewUserIndexRepository(db).Delete(ctx, indexFor, []booking.ID{1, 3, 4})
		require.NoError(t, err)
		db.AssertExpectations(t)
	})

	t.Run("success: nothing to delete skips the database", func(t *testing.T) {
		db := new(MockDBTX)
		require.NoError(t, NewUserIndexRepository(db).Delete(ctx, indexFor, nil))
		db.AssertNotCalled(t, "Exec", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("error: exec failure is classified", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("Exec", ctx, deleteUserIndexEntries, mock.Anything).Return(pgconn.CommandTag{}, errors.New("conn reset"))

		err := NewUserIndexRepository(db).Delete(ctx, indexFor, []booking.ID{1})
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestUserIndexDeleteExpired(t *testing.T) {
	ctx := context.Background()
	now := pgconv.TimeToPgtype(t0)

	t.Run("success: returns removed ids in index order", func(t *testing.T) {
		db := new(MockDBTX)
		rows := &fakeRows{rows: [][]any{{int64(1)}, {int64(3)}, {int64(4)}}}
		db.On("Query", ctx, deleteExpiredUserIndex, []any{indexFor, now}).Return(rows, nil)

		ids, err := NewUserIndexRepository(db).DeleteExpired(ctx, indexFor, t0)
		require.NoError(t, err)
		assert.Equal(t, []booking.ID{1, 3, 4}, ids)
	})

	t.Run("success: nothing expired returns nil", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("Query", ctx, deleteExpiredUserIndex, []any{indexFor, now}).Return(&fakeRows{}, nil)

		ids, err := NewUserIndexRepository(db).DeleteExpired(ctx, indexFor, t0)
		require.NoError(t, err)
		assert.Nil(t, ids)
	})

	t.Run("error: row error is classified", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("Query", ctx, deleteExpiredUserIndex, []any{indexFor, now}).Return(&fakeRows{err: errors.New("conn reset")}, nil)

		_, err := NewUserIndexRepository(db).DeleteExpired(ctx, indexFor, t0)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("query removes by end time and reports in seq order", func(t *testing.T) {
		assert.Contains(t, deleteExpiredUserIndex, "end_at <= $2")
		assert.Contains(t, deleteExpiredUserIndex, "ORDER BY seq")
	})
}

func TestBookingNextID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: returns the allocated id", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("QueryRow", ctx, allocateBookingID, mock.Anything).Return(int64Row{v: 42})

		id, err := NewBookingRepository(db).NextID(ctx)
		require.NoError(t, err)
		assert.Equal(t, booking.ID(42), id)
	})

	t.Run("error: counter at the limit exhausts the id space", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("QueryRow", ctx, allocateBookingID, mock.Anything).Return(int64Row{err: pgx.ErrNoRows})

		id, err := NewBookingRepository(db).NextID(ctx)
		require.ErrorIs(t, err, errs.ErrIdentifierSpaceExhausted)
		assert.Equal(t, booking.None, id)
	})

	t.Run("error: database failure is classified", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("QueryRow", ctx, allocateBookingID, mock.Anything).Return(int64Row{err: errors.New("conn reset")})

		_, err := NewBookingRepository(db).NextID(ctx)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.False(t, errs.Is(err, errs.ErrIdentifierSpaceExhausted))
	})
}
