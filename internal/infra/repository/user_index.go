package repository

import (
	"context"
	"time"

	"creator-booking/internal/domain/booking"
	"creator-booking/internal/infra"
	"creator-booking/internal/infra/db"
	"creator-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	listUserIndex = `
SELECT booking_id, creator_id, start_at, end_at
  FROM user_booking_index
 WHERE user_id = $1
 ORDER BY seq`

	appendUserIndex = `
INSERT INTO user_booking_index (user_id, booking_id, creator_id, start_at, end_at)
VALUES ($1, $2, $3, $4, $5)`

	deleteUserIndexEntries = `
DELETE FROM user_booking_index
 WHERE user_id = $1 AND booking_id = ANY($2)`

	// Served by the (user_id, end_at) index.
	deleteExpiredUserIndex = `
WITH removed AS (
    DELETE FROM user_booking_index
     WHERE user_id = $1 AND end_at <= $2
    RETURNING seq, booking_id
)
SELECT booking_id FROM removed ORDER BY seq`
)

type UserIndexRepository struct {
	db db.DBTX
}

func NewUserIndexRepository(dbtx db.DBTX) *UserIndexRepository {
	return &UserIndexRepository{db: dbtx}
}

func (r *UserIndexRepository) Load(ctx context.Context, user uuid.UUID) (*booking.UserIndex, error) {
	rows, err := r.db.Query(ctx, listUserIndex, user)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load user index", err)
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (booking.IndexEntry, error) {
		var (
			id             int64
			creatorID      uuid.UUID
			startAt, endAt pgtype.Timestamptz
		)
		if err := row.Scan(&id, &creatorID, &startAt, &endAt); err != nil {
			return booking.IndexEntry{}, err
		}
		return booking.IndexEntry{
			BookingID: booking.ID(id),
			Creator:   creatorID,
			Start:     pgconv.TimeFromPgtype(startAt),
			End:       pgconv.TimeFromPgtype(endAt),
		}, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan user index", err)
	}

	return booking.NewUserIndex(user, entries), nil
}

func (r *UserIndexRepository) Append(ctx context.Context, user uuid.UUID, e booking.IndexEntry) error {
	_, err := r.db.Exec(ctx, appendUserIndex,
		user,
		int64(e.BookingID),
		e.Creator,
		pgconv.TimeToPgtype(e.Start),
		pgconv.TimeToPgtype(e.End),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append user index entry", err)
	}
	return nil
}

func (r *UserIndexRepository) Delete(ctx context.Context, user uuid.UUID, ids []booking.ID) error {
	if len(ids) == 0 {
		return nil
	}
	raw := make([]int64, len(ids))
	for i, id := range ids {
		raw[i] = int64(id)
	}
	if _, err := r.db.Exec(ctx, deleteUserIndexEntries, user, raw); err != nil {
		return infra.WrapRepoErr("failed to delete user index entries", err)
	}
	return nil
}

func (r *UserIndexRepository) DeleteExpired(ctx context.Context, user uuid.UUID, now time.Time) ([]booking.ID, error) {
	rows, err := r.db.Query(ctx, deleteExpiredUserIndex, user, pgconv.TimeToPgtype(now))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to delete expired user index entries", err)
	}

	ids, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (booking.ID, error) {
		var id int64
		err := row.Scan(&id)
		return booking.ID(id), err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan expired user index entries", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return ids, nil
}
