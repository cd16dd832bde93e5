package repository

import (
	"context"
	"math"

	"creator-booking/internal/domain/booking"
	"creator-booking/internal/infra"
	"creator-booking/internal/infra/db"
	"creator-booking/internal/pkg/errs"
	"creator-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	// The counter lives on the settings row so allocation serializes with
	// every other settlement in the same transaction.
	allocateBookingID = `
UPDATE ledger_settings
   SET next_booking_id = next_booking_id + 1
 WHERE singleton AND next_booking_id < $1
RETURNING next_booking_id - 1`

	insertBooking = `
INSERT INTO bookings (id, payer_id, creator_id, start_at, end_at, amount, fee, creator_share, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	findBookingByID = `
SELECT id, payer_id, creator_id, start_at, end_at, amount, fee, creator_share, created_at
  FROM bookings
 WHERE id = $1`
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) NextID(ctx context.Context) (booking.ID, error) {
	var id int64
	err := r.db.QueryRow(ctx, allocateBookingID, int64(math.MaxInt64)).Scan(&id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return booking.None, errs.ErrIdentifierSpaceExhausted
		}
		return booking.None, infra.WrapRepoErr("failed to allocate booking id", err)
	}
	return booking.ID(id), nil
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	_, err := r.db.Exec(ctx, insertBooking,
		int64(b.ID()),
		b.Payer(),
		b.Creator(),
		pgconv.TimeToPgtype(b.Window().Start()),
		pgconv.TimeToPgtype(b.Window().End()),
		b.Amount(),
		b.Fee(),
		b.CreatorShare(),
		pgconv.TimeToPgtype(b.CreatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id booking.ID) (*booking.Booking, error) {
	if id > math.MaxInt64 {
		return nil, infra.NotFound("booking not found")
	}

	var (
		rowID                     int64
		payer, creatorID          uuid.UUID
		startAt, endAt, createdAt pgtype.Timestamptz
		amount, fee, share        int64
	)
	err := r.db.QueryRow(ctx, findBookingByID, int64(id)).Scan(
		&rowID, &payer, &creatorID, &startAt, &endAt, &amount, &fee, &share, &createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	window := booking.ReconstructTimeWindow(pgconv.TimeFromPgtype(startAt), pgconv.TimeFromPgtype(endAt))
	return booking.ReconstructBooking(
		booking.ID(rowID),
		payer,
		creatorID,
		window,
		amount,
		fee,
		share,
		pgconv.TimeFromPgtype(createdAt),
	), nil
}
