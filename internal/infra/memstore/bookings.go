package memstore

import (
	"context"
	"time"

	"creator-booking/internal/domain/booking"
	"creator-booking/internal/infra"
	"creator-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type bookingRepo struct{ tx *memTx }

func (r bookingRepo) NextID(_ context.Context) (booking.ID, error) {
	if err := r.tx.writable(); err != nil {
		return booking.None, err
	}
	id := r.tx.st.nextID
	if id.IsNone() {
		return booking.None, errs.ErrIdentifierSpaceExhausted
	}
	r.tx.st.nextID = id + 1
	return id, nil
}

func (r bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	if _, ok := r.tx.st.bookings[b.ID()]; ok {
		return infra.WrapRepoErr("booking already exists", nil, infra.KindDuplicateKey)
	}
	r.tx.st.bookings[b.ID()] = b
	return nil
}

func (r bookingRepo) FindByID(_ context.Context, id booking.ID) (*booking.Booking, error) {
	b, ok := r.tx.st.bookings[id]
	if !ok {
		return nil, infra.NotFound("booking not found")
	}
	return b, nil
}

type indexRepo struct{ tx *memTx }

func (r indexRepo) Load(_ context.Context, user uuid.UUID) (*booking.UserIndex, error) {
	ix, ok := r.tx.st.indexes[user]
	if !ok {
		return booking.NewUserIndex(user, nil), nil
	}
	return booking.NewUserIndex(user, ix.entries), nil
}

func (r indexRepo) Append(_ context.Context, user uuid.UUID, e booking.IndexEntry) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	ix, ok := r.tx.st.indexes[user]
	if !ok {
		ix = &userIndex{expiry: booking.NewExpiryQueue(nil)}
		r.tx.st.indexes[user] = ix
	}
	ix.entries = append(ix.entries, e)
	ix.expiry.Push(e)
	return nil
}

func (r indexRepo) Delete(_ context.Context, user uuid.UUID, ids []booking.ID) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	ix, ok := r.tx.st.indexes[user]
	if !ok || len(ids) == 0 {
		return nil
	}
	compacted := booking.NewUserIndex(user, ix.entries)
	compacted.Remove(ids)
	ix.entries = compacted.Entries()
	ix.expiry = booking.NewExpiryQueue(ix.entries)
	return nil
}

// DeleteExpired pops from the end-time heap, so a user with nothing expired
// costs a single peek.
func (r indexRepo) DeleteExpired(_ context.Context, user uuid.UUID, now time.Time) ([]booking.ID, error) {
	if err := r.tx.writable(); err != nil {
		return nil, err
	}
	ix, ok := r.tx.st.indexes[user]
	if !ok {
		return nil, nil
	}
	next, ok := ix.expiry.NextExpiry()
	if !ok || next.After(now) {
		return nil, nil
	}

	expired := ix.expiry.PopExpired(now)
	compacted := booking.NewUserIndex(user, ix.entries)
	removed := compacted.Remove(expired)
	ix.entries = compacted.Entries()
	return removed, nil
}
