package booking

import (
	"time"

	"creator-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// Booking is the immutable settlement record written once per reservation.
// Amount is the creator's rate copied at booking time.
type Booking struct {
	id           ID
	payer        uuid.UUID
	creator      uuid.UUID
	window       TimeWindow
	amount       int64
	fee          int64
	creatorShare int64
	createdAt    time.Time
}

func NewBooking(id ID, payer, creator uuid.UUID, window TimeWindow, split Split, now time.Time) (*Booking, error) {
	if id.IsNone() {
		return nil, errs.Wrap(errs.ErrNotFound, "booking id must be allocated")
	}
	if payer == uuid.Nil || creator == uuid.Nil {
		return nil, errs.ErrInvalidIdentity
	}
	return &Booking{
		id:           id,
		payer:        payer,
		creator:      creator,
		window:       window,
		amount:       split.Amount,
		fee:          split.Fee,
		creatorShare: split.CreatorShare,
		createdAt:    now,
	}, nil
}

func ReconstructBooking(
	id ID,
	payer, creator uuid.UUID,
	window TimeWindow,
	amount, fee, creatorShare int64,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:           id,
		payer:        payer,
		creator:      creator,
		window:       window,
		amount:       amount,
		fee:          fee,
		creatorShare: creatorShare,
		createdAt:    createdAt,
	}
}

func (b *Booking) ID() ID               { return b.id }
func (b *Booking) Payer() uuid.UUID     { return b.payer }
func (b *Booking) Creator() uuid.UUID   { return b.creator }
func (b *Booking) Window() TimeWindow   { return b.window }
func (b *Booking) Amount() int64        { return b.amount }
func (b *Booking) Fee() int64           { return b.fee }
func (b *Booking) CreatorShare() int64  { return b.creatorShare }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) IsActiveAt(now time.Time) bool {
	return b.window.Contains(now)
}

// IndexEntry projects the booking into the payer's index.
func (b *Booking) IndexEntry() IndexEntry {
	return IndexEntry{
		BookingID: b.id,
		Creator:   b.creator,
		Start:     b.window.Start(),
		End:       b.window.End(),
	}
}
