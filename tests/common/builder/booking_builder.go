//go:build unit || e2e

package builder

import (
	"time"

	"creator-booking/internal/domain/booking"
	reqdto "creator-booking/internal/handler/dto/request"
	"creator-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID      booking.ID
	Payer   uuid.UUID
	Creator uuid.UUID
	Start   time.Time
	End     time.Time
	Rate    int64
	FeePPM  uint32
	Now     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:      1,
		Payer:   uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		Creator: uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		Start:   now.Add(time.Hour),
		End:     now.Add(2 * time.Hour),
		Rate:    100,
		FeePPM:  10_000,
		Now:     now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithID(id booking.ID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithWindow(start, end time.Time) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BookingBuilder) WithPayer(payer uuid.UUID) *BookingBuilder {
	b.Payer = payer
	return b
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	window, err := booking.NewTimeWindow(b.Start, b.End, b.Now)
	if err != nil {
		return nil, err
	}
	split, err := booking.ComputeSplit(b.Rate, b.FeePPM)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(b.ID, b.Payer, b.Creator, window, split, b.Now)
}

func (b *BookingBuilder) BuildIndexEntry() booking.IndexEntry {
	return booking.IndexEntry{
		BookingID: b.ID,
		Creator:   b.Creator,
		Start:     b.Start,
		End:       b.End,
	}
}

func (b *BookingBuilder) BuildRequestDTO() reqdto.ReserveRequest {
	return reqdto.ReserveRequest{
		CreatorID: b.Creator,
		Start:     b.Start,
		End:       b.End,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	split, _ := booking.ComputeSplit(b.Rate, b.FeePPM)
	owner := b.Payer
	return &queries.BookingView{
		ID:           uint64(b.ID),
		Payer:        b.Payer,
		Creator:      b.Creator,
		Owner:        &owner,
		Start:        b.Start,
		End:          b.End,
		Amount:       split.Amount,
		Fee:          split.Fee,
		CreatorShare: split.CreatorShare,
		CreatedAt:    b.Now,
	}
}
