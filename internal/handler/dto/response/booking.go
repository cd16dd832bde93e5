package response

import (
	"creator-booking/internal/domain/booking"
	"creator-booking/internal/usecase/queries"
)

type BookingResponse struct {
	ID           uint64 `json:"id"`
	Payer        string `json:"payer"`
	Creator      string `json:"creator"`
	Owner        string `json:"owner,omitempty"`
	Start        int64  `json:"start"`
	End          int64  `json:"end"`
	Amount       int64  `json:"amount"`
	Fee          int64  `json:"fee"`
	CreatorShare int64  `json:"creator_share"`
	CreatedAt    int64  `json:"created_at"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:           uint64(b.ID()),
		Payer:        b.Payer().String(),
		Creator:      b.Creator().String(),
		Owner:        b.Payer().String(),
		Start:        b.Window().Start().Unix(),
		End:          b.Window().End().Unix(),
		Amount:       b.Amount(),
		Fee:          b.Fee(),
		CreatorShare: b.CreatorShare(),
		CreatedAt:    b.CreatedAt().Unix(),
	}
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	res := &BookingResponse{
		ID:           v.ID,
		Payer:        v.Payer.String(),
		Creator:      v.Creator.String(),
		Start:        v.Start.Unix(),
		End:          v.End.Unix(),
		Amount:       v.Amount,
		Fee:          v.Fee,
		CreatorShare: v.CreatorShare,
		CreatedAt:    v.CreatedAt.Unix(),
	}
	if v.Owner != nil {
		res.Owner = v.Owner.String()
	}
	return res
}

// ActiveBookingResponse uses 0 for "no active or upcoming booking".
type ActiveBookingResponse struct {
	UserID    string `json:"user_id"`
	BookingID uint64 `json:"booking_id"`
}

type IsActiveResponse struct {
	BookingID uint64 `json:"booking_id"`
	Active    bool   `json:"active"`
}

type IndexEntryResponse struct {
	BookingID uint64 `json:"booking_id"`
	Creator   string `json:"creator"`
	Start     int64  `json:"start"`
	End       int64  `json:"end"`
	Active    bool   `json:"active"`
	Expired   bool   `json:"expired"`
}

func FromIndexEntries(views []queries.IndexEntryView) []IndexEntryResponse {
	res := make([]IndexEntryResponse, len(views))
	for i, v := range views {
		res[i] = IndexEntryResponse{
			BookingID: v.BookingID,
			Creator:   v.Creator.String(),
			Start:     v.Start.Unix(),
			End:       v.End.Unix(),
			Active:    v.Active,
			Expired:   v.Expired,
		}
	}
	return res
}
