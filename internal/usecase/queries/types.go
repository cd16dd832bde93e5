package queries

import (
	"time"

	"github.com/google/uuid"
)

// CreatorView represents a registry lookup. Exists is false for identities
// that never registered; the remaining fields are then zero.
type CreatorView struct {
	Exists       bool      `json:"exists"`
	ID           uuid.UUID `json:"id"`
	Rate         int64     `json:"rate"`
	MetadataURI  string    `json:"metadata_uri"`
	RegisteredAt time.Time `json:"registered_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BookingView is the ledger record joined with its current receipt owner.
type BookingView struct {
	ID           uint64     `json:"id"`
	Payer        uuid.UUID  `json:"payer"`
	Creator      uuid.UUID  `json:"creator"`
	Owner        *uuid.UUID `json:"owner,omitempty"`
	Start        time.Time  `json:"start"`
	End          time.Time  `json:"end"`
	Amount       int64      `json:"amount"`
	Fee          int64      `json:"fee"`
	CreatorShare int64      `json:"creator_share"`
	CreatedAt    time.Time  `json:"created_at"`
}

type IndexEntryView struct {
	BookingID uint64    `json:"booking_id"`
	Creator   uuid.UUID `json:"creator"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Active    bool      `json:"active"`
	Expired   bool      `json:"expired"`
}

type BalanceView struct {
	Account   uuid.UUID `json:"account"`
	Balance   int64     `json:"balance"`
	Allowance int64     `json:"allowance"`
}
