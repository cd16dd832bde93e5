package shared

import (
	"context"
	"time"

	"creator-booking/internal/domain/booking"
	"creator-booking/internal/domain/creator"
	"creator-booking/internal/domain/ledger"
	"creator-booking/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to a single transaction. Nothing written
// through them is visible to others until the enclosing Within returns nil.
type Tx interface {
	Creators() CreatorRepository
	Bookings() BookingRepository
	UserIndex() UserIndexRepository
	Settings() SettingsRepository
	Funds() FundsPort
	Receipts() ReceiptRegistry
	Events() EventRepository
	Accounts() AccountRepository
}

type CreatorRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*creator.Profile, error)
	Create(ctx context.Context, p *creator.Profile) error
	Update(ctx context.Context, p *creator.Profile) error
}

type BookingRepository interface {
	// NextID allocates the next booking identifier from the ledger counter.
	NextID(ctx context.Context) (booking.ID, error)
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id booking.ID) (*booking.Booking, error)
}

type UserIndexRepository interface {
	Load(ctx context.Context, user uuid.UUID) (*booking.UserIndex, error)
	Append(ctx context.Context, user uuid.UUID, e booking.IndexEntry) error
	Delete(ctx context.Context, user uuid.UUID, ids []booking.ID) error
	// DeleteExpired removes entries with end <= now using the store's
	// end-time ordering and returns the removed IDs.
	DeleteExpired(ctx context.Context, user uuid.UUID, now time.Time) ([]booking.ID, error)
}

type SettingsRepository interface {
	Get(ctx context.Context) (*ledger.Settings, error)
	Save(ctx context.Context, s *ledger.Settings) error
	// InitIfAbsent stores s only when no settings exist yet.
	InitIfAbsent(ctx context.Context, s *ledger.Settings) (bool, error)
}

// FundsPort moves value between accounts. Failed calls leave balances and
// allowances untouched.
type FundsPort interface {
	TransferFrom(ctx context.Context, spender, from, to uuid.UUID, amount int64) error
	Transfer(ctx context.Context, from, to uuid.UUID, amount int64) error
	Approve(ctx context.Context, owner, spender uuid.UUID, amount int64) error
	Credit(ctx context.Context, account uuid.UUID, amount int64) error
	BalanceOf(ctx context.Context, account uuid.UUID) (int64, error)
	Allowance(ctx context.Context, owner, spender uuid.UUID) (int64, error)
}

// ReceiptRegistry tracks the one receipt minted per booking. OwnerOf fails
// with a not-found repository error for unknown or burned receipts.
type ReceiptRegistry interface {
	Mint(ctx context.Context, owner uuid.UUID, id booking.ID) error
	OwnerOf(ctx context.Context, id booking.ID) (uuid.UUID, error)
	BalanceOf(ctx context.Context, owner uuid.UUID) (int64, error)
	Transfer(ctx context.Context, id booking.ID, to uuid.UUID) error
	Burn(ctx context.Context, id booking.ID) error
}

type StoredEvent struct {
	Seq         int64
	Event       ledger.Event
	PublishedAt *time.Time
}

type EventRepository interface {
	Append(ctx context.Context, e ledger.Event) error
	FetchUnpublished(ctx context.Context, limit int) ([]StoredEvent, error)
	MarkPublished(ctx context.Context, seqs []int64, at time.Time) error
}

type AccountRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}
