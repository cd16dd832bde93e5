// Package memstore is an in-process implementation of the unit of work used
// for local runs and tests. Transactions are serialized by a mutex and work on
// a private copy of the state that replaces the live state only on success.
package memstore

import (
	"context"
	"maps"
	"sync"

	"creator-booking/internal/domain/booking"
	"creator-booking/internal/domain/creator"
	"creator-booking/internal/domain/ledger"
	"creator-booking/internal/domain/user"
	"creator-booking/internal/pkg/errs"
	"creator-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var errReadOnly = errs.New("write attempted in read-only transaction")

type allowanceKey struct {
	owner   uuid.UUID
	spender uuid.UUID
}

type userIndex struct {
	entries []booking.IndexEntry
	expiry  *booking.ExpiryQueue
}

func (ix *userIndex) clone() *userIndex {
	entries := make([]booking.IndexEntry, len(ix.entries))
	copy(entries, ix.entries)
	return &userIndex{entries: entries, expiry: ix.expiry.Clone()}
}

type state struct {
	creators   map[uuid.UUID]*creator.Profile
	bookings   map[booking.ID]*booking.Booking
	indexes    map[uuid.UUID]*userIndex
	settings   *ledger.Settings
	nextID     booking.ID
	balances   map[uuid.UUID]int64
	allowances map[allowanceKey]int64
	receipts   map[booking.ID]uuid.UUID
	burned     map[booking.ID]struct{}
	held       map[uuid.UUID]int64
	events     []shared.StoredEvent
	eventSeq   int64
	accounts   map[uuid.UUID]*user.User
	emails     map[string]uuid.UUID
}

func newState() *state {
	return &state{
		creators:   make(map[uuid.UUID]*creator.Profile),
		bookings:   make(map[booking.ID]*booking.Booking),
		indexes:    make(map[uuid.UUID]*userIndex),
		nextID:     1,
		balances:   make(map[uuid.UUID]int64),
		allowances: make(map[allowanceKey]int64),
		receipts:   make(map[booking.ID]uuid.UUID),
		burned:     make(map[booking.ID]struct{}),
		held:       make(map[uuid.UUID]int64),
		accounts:   make(map[uuid.UUID]*user.User),
		emails:     make(map[string]uuid.UUID),
	}
}

// clone copies everything a transaction may mutate. Bookings and accounts are
// immutable once stored and are shared.
func (s *state) clone() *state {
	cp := &state{
		creators:   make(map[uuid.UUID]*creator.Profile, len(s.creators)),
		bookings:   maps.Clone(s.bookings),
		indexes:    make(map[uuid.UUID]*userIndex, len(s.indexes)),
		nextID:     s.nextID,
		balances:   maps.Clone(s.balances),
		allowances: maps.Clone(s.allowances),
		receipts:   maps.Clone(s.receipts),
		burned:     maps.Clone(s.burned),
		held:       maps.Clone(s.held),
		events:     make([]shared.StoredEvent, len(s.events)),
		eventSeq:   s.eventSeq,
		accounts:   maps.Clone(s.accounts),
		emails:     maps.Clone(s.emails),
	}
	for id, p := range s.creators {
		cp.creators[id] = p.Clone()
	}
	for id, ix := range s.indexes {
		cp.indexes[id] = ix.clone()
	}
	if s.settings != nil {
		cp.settings = cloneSettings(s.settings)
	}
	copy(cp.events, s.events)
	return cp
}

type Store struct {
	mu    sync.RWMutex
	state *state
}

func New() *Store {
	return &Store{state: newState()}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	work := s.state.clone()
	if err := fn(ctx, &memTx{st: work}); err != nil {
		return err
	}
	s.state = work
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx, &memTx{st: s.state, readOnly: true})
}

type memTx struct {
	st       *state
	readOnly bool
}

func (t *memTx) writable() error {
	if t.readOnly {
		return errReadOnly
	}
	return nil
}

func (t *memTx) Creators() shared.CreatorRepository    { return creatorRepo{t} }
func (t *memTx) Bookings() shared.BookingRepository    { return bookingRepo{t} }
func (t *memTx) UserIndex() shared.UserIndexRepository { return indexRepo{t} }
func (t *memTx) Settings() shared.SettingsRepository   { return settingsRepo{t} }
func (t *memTx) Funds() shared.FundsPort               { return fundsRepo{t} }
func (t *memTx) Receipts() shared.ReceiptRegistry      { return receiptRepo{t} }
func (t *memTx) Events() shared.EventRepository        { return eventRepo{t} }
func (t *memTx) Accounts() shared.AccountRepository    { return accountRepo{t} }
