//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"creator-booking/internal/domain/booking"
	"creator-booking/internal/domain/ledger"
	"creator-booking/internal/domain/user"
	"creator-booking/internal/infra/memstore"
	"creator-booking/internal/pkg/clock"
	"creator-booking/internal/pkg/metrics"
	"creator-booking/internal/usecase/commands"
	"creator-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

var (
	platform = uuid.MustParse("00000000-0000-0000-0000-00000000f00d")
	custody  = uuid.MustParse("00000000-0000-0000-0000-0000000c0de0")
	admin    = shared.Actor{ID: uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"), Role: user.RoleAdmin}
)

type fixture struct {
	store    *memstore.Store
	clock    *clock.MockClock
	metrics  *metrics.Ledger
	creators commands.CreatorCommands
	bookings commands.BookingCommands
	admin    commands.AdminCommands
	receipts commands.ReceiptCommands
	funds    commands.FundsCommands
}

func newFixture(t *testing.T, strategy booking.PruneStrategy) *fixture {
	t.Helper()

	store := memstore.New()
	clk := clock.NewMockClock(t0)
	m := metrics.NewLedger(prometheus.NewRegistry())

	f := &fixture{
		store:    store,
		clock:    clk,
		metrics:  m,
		creators: commands.NewCreatorCommands(store, clk),
		bookings: commands.NewBookingCommands(store, clk, m, strategy),
		admin:    commands.NewAdminCommands(store, clk),
		receipts: commands.NewReceiptCommands(store, clk),
		funds:    commands.NewFundsCommands(store),
	}

	initial, err := ledger.NewSettings(10_000, platform, custody)
	require.NoError(t, err)
	_, err = f.admin.EnsureSettings(context.Background(), initial)
	require.NoError(t, err)
	return f
}

// registerCreator registers a creator with the given hourly rate.
func (f *fixture) registerCreator(t *testing.T, rate int64) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := f.creators.Register(context.Background(), id, rate, "ipfs://"+id.String())
	require.NoError(t, err)
	return id
}

// fundPayer deposits amount and approves the same amount for settlement.
func (f *fixture) fundPayer(t *testing.T, amount int64) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	payer := uuid.New()
	_, err := f.admin.Deposit(ctx, admin, payer, amount)
	require.NoError(t, err)
	require.NoError(t, f.funds.Approve(ctx, payer, amount))
	return payer
}

// reserve books the window [now+start, now+end).
func (f *fixture) reserve(payer, creator uuid.UUID, start, end time.Duration) (*commands.ReserveResult, error) {
	now := f.clock.Now()
	return f.bookings.Reserve(context.Background(), commands.ReserveInput{
		Payer:   payer,
		Creator: creator,
		Start:   now.Add(start),
		End:     now.Add(end),
	})
}

func (f *fixture) balance(t *testing.T, account uuid.UUID) int64 {
	t.Helper()
	var bal int64
	require.NoError(t, f.store.WithinReadOnly(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		var err error
		bal, err = tx.Funds().BalanceOf(ctx, account)
		return err
	}))
	return bal
}

func (f *fixture) events(t *testing.T) []shared.StoredEvent {
	t.Helper()
	var out []shared.StoredEvent
	require.NoError(t, f.store.WithinReadOnly(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		var err error
		out, err = tx.Events().FetchUnpublished(ctx, 0)
		return err
	}))
	return out
}

func (f *fixture) index(t *testing.T, u uuid.UUID) []booking.ID {
	t.Helper()
	var ids []booking.ID
	require.NoError(t, f.store.WithinReadOnly(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		ix, err := tx.UserIndex().Load(ctx, u)
		if err != nil {
			return err
		}
		for _, e := range ix.Entries() {
			ids = append(ids, e.BookingID)
		}
		return nil
	}))
	return ids
}
