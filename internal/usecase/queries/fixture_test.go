//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"creator-booking/internal/domain/booking"
	"creator-booking/internal/domain/ledger"
	"creator-booking/internal/domain/user"
	"creator-booking/internal/infra/memstore"
	"creator-booking/internal/pkg/clock"
	"creator-booking/internal/usecase/commands"
	"creator-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

var (
	platform = uuid.MustParse("00000000-0000-0000-0000-00000000f00d")
	custody  = uuid.MustParse("00000000-0000-0000-0000-0000000c0de0")
	admin    = shared.Actor{ID: uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"), Role: user.RoleAdmin}
)

// world seeds ledger state through the command side so queries read what a
// real caller would have written.
type world struct {
	store    *memstore.Store
	clock    *clock.MockClock
	creators commands.CreatorCommands
	bookings commands.BookingCommands
	admin    commands.AdminCommands
	receipts commands.ReceiptCommands
	funds    commands.FundsCommands
}

func newWorld(t *testing.T) *world {
	t.Helper()

	store := memstore.New()
	clk := clock.NewMockClock(t0)
	w := &world{
		store:    store,
		clock:    clk,
		creators: commands.NewCreatorCommands(store, clk),
		bookings: commands.NewBookingCommands(store, clk, nil, booking.PruneScan),
		admin:    commands.NewAdminCommands(store, clk),
		receipts: commands.NewReceiptCommands(store, clk),
		funds:    commands.NewFundsCommands(store),
	}

	initial, err := ledger.NewSettings(10_000, platform, custody)
	require.NoError(t, err)
	_, err = w.admin.EnsureSettings(context.Background(), initial)
	require.NoError(t, err)
	return w
}

func (w *world) creator(t *testing.T) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := w.creators.Register(context.Background(), id, 100, "ipfs://"+id.String())
	require.NoError(t, err)
	return id
}

func (w *world) payer(t *testing.T, amount int64) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	id := uuid.New()
	_, err := w.admin.Deposit(ctx, admin, id, amount)
	require.NoError(t, err)
	require.NoError(t, w.funds.Approve(ctx, id, amount))
	return id
}

func (w *world) reserve(t *testing.T, payer, creator uuid.UUID, start, end time.Duration) booking.ID {
	t.Helper()
	now := w.clock.Now()
	res, err := w.bookings.Reserve(context.Background(), commands.ReserveInput{
		Payer:   payer,
		Creator: creator,
		Start:   now.Add(start),
		End:     now.Add(end),
	})
	require.NoError(t, err)
	return res.Booking.ID()
}
