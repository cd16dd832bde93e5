package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"creator-booking/internal/domain/booking"
	"creator-booking/internal/domain/ledger"
	"creator-booking/internal/infra"
	"creator-booking/internal/pkg/clock"
	"creator-booking/internal/pkg/errs"
	"creator-booking/internal/pkg/metrics"
	"creator-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReserveInput struct {
	Payer   uuid.UUID
	Creator uuid.UUID
	Start   time.Time
	End     time.Time
}

type ReserveResult struct {
	Booking *booking.Booking
	Pruned  []booking.ID
}

type BookingCommands interface {
	Reserve(ctx context.Context, in ReserveInput) (*ReserveResult, error)
}

type bookingCommandsImpl struct {
	uow           shared.UnitOfWork
	clock         clock.Clock
	metrics       *metrics.Ledger
	pruneStrategy booking.PruneStrategy
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	clock clock.Clock,
	m *metrics.Ledger,
	pruneStrategy booking.PruneStrategy,
) BookingCommands {
	if m == nil {
		m = metrics.NewNopLedger()
	}
	return &bookingCommandsImpl{
		uow:           uow,
		clock:         clock,
		metrics:       m,
		pruneStrategy: pruneStrategy,
	}
}

// Reserve charges the payer the creator's current rate, splits it between
// platform and creator, records the booking, indexes it for the payer and
// mints the payer a receipt. Every step commits together or not at all.
func (b *bookingCommandsImpl) Reserve(ctx context.Context, in ReserveInput) (*ReserveResult, error) {
	var result *ReserveResult
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := b.reserve(ctx, tx, in)
		if err != nil {
			return err
		}
		result = res
		return nil
	})
	if err != nil {
		b.metrics.ReserveFailures.WithLabelValues(failureReason(err)).Inc()
		return nil, err
	}

	bk := result.Booking
	b.metrics.BookingsCreated.Inc()
	b.metrics.SettledVolume.Add(float64(bk.Amount()))
	b.metrics.FeesCollected.Add(float64(bk.Fee()))
	b.metrics.IndexPruned.Add(float64(len(result.Pruned)))

	slog.Info("booking reserved",
		"booking_id", bk.ID().String(),
		"payer", bk.Payer().String(),
		"creator", bk.Creator().String(),
		"amount", bk.Amount(),
		"fee", bk.Fee(),
		"pruned", len(result.Pruned))
	return result, nil
}

func (b *bookingCommandsImpl) reserve(ctx context.Context, tx shared.Tx, in ReserveInput) (*ReserveResult, error) {
	now := b.clock.Now()

	profile, err := tx.Creators().FindByID(ctx, in.Creator)
	if err != nil {
		if infra.IsNotFound(err) {
			return nil, errs.ErrCreatorNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	window, err := booking.NewTimeWindow(in.Start, in.End, now)
	if err != nil {
		return nil, err
	}

	if in.Payer == uuid.Nil {
		return nil, errs.ErrInvalidIdentity
	}
	if in.Payer == in.Creator {
		return nil, errs.ErrSelfBookingNotAllowed
	}

	pruned, err := b.pruneExpired(ctx, tx, in.Payer, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	settings, err := tx.Settings().Get(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	split, err := booking.ComputeSplit(profile.Rate(), settings.FeePPM())
	if err != nil {
		return nil, err
	}

	legs := split.Legs(in.Payer, settings.Custody(), settings.PlatformWallet(), profile.ID())
	for _, leg := range legs {
		if err := settleLeg(ctx, tx.Funds(), settings.Custody(), leg); err != nil {
			return nil, errs.Mark(errs.Wrapf(err, "%s leg of %d", leg.Kind, leg.Amount), errs.ErrPaymentFailed)
		}
	}

	id, err := tx.Bookings().NextID(ctx)
	if err != nil {
		if errs.Is(err, errs.ErrIdentifierSpaceExhausted) {
			return nil, err
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	record, err := booking.NewBooking(id, in.Payer, profile.ID(), window, split, now)
	if err != nil {
		return nil, err
	}

	if err := tx.Bookings().Create(ctx, record); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := tx.UserIndex().Append(ctx, in.Payer, record.IndexEntry()); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := tx.Receipts().Mint(ctx, in.Payer, id); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	event := ledger.BookingCreatedEvent(uint64(id), in.Payer, profile.ID(), window.Start(), window.End(), split.Amount, now)
	if err := tx.Events().Append(ctx, event); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &ReserveResult{Booking: record, Pruned: pruned}, nil
}

func (b *bookingCommandsImpl) pruneExpired(ctx context.Context, tx shared.Tx, payer uuid.UUID, now time.Time) ([]booking.ID, error) {
	if b.pruneStrategy == booking.PruneExpiry {
		return tx.UserIndex().DeleteExpired(ctx, payer, now)
	}

	index, err := tx.UserIndex().Load(ctx, payer)
	if err != nil {
		return nil, err
	}
	removed := index.Prune(now)
	if len(removed) == 0 {
		return nil, nil
	}
	if err := tx.UserIndex().Delete(ctx, payer, removed); err != nil {
		return nil, err
	}
	return removed, nil
}

func settleLeg(ctx context.Context, funds shared.FundsPort, custody uuid.UUID, leg booking.Leg) error {
	if leg.Kind == booking.LegCollect {
		return funds.TransferFrom(ctx, custody, leg.From, leg.To, leg.Amount)
	}
	return funds.Transfer(ctx, leg.From, leg.To, leg.Amount)
}

func failureReason(err error) string {
	switch {
	case errs.Is(err, errs.ErrCreatorNotFound):
		return "creator_not_found"
	case errs.Is(err, errs.ErrInvalidTimeWindow):
		return "invalid_time_window"
	case errs.Is(err, errs.ErrSelfBookingNotAllowed):
		return "self_booking"
	case errs.Is(err, errs.ErrPaymentFailed):
		return "payment_failed"
	case errs.Is(err, errs.ErrInvalidIdentity):
		return "invalid_identity"
	default:
		return "internal"
	}
}
