package queries

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

import (
	"context"

	"creator-booking/internal/domain/booking"
	"creator-booking/internal/infra"
	"creator-booking/internal/pkg/clock"
	"creator-booking/internal/pkg/errs"
	"creator-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetBooking(ctx context.Context, id booking.ID) (*BookingView, error)
	// ResolveActive returns the payer's in-progress booking, else the next
	// upcoming one, else booking.None.
	ResolveActive(ctx context.Context, caller, user uuid.UUID) (booking.ID, error)
	IsActive(ctx context.Context, caller uuid.UUID, id booking.ID) (bool, error)
	ListUserIndex(ctx context.Context, caller, user uuid.UUID) ([]IndexEntryView, error)
}

type BookingPolicies struct {
	Resolver    booking.ResolverAccess
	ActiveCheck booking.ActiveCheck
}

type bookingQueriesImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	policies BookingPolicies
}

func NewBookingQueries(uow shared.UnitOfWork, clock clock.Clock, policies BookingPolicies) BookingQueries {
	return &bookingQueriesImpl{
		uow:      uow,
		clock:    clock,
		policies: policies,
	}
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, id booking.ID) (*BookingView, error) {
	var view *BookingView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByID(ctx, id)
		if err != nil {
			return notFoundOr(err)
		}
		view = toBookingView(b)

		owner, err := tx.Receipts().OwnerOf(ctx, id)
		switch {
		case err == nil:
			view.Owner = &owner
		case !infra.IsNotFound(err):
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ResolveActive(ctx context.Context, caller, user uuid.UUID) (booking.ID, error) {
	if err := q.authorizeIndexRead(caller, user); err != nil {
		return booking.None, err
	}

	var id booking.ID
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := q.clock.Now()
		index, err := tx.UserIndex().Load(ctx, user)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		id = index.ResolveActive(now)
		return nil
	})
	if err != nil {
		return booking.None, err
	}
	return id, nil
}

func (q *bookingQueriesImpl) IsActive(ctx context.Context, caller uuid.UUID, id booking.ID) (bool, error) {
	var active bool
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := q.clock.Now()

		b, err := tx.Bookings().FindByID(ctx, id)
		if err != nil {
			return notFoundOr(err)
		}
		owner, err := tx.Receipts().OwnerOf(ctx, id)
		if err != nil {
			return notFoundOr(err)
		}

		if err := q.authorizeActiveCheck(ctx, tx, caller, owner); err != nil {
			return err
		}

		active = b.IsActiveAt(now)
		return nil
	})
	if err != nil {
		return false, err
	}
	return active, nil
}

func (q *bookingQueriesImpl) ListUserIndex(ctx context.Context, caller, user uuid.UUID) ([]IndexEntryView, error) {
	if err := q.authorizeIndexRead(caller, user); err != nil {
		return nil, err
	}

	var views []IndexEntryView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := q.clock.Now()
		index, err := tx.UserIndex().Load(ctx, user)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		views = make([]IndexEntryView, 0, index.Len())
		for _, e := range index.Entries() {
			views = append(views, IndexEntryView{
				BookingID: uint64(e.BookingID),
				Creator:   e.Creator,
				Start:     e.Start,
				End:       e.End,
				Active:    e.ActiveAt(now),
				Expired:   e.ExpiredAt(now),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (q *bookingQueriesImpl) authorizeIndexRead(caller, user uuid.UUID) error {
	if q.policies.Resolver == booking.ResolverPublic {
		return nil
	}
	if caller == uuid.Nil || caller != user {
		return errs.ErrUnauthorized
	}
	return nil
}

func (q *bookingQueriesImpl) authorizeActiveCheck(ctx context.Context, tx shared.Tx, caller, owner uuid.UUID) error {
	if q.policies.ActiveCheck == booking.ActiveCheckAnyReceipt {
		held, err := tx.Receipts().BalanceOf(ctx, caller)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if held == 0 {
			return errs.ErrUnauthorized
		}
		return nil
	}
	if caller != owner {
		return errs.ErrUnauthorized
	}
	return nil
}

func notFoundOr(err error) error {
	if infra.IsNotFound(err) {
		return errs.ErrNotFound
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}

func toBookingView(b *booking.Booking) *BookingView {
	return &BookingView{
		ID:           uint64(b.ID()),
		Payer:        b.Payer(),
		Creator:      b.Creator(),
		Start:        b.Window().Start(),
		End:          b.Window().End(),
		Amount:       b.Amount(),
		Fee:          b.Fee(),
		CreatorShare: b.CreatorShare(),
		CreatedAt:    b.CreatedAt(),
	}
}
