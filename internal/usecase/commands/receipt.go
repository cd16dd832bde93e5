package commands

//go:generate mockgen -source=receipt.go -destination=../../../tests/mock/commands/receipt.go -package=commandsmock

import (
	"context"

	"creator-booking/internal/domain/booking"
	"creator-booking/internal/domain/ledger"
	"creator-booking/internal/infra"
	"creator-booking/internal/pkg/clock"
	"creator-booking/internal/pkg/errs"
	"creator-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReceiptCommands interface {
	Transfer(ctx context.Context, caller uuid.UUID, id booking.ID, to uuid.UUID) error
	Burn(ctx context.Context, caller uuid.UUID, id booking.ID) error
}

type receiptCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReceiptCommands(uow shared.UnitOfWork, clock clock.Clock) ReceiptCommands {
	return &receiptCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

func (r *receiptCommandsImpl) Transfer(ctx context.Context, caller uuid.UUID, id booking.ID, to uuid.UUID) error {
	if to == uuid.Nil {
		return errs.ErrInvalidIdentity
	}

	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		owner, err := ownedReceipt(ctx, tx, caller, id)
		if err != nil {
			return err
		}
		if owner == to {
			return errs.ErrNoOp
		}

		if err := tx.Receipts().Transfer(ctx, id, to); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.Events().Append(ctx, ledger.ReceiptTransferredEvent(uint64(id), owner, to, r.clock.Now())); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// Burn destroys the receipt. The booking record and index entry stay; the
// booking simply has no owner afterwards.
func (r *receiptCommandsImpl) Burn(ctx context.Context, caller uuid.UUID, id booking.ID) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		owner, err := ownedReceipt(ctx, tx, caller, id)
		if err != nil {
			return err
		}

		if err := tx.Receipts().Burn(ctx, id); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.Events().Append(ctx, ledger.ReceiptBurnedEvent(uint64(id), owner, r.clock.Now())); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func ownedReceipt(ctx context.Context, tx shared.Tx, caller uuid.UUID, id booking.ID) (uuid.UUID, error) {
	owner, err := tx.Receipts().OwnerOf(ctx, id)
	if err != nil {
		if infra.IsNotFound(err) {
			return uuid.Nil, errs.ErrNotFound
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if owner != caller {
		return uuid.Nil, errs.ErrUnauthorized
	}
	return owner, nil
}
