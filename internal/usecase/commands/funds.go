package commands

//go:generate mockgen -source=funds.go -destination=../../../tests/mock/commands/funds.go -package=commandsmock

import (
	"context"

	"creator-booking/internal/pkg/errs"
	"creator-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type FundsCommands interface {
	// Approve sets how much the settlement engine may collect from owner.
	Approve(ctx context.Context, owner uuid.UUID, amount int64) error
}

type fundsCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewFundsCommands(uow shared.UnitOfWork) FundsCommands {
	return &fundsCommandsImpl{uow: uow}
}

func (f *fundsCommandsImpl) Approve(ctx context.Context, owner uuid.UUID, amount int64) error {
	if owner == uuid.Nil {
		return errs.ErrInvalidIdentity
	}
	if amount < 0 {
		return errs.ErrInvalidAmount
	}

	return f.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		settings, err := tx.Settings().Get(ctx)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.Funds().Approve(ctx, owner, settings.Custody(), amount); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}
