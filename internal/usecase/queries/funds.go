package queries

//go:generate mockgen -source=funds.go -destination=../../../tests/mock/queries/funds.go -package=queriesmock

import (
	"context"

	"creator-booking/internal/pkg/errs"
	"creator-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type FundsQueries interface {
	// Balance reports the account's balance and the allowance it granted to
	// the settlement engine.
	Balance(ctx context.Context, account uuid.UUID) (*BalanceView, error)
}

type fundsQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewFundsQueries(uow shared.UnitOfWork) FundsQueries {
	return &fundsQueriesImpl{uow: uow}
}

func (q *fundsQueriesImpl) Balance(ctx context.Context, account uuid.UUID) (*BalanceView, error) {
	view := &BalanceView{Account: account}
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		settings, err := tx.Settings().Get(ctx)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if view.Balance, err = tx.Funds().BalanceOf(ctx, account); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if view.Allowance, err = tx.Funds().Allowance(ctx, account, settings.Custody()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
