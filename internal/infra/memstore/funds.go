package memstore

import (
	"context"

	"creator-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type fundsRepo struct{ tx *memTx }

func (r fundsRepo) TransferFrom(_ context.Context, spender, from, to uuid.UUID, amount int64) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	key := allowanceKey{owner: from, spender: spender}
	if r.tx.st.allowances[key] < amount {
		return errs.Wrap(errs.ErrInsufficientFunds, "allowance too low")
	}
	if r.tx.st.balances[from] < amount {
		return errs.Wrap(errs.ErrInsufficientFunds, "balance too low")
	}
	r.tx.st.allowances[key] -= amount
	r.tx.st.balances[from] -= amount
	r.tx.st.balances[to] += amount
	return nil
}

func (r fundsRepo) Transfer(_ context.Context, from, to uuid.UUID, amount int64) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	if r.tx.st.balances[from] < amount {
		return errs.Wrap(errs.ErrTransferFailed, "balance too low")
	}
	r.tx.st.balances[from] -= amount
	r.tx.st.balances[to] += amount
	return nil
}

func (r fundsRepo) Approve(_ context.Context, owner, spender uuid.UUID, amount int64) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	r.tx.st.allowances[allowanceKey{owner: owner, spender: spender}] = amount
	return nil
}

func (r fundsRepo) Credit(_ context.Context, account uuid.UUID, amount int64) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	r.tx.st.balances[account] += amount
	return nil
}

func (r fundsRepo) BalanceOf(_ context.Context, account uuid.UUID) (int64, error) {
	return r.tx.st.balances[account], nil
}

func (r fundsRepo) Allowance(_ context.Context, owner, spender uuid.UUID) (int64, error) {
	return r.tx.st.allowances[allowanceKey{owner: owner, spender: spender}], nil
}
