package repository

import (
	"context"

	"creator-booking/internal/infra"
	"creator-booking/internal/infra/db"
	"creator-booking/internal/pkg/errs"
	"creator-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	lockBalance   = `SELECT balance FROM fund_balances WHERE account_id = $1 FOR UPDATE`
	lockAllowance = `SELECT amount FROM fund_allowances WHERE owner_id = $1 AND spender_id = $2 FOR UPDATE`
	debitBalance  = `UPDATE fund_balances SET balance = balance - $2 WHERE account_id = $1`
	creditBalance = `
INSERT INTO fund_balances (account_id, balance) VALUES ($1, $2)
ON CONFLICT (account_id) DO UPDATE SET balance = fund_balances.balance + EXCLUDED.balance`
	spendAllowance  = `UPDATE fund_allowances SET amount = amount - $3 WHERE owner_id = $1 AND spender_id = $2`
	upsertAllowance = `
INSERT INTO fund_allowances (owner_id, spender_id, amount) VALUES ($1, $2, $3)
ON CONFLICT (owner_id, spender_id) DO UPDATE SET amount = EXCLUDED.amount`
)

// FundsRepository keeps balances and allowances in the ledger database. Every
// check happens before the first write so a rejected call changes nothing.
type FundsRepository struct {
	db db.DBTX
}

func NewFundsRepository(dbtx db.DBTX) *FundsRepository {
	return &FundsRepository{db: dbtx}
}

func (r *FundsRepository) TransferFrom(ctx context.Context, spender, from, to uuid.UUID, amount int64) error {
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}

	allowance, err := r.lockedAmount(ctx, lockAllowance, from, spender)
	if err != nil {
		return infra.WrapRepoErr("failed to read allowance", err)
	}
	if allowance < amount {
		return errs.Wrap(errs.ErrInsufficientFunds, "allowance too low")
	}

	balance, err := r.lockedAmount(ctx, lockBalance, from)
	if err != nil {
		return infra.WrapRepoErr("failed to read balance", err)
	}
	if balance < amount {
		return errs.Wrap(errs.ErrInsufficientFunds, "balance too low")
	}

	if _, err := r.db.Exec(ctx, spendAllowance, from, spender, amount); err != nil {
		return infra.WrapRepoErr("failed to spend allowance", err)
	}
	return r.move(ctx, from, to, amount)
}

func (r *FundsRepository) Transfer(ctx context.Context, from, to uuid.UUID, amount int64) error {
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}

	balance, err := r.lockedAmount(ctx, lockBalance, from)
	if err != nil {
		return infra.WrapRepoErr("failed to read balance", err)
	}
	if balance < amount {
		return errs.Wrap(errs.ErrTransferFailed, "balance too low")
	}
	return r.move(ctx, from, to, amount)
}

func (r *FundsRepository) Approve(ctx context.Context, owner, spender uuid.UUID, amount int64) error {
	if _, err := r.db.Exec(ctx, upsertAllowance, owner, spender, amount); err != nil {
		return infra.WrapRepoErr("failed to set allowance", err)
	}
	return nil
}

func (r *FundsRepository) Credit(ctx context.Context, account uuid.UUID, amount int64) error {
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	if _, err := r.db.Exec(ctx, creditBalance, account, amount); err != nil {
		return infra.WrapRepoErr("failed to credit account", err)
	}
	return nil
}

func (r *FundsRepository) BalanceOf(ctx context.Context, account uuid.UUID) (int64, error) {
	var balance int64
	err := r.db.QueryRow(ctx, `SELECT balance FROM fund_balances WHERE account_id = $1`, account).Scan(&balance)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, nil
		}
		return 0, infra.WrapRepoErr("failed to read balance", err)
	}
	return balance, nil
}

func (r *FundsRepository) Allowance(ctx context.Context, owner, spender uuid.UUID) (int64, error) {
	var amount int64
	err := r.db.QueryRow(ctx, `SELECT amount FROM fund_allowances WHERE owner_id = $1 AND spender_id = $2`, owner, spender).Scan(&amount)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, nil
		}
		return 0, infra.WrapRepoErr("failed to read allowance", err)
	}
	return amount, nil
}

func (r *FundsRepository) move(ctx context.Context, from, to uuid.UUID, amount int64) error {
	if _, err := r.db.Exec(ctx, debitBalance, from, amount); err != nil {
		return infra.WrapRepoErr("failed to debit account", err)
	}
	if _, err := r.db.Exec(ctx, creditBalance, to, amount); err != nil {
		return infra.WrapRepoErr("failed to credit account", err)
	}
	return nil
}

// lockedAmount reads a single amount with a row lock; a missing row is zero.
func (r *FundsRepository) lockedAmount(ctx context.Context, query string, args ...any) (int64, error) {
	var v int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&v); err != nil {
		if pgconv.IsNoRows(err) {
			return 0, nil
		}
		return 0, err
	}
	return v, nil
}
