package commands

//go:generate mockgen -source=admin.go -destination=../../../tests/mock/commands/admin.go -package=commandsmock

import (
	"context"
	"log/slog"

	"creator-booking/internal/domain/ledger"
	"creator-booking/internal/domain/user"
	"creator-booking/internal/infra"
	"creator-booking/internal/pkg/clock"
	"creator-booking/internal/pkg/errs"
	"creator-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type AdminCommands interface {
	SetFeeRate(ctx context.Context, actor shared.Actor, ppm uint32) (*ledger.Settings, error)
	SetPlatformWallet(ctx context.Context, actor shared.Actor, wallet uuid.UUID) (*ledger.Settings, error)
	Deposit(ctx context.Context, actor shared.Actor, account uuid.UUID, amount int64) (int64, error)
	// EnsureSettings seeds the ledger settings on first start. Existing
	// settings are left untouched.
	EnsureSettings(ctx context.Context, initial *ledger.Settings) (*ledger.Settings, error)
}

type adminCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAdminCommands(uow shared.UnitOfWork, clock clock.Clock) AdminCommands {
	return &adminCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

func (a *adminCommandsImpl) SetFeeRate(ctx context.Context, actor shared.Actor, ppm uint32) (*ledger.Settings, error) {
	if err := actor.RequireRole(user.RoleAdmin); err != nil {
		return nil, err
	}

	var settings *ledger.Settings
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Settings().Get(ctx)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		old, err := s.SetFeeRate(ppm)
		if err != nil {
			return err
		}
		if err := tx.Settings().Save(ctx, s); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.Events().Append(ctx, ledger.FeeRateUpdatedEvent(old, ppm, a.clock.Now())); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		settings = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("fee rate updated", "actor", actor.ID.String(), "fee_ppm", ppm)
	return settings, nil
}

func (a *adminCommandsImpl) SetPlatformWallet(ctx context.Context, actor shared.Actor, wallet uuid.UUID) (*ledger.Settings, error) {
	if err := actor.RequireRole(user.RoleAdmin); err != nil {
		return nil, err
	}

	var settings *ledger.Settings
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Settings().Get(ctx)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		old, err := s.SetPlatformWallet(wallet)
		if err != nil {
			return err
		}
		if err := tx.Settings().Save(ctx, s); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.Events().Append(ctx, ledger.PlatformWalletUpdatedEvent(old, wallet, a.clock.Now())); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		settings = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("platform wallet updated", "actor", actor.ID.String(), "wallet", wallet.String())
	return settings, nil
}

func (a *adminCommandsImpl) Deposit(ctx context.Context, actor shared.Actor, account uuid.UUID, amount int64) (int64, error) {
	if err := actor.RequireRole(user.RoleAdmin); err != nil {
		return 0, err
	}
	if account == uuid.Nil {
		return 0, errs.ErrInvalidIdentity
	}
	if amount <= 0 {
		return 0, errs.ErrInvalidAmount
	}

	var balance int64
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Funds().Credit(ctx, account, amount); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.Events().Append(ctx, ledger.FundsDepositedEvent(account, amount, a.clock.Now())); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		b, err := tx.Funds().BalanceOf(ctx, account)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		balance = b
		return nil
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (a *adminCommandsImpl) EnsureSettings(ctx context.Context, initial *ledger.Settings) (*ledger.Settings, error) {
	var settings *ledger.Settings
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Settings().InitIfAbsent(ctx, initial)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if created {
			slog.Info("ledger settings initialised",
				"fee_ppm", initial.FeePPM(),
				"platform_wallet", initial.PlatformWallet().String(),
				"custody", initial.Custody().String())
		}

		s, err := tx.Settings().Get(ctx)
		if err != nil {
			if infra.IsNotFound(err) {
				return errs.Wrap(errs.ErrDatabaseOperationFailed, "ledger settings missing after init")
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		settings = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return settings, nil
}
