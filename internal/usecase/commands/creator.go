package commands

//go:generate mockgen -source=creator.go -destination=../../../tests/mock/commands/creator.go -package=commandsmock

import (
	"context"
	"log/slog"

	"creator-booking/internal/domain/creator"
	"creator-booking/internal/domain/ledger"
	"creator-booking/internal/infra"
	"creator-booking/internal/pkg/clock"
	"creator-booking/internal/pkg/errs"
	"creator-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreatorCommands interface {
	Register(ctx context.Context, identity uuid.UUID, rate int64, metadataURI string) (*creator.Profile, error)
	Update(ctx context.Context, identity uuid.UUID, rate int64, metadataURI string) (*creator.Profile, error)
}

type creatorCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCreatorCommands(uow shared.UnitOfWork, clock clock.Clock) CreatorCommands {
	return &creatorCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

func (c *creatorCommandsImpl) Register(ctx context.Context, identity uuid.UUID, rate int64, metadataURI string) (*creator.Profile, error) {
	if identity == uuid.Nil {
		return nil, errs.ErrInvalidIdentity
	}

	var registered *creator.Profile
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()

		_, err := tx.Creators().FindByID(ctx, identity)
		switch {
		case err == nil:
			return errs.ErrAlreadyRegistered
		case !infra.IsNotFound(err):
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		profile, err := creator.NewProfile(identity, rate, metadataURI, now)
		if err != nil {
			return err
		}

		if err := tx.Creators().Create(ctx, profile); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.ErrAlreadyRegistered
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		event := ledger.CreatorRegisteredEvent(identity, profile.Rate(), profile.MetadataURI(), now)
		if err := tx.Events().Append(ctx, event); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		registered = profile
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("creator registered", "creator", identity.String(), "rate", registered.Rate())
	return registered, nil
}

func (c *creatorCommandsImpl) Update(ctx context.Context, identity uuid.UUID, rate int64, metadataURI string) (*creator.Profile, error) {
	var updated *creator.Profile
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()

		profile, err := tx.Creators().FindByID(ctx, identity)
		if err != nil {
			if infra.IsNotFound(err) {
				return errs.ErrNotRegistered
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		change, err := profile.Update(rate, metadataURI, now)
		if err != nil {
			return err
		}

		if err := tx.Creators().Update(ctx, profile); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		event := ledger.CreatorUpdatedEvent(identity, change.OldRate, change.NewRate, change.OldURI, change.NewURI, now)
		if err := tx.Events().Append(ctx, event); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		updated = profile
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
