package queries

//go:generate mockgen -source=creator.go -destination=../../../tests/mock/queries/creator.go -package=queriesmock

import (
	"context"

	"creator-booking/internal/infra"
	"creator-booking/internal/pkg/errs"
	"creator-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreatorQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*CreatorView, error)
}

type creatorQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewCreatorQueries(uow shared.UnitOfWork) CreatorQueries {
	return &creatorQueriesImpl{uow: uow}
}

func (q *creatorQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*CreatorView, error) {
	view := &CreatorView{ID: id}
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Creators().FindByID(ctx, id)
		if err != nil {
			if infra.IsNotFound(err) {
				return nil
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		view.Exists = true
		view.Rate = p.Rate()
		view.MetadataURI = p.MetadataURI()
		view.RegisteredAt = p.RegisteredAt()
		view.UpdatedAt = p.UpdatedAt()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
