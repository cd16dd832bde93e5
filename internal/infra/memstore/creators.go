package memstore

import (
	"context"

	"creator-booking/internal/domain/creator"
	"creator-booking/internal/infra"

	"github.com/google/uuid"
)

type creatorRepo struct{ tx *memTx }

func (r creatorRepo) FindByID(_ context.Context, id uuid.UUID) (*creator.Profile, error) {
	p, ok := r.tx.st.creators[id]
	if !ok {
		return nil, infra.NotFound("creator not found")
	}
	return p.Clone(), nil
}

func (r creatorRepo) Create(_ context.Context, p *creator.Profile) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	if _, ok := r.tx.st.creators[p.ID()]; ok {
		return infra.WrapRepoErr("creator already exists", nil, infra.KindDuplicateKey)
	}
	r.tx.st.creators[p.ID()] = p.Clone()
	return nil
}

func (r creatorRepo) Update(_ context.Context, p *creator.Profile) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	if _, ok := r.tx.st.creators[p.ID()]; !ok {
		return infra.NotFound("creator not found")
	}
	r.tx.st.creators[p.ID()] = p.Clone()
	return nil
}
