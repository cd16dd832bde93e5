package memstore

import (
	"context"

	"creator-booking/internal/domain/user"
	"creator-booking/internal/infra"

	"github.com/google/uuid"
)

type accountRepo struct{ tx *memTx }

func (r accountRepo) Create(_ context.Context, u *user.User) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	if _, ok := r.tx.st.emails[u.Email().Value()]; ok {
		return infra.WrapRepoErr("email already registered", nil, infra.KindDuplicateKey)
	}
	r.tx.st.accounts[u.ID()] = u
	r.tx.st.emails[u.Email().Value()] = u.ID()
	return nil
}

func (r accountRepo) FindByEmail(_ context.Context, email user.Email) (*user.User, error) {
	id, ok := r.tx.st.emails[email.Value()]
	if !ok {
		return nil, infra.NotFound("account not found")
	}
	return r.tx.st.accounts[id], nil
}

func (r accountRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := r.tx.st.accounts[id]
	if !ok {
		return nil, infra.NotFound("account not found")
	}
	return u, nil
}
