package memstore

import (
	"context"

	"creator-booking/internal/domain/booking"
	"creator-booking/internal/infra"

	"github.com/google/uuid"
)

type receiptRepo struct{ tx *memTx }

func (r receiptRepo) Mint(_ context.Context, owner uuid.UUID, id booking.ID) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	_, minted := r.tx.st.receipts[id]
	_, burned := r.tx.st.burned[id]
	if minted || burned {
		return infra.WrapRepoErr("receipt already minted", nil, infra.KindDuplicateKey)
	}
	r.tx.st.receipts[id] = owner
	r.tx.st.held[owner]++
	return nil
}

func (r receiptRepo) OwnerOf(_ context.Context, id booking.ID) (uuid.UUID, error) {
	owner, ok := r.tx.st.receipts[id]
	if !ok {
		return uuid.Nil, infra.NotFound("receipt not found")
	}
	return owner, nil
}

func (r receiptRepo) BalanceOf(_ context.Context, owner uuid.UUID) (int64, error) {
	return r.tx.st.held[owner], nil
}

func (r receiptRepo) Transfer(_ context.Context, id booking.ID, to uuid.UUID) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	from, ok := r.tx.st.receipts[id]
	if !ok {
		return infra.NotFound("receipt not found")
	}
	r.tx.st.receipts[id] = to
	r.decHeld(from)
	r.tx.st.held[to]++
	return nil
}

func (r receiptRepo) Burn(_ context.Context, id booking.ID) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	owner, ok := r.tx.st.receipts[id]
	if !ok {
		return infra.NotFound("receipt not found")
	}
	delete(r.tx.st.receipts, id)
	r.tx.st.burned[id] = struct{}{}
	r.decHeld(owner)
	return nil
}

func (r receiptRepo) decHeld(owner uuid.UUID) {
	if r.tx.st.held[owner] <= 1 {
		delete(r.tx.st.held, owner)
		return
	}
	r.tx.st.held[owner]--
}
