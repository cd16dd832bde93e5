package repository

import (
	"context"

	"creator-booking/internal/domain/booking"
	"creator-booking/internal/infra"
	"creator-booking/internal/infra/db"
	"creator-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	mintReceipt     = `INSERT INTO receipts (booking_id, owner_id) VALUES ($1, $2)`
	receiptOwner    = `SELECT owner_id FROM receipts WHERE booking_id = $1 AND owner_id IS NOT NULL`
	receiptBalance  = `SELECT count(*) FROM receipts WHERE owner_id = $1`
	transferReceipt = `UPDATE receipts SET owner_id = $2 WHERE booking_id = $1 AND owner_id IS NOT NULL`
	burnReceipt     = `UPDATE receipts SET owner_id = NULL, burned_at = now() WHERE booking_id = $1 AND owner_id IS NOT NULL`
)

type ReceiptRepository struct {
	db db.DBTX
}

func NewReceiptRepository(dbtx db.DBTX) *ReceiptRepository {
	return &ReceiptRepository{db: dbtx}
}

func (r *ReceiptRepository) Mint(ctx context.Context, owner uuid.UUID, id booking.ID) error {
	if _, err := r.db.Exec(ctx, mintReceipt, int64(id), owner); err != nil {
		return infra.WrapRepoErr("failed to mint receipt", err)
	}
	return nil
}

func (r *ReceiptRepository) OwnerOf(ctx context.Context, id booking.ID) (uuid.UUID, error) {
	var owner uuid.UUID
	if err := r.db.QueryRow(ctx, receiptOwner, int64(id)).Scan(&owner); err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("receipt not found", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to read receipt owner", err)
	}
	return owner, nil
}

func (r *ReceiptRepository) BalanceOf(ctx context.Context, owner uuid.UUID) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, receiptBalance, owner).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to count receipts", err)
	}
	return n, nil
}

func (r *ReceiptRepository) Transfer(ctx context.Context, id booking.ID, to uuid.UUID) error {
	tag, err := r.db.Exec(ctx, transferReceipt, int64(id), to)
	if err != nil {
		return infra.WrapRepoErr("failed to transfer receipt", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("receipt not found")
	}
	return nil
}

func (r *ReceiptRepository) Burn(ctx context.Context, id booking.ID) error {
	tag, err := r.db.Exec(ctx, burnReceipt, int64(id))
	if err != nil {
		return infra.WrapRepoErr("failed to burn receipt", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("receipt not found")
	}
	return nil
}
