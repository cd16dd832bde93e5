package repository

import (
	"context"

	"creator-booking/internal/domain/creator"
	"creator-booking/internal/infra"
	"creator-booking/internal/infra/db"
	"creator-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	findCreatorByID = `SELECT id, rate, metadata_uri, registered_at, updated_at FROM creators WHERE id = $1`
	insertCreator   = `INSERT INTO creators (id, rate, metadata_uri, registered_at, updated_at) VALUES ($1, $2, $3, $4, $5)`
	updateCreator   = `UPDATE creators SET rate = $2, metadata_uri = $3, updated_at = $4 WHERE id = $1`
)

type CreatorRepository struct {
	db db.DBTX
}

func NewCreatorRepository(dbtx db.DBTX) *CreatorRepository {
	return &CreatorRepository{db: dbtx}
}

func (r *CreatorRepository) FindByID(ctx context.Context, id uuid.UUID) (*creator.Profile, error) {
	var (
		rowID        uuid.UUID
		rate         int64
		uri          string
		registeredAt pgtype.Timestamptz
		updatedAt    pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findCreatorByID, id).Scan(&rowID, &rate, &uri, &registeredAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("creator not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find creator", err)
	}

	return creator.ReconstructProfile(
		rowID,
		rate,
		uri,
		pgconv.TimeFromPgtype(registeredAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *CreatorRepository) Create(ctx context.Context, p *creator.Profile) error {
	_, err := r.db.Exec(ctx, insertCreator,
		p.ID(),
		p.Rate(),
		p.MetadataURI(),
		pgconv.TimeToPgtype(p.RegisteredAt()),
		pgconv.TimeToPgtype(p.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert creator", err)
	}
	return nil
}

func (r *CreatorRepository) Update(ctx context.Context, p *creator.Profile) error {
	tag, err := r.db.Exec(ctx, updateCreator,
		p.ID(),
		p.Rate(),
		p.MetadataURI(),
		pgconv.TimeToPgtype(p.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update creator", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("creator not found")
	}
	return nil
}
