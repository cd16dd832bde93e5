package repository

import (
	"context"

	"creator-booking/internal/domain/ledger"
	"creator-booking/internal/infra"
	"creator-booking/internal/infra/db"
	"creator-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	getSettings  = `SELECT fee_ppm, platform_wallet, custody_account FROM ledger_settings WHERE singleton`
	saveSettings = `UPDATE ledger_settings SET fee_ppm = $1, platform_wallet = $2 WHERE singleton`
	initSettings = `
INSERT INTO ledger_settings (singleton, fee_ppm, platform_wallet, custody_account)
VALUES (TRUE, $1, $2, $3)
ON CONFLICT (singleton) DO NOTHING`
)

type SettingsRepository struct {
	db db.DBTX
}

func NewSettingsRepository(dbtx db.DBTX) *SettingsRepository {
	return &SettingsRepository{db: dbtx}
}

func (r *SettingsRepository) Get(ctx context.Context) (*ledger.Settings, error) {
	var (
		feePPM            int32
		platform, custody uuid.UUID
	)
	if err := r.db.QueryRow(ctx, getSettings).Scan(&feePPM, &platform, &custody); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("ledger settings not initialised", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load ledger settings", err)
	}
	return ledger.ReconstructSettings(uint32(feePPM), platform, custody), nil
}

// Save persists the mutable settings. The custody account is fixed at
// initialisation.
func (r *SettingsRepository) Save(ctx context.Context, s *ledger.Settings) error {
	tag, err := r.db.Exec(ctx, saveSettings, int32(s.FeePPM()), s.PlatformWallet())
	if err != nil {
		return infra.WrapRepoErr("failed to save ledger settings", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("ledger settings not initialised")
	}
	return nil
}

func (r *SettingsRepository) InitIfAbsent(ctx context.Context, s *ledger.Settings) (bool, error) {
	tag, err := r.db.Exec(ctx, initSettings, int32(s.FeePPM()), s.PlatformWallet(), s.Custody())
	if err != nil {
		return false, infra.WrapRepoErr("failed to initialise ledger settings", err)
	}
	return tag.RowsAffected() == 1, nil
}
