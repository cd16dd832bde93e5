package memstore

import (
	"context"

	"creator-booking/internal/domain/ledger"
	"creator-booking/internal/infra"
)

type settingsRepo struct{ tx *memTx }

func cloneSettings(s *ledger.Settings) *ledger.Settings {
	return ledger.ReconstructSettings(s.FeePPM(), s.PlatformWallet(), s.Custody())
}

func (r settingsRepo) Get(_ context.Context) (*ledger.Settings, error) {
	if r.tx.st.settings == nil {
		return nil, infra.NotFound("ledger settings not initialised")
	}
	return cloneSettings(r.tx.st.settings), nil
}

func (r settingsRepo) Save(_ context.Context, s *ledger.Settings) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	if r.tx.st.settings == nil {
		return infra.NotFound("ledger settings not initialised")
	}
	r.tx.st.settings = cloneSettings(s)
	return nil
}

func (r settingsRepo) InitIfAbsent(_ context.Context, s *ledger.Settings) (bool, error) {
	if err := r.tx.writable(); err != nil {
		return false, err
	}
	if r.tx.st.settings != nil {
		return false, nil
	}
	r.tx.st.settings = cloneSettings(s)
	return true, nil
}
