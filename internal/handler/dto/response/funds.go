package response

import (
	"creator-booking/internal/domain/ledger"
	"creator-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var uuidToString = copier.TypeConverter{
	SrcType: uuid.UUID{},
	DstType: copier.String,
	Fn: func(src any) (any, error) {
		return src.(uuid.UUID).String(), nil
	},
}

type BalanceResponse struct {
	Account   string `json:"account"`
	Balance   int64  `json:"balance"`
	Allowance int64  `json:"allowance"`
}

func FromBalanceView(v *queries.BalanceView) (*BalanceResponse, error) {
	res := &BalanceResponse{}
	opt := copier.Option{Converters: []copier.TypeConverter{uuidToString}}
	if err := copier.CopyWithOption(res, v, opt); err != nil {
		return nil, err
	}
	return res, nil
}

type DepositResponse struct {
	Account string `json:"account"`
	Balance int64  `json:"balance"`
}

type SettingsResponse struct {
	FeePPM         uint32 `json:"fee_ppm"`
	PlatformWallet string `json:"platform_wallet"`
	Custody        string `json:"custody"`
}

func FromSettings(s *ledger.Settings) *SettingsResponse {
	return &SettingsResponse{
		FeePPM:         s.FeePPM(),
		PlatformWallet: s.PlatformWallet().String(),
		Custody:        s.Custody().String(),
	}
}
