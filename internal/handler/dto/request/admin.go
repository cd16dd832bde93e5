package request

import "github.com/google/uuid"

type FeeRateRequest struct {
	FeePPM uint32 `json:"fee_ppm"`
}

type PlatformWalletRequest struct {
	Wallet uuid.UUID `json:"wallet"`
}
