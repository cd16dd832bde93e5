package booking

import (
	"creator-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/holiman/uint256"
)

// PPMDenominator scales fee rates: 10_000 ppm is 1%.
const PPMDenominator = 1_000_000

// Split is the three-way division of a booking's amount. Fee + CreatorShare
// always equals Amount; the floor-division remainder stays with the creator.
type Split struct {
	Amount       int64
	Fee          int64
	CreatorShare int64
}

// ComputeSplit returns fee = floor(rate * feePPM / 1e6) using a 256-bit
// intermediate so the product cannot overflow.
func ComputeSplit(rate int64, feePPM uint32) (Split, error) {
	if rate <= 0 {
		return Split{}, errs.ErrInvalidRate
	}
	if feePPM > PPMDenominator {
		return Split{}, errs.Wrap(errs.ErrInvalidRate, "fee rate above 100%")
	}

	product := new(uint256.Int).Mul(uint256.NewInt(uint64(rate)), uint256.NewInt(uint64(feePPM)))
	fee := new(uint256.Int).Div(product, uint256.NewInt(PPMDenominator))

	feeAmount := int64(fee.Uint64())
	return Split{
		Amount:       rate,
		Fee:          feeAmount,
		CreatorShare: rate - feeAmount,
	}, nil
}

type LegKind string

const (
	LegCollect LegKind = "collect"
	LegFee     LegKind = "fee"
	LegCreator LegKind = "creator"
)

// Leg is one movement of funds in a settlement.
type Leg struct {
	Kind   LegKind
	From   uuid.UUID
	To     uuid.UUID
	Amount int64
}

// Legs lists the transfers that settle the split: collect the full amount
// from the payer into custody, then forward fee and creator share. Zero
// amount forwards are omitted.
func (s Split) Legs(payer, custody, platform, creator uuid.UUID) []Leg {
	legs := []Leg{{Kind: LegCollect, From: payer, To: custody, Amount: s.Amount}}
	if s.Fee > 0 {
		legs = append(legs, Leg{Kind: LegFee, From: custody, To: platform, Amount: s.Fee})
	}
	if s.CreatorShare > 0 {
		legs = append(legs, Leg{Kind: LegCreator, From: custody, To: creator, Amount: s.CreatorShare})
	}
	return legs
}
