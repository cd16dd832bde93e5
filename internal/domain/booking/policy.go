package booking

import "creator-booking/internal/pkg/errs"

// PruneStrategy selects how a payer's expired index entries are found.
type PruneStrategy string

const (
	PruneScan   PruneStrategy = "scan"
	PruneExpiry PruneStrategy = "expiry"
)

func ParsePruneStrategy(s string) (PruneStrategy, error) {
	switch PruneStrategy(s) {
	case PruneScan, PruneExpiry:
		return PruneStrategy(s), nil
	case "":
		return PruneScan, nil
	}
	return "", errs.Wrapf(errs.ErrUnknownPolicy, "prune strategy %q", s)
}

// ResolverAccess controls who may ask for another user's active booking.
type ResolverAccess string

const (
	ResolverSelf   ResolverAccess = "self"
	ResolverPublic ResolverAccess = "public"
)

func ParseResolverAccess(s string) (ResolverAccess, error) {
	switch ResolverAccess(s) {
	case ResolverSelf, ResolverPublic:
		return ResolverAccess(s), nil
	case "":
		return ResolverSelf, nil
	}
	return "", errs.Wrapf(errs.ErrUnknownPolicy, "resolver policy %q", s)
}

// ActiveCheck controls who may call IsActive on a booking.
type ActiveCheck string

const (
	ActiveCheckOwner      ActiveCheck = "owner"
	ActiveCheckAnyReceipt ActiveCheck = "any_receipt"
)

func ParseActiveCheck(s string) (ActiveCheck, error) {
	switch ActiveCheck(s) {
	case ActiveCheckOwner, ActiveCheckAnyReceipt:
		return ActiveCheck(s), nil
	case "":
		return ActiveCheckOwner, nil
	}
	return "", errs.Wrapf(errs.ErrUnknownPolicy, "is-active policy %q", s)
}
