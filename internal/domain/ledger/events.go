package ledger

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	EventCreatorRegistered     = "creator.registered"
	EventCreatorUpdated        = "creator.updated"
	EventBookingCreated        = "booking.created"
	EventFeeRateUpdated        = "ledger.fee_rate_updated"
	EventPlatformWalletUpdated = "ledger.platform_wallet_updated"
	EventReceiptTransferred    = "receipt.transferred"
	EventReceiptBurned         = "receipt.burned"
	EventFundsDeposited        = "funds.deposited"
)

// Event is an audit record appended to the outbox in the same transaction as
// the state change it describes.
type Event struct {
	Type       string
	Attributes map[string]string
	OccurredAt time.Time
}

func CreatorRegisteredEvent(creator uuid.UUID, rate int64, uri string, at time.Time) Event {
	return Event{
		Type: EventCreatorRegistered,
		Attributes: map[string]string{
			"creator": creator.String(),
			"rate":    strconv.FormatInt(rate, 10),
			"uri":     uri,
		},
		OccurredAt: at,
	}
}

func CreatorUpdatedEvent(creator uuid.UUID, oldRate, newRate int64, oldURI, newURI string, at time.Time) Event {
	return Event{
		Type: EventCreatorUpdated,
		Attributes: map[string]string{
			"creator": creator.String(),
			"oldRate": strconv.FormatInt(oldRate, 10),
			"newRate": strconv.FormatInt(newRate, 10),
			"oldUri":  oldURI,
			"newUri":  newURI,
		},
		OccurredAt: at,
	}
}

func BookingCreatedEvent(id uint64, payer, creator uuid.UUID, start, end time.Time, amount int64, at time.Time) Event {
	return Event{
		Type: EventBookingCreated,
		Attributes: map[string]string{
			"bookingId": strconv.FormatUint(id, 10),
			"payer":     payer.String(),
			"creator":   creator.String(),
			"start":     strconv.FormatInt(start.Unix(), 10),
			"end":       strconv.FormatInt(end.Unix(), 10),
			"amount":    strconv.FormatInt(amount, 10),
		},
		OccurredAt: at,
	}
}

func FeeRateUpdatedEvent(oldPPM, newPPM uint32, at time.Time) Event {
	return Event{
		Type: EventFeeRateUpdated,
		Attributes: map[string]string{
			"old": strconv.FormatUint(uint64(oldPPM), 10),
			"new": strconv.FormatUint(uint64(newPPM), 10),
		},
		OccurredAt: at,
	}
}

func PlatformWalletUpdatedEvent(oldWallet, newWallet uuid.UUID, at time.Time) Event {
	return Event{
		Type: EventPlatformWalletUpdated,
		Attributes: map[string]string{
			"old": oldWallet.String(),
			"new": newWallet.String(),
		},
		OccurredAt: at,
	}
}

func ReceiptTransferredEvent(id uint64, from, to uuid.UUID, at time.Time) Event {
	return Event{
		Type: EventReceiptTransferred,
		Attributes: map[string]string{
			"bookingId": strconv.FormatUint(id, 10),
			"from":      from.String(),
			"to":        to.String(),
		},
		OccurredAt: at,
	}
}

func ReceiptBurnedEvent(id uint64, owner uuid.UUID, at time.Time) Event {
	return Event{
		Type: EventReceiptBurned,
		Attributes: map[string]string{
			"bookingId": strconv.FormatUint(id, 10),
			"owner":     owner.String(),
		},
		OccurredAt: at,
	}
}

func FundsDepositedEvent(account uuid.UUID, amount int64, at time.Time) Event {
	return Event{
		Type: EventFundsDeposited,
		Attributes: map[string]string{
			"account": account.String(),
			"amount":  strconv.FormatInt(amount, 10),
		},
		OccurredAt: at,
	}
}
