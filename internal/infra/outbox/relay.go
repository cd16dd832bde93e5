package outbox

import (
	"context"
	"log/slog"
	"time"

	"creator-booking/internal/pkg/clock"
	"creator-booking/internal/pkg/errs"
	"creator-booking/internal/pkg/metrics"
	"creator-booking/internal/usecase/shared"
)

// Message is the wire form of a ledger event. The routing key is the event
// type, e.g. "booking.created".
type Message struct {
	Seq        int64             `json:"seq"`
	Type       string            `json:"type"`
	Attributes map[string]string `json:"attributes"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// Relay moves committed ledger events to the broker. Delivery is at least
// once: a crash between publish and mark republishes the batch. Seq order is
// insertion order, which can differ from commit order for events written by
// concurrent transactions, so consumers order by the Seq field and drop
// duplicates.
type Relay struct {
	uow       shared.UnitOfWork
	publisher Publisher
	clock     clock.Clock
	metrics   *metrics.Ledger
	interval  time.Duration
	batchSize int
}

func NewRelay(
	uow shared.UnitOfWork,
	publisher Publisher,
	clock clock.Clock,
	m *metrics.Ledger,
	interval time.Duration,
	batchSize int,
) *Relay {
	if m == nil {
		m = metrics.NewNopLedger()
	}
	if batchSize <= 0 {
		batchSize = 100
	}
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &Relay{
		uow:       uow,
		publisher: publisher,
		clock:     clock,
		metrics:   m,
		interval:  interval,
		batchSize: batchSize,
	}
}

// RelayOnce publishes one batch in seq order and stops at the first
// publish failure. The broker is called outside any transaction: the batch is
// read first and marked published in a second, short transaction.
func (r *Relay) RelayOnce(ctx context.Context) (int, error) {
	var events []shared.StoredEvent
	err := r.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		events, err = tx.Events().FetchUnpublished(ctx, r.batchSize)
		return err
	})
	if err != nil {
		return 0, errs.Wrap(err, "outbox fetch")
	}
	if len(events) == 0 {
		return 0, nil
	}

	seqs := make([]int64, 0, len(events))
	var publishErr error
	for _, e := range events {
		msg := Message{
			Seq:        e.Seq,
			Type:       e.Event.Type,
			Attributes: e.Event.Attributes,
			OccurredAt: e.Event.OccurredAt,
		}
		if publishErr = r.publisher.PublishJSON(ctx, e.Event.Type, msg); publishErr != nil {
			break
		}
		seqs = append(seqs, e.Seq)
	}

	if len(seqs) > 0 {
		err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Events().MarkPublished(ctx, seqs, r.clock.Now())
		})
		if err != nil {
			return 0, errs.Wrap(err, "outbox mark published")
		}
	}

	if publishErr != nil {
		slog.Warn("outbox publish failed", "published", len(seqs), "error", publishErr.Error())
		r.metrics.OutboxPublishErr.Inc()
	}
	r.metrics.OutboxPublished.Add(float64(len(seqs)))
	return len(seqs), nil
}

// Run polls until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := r.RelayOnce(ctx); err != nil && ctx.Err() == nil {
				slog.Error("outbox relay failed", "error", err.Error())
			}
		}
	}
}
