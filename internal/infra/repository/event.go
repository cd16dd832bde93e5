package repository

import (
	"context"
	"encoding/json"
	"time"

	"creator-booking/internal/domain/ledger"
	"creator-booking/internal/infra"
	"creator-booking/internal/infra/db"
	"creator-booking/internal/pkg/pgconv"
	"creator-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	appendEvent = `INSERT INTO ledger_events (event_type, attributes, occurred_at) VALUES ($1, $2, $3)`

	// seq is assigned at insert, so a row committed later can carry a lower
	// seq than rows already returned here.
	fetchUnpublished = `
SELECT seq, event_type, attributes, occurred_at
  FROM ledger_events
 WHERE published_at IS NULL
 ORDER BY seq
 LIMIT $1`

	markPublished = `UPDATE ledger_events SET published_at = $2 WHERE seq = ANY($1)`
)

type EventRepository struct {
	db db.DBTX
}

func NewEventRepository(dbtx db.DBTX) *EventRepository {
	return &EventRepository{db: dbtx}
}

func (r *EventRepository) Append(ctx context.Context, e ledger.Event) error {
	attrs, err := json.Marshal(e.Attributes)
	if err != nil {
		return infra.WrapRepoErr("failed to encode event attributes", err, infra.KindDBFailure)
	}
	if _, err := r.db.Exec(ctx, appendEvent, e.Type, attrs, pgconv.TimeToPgtype(e.OccurredAt)); err != nil {
		return infra.WrapRepoErr("failed to append event", err)
	}
	return nil
}

func (r *EventRepository) FetchUnpublished(ctx context.Context, limit int) ([]shared.StoredEvent, error) {
	rows, err := r.db.Query(ctx, fetchUnpublished, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch unpublished events", err)
	}

	events, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (shared.StoredEvent, error) {
		var (
			seq        int64
			eventType  string
			attrs      []byte
			occurredAt pgtype.Timestamptz
		)
		if err := row.Scan(&seq, &eventType, &attrs, &occurredAt); err != nil {
			return shared.StoredEvent{}, err
		}
		var attributes map[string]string
		if err := json.Unmarshal(attrs, &attributes); err != nil {
			return shared.StoredEvent{}, err
		}
		return shared.StoredEvent{
			Seq: seq,
			Event: ledger.Event{
				Type:       eventType,
				Attributes: attributes,
				OccurredAt: pgconv.TimeFromPgtype(occurredAt),
			},
		}, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan events", err)
	}
	return events, nil
}

func (r *EventRepository) MarkPublished(ctx context.Context, seqs []int64, at time.Time) error {
	if len(seqs) == 0 {
		return nil
	}
	if _, err := r.db.Exec(ctx, markPublished, seqs, pgconv.TimeToPgtype(at)); err != nil {
		return infra.WrapRepoErr("failed to mark events published", err)
	}
	return nil
}
