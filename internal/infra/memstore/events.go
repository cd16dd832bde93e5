package memstore

import (
	"context"
	"maps"
	"slices"
	"time"

	"creator-booking/internal/domain/ledger"
	"creator-booking/internal/usecase/shared"
)

type eventRepo struct{ tx *memTx }

func (r eventRepo) Append(_ context.Context, e ledger.Event) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	r.tx.st.eventSeq++
	e.Attributes = maps.Clone(e.Attributes)
	r.tx.st.events = append(r.tx.st.events, shared.StoredEvent{Seq: r.tx.st.eventSeq, Event: e})
	return nil
}

func (r eventRepo) FetchUnpublished(_ context.Context, limit int) ([]shared.StoredEvent, error) {
	n := len(r.tx.st.events)
	if limit > 0 && limit < n {
		n = limit
	}
	return slices.Clone(r.tx.st.events[:n]), nil
}

// MarkPublished drops the events from the store. Only the unpublished backlog
// is kept, so transaction snapshots stay proportional to it.
func (r eventRepo) MarkPublished(_ context.Context, seqs []int64, _ time.Time) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	r.tx.st.events = slices.DeleteFunc(r.tx.st.events, func(e shared.StoredEvent) bool {
		return slices.Contains(seqs, e.Seq)
	})
	return nil
}
