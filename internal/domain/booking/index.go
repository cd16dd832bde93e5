package booking

import (
	"time"

	"github.com/google/uuid"
)

// IndexEntry is a denormalized copy of a booking's time window kept in the
// payer's index so temporal queries never need the ledger.
type IndexEntry struct {
	BookingID ID
	Creator   uuid.UUID
	Start     time.Time
	End       time.Time
}

func (e IndexEntry) ActiveAt(now time.Time) bool {
	return !e.Start.After(now) && e.End.After(now)
}

func (e IndexEntry) UpcomingAt(now time.Time) bool {
	return e.Start.After(now)
}

func (e IndexEntry) ExpiredAt(now time.Time) bool {
	return !e.End.After(now)
}

// UserIndex is the ordered list of bookings paid for by one user. Order is
// insertion order and survives pruning.
type UserIndex struct {
	user    uuid.UUID
	entries []IndexEntry
}

func NewUserIndex(user uuid.UUID, entries []IndexEntry) *UserIndex {
	cp := make([]IndexEntry, len(entries))
	copy(cp, entries)
	return &UserIndex{user: user, entries: cp}
}

func (ix *UserIndex) User() uuid.UUID { return ix.user }
func (ix *UserIndex) Len() int        { return len(ix.entries) }

func (ix *UserIndex) Entries() []IndexEntry {
	cp := make([]IndexEntry, len(ix.entries))
	copy(cp, ix.entries)
	return cp
}

func (ix *UserIndex) Append(e IndexEntry) {
	ix.entries = append(ix.entries, e)
}

// Prune drops every expired entry in place and returns the removed IDs in
// their original order.
func (ix *UserIndex) Prune(now time.Time) []ID {
	return ix.compact(func(e IndexEntry) bool { return !e.ExpiredAt(now) })
}

// Remove drops the given bookings, keeping the relative order of the rest.
func (ix *UserIndex) Remove(ids []ID) []ID {
	if len(ids) == 0 {
		return nil
	}
	drop := make(map[ID]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	return ix.compact(func(e IndexEntry) bool {
		_, ok := drop[e.BookingID]
		return !ok
	})
}

func (ix *UserIndex) compact(keep func(IndexEntry) bool) []ID {
	var removed []ID
	n := 0
	for _, e := range ix.entries {
		if keep(e) {
			ix.entries[n] = e
			n++
			continue
		}
		removed = append(removed, e.BookingID)
	}
	clear(ix.entries[n:])
	ix.entries = ix.entries[:n]
	return removed
}

// ResolveActive returns the booking in progress at now with the earliest
// start, else the upcoming booking with the earliest start, else None.
// Ties keep the first entry encountered. Expired entries are ignored, so the
// answer does not depend on whether the index was pruned.
func (ix *UserIndex) ResolveActive(now time.Time) ID {
	return ResolveActive(ix.entries, now)
}

func ResolveActive(entries []IndexEntry, now time.Time) ID {
	var active, upcoming *IndexEntry
	for i := range entries {
		e := &entries[i]
		switch {
		case e.ExpiredAt(now):
			continue
		case e.ActiveAt(now):
			if active == nil || e.Start.Before(active.Start) {
				active = e
			}
		default:
			if upcoming == nil || e.Start.Before(upcoming.Start) {
				upcoming = e
			}
		}
	}
	if active != nil {
		return active.BookingID
	}
	if upcoming != nil {
		return upcoming.BookingID
	}
	return None
}
