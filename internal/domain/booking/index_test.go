//go:build unit

package booking_test

import (
	"math/rand/v2"
	"slices"
	"testing"
	"time"

	"creator-booking/internal/domain/booking"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(id booking.ID, start, end time.Duration) booking.IndexEntry {
	return booking.IndexEntry{
		BookingID: id,
		Creator:   uuid.Nil,
		Start:     t0.Add(start),
		End:       t0.Add(end),
	}
}

func ids(entries []booking.IndexEntry) []booking.ID {
	out := make([]booking.ID, len(entries))
	for i, e := range entries {
		out[i] = e.BookingID
	}
	return out
}

func TestUserIndexPrune(t *testing.T) {
	ix := booking.NewUserIndex(uuid.New(), []booking.IndexEntry{
		entry(1, -3*time.Hour, -2*time.Hour), // expired
		entry(2, time.Hour, 2*time.Hour),     // upcoming
		entry(3, -time.Hour, 0),              // ends exactly now: expired
		entry(4, -time.Hour, time.Hour),      // active
		entry(5, -5*time.Hour, -4*time.Hour), // expired
	})

	removed := ix.Prune(t0)

	assert.Equal(t, []booking.ID{1, 3, 5}, removed)
	assert.Equal(t, []booking.ID{2, 4}, ids(ix.Entries()))
	assert.Nil(t, ix.Prune(t0), "second prune is a no-op")
}

func TestUserIndexRemovePreservesOrder(t *testing.T) {
	ix := booking.NewUserIndex(uuid.New(), []booking.IndexEntry{
		entry(1, 0, time.Hour),
		entry(2, 0, time.Hour),
		entry(3, 0, time.Hour),
		entry(4, 0, time.Hour),
	})

	removed := ix.Remove([]booking.ID{3, 1, 99})

	assert.Equal(t, []booking.ID{1, 3}, removed, "removed ids follow index order")
	assert.Equal(t, []booking.ID{2, 4}, ids(ix.Entries()))
	assert.Nil(t, ix.Remove(nil))
}

func TestUserIndexEntriesAreCopies(t *testing.T) {
	src := []booking.IndexEntry{entry(1, 0, time.Hour)}
	ix := booking.NewUserIndex(uuid.New(), src)
	src[0].BookingID = 99

	got := ix.Entries()
	got[0].BookingID = 77

	assert.Equal(t, booking.ID(1), ix.Entries()[0].BookingID)
}

func TestResolveActive(t *testing.T) {
	tests := []struct {
		name    string
		entries []booking.IndexEntry
		want    booking.ID
	}{
		{name: "empty index", want: booking.None},
		{
			name:    "only expired",
			entries: []booking.IndexEntry{entry(1, -2*time.Hour, -time.Hour)},
			want:    booking.None,
		},
		{
			name: "active beats earlier upcoming",
			entries: []booking.IndexEntry{
				entry(1, time.Minute, time.Hour),
				entry(2, -time.Minute, time.Minute),
			},
			want: 2,
		},
		{
			name: "earliest-start active wins",
			entries: []booking.IndexEntry{
				entry(1, -time.Minute, time.Hour),
				entry(2, -time.Hour, time.Hour),
			},
			want: 2,
		},
		{
			name: "earliest upcoming when nothing active",
			entries: []booking.IndexEntry{
				entry(1, 3*time.Hour, 4*time.Hour),
				entry(2, time.Hour, 2*time.Hour),
				entry(3, -2*time.Hour, -time.Hour),
			},
			want: 2,
		},
		{
			name: "tie keeps first entry",
			entries: []booking.IndexEntry{
				entry(7, time.Hour, 2*time.Hour),
				entry(3, time.Hour, 3*time.Hour),
			},
			want: 7,
		},
		{
			name:    "start equal to now is active",
			entries: []booking.IndexEntry{entry(1, 0, time.Hour)},
			want:    1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.ResolveActive(tt.entries, t0))
		})
	}
}

func randomEntries(r *rand.Rand, n int) []booking.IndexEntry {
	out := make([]booking.IndexEntry, n)
	for i := range out {
		start := time.Duration(r.IntN(48)-24) * time.Hour
		length := time.Duration(r.IntN(4)+1) * time.Hour
		out[i] = entry(booking.ID(i+1), start, start+length)
	}
	return out
}

// Pruning must never change the resolver's answer.
func TestResolveActiveIgnoresPruning(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		entries := randomEntries(r, r.IntN(12))
		ix := booking.NewUserIndex(uuid.New(), entries)
		before := ix.ResolveActive(t0)

		ix.Prune(t0)

		require.Equal(t, before, ix.ResolveActive(t0), "iteration %d", i)
		for _, e := range ix.Entries() {
			require.False(t, e.ExpiredAt(t0))
		}
	}
}

func TestExpiryQueueMatchesScan(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 200; i++ {
		entries := randomEntries(r, r.IntN(12))
		ix := booking.NewUserIndex(uuid.New(), entries)
		q := booking.NewExpiryQueue(entries)

		scanned := ix.Prune(t0)

		popped := q.PopExpired(t0)
		slices.Sort(popped)
		sortedScan := slices.Clone(scanned)
		slices.Sort(sortedScan)

		if diff := cmp.Diff(sortedScan, popped); diff != "" {
			t.Fatalf("iteration %d: expiry queue disagrees with scan (-scan +queue):\n%s", i, diff)
		}
		require.Equal(t, ix.Len(), q.Len())
	}
}

func TestExpiryQueue(t *testing.T) {
	q := booking.NewExpiryQueue(nil)
	_, ok := q.NextExpiry()
	assert.False(t, ok)

	q.Push(entry(2, 0, 2*time.Hour))
	q.Push(entry(1, 0, time.Hour))
	q.Push(entry(3, 0, time.Hour))

	next, ok := q.NextExpiry()
	require.True(t, ok)
	assert.True(t, next.Equal(t0.Add(time.Hour)))

	clone := q.Clone()
	assert.Equal(t, []booking.ID{1, 3}, q.PopExpired(t0.Add(time.Hour)), "same end time pops in id order")
	assert.Equal(t, 1, q.Len())
	assert.Equal(t, 3, clone.Len(), "clone is independent")
}
