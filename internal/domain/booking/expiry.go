package booking

import (
	"container/heap"
	"time"
)

// ExpiryQueue orders a user's index entries by end time so expired entries
// can be found without scanning the whole index.
type ExpiryQueue struct {
	items expiryHeap
}

type expiryItem struct {
	id  ID
	end time.Time
}

type expiryHeap []expiryItem

func (h expiryHeap) Len() int { return len(h) }
func (h expiryHeap) Less(i, j int) bool {
	if h[i].end.Equal(h[j].end) {
		return h[i].id < h[j].id
	}
	return h[i].end.Before(h[j].end)
}
func (h expiryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *expiryHeap) Push(x any)   { *h = append(*h, x.(expiryItem)) }
func (h *expiryHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

func NewExpiryQueue(entries []IndexEntry) *ExpiryQueue {
	items := make(expiryHeap, 0, len(entries))
	for _, e := range entries {
		items = append(items, expiryItem{id: e.BookingID, end: e.End})
	}
	heap.Init(&items)
	return &ExpiryQueue{items: items}
}

func (q *ExpiryQueue) Len() int { return q.items.Len() }

func (q *ExpiryQueue) Push(e IndexEntry) {
	heap.Push(&q.items, expiryItem{id: e.BookingID, end: e.End})
}

// NextExpiry reports the earliest end time in the queue.
func (q *ExpiryQueue) NextExpiry() (time.Time, bool) {
	if len(q.items) == 0 {
		return time.Time{}, false
	}
	return q.items[0].end, true
}

// PopExpired removes and returns every booking whose end is at or before now.
func (q *ExpiryQueue) PopExpired(now time.Time) []ID {
	var out []ID
	for len(q.items) > 0 && !q.items[0].end.After(now) {
		it := heap.Pop(&q.items).(expiryItem)
		out = append(out, it.id)
	}
	return out
}

func (q *ExpiryQueue) Clone() *ExpiryQueue {
	cp := make(expiryHeap, len(q.items))
	copy(cp, q.items)
	return &ExpiryQueue{items: cp}
}
