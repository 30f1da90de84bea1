package service

import (
	"sync"

	"hermes/domain/orderbook"
)

// Tracker is the in-flight idempotency guard. A secnum enters on
// admission and leaves only when the durable commit of its
// contribution completes, never earlier and never based on where
// the order happens to sit in its book. While a secnum is tracked, a
// duplicate submission is answered from the cached report (if the
// match already ran) or with an empty report, but is never matched
// again.
type Tracker struct {
	mu       sync.Mutex
	inflight map[uint64]*orderbook.Report
}

func NewTracker() *Tracker {
	return &Tracker{inflight: make(map[uint64]*orderbook.Report)}
}

// Admit claims a secnum. It returns false when the secnum is already
// in flight, meaning the caller holds a duplicate.
func (t *Tracker) Admit(secnum uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.inflight[secnum]; ok {
		return false
	}
	t.inflight[secnum] = nil
	return true
}

// Cache stores the match result for re-delivery to duplicates that
// arrive while the commit is still outstanding.
func (t *Tracker) Cache(secnum uint64, rep *orderbook.Report) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.inflight[secnum]; ok {
		t.inflight[secnum] = rep
	}
}

// Pending returns the cached report for an in-flight secnum. The
// second return is false when the secnum is not tracked at all.
func (t *Tracker) Pending(secnum uint64) (*orderbook.Report, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	rep, ok := t.inflight[secnum]
	return rep, ok
}

// Release drops secnums whose contribution is durably committed.
func (t *Tracker) Release(secnums ...uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, sec := range secnums {
		delete(t.inflight, sec)
	}
}

// Len reports how many secnums are currently in flight.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.inflight)
}
