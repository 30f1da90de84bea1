package sequence

import "sync/atomic"

// Sequencer hands out strictly monotonic secnums for inbound orders
// that arrive without one. It is reset after restore so newly admitted
// orders never collide with replayed history.
type Sequencer struct {
	next atomic.Uint64
}

// New creates a sequencer starting from a given value.
// Fresh start → 0, after restore → highest replayed secnum.
func New(start uint64) *Sequencer {
	s := &Sequencer{}
	s.next.Store(start)
	return s
}

// Next returns the next secnum.
func (s *Sequencer) Next() uint64 {
	return s.next.Add(1)
}

// Current returns the last issued secnum.
func (s *Sequencer) Current() uint64 {
	return s.next.Load()
}

// Reset sets the sequencer to a specific value. Only used after
// restore has replayed persisted state.
func (s *Sequencer) Reset(v uint64) {
	s.next.Store(v)
}
