package orderbook

import "container/heap"

// resting is an order fragment sitting in the book, stamped with its
// arrival sequence so equal prices resolve first-in-first-out.
type resting struct {
	order   *Order
	arrival uint64
}

// PriceQueue is a side-specific priority queue of resting fragments.
// Asks surface the lowest price, bids the highest; ties are broken by
// arrival order. The ordering lives entirely in Less so price-time
// priority cannot depend on heap internals.
type PriceQueue struct {
	side    Side
	entries []*resting
}

func NewPriceQueue(side Side) *PriceQueue {
	q := &PriceQueue{side: side}
	heap.Init(q)
	return q
}

func (q *PriceQueue) Len() int { return len(q.entries) }

func (q *PriceQueue) Less(i, j int) bool {
	a, b := q.entries[i], q.entries[j]
	if a.order.Price == b.order.Price {
		return a.arrival < b.arrival
	}
	if q.side == Bid {
		return a.order.Price > b.order.Price
	}
	return a.order.Price < b.order.Price
}

func (q *PriceQueue) Swap(i, j int) {
	q.entries[i], q.entries[j] = q.entries[j], q.entries[i]
}

func (q *PriceQueue) Push(x any) {
	q.entries = append(q.entries, x.(*resting))
}

func (q *PriceQueue) Pop() any {
	n := len(q.entries)
	e := q.entries[n-1]
	q.entries[n-1] = nil
	q.entries = q.entries[:n-1]
	return e
}

// Add rests a fragment in the queue.
func (q *PriceQueue) Add(o *Order, arrival uint64) {
	heap.Push(q, &resting{order: o, arrival: arrival})
}

// Top returns the best-priced resting order without removing it.
// An empty queue yields nil: no resting liquidity, not a fault.
func (q *PriceQueue) Top() *Order {
	if len(q.entries) == 0 {
		return nil
	}
	return q.entries[0].order
}

// Remove pops the best-priced resting order.
func (q *PriceQueue) Remove() *Order {
	if len(q.entries) == 0 {
		return nil
	}
	return heap.Pop(q).(*resting).order
}

// walk visits every resting fragment in heap order (not price order).
func (q *PriceQueue) walk(fn func(*Order)) {
	for _, e := range q.entries {
		fn(e.order)
	}
}
