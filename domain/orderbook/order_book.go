package orderbook

import "sort"

// sideQueues pairs the two resting queues of one symbol.
type sideQueues struct {
	asks *PriceQueue
	bids *PriceQueue
}

// OrderBook maps each configured symbol to its ask and bid queues.
// The symbol set is fixed at construction; the book is single-writer
// and deterministic. Serialization is the engine's job.
type OrderBook struct {
	books   map[string]*sideQueues
	arrival uint64
}

func NewOrderBook(symbols []string) *OrderBook {
	books := make(map[string]*sideQueues, len(symbols))
	for _, sym := range symbols {
		books[sym] = &sideQueues{
			asks: NewPriceQueue(Ask),
			bids: NewPriceQueue(Bid),
		}
	}
	return &OrderBook{books: books}
}

// Has reports whether the symbol was configured at construction.
func (b *OrderBook) Has(symbol string) bool {
	_, ok := b.books[symbol]
	return ok
}

// match resolves an incoming order against the opposite queue and
// returns the execution report. It mutates resting quantities, removes
// exhausted counter-orders and rests any unfilled remainder at the
// original price and secnum. Pure with respect to I/O: it cannot fail,
// callers guarantee the symbol exists and the order is valid.
func (b *OrderBook) match(o *Order) Report {
	qs := b.books[o.Symbol]

	var own, opp *PriceQueue
	if o.Side == Bid {
		own, opp = qs.bids, qs.asks
	} else {
		own, opp = qs.asks, qs.bids
	}

	var rep Report
	remaining := o.Quantity

	// Fast path: price strictly worse than best opposite, or no
	// opposite liquidity at all. The whole order rests untouched.
	if top := opp.Top(); top == nil || priceWorse(o.Side, o.Price, top.Price) {
		b.rest(own, o, remaining)
		return rep
	}

	for remaining > 0 {
		counter := opp.Top()
		if counter == nil || priceWorse(o.Side, o.Price, counter.Price) {
			break
		}

		trade := remaining
		if counter.Quantity < trade {
			trade = counter.Quantity
		}

		remaining -= trade
		counter.Quantity -= trade

		// One leg per side, built fresh: no aliasing between the
		// resting order's mutable quantity and the emitted fragment.
		if o.Side == Bid {
			rep.Asks = append(rep.Asks, Execution{Secnum: counter.Secnum, Quantity: trade})
			rep.Bids = append(rep.Bids, Execution{Secnum: o.Secnum, Quantity: trade})
		} else {
			rep.Asks = append(rep.Asks, Execution{Secnum: o.Secnum, Quantity: trade})
			rep.Bids = append(rep.Bids, Execution{Secnum: counter.Secnum, Quantity: trade})
		}

		if counter.Quantity == 0 {
			opp.Remove()
		}
	}

	if remaining > 0 {
		b.rest(own, o, remaining)
	}
	return rep
}

// rest parks the unfilled remainder as a new fragment owned by the
// book. The caller's Order is copied, never retained.
func (b *OrderBook) rest(q *PriceQueue, o *Order, remaining int64) {
	b.arrival++
	q.Add(&Order{
		Secnum:   o.Secnum,
		Symbol:   o.Symbol,
		Side:     o.Side,
		Price:    o.Price,
		Quantity: remaining,
	}, b.arrival)
}

// priceWorse reports whether an incoming order at price p cannot trade
// against a best opposite price. Comparison is exact, no tolerance.
func priceWorse(side Side, p, best int64) bool {
	if side == Bid {
		return p < best
	}
	return p > best
}

// Level is one aggregated price level of the depth snapshot.
type Level struct {
	Side     Side
	Price    int64
	Quantity int64
}

// depth aggregates resting quantity per price for one symbol. Bid
// levels come first, best price outward on both sides.
func (b *OrderBook) depth(symbol string) []Level {
	qs := b.books[symbol]

	collect := func(q *PriceQueue, side Side) []Level {
		byPrice := make(map[int64]int64)
		q.walk(func(o *Order) {
			byPrice[o.Price] += o.Quantity
		})
		levels := make([]Level, 0, len(byPrice))
		for price, qty := range byPrice {
			levels = append(levels, Level{Side: side, Price: price, Quantity: qty})
		}
		sort.Slice(levels, func(i, j int) bool {
			if side == Bid {
				return levels[i].Price > levels[j].Price
			}
			return levels[i].Price < levels[j].Price
		})
		return levels
	}

	return append(collect(qs.bids, Bid), collect(qs.asks, Ask)...)
}

// topOf returns the best resting order on one side, nil when empty.
// Exposed for tests and the engine's depth walk.
func (b *OrderBook) topOf(symbol string, side Side) *Order {
	qs := b.books[symbol]
	if qs == nil {
		return nil
	}
	if side == Bid {
		return qs.bids.Top()
	}
	return qs.asks.Top()
}
