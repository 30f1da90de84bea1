package orderbook

import "errors"

type Side int

const (
	Bid Side = iota
	Ask
)

func (s Side) String() string {
	if s == Ask {
		return "ask"
	}
	return "bid"
}

// ParseSide maps the wire-level side string to its enum value.
func ParseSide(s string) (Side, error) {
	switch s {
	case "bid":
		return Bid, nil
	case "ask":
		return Ask, nil
	default:
		return 0, ErrInvalidSide
	}
}

var (
	ErrUnknownSymbol   = errors.New("orderbook: unknown symbol")
	ErrInvalidSide     = errors.New("orderbook: invalid side")
	ErrInvalidPrice    = errors.New("orderbook: price must be positive")
	ErrInvalidQuantity = errors.New("orderbook: quantity must be positive")
	ErrEngineClosed    = errors.New("orderbook: engine closed")
)

// Order is a pure domain entity. Secnum is assigned upstream by the
// order manager and identifies the order end-to-end; Quantity is the
// remaining unfilled amount and only ever decreases.
type Order struct {
	Secnum   uint64
	Symbol   string
	Side     Side
	Price    int64
	Quantity int64
}

// Validate rejects precondition violations before any book state is
// touched. Symbol membership is checked separately by the book.
func (o *Order) Validate() error {
	if o.Side != Bid && o.Side != Ask {
		return ErrInvalidSide
	}
	if o.Price <= 0 {
		return ErrInvalidPrice
	}
	if o.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	return nil
}

// Execution is a single trade leg: the resting or incoming order it
// belongs to and the quantity traded in that leg. Executions are
// constructed fresh at emission time and never alias book state.
type Execution struct {
	Secnum   uint64 `json:"secnum"`
	Quantity int64  `json:"quantity"`
}

// Report carries the two execution collections produced by one Execute
// call. Both empty means the order rested without matching. A single
// secnum can appear in several legs of the same report; consumers
// aggregating by secnum must sum quantities.
type Report struct {
	Asks []Execution
	Bids []Execution
}

// Empty reports no trade occurred.
func (r *Report) Empty() bool {
	return len(r.Asks) == 0 && len(r.Bids) == 0
}

// Secnums returns every order touched by the report, deduplicated.
func (r *Report) Secnums() []uint64 {
	seen := make(map[uint64]struct{}, len(r.Asks)+len(r.Bids))
	out := make([]uint64, 0, len(r.Asks)+len(r.Bids))
	for _, e := range r.Asks {
		if _, ok := seen[e.Secnum]; !ok {
			seen[e.Secnum] = struct{}{}
			out = append(out, e.Secnum)
		}
	}
	for _, e := range r.Bids {
		if _, ok := seen[e.Secnum]; !ok {
			seen[e.Secnum] = struct{}{}
			out = append(out, e.Secnum)
		}
	}
	return out
}
