package orderbook

import (
	"context"
	"sync"
)

const workerQueueDepth = 1024

// Engine is the matching façade. It owns one OrderBook and one worker
// goroutine per symbol; all mutations of a symbol's queues happen on
// that symbol's worker, so a match never interleaves with another
// order for the same symbol while different symbols proceed in
// parallel.
type Engine struct {
	book    *OrderBook
	workers map[string]chan func()

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewEngine builds the book for the configured symbol set and starts
// the symbol workers. The set is fixed for the engine's lifetime.
func NewEngine(symbols []string) *Engine {
	e := &Engine{
		book:    NewOrderBook(symbols),
		workers: make(map[string]chan func(), len(symbols)),
	}
	for _, sym := range symbols {
		ch := make(chan func(), workerQueueDepth)
		e.workers[sym] = ch
		e.wg.Add(1)
		go func() {
			defer e.wg.Done()
			for fn := range ch {
				fn()
			}
		}()
	}
	return e
}

// Execute validates the order, runs it through the matching algorithm
// on its symbol's worker and returns the report synchronously. The
// report is definitive: both collections empty means the order rested
// without trading. Context applies to admission only: once the order
// reaches its worker the match is final and cannot be cancelled.
func (e *Engine) Execute(ctx context.Context, o *Order) (Report, error) {
	if err := o.Validate(); err != nil {
		return Report{}, err
	}

	e.mu.RLock()
	if e.closed {
		e.mu.RUnlock()
		return Report{}, ErrEngineClosed
	}
	ch, ok := e.workers[o.Symbol]
	if !ok {
		e.mu.RUnlock()
		return Report{}, ErrUnknownSymbol
	}

	done := make(chan Report, 1)
	select {
	case ch <- func() { done <- e.book.match(o) }:
		e.mu.RUnlock()
	case <-ctx.Done():
		e.mu.RUnlock()
		return Report{}, ctx.Err()
	}

	return <-done, nil
}

// Depth returns the aggregated resting levels for one symbol. The walk
// runs on the symbol worker so it observes a consistent book.
func (e *Engine) Depth(ctx context.Context, symbol string) ([]Level, error) {
	e.mu.RLock()
	if e.closed {
		e.mu.RUnlock()
		return nil, ErrEngineClosed
	}
	ch, ok := e.workers[symbol]
	if !ok {
		e.mu.RUnlock()
		return nil, ErrUnknownSymbol
	}

	done := make(chan []Level, 1)
	select {
	case ch <- func() { done <- e.book.depth(symbol) }:
		e.mu.RUnlock()
	case <-ctx.Done():
		e.mu.RUnlock()
		return nil, ctx.Err()
	}

	return <-done, nil
}

// Has reports whether the symbol is part of the configured set.
func (e *Engine) Has(symbol string) bool {
	return e.book.Has(symbol)
}

// Symbols returns the configured symbol set.
func (e *Engine) Symbols() []string {
	out := make([]string, 0, len(e.workers))
	for sym := range e.workers {
		out = append(out, sym)
	}
	return out
}

// Close drains the workers and stops the engine. Execute calls after
// Close fail with ErrEngineClosed.
func (e *Engine) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	for _, ch := range e.workers {
		close(ch)
	}
	e.mu.Unlock()
	e.wg.Wait()
}
