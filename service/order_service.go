package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"hermes/domain/orderbook"
	"hermes/infra/memory"
	"hermes/infra/store"
)

/*
OrderService is the only write entry point into the system.

All coordination between the matching engine, the lifecycle tracker
and the store happens here: admission, idempotency, the pure match,
the durable commit and the outbox handoff.
*/

const (
	commitRetries = 5
	commitBackoff = 50 * time.Millisecond
)

// FillEvent is the outbox payload for one committed execution batch.
// Secnum identifies the incoming (taker) order that produced it.
type FillEvent struct {
	Secnum uint64                `json:"secnum"`
	Asks   []orderbook.Execution `json:"asks"`
	Bids   []orderbook.Execution `json:"bids"`
}

type OrderService struct {
	engine  *orderbook.Engine
	store   *store.Store
	tracker *Tracker
	pool    *memory.Pool[orderbook.Order]
	log     *zap.Logger
}

// NewOrderService wires all dependencies. No globals.
func NewOrderService(
	engine *orderbook.Engine,
	st *store.Store,
	tracker *Tracker,
	log *zap.Logger,
) *OrderService {
	return &OrderService{
		engine:  engine,
		store:   st,
		tracker: tracker,
		pool: memory.NewPool(func() *orderbook.Order {
			return &orderbook.Order{}
		}),
		log: log,
	}
}

// Place admits one inbound order, matches it and commits the result.
// The returned report is definitive and synchronous: empty means the
// order rested. Duplicates are answered without re-matching. Commit
// failures are retried internally and never surface as a failure of
// the match itself.
func (s *OrderService) Place(
	ctx context.Context,
	secnum uint64,
	symbol string,
	side orderbook.Side,
	price int64,
	quantity int64,
) (orderbook.Report, error) {
	o := s.pool.Get()
	defer s.pool.Put(o)
	*o = orderbook.Order{
		Secnum:   secnum,
		Symbol:   symbol,
		Side:     side,
		Price:    price,
		Quantity: quantity,
	}

	// Precondition violations reject before any state is touched.
	if err := o.Validate(); err != nil {
		return orderbook.Report{}, err
	}
	if !s.engine.Has(symbol) {
		return orderbook.Report{}, orderbook.ErrUnknownSymbol
	}

	// In-flight duplicate: re-deliver the pending result if the match
	// already ran, otherwise report "nothing yet". Never re-match.
	if !s.tracker.Admit(secnum) {
		if rep, ok := s.tracker.Pending(secnum); ok && rep != nil {
			s.log.Info("duplicate order, re-delivering pending result",
				zap.Uint64("secnum", secnum))
			return *rep, nil
		}
		s.log.Info("duplicate order while match in progress",
			zap.Uint64("secnum", secnum))
		return orderbook.Report{}, nil
	}

	// Durable duplicate: the secnum was admitted in a previous life.
	switch _, err := s.store.GetOrder(secnum); {
	case err == nil:
		s.tracker.Release(secnum)
		s.log.Info("duplicate of committed order", zap.Uint64("secnum", secnum))
		return orderbook.Report{}, nil
	case !errors.Is(err, store.ErrNotFound):
		s.tracker.Release(secnum)
		return orderbook.Report{}, err
	}

	// Record admission before matching: a crash after this point
	// replays the order from the store with its full quantity.
	if err := s.store.PutOrder(o); err != nil {
		s.tracker.Release(secnum)
		return orderbook.Report{}, err
	}

	rep, err := s.engine.Execute(ctx, o)
	if err != nil {
		// Admission is durable but the match never ran; the order
		// enters the book at the next restore.
		s.tracker.Release(secnum)
		s.log.Warn("order admitted but not matched",
			zap.Uint64("secnum", secnum), zap.Error(err))
		return orderbook.Report{}, err
	}

	s.tracker.Cache(secnum, &rep)

	if err := s.commit(secnum, &rep); err != nil {
		// Escalated: every touched secnum stays in flight so nothing
		// can double-match before an operator (or restart) resolves
		// the store. The match itself stands.
		s.log.Error("commit failed after retries",
			zap.Uint64("secnum", secnum), zap.Error(err))
		return rep, nil
	}

	s.tracker.Release(append(rep.Secnums(), secnum)...)
	return rep, nil
}

// commit makes the batch durable, then hands it to the outbox. Each
// phase retries independently so a success is never re-applied.
func (s *OrderService) commit(secnum uint64, rep *orderbook.Report) error {
	if err := s.retry(func() error {
		return s.store.ApplyExecutions(rep)
	}); err != nil {
		return fmt.Errorf("apply executions: %w", err)
	}

	if rep.Empty() {
		return nil
	}

	payload, err := json.Marshal(FillEvent{Secnum: secnum, Asks: rep.Asks, Bids: rep.Bids})
	if err != nil {
		return fmt.Errorf("encode fill event: %w", err)
	}
	if err := s.retry(func() error {
		_, err := s.store.EnqueueOutbox(payload)
		return err
	}); err != nil {
		return fmt.Errorf("enqueue outbox: %w", err)
	}
	return nil
}

func (s *OrderService) retry(fn func() error) error {
	var lastErr error
	for attempt := 0; attempt < commitRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(commitBackoff)
		}
		if lastErr = fn(); lastErr == nil {
			return nil
		}
		s.log.Warn("transient store failure, retrying",
			zap.Int("attempt", attempt+1), zap.Error(lastErr))
	}
	return lastErr
}

// Depth exposes the aggregated book levels for one symbol.
func (s *OrderService) Depth(ctx context.Context, symbol string) ([]orderbook.Level, error) {
	return s.engine.Depth(ctx, symbol)
}

// Executions returns the committed legs for one order.
func (s *OrderService) Executions(secnum uint64) ([]orderbook.Execution, error) {
	return s.store.Executions(secnum)
}
