package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hermes/domain/orderbook"
	"hermes/infra/store"
)

type testEnv struct {
	svc     *OrderService
	engine  *orderbook.Engine
	store   *store.Store
	tracker *Tracker
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)
	eng := orderbook.NewEngine([]string{"AAPL", "GOOGL"})
	tracker := NewTracker()
	t.Cleanup(func() {
		eng.Close()
		_ = st.Close()
	})
	return &testEnv{
		svc:     NewOrderService(eng, st, tracker, zap.NewNop()),
		engine:  eng,
		store:   st,
		tracker: tracker,
	}
}

func TestPlaceRestsAndCommits(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	rep, err := env.svc.Place(ctx, 1, "AAPL", orderbook.Bid, 100, 50)
	require.NoError(t, err)
	require.True(t, rep.Empty())

	rec, err := env.store.GetOrder(1)
	require.NoError(t, err)
	require.Equal(t, int64(50), rec.Remaining)

	// Tracker must be clear once the (empty) commit is durable.
	require.Equal(t, 0, env.tracker.Len())
}

func TestPlaceMatchCommitsAndEnqueues(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.Place(ctx, 1, "AAPL", orderbook.Bid, 100, 50)
	require.NoError(t, err)

	rep, err := env.svc.Place(ctx, 2, "AAPL", orderbook.Ask, 100, 30)
	require.NoError(t, err)
	require.Equal(t, []orderbook.Execution{{Secnum: 2, Quantity: 30}}, rep.Asks)
	require.Equal(t, []orderbook.Execution{{Secnum: 1, Quantity: 30}}, rep.Bids)

	r1, err := env.store.GetOrder(1)
	require.NoError(t, err)
	require.Equal(t, int64(20), r1.Remaining)

	r2, err := env.store.GetOrder(2)
	require.NoError(t, err)
	require.True(t, r2.Filled())

	// One NEW outbox record carrying the batch.
	var batches int
	require.NoError(t, env.store.ScanOutbox(store.OutboxNew, func(rec store.OutboxRecord) error {
		batches++
		return nil
	}))
	require.Equal(t, 1, batches)

	require.Equal(t, 0, env.tracker.Len())
}

func TestPlaceRejectsBeforeMutation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.Place(ctx, 1, "TSLA", orderbook.Bid, 100, 10)
	require.ErrorIs(t, err, orderbook.ErrUnknownSymbol)

	_, err = env.svc.Place(ctx, 2, "AAPL", orderbook.Bid, 100, 0)
	require.ErrorIs(t, err, orderbook.ErrInvalidQuantity)

	_, err = env.svc.Place(ctx, 3, "AAPL", orderbook.Bid, -5, 10)
	require.ErrorIs(t, err, orderbook.ErrInvalidPrice)

	// Nothing admitted, nothing stored.
	_, err = env.store.GetOrder(1)
	require.ErrorIs(t, err, store.ErrNotFound)
	require.Equal(t, 0, env.tracker.Len())
}

func TestDuplicateAfterCommitIsNoOp(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.Place(ctx, 1, "AAPL", orderbook.Bid, 100, 50)
	require.NoError(t, err)

	// Same secnum again: no rematch, no doubled book quantity.
	rep, err := env.svc.Place(ctx, 1, "AAPL", orderbook.Bid, 100, 50)
	require.NoError(t, err)
	require.True(t, rep.Empty())

	levels, err := env.svc.Depth(ctx, "AAPL")
	require.NoError(t, err)
	require.Equal(t, []orderbook.Level{{Side: orderbook.Bid, Price: 100, Quantity: 50}}, levels)
}

func TestDuplicateWhileInFlightNeverRematches(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Simulate an outstanding commit by holding the secnum in flight.
	require.True(t, env.tracker.Admit(9))

	rep, err := env.svc.Place(ctx, 9, "AAPL", orderbook.Bid, 100, 10)
	require.NoError(t, err)
	require.True(t, rep.Empty())

	// The duplicate must not have reached the book or the store.
	levels, err := env.svc.Depth(ctx, "AAPL")
	require.NoError(t, err)
	require.Empty(t, levels)
	_, err = env.store.GetOrder(9)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestDuplicateInFlightRedeliversCachedReport(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.Place(ctx, 1, "AAPL", orderbook.Bid, 100, 30)
	require.NoError(t, err)

	// Hold secnum 2 as if its commit were still outstanding, with a
	// cached result.
	require.True(t, env.tracker.Admit(2))
	cached := &orderbook.Report{
		Asks: []orderbook.Execution{{Secnum: 2, Quantity: 30}},
		Bids: []orderbook.Execution{{Secnum: 1, Quantity: 30}},
	}
	env.tracker.Cache(2, cached)

	rep, err := env.svc.Place(ctx, 2, "AAPL", orderbook.Ask, 100, 30)
	require.NoError(t, err)
	require.Equal(t, *cached, rep)

	// Re-delivery only: the resting bid is untouched.
	levels, err := env.svc.Depth(ctx, "AAPL")
	require.NoError(t, err)
	require.Equal(t, []orderbook.Level{{Side: orderbook.Bid, Price: 100, Quantity: 30}}, levels)
}

func TestScenarioSweepAndRest(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Sequence: bid 50@100 rests, ask 30@100 trades, ask 40@90
	// takes the 20 left and rests 20 at 90.
	_, err := env.svc.Place(ctx, 1, "AAPL", orderbook.Bid, 100, 50)
	require.NoError(t, err)
	_, err = env.svc.Place(ctx, 2, "AAPL", orderbook.Ask, 100, 30)
	require.NoError(t, err)

	rep, err := env.svc.Place(ctx, 3, "AAPL", orderbook.Ask, 90, 40)
	require.NoError(t, err)
	require.Equal(t, []orderbook.Execution{{Secnum: 3, Quantity: 20}}, rep.Asks)
	require.Equal(t, []orderbook.Execution{{Secnum: 1, Quantity: 20}}, rep.Bids)

	levels, err := env.svc.Depth(ctx, "AAPL")
	require.NoError(t, err)
	require.Equal(t, []orderbook.Level{{Side: orderbook.Ask, Price: 90, Quantity: 20}}, levels)

	// Store agrees: #1 fully filled across two batches.
	r1, err := env.store.GetOrder(1)
	require.NoError(t, err)
	require.True(t, r1.Filled())
	legs, err := env.svc.Executions(1)
	require.NoError(t, err)
	var total int64
	for _, l := range legs {
		total += l.Quantity
	}
	require.Equal(t, int64(50), total)
}
