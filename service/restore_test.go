package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hermes/domain/orderbook"
	"hermes/infra/sequence"
	"hermes/infra/store"
)

func seedOpenOrders(t *testing.T, st *store.Store, orders []*orderbook.Order) {
	t.Helper()
	for _, o := range orders {
		require.NoError(t, st.PutOrder(o))
	}
}

func TestRestoreRebuildsBook(t *testing.T) {
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)
	defer st.Close()

	seedOpenOrders(t, st, []*orderbook.Order{
		{Secnum: 1, Symbol: "AAPL", Side: orderbook.Bid, Price: 100, Quantity: 20},
		{Secnum: 2, Symbol: "AAPL", Side: orderbook.Bid, Price: 100, Quantity: 10},
		{Secnum: 3, Symbol: "AAPL", Side: orderbook.Ask, Price: 105, Quantity: 5},
	})

	eng := orderbook.NewEngine([]string{"AAPL"})
	defer eng.Close()
	seqGen := sequence.New(0)

	require.NoError(t, Restore(context.Background(), zap.NewNop(), eng, st, seqGen))
	require.Equal(t, uint64(3), seqGen.Current())

	levels, err := eng.Depth(context.Background(), "AAPL")
	require.NoError(t, err)
	require.Equal(t, []orderbook.Level{
		{Side: orderbook.Bid, Price: 100, Quantity: 30},
		{Side: orderbook.Ask, Price: 105, Quantity: 5},
	}, levels)

	// Time priority was replayed, not re-ranked: an ask for 25 must
	// fill #1 before #2.
	rep, err := eng.Execute(context.Background(), &orderbook.Order{
		Secnum: 4, Symbol: "AAPL", Side: orderbook.Ask, Price: 100, Quantity: 25,
	})
	require.NoError(t, err)
	require.Equal(t, []orderbook.Execution{
		{Secnum: 1, Quantity: 20},
		{Secnum: 2, Quantity: 5},
	}, rep.Bids)
}

func TestRestoreIsDeterministic(t *testing.T) {
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)
	defer st.Close()

	seedOpenOrders(t, st, []*orderbook.Order{
		{Secnum: 10, Symbol: "AAPL", Side: orderbook.Bid, Price: 101, Quantity: 7},
		{Secnum: 11, Symbol: "AAPL", Side: orderbook.Bid, Price: 100, Quantity: 9},
		{Secnum: 12, Symbol: "AAPL", Side: orderbook.Ask, Price: 103, Quantity: 4},
		{Secnum: 13, Symbol: "GOOGL", Side: orderbook.Ask, Price: 55, Quantity: 2},
	})

	depths := make([][]orderbook.Level, 2)
	for i := range depths {
		eng := orderbook.NewEngine([]string{"AAPL", "GOOGL"})
		require.NoError(t, Restore(context.Background(), zap.NewNop(), eng, st, sequence.New(0)))
		aapl, err := eng.Depth(context.Background(), "AAPL")
		require.NoError(t, err)
		googl, err := eng.Depth(context.Background(), "GOOGL")
		require.NoError(t, err)
		depths[i] = append(aapl, googl...)
		eng.Close()
	}
	require.Equal(t, depths[0], depths[1])
}

func TestRestoreFlushesRederivedMatches(t *testing.T) {
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)
	defer st.Close()

	// Crossed state: a match ran but its commit was lost. Replay must
	// re-derive it, commit once and enqueue one batch.
	seedOpenOrders(t, st, []*orderbook.Order{
		{Secnum: 1, Symbol: "AAPL", Side: orderbook.Bid, Price: 100, Quantity: 10},
		{Secnum: 2, Symbol: "AAPL", Side: orderbook.Ask, Price: 95, Quantity: 10},
	})

	eng := orderbook.NewEngine([]string{"AAPL"})
	defer eng.Close()
	require.NoError(t, Restore(context.Background(), zap.NewNop(), eng, st, sequence.New(0)))

	r1, err := st.GetOrder(1)
	require.NoError(t, err)
	require.True(t, r1.Filled())
	r2, err := st.GetOrder(2)
	require.NoError(t, err)
	require.True(t, r2.Filled())

	var batches int
	require.NoError(t, st.ScanOutbox(store.OutboxNew, func(rec store.OutboxRecord) error {
		batches++
		return nil
	}))
	require.Equal(t, 1, batches)

	levels, err := eng.Depth(context.Background(), "AAPL")
	require.NoError(t, err)
	require.Empty(t, levels)
}

func TestRestoreUnknownSymbolIsFatal(t *testing.T) {
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)
	defer st.Close()

	seedOpenOrders(t, st, []*orderbook.Order{
		{Secnum: 1, Symbol: "TSLA", Side: orderbook.Bid, Price: 100, Quantity: 10},
	})

	eng := orderbook.NewEngine([]string{"AAPL"})
	defer eng.Close()

	err = Restore(context.Background(), zap.NewNop(), eng, st, sequence.New(0))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unconfigured symbol")
}

func TestRestoreThenPlaceContinues(t *testing.T) {
	dir := t.TempDir()

	// First life: place orders, leave one resting, then shut down.
	{
		st, err := store.Open(dir)
		require.NoError(t, err)
		eng := orderbook.NewEngine([]string{"AAPL"})
		svc := NewOrderService(eng, st, NewTracker(), zap.NewNop())

		_, err = svc.Place(context.Background(), 1, "AAPL", orderbook.Bid, 100, 50)
		require.NoError(t, err)
		_, err = svc.Place(context.Background(), 2, "AAPL", orderbook.Ask, 100, 30)
		require.NoError(t, err)

		eng.Close()
		require.NoError(t, st.Close())
	}

	// Second life: restore, then trade against the restored remainder.
	st, err := store.Open(dir)
	require.NoError(t, err)
	defer st.Close()
	eng := orderbook.NewEngine([]string{"AAPL"})
	defer eng.Close()
	seqGen := sequence.New(0)

	require.NoError(t, Restore(context.Background(), zap.NewNop(), eng, st, seqGen))
	require.Equal(t, uint64(1), seqGen.Current()) // only #1 still open

	svc := NewOrderService(eng, st, NewTracker(), zap.NewNop())
	rep, err := svc.Place(context.Background(), seqGen.Next()+2, "AAPL", orderbook.Ask, 100, 20)
	require.NoError(t, err)
	require.Equal(t, []orderbook.Execution{{Secnum: 1, Quantity: 20}}, rep.Bids)

	r1, err := st.GetOrder(1)
	require.NoError(t, err)
	require.True(t, r1.Filled())
}
