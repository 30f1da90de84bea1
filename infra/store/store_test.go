package store

import (
	"errors"
	"testing"

	"hermes/domain/orderbook"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestPutAndGetOrder(t *testing.T) {
	s := openTestStore(t)

	o := &orderbook.Order{Secnum: 7, Symbol: "AAPL", Side: orderbook.Bid, Price: 100, Quantity: 50}
	if err := s.PutOrder(o); err != nil {
		t.Fatal(err)
	}

	rec, err := s.GetOrder(7)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Symbol != "AAPL" || rec.Side != orderbook.Bid || rec.Price != 100 {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.Quantity != 50 || rec.Remaining != 50 {
		t.Fatalf("remaining must start at original quantity: %+v", rec)
	}

	if _, err := s.GetOrder(8); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestApplyExecutionsDecrementsRemaining(t *testing.T) {
	s := openTestStore(t)

	_ = s.PutOrder(&orderbook.Order{Secnum: 1, Symbol: "AAPL", Side: orderbook.Bid, Price: 100, Quantity: 50})
	_ = s.PutOrder(&orderbook.Order{Secnum: 2, Symbol: "AAPL", Side: orderbook.Ask, Price: 100, Quantity: 30})

	rep := &orderbook.Report{
		Asks: []orderbook.Execution{{Secnum: 2, Quantity: 30}},
		Bids: []orderbook.Execution{{Secnum: 1, Quantity: 30}},
	}
	if err := s.ApplyExecutions(rep); err != nil {
		t.Fatal(err)
	}

	r1, _ := s.GetOrder(1)
	if r1.Remaining != 20 || r1.Filled() {
		t.Fatalf("order 1: %+v", r1)
	}
	r2, _ := s.GetOrder(2)
	if r2.Remaining != 0 || !r2.Filled() {
		t.Fatalf("order 2 must be fully filled: %+v", r2)
	}

	legs, err := s.Executions(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(legs) != 1 || legs[0].Quantity != 30 {
		t.Fatalf("unexpected legs: %+v", legs)
	}
}

func TestApplyExecutionsSumsRepeatedSecnum(t *testing.T) {
	s := openTestStore(t)
	_ = s.PutOrder(&orderbook.Order{Secnum: 3, Symbol: "AAPL", Side: orderbook.Bid, Price: 101, Quantity: 20})
	_ = s.PutOrder(&orderbook.Order{Secnum: 1, Symbol: "AAPL", Side: orderbook.Ask, Price: 100, Quantity: 10})
	_ = s.PutOrder(&orderbook.Order{Secnum: 2, Symbol: "AAPL", Side: orderbook.Ask, Price: 101, Quantity: 10})

	// Incoming bid 3 fills across two counter-asks: two legs for the
	// same secnum, which must sum.
	rep := &orderbook.Report{
		Asks: []orderbook.Execution{{Secnum: 1, Quantity: 10}, {Secnum: 2, Quantity: 10}},
		Bids: []orderbook.Execution{{Secnum: 3, Quantity: 10}, {Secnum: 3, Quantity: 10}},
	}
	if err := s.ApplyExecutions(rep); err != nil {
		t.Fatal(err)
	}

	r3, _ := s.GetOrder(3)
	if r3.Remaining != 0 {
		t.Fatalf("legs did not sum: %+v", r3)
	}
	legs, _ := s.Executions(3)
	if len(legs) != 2 {
		t.Fatalf("expected two appended legs, got %+v", legs)
	}
}

func TestApplyExecutionsOverfillRejected(t *testing.T) {
	s := openTestStore(t)
	_ = s.PutOrder(&orderbook.Order{Secnum: 1, Symbol: "AAPL", Side: orderbook.Bid, Price: 100, Quantity: 10})

	rep := &orderbook.Report{
		Bids: []orderbook.Execution{{Secnum: 1, Quantity: 11}},
	}
	if err := s.ApplyExecutions(rep); !errors.Is(err, ErrOverfill) {
		t.Fatalf("expected ErrOverfill, got %v", err)
	}

	// Nothing may have been committed.
	rec, _ := s.GetOrder(1)
	if rec.Remaining != 10 {
		t.Fatalf("failed batch must not partially apply: %+v", rec)
	}
}

func TestScanOpenOrder(t *testing.T) {
	s := openTestStore(t)

	// Inserted out of order on purpose; scan must come back ascending.
	for _, sec := range []uint64{30, 10, 20} {
		_ = s.PutOrder(&orderbook.Order{Secnum: sec, Symbol: "AAPL", Side: orderbook.Bid, Price: 100, Quantity: 5})
	}
	// Fill #20 completely so the scan skips it.
	_ = s.ApplyExecutions(&orderbook.Report{
		Bids: []orderbook.Execution{{Secnum: 20, Quantity: 5}},
	})

	var seen []uint64
	err := s.ScanOpen(func(rec OrderRecord) error {
		seen = append(seen, rec.Secnum)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []uint64{10, 30}
	if len(seen) != len(want) {
		t.Fatalf("expected %v, got %v", want, seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("scan order wrong: expected %v, got %v", want, seen)
		}
	}
}

func TestOutboxLifecycle(t *testing.T) {
	s := openTestStore(t)

	seq, err := s.EnqueueOutbox([]byte(`{"asks":[],"bids":[]}`))
	if err != nil {
		t.Fatal(err)
	}
	if seq != 1 {
		t.Fatalf("first outbox seq should be 1, got %d", seq)
	}

	rec, err := s.GetOutbox(seq)
	if err != nil {
		t.Fatal(err)
	}
	if rec.State != OutboxNew || rec.Retries != 0 {
		t.Fatalf("fresh record: %+v", rec)
	}

	if err := s.MarkSent(seq); err != nil {
		t.Fatal(err)
	}
	rec, _ = s.GetOutbox(seq)
	if rec.State != OutboxSent || rec.Retries != 1 || rec.LastAttempt == 0 {
		t.Fatalf("after MarkSent: %+v", rec)
	}

	if err := s.MarkAcked(seq); err != nil {
		t.Fatal(err)
	}
	rec, _ = s.GetOutbox(seq)
	if rec.State != OutboxAcked {
		t.Fatalf("after MarkAcked: %+v", rec)
	}

	// Only NEW records are due for delivery.
	count := 0
	_ = s.ScanOutbox(OutboxNew, func(OutboxRecord) error {
		count++
		return nil
	})
	if count != 0 {
		t.Fatalf("acked record still scanned as NEW")
	}

	if err := s.DeleteOutbox(seq); err != nil {
		t.Fatal(err)
	}
	if _, err := s.GetOutbox(seq); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestOutboxSeqSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if _, err := s.EnqueueOutbox([]byte("x")); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	seq, err := s.EnqueueOutbox([]byte("y"))
	if err != nil {
		t.Fatal(err)
	}
	if seq != 4 {
		t.Fatalf("outbox seq must continue after reopen: got %d", seq)
	}
}
