package orderbook

import "testing"

func TestAskQueueOrdering(t *testing.T) {
	q := NewPriceQueue(Ask)
	q.Add(&Order{Secnum: 1, Price: 103, Quantity: 1}, 1)
	q.Add(&Order{Secnum: 2, Price: 101, Quantity: 1}, 2)
	q.Add(&Order{Secnum: 3, Price: 105, Quantity: 1}, 3)

	if top := q.Top(); top.Price != 101 {
		t.Fatalf("lowest ask must be on top, got %d", top.Price)
	}

	var prices []int64
	for q.Len() > 0 {
		prices = append(prices, q.Remove().Price)
	}
	want := []int64{101, 103, 105}
	for i := range want {
		if prices[i] != want[i] {
			t.Fatalf("ascending pop order expected, got %v", prices)
		}
	}
}

func TestBidQueueOrdering(t *testing.T) {
	q := NewPriceQueue(Bid)
	q.Add(&Order{Secnum: 1, Price: 103, Quantity: 1}, 1)
	q.Add(&Order{Secnum: 2, Price: 105, Quantity: 1}, 2)
	q.Add(&Order{Secnum: 3, Price: 101, Quantity: 1}, 3)

	if top := q.Top(); top.Price != 105 {
		t.Fatalf("highest bid must be on top, got %d", top.Price)
	}
}

func TestFIFOWithinPriceLevel(t *testing.T) {
	q := NewPriceQueue(Bid)
	for i := uint64(1); i <= 5; i++ {
		q.Add(&Order{Secnum: i, Price: 100, Quantity: 1}, i)
	}
	for i := uint64(1); i <= 5; i++ {
		got := q.Remove()
		if got.Secnum != i {
			t.Fatalf("insertion order broken at equal price: want %d got %d", i, got.Secnum)
		}
	}
}

func TestEmptyQueueTopIsNil(t *testing.T) {
	q := NewPriceQueue(Ask)
	if q.Top() != nil {
		t.Error("empty queue must peek nil, not fail")
	}
	if q.Remove() != nil {
		t.Error("empty queue must pop nil")
	}
}
