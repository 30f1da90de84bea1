package store

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/cockroachdb/pebble"

	"hermes/domain/orderbook"
)

var (
	ErrNotFound     = errors.New("store: order not found")
	ErrOverfill     = errors.New("store: execution exceeds remaining quantity")
	ErrBadRecord    = errors.New("store: malformed record")
	ErrNeverOrdered = errors.New("store: execution references unknown order")
)

// Store is the engine's durability point: admitted orders with their
// remaining quantity, append-only execution records, and the outbox
// that feeds the downstream broadcaster. Everything lives in one
// pebble instance; commits are synchronous.
type Store struct {
	db        *pebble.DB
	outboxSeq atomic.Uint64
}

func Open(dir string) (*Store, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", dir, err)
	}
	s := &Store{db: db}
	last, err := s.lastOutboxSeq()
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: recover outbox seq: %w", err)
	}
	s.outboxSeq.Store(last)
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// OrderRecord is the persisted view of an admitted order. Remaining
// tracks unfilled quantity; fills counts execution records appended so
// far and indexes the next one.
type OrderRecord struct {
	Secnum    uint64
	Symbol    string
	Side      orderbook.Side
	Price     int64
	Quantity  int64
	Remaining int64
	fills     uint32
}

// Filled reports whether the order is completely executed.
func (r *OrderRecord) Filled() bool {
	return r.Remaining == 0
}

// ---- keys ----
//
// order/<secnum:020d>          admitted order, mutable remaining
// exec/<secnum:020d>/<n:06d>   append-only execution legs
// filled/<secnum:020d>         derived fully-filled marker

func orderKey(secnum uint64) []byte {
	return []byte(fmt.Sprintf("order/%020d", secnum))
}

func execKey(secnum uint64, n uint32) []byte {
	return []byte(fmt.Sprintf("exec/%020d/%06d", secnum, n))
}

func filledKey(secnum uint64) []byte {
	return []byte(fmt.Sprintf("filled/%020d", secnum))
}

// ---- order record codec ----
// [side:1][price:8][qty:8][remaining:8][fills:4][symlen:2][symbol]

func encodeOrder(r *OrderRecord) []byte {
	buf := make([]byte, 1+8+8+8+4+2+len(r.Symbol))
	buf[0] = byte(r.Side)
	binary.BigEndian.PutUint64(buf[1:9], uint64(r.Price))
	binary.BigEndian.PutUint64(buf[9:17], uint64(r.Quantity))
	binary.BigEndian.PutUint64(buf[17:25], uint64(r.Remaining))
	binary.BigEndian.PutUint32(buf[25:29], r.fills)
	binary.BigEndian.PutUint16(buf[29:31], uint16(len(r.Symbol)))
	copy(buf[31:], r.Symbol)
	return buf
}

func decodeOrder(secnum uint64, b []byte) (OrderRecord, error) {
	if len(b) < 31 {
		return OrderRecord{}, ErrBadRecord
	}
	symLen := int(binary.BigEndian.Uint16(b[29:31]))
	if len(b) != 31+symLen {
		return OrderRecord{}, ErrBadRecord
	}
	return OrderRecord{
		Secnum:    secnum,
		Symbol:    string(b[31 : 31+symLen]),
		Side:      orderbook.Side(b[0]),
		Price:     int64(binary.BigEndian.Uint64(b[1:9])),
		Quantity:  int64(binary.BigEndian.Uint64(b[9:17])),
		Remaining: int64(binary.BigEndian.Uint64(b[17:25])),
		fills:     binary.BigEndian.Uint32(b[25:29]),
	}, nil
}

func parseOrderKey(key []byte) (uint64, error) {
	var secnum uint64
	if _, err := fmt.Sscanf(string(key), "order/%d", &secnum); err != nil {
		return 0, fmt.Errorf("store: bad order key %q: %w", key, err)
	}
	return secnum, nil
}

// ---- API ----

// PutOrder records an admitted order before it is matched. Re-writing
// the same secnum is idempotent as long as the order is unchanged; the
// lifecycle tracker prevents concurrent duplicates from reaching here.
func (s *Store) PutOrder(o *orderbook.Order) error {
	rec := OrderRecord{
		Secnum:    o.Secnum,
		Symbol:    o.Symbol,
		Side:      o.Side,
		Price:     o.Price,
		Quantity:  o.Quantity,
		Remaining: o.Quantity,
	}
	if err := s.db.Set(orderKey(o.Secnum), encodeOrder(&rec), pebble.Sync); err != nil {
		return fmt.Errorf("store: put order %d: %w", o.Secnum, err)
	}
	return nil
}

// GetOrder fetches one order record.
func (s *Store) GetOrder(secnum uint64) (OrderRecord, error) {
	val, closer, err := s.db.Get(orderKey(secnum))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return OrderRecord{}, ErrNotFound
		}
		return OrderRecord{}, fmt.Errorf("store: get order %d: %w", secnum, err)
	}
	defer closer.Close()
	return decodeOrder(secnum, val)
}

// ApplyExecutions commits one report atomically: every leg appends an
// execution record and decrements its order's remaining quantity; an
// order reaching zero gets the derived filled marker. The batch either
// lands whole or not at all; the commit is the durability point the
// lifecycle tracker keys on.
func (s *Store) ApplyExecutions(rep *orderbook.Report) error {
	if rep.Empty() {
		return nil
	}

	batch := s.db.NewBatch()
	defer batch.Close()

	// Aggregate per secnum first: one order can appear in several
	// legs of the same report and those must sum, not overwrite.
	type delta struct {
		qty  int64
		legs []orderbook.Execution
	}
	deltas := make(map[uint64]*delta)
	add := func(e orderbook.Execution) {
		d := deltas[e.Secnum]
		if d == nil {
			d = &delta{}
			deltas[e.Secnum] = d
		}
		d.qty += e.Quantity
		d.legs = append(d.legs, e)
	}
	for _, e := range rep.Asks {
		add(e)
	}
	for _, e := range rep.Bids {
		add(e)
	}

	for secnum, d := range deltas {
		rec, err := s.GetOrder(secnum)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return fmt.Errorf("%w: secnum %d", ErrNeverOrdered, secnum)
			}
			return err
		}
		if d.qty > rec.Remaining {
			return fmt.Errorf("%w: secnum %d remaining %d delta %d",
				ErrOverfill, secnum, rec.Remaining, d.qty)
		}
		rec.Remaining -= d.qty

		for _, leg := range d.legs {
			val := make([]byte, 9)
			val[0] = byte(rec.Side)
			binary.BigEndian.PutUint64(val[1:], uint64(leg.Quantity))
			if err := batch.Set(execKey(secnum, rec.fills), val, nil); err != nil {
				return err
			}
			rec.fills++
		}

		if err := batch.Set(orderKey(secnum), encodeOrder(&rec), nil); err != nil {
			return err
		}
		if rec.Remaining == 0 {
			if err := batch.Set(filledKey(secnum), []byte{1}, nil); err != nil {
				return err
			}
		}
	}

	if err := batch.Commit(pebble.Sync); err != nil {
		return fmt.Errorf("store: commit executions: %w", err)
	}
	return nil
}

// ScanOpen feeds every order with remaining quantity, in ascending
// secnum order. Zero-padded keys make pebble's key order the admission
// order, which is exactly what restore needs: historical time priority
// must be replayed, never re-derived from price.
func (s *Store) ScanOpen(fn func(OrderRecord) error) error {
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte("order/"),
		UpperBound: []byte("order/~"),
	})
	if err != nil {
		return fmt.Errorf("store: scan open: %w", err)
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		secnum, err := parseOrderKey(iter.Key())
		if err != nil {
			return err
		}
		rec, err := decodeOrder(secnum, iter.Value())
		if err != nil {
			return fmt.Errorf("store: order %d: %w", secnum, err)
		}
		if rec.Remaining == 0 {
			continue
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	return iter.Error()
}

// Executions returns the committed legs for one order, in append
// order.
func (s *Store) Executions(secnum uint64) ([]orderbook.Execution, error) {
	prefix := fmt.Sprintf("exec/%020d/", secnum)
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(prefix),
		UpperBound: []byte(prefix + "~"),
	})
	if err != nil {
		return nil, fmt.Errorf("store: executions %d: %w", secnum, err)
	}
	defer iter.Close()

	var out []orderbook.Execution
	for iter.First(); iter.Valid(); iter.Next() {
		val := iter.Value()
		if len(val) != 9 {
			return nil, ErrBadRecord
		}
		out = append(out, orderbook.Execution{
			Secnum:   secnum,
			Quantity: int64(binary.BigEndian.Uint64(val[1:])),
		})
	}
	return out, iter.Error()
}
