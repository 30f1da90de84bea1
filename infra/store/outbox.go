package store

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
)

// Outbox state machine. A record is enqueued NEW at commit time, moved
// to SENT when the broadcaster hands it to Kafka and ACKED once the
// broker confirms. Delivery is at-least-once: a crash between SENT and
// ACKED re-publishes on the next scan.

type OutboxState uint8

const (
	OutboxNew OutboxState = iota
	OutboxSent
	OutboxAcked
)

func (s OutboxState) String() string {
	switch s {
	case OutboxNew:
		return "NEW"
	case OutboxSent:
		return "SENT"
	case OutboxAcked:
		return "ACKED"
	default:
		return "UNKNOWN"
	}
}

// OutboxRecord carries one committed execution batch awaiting
// downstream delivery. Seq is assigned by the store and orders the
// outbox independently of secnums, so a restore flush can never
// collide with a live batch.
type OutboxRecord struct {
	Seq         uint64
	State       OutboxState
	Retries     uint32
	LastAttempt int64
	Payload     []byte
}

// codec: [state:1][retries:4][lastAttempt:8][payload]
func encodeOutbox(r *OutboxRecord) []byte {
	buf := make([]byte, 13+len(r.Payload))
	buf[0] = byte(r.State)
	binary.BigEndian.PutUint32(buf[1:5], r.Retries)
	binary.BigEndian.PutUint64(buf[5:13], uint64(r.LastAttempt))
	copy(buf[13:], r.Payload)
	return buf
}

func decodeOutbox(seq uint64, b []byte) (OutboxRecord, error) {
	if len(b) < 13 {
		return OutboxRecord{}, ErrBadRecord
	}
	payload := make([]byte, len(b)-13)
	copy(payload, b[13:])
	return OutboxRecord{
		Seq:         seq,
		State:       OutboxState(b[0]),
		Retries:     binary.BigEndian.Uint32(b[1:5]),
		LastAttempt: int64(binary.BigEndian.Uint64(b[5:13])),
		Payload:     payload,
	}, nil
}

func outboxKey(seq uint64) []byte {
	return []byte(fmt.Sprintf("outbox/%020d", seq))
}

func parseOutboxKey(key []byte) (uint64, error) {
	var seq uint64
	if _, err := fmt.Sscanf(string(key), "outbox/%d", &seq); err != nil {
		return 0, fmt.Errorf("store: bad outbox key %q: %w", key, err)
	}
	return seq, nil
}

// EnqueueOutbox inserts a NEW record and returns its assigned
// sequence.
func (s *Store) EnqueueOutbox(payload []byte) (uint64, error) {
	seq := s.outboxSeq.Add(1)
	rec := OutboxRecord{Seq: seq, State: OutboxNew, Payload: payload}
	if err := s.db.Set(outboxKey(seq), encodeOutbox(&rec), pebble.Sync); err != nil {
		return 0, fmt.Errorf("store: enqueue outbox %d: %w", seq, err)
	}
	return seq, nil
}

// GetOutbox returns one outbox record.
func (s *Store) GetOutbox(seq uint64) (OutboxRecord, error) {
	val, closer, err := s.db.Get(outboxKey(seq))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return OutboxRecord{}, ErrNotFound
		}
		return OutboxRecord{}, fmt.Errorf("store: get outbox %d: %w", seq, err)
	}
	defer closer.Close()
	return decodeOutbox(seq, val)
}

// MarkSent flips a record to SENT and bumps its retry count.
func (s *Store) MarkSent(seq uint64) error {
	return s.setOutboxState(seq, OutboxSent)
}

// MarkAcked flips a record to ACKED after broker confirmation.
func (s *Store) MarkAcked(seq uint64) error {
	return s.setOutboxState(seq, OutboxAcked)
}

func (s *Store) setOutboxState(seq uint64, state OutboxState) error {
	rec, err := s.GetOutbox(seq)
	if err != nil {
		return err
	}
	rec.State = state
	if state == OutboxSent {
		rec.Retries++
	}
	rec.LastAttempt = time.Now().UnixNano()
	if err := s.db.Set(outboxKey(seq), encodeOutbox(&rec), pebble.Sync); err != nil {
		return fmt.Errorf("store: outbox %d -> %s: %w", seq, state, err)
	}
	return nil
}

// DeleteOutbox removes an ACKED record (cleanup).
func (s *Store) DeleteOutbox(seq uint64) error {
	return s.db.Delete(outboxKey(seq), pebble.Sync)
}

// ScanOutbox visits every record in the given state, ascending seq.
func (s *Store) ScanOutbox(state OutboxState, fn func(OutboxRecord) error) error {
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte("outbox/"),
		UpperBound: []byte("outbox/~"),
	})
	if err != nil {
		return fmt.Errorf("store: scan outbox: %w", err)
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		seq, err := parseOutboxKey(iter.Key())
		if err != nil {
			return err
		}
		rec, err := decodeOutbox(seq, iter.Value())
		if err != nil {
			return err
		}
		if rec.State != state {
			continue
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	return iter.Error()
}

// lastOutboxSeq finds the highest assigned outbox sequence so the
// counter survives restarts.
func (s *Store) lastOutboxSeq() (uint64, error) {
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte("outbox/"),
		UpperBound: []byte("outbox/~"),
	})
	if err != nil {
		return 0, err
	}
	defer iter.Close()

	if !iter.Last() {
		return 0, iter.Error()
	}
	return parseOutboxKey(iter.Key())
}
