package broadcaster

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"hermes/infra/store"
)

// Broadcaster drains the outbox into Kafka. Delivery is at-least-once
// and fully decoupled from the matching transaction: a failed publish
// leaves the record for the next tick, it never rolls back a commit.
type Broadcaster struct {
	store    *store.Store
	producer sarama.SyncProducer
	topic    string
	interval time.Duration
	log      *zap.Logger
}

// New wires the broadcaster. The producer is injected so tests can
// substitute sarama's mock.
func New(
	st *store.Store,
	producer sarama.SyncProducer,
	topic string,
	interval time.Duration,
	log *zap.Logger,
) *Broadcaster {
	return &Broadcaster{
		store:    st,
		producer: producer,
		topic:    topic,
		interval: interval,
		log:      log,
	}
}

// NewProducer builds the production Kafka producer.
func NewProducer(brokers []string) (sarama.SyncProducer, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("broadcaster: producer: %w", err)
	}
	return producer, nil
}

// Run ticks until the context is cancelled.
func (b *Broadcaster) Run(ctx context.Context) {
	b.log.Info("broadcaster started",
		zap.String("topic", b.topic),
		zap.Duration("interval", b.interval))

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.PublishOnce()
		}
	}
}

// PublishOnce pushes every undelivered record. SENT records are
// retried as well: a crash between publish and ack means the consumer
// may see the batch twice, never zero times.
func (b *Broadcaster) PublishOnce() {
	for _, state := range []store.OutboxState{store.OutboxNew, store.OutboxSent} {
		err := b.store.ScanOutbox(state, func(rec store.OutboxRecord) error {
			b.publish(rec)
			return nil
		})
		if err != nil {
			b.log.Error("outbox scan failed", zap.Error(err))
		}
	}

	// Acked records are done; drop them.
	err := b.store.ScanOutbox(store.OutboxAcked, func(rec store.OutboxRecord) error {
		return b.store.DeleteOutbox(rec.Seq)
	})
	if err != nil {
		b.log.Error("outbox cleanup failed", zap.Error(err))
	}
}

func (b *Broadcaster) publish(rec store.OutboxRecord) {
	// SENT before the send: if we crash in between, the record is
	// retried, not lost.
	if err := b.store.MarkSent(rec.Seq); err != nil {
		b.log.Error("mark sent failed", zap.Uint64("seq", rec.Seq), zap.Error(err))
		return
	}

	msg := &sarama.ProducerMessage{
		Topic: b.topic,
		Key:   sarama.StringEncoder(fmt.Sprintf("%d", rec.Seq)),
		Value: sarama.ByteEncoder(rec.Payload),
	}
	if _, _, err := b.producer.SendMessage(msg); err != nil {
		b.log.Warn("publish failed, will retry",
			zap.Uint64("seq", rec.Seq),
			zap.Uint32("retries", rec.Retries),
			zap.Error(err))
		return
	}

	if err := b.store.MarkAcked(rec.Seq); err != nil {
		b.log.Error("mark acked failed", zap.Uint64("seq", rec.Seq), zap.Error(err))
	}
}

// Close releases the producer.
func (b *Broadcaster) Close() error {
	return b.producer.Close()
}
