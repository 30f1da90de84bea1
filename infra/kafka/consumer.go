package kafka

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
)

// Consumer tails one topic. Offsets are committed through the consumer
// group, so restarts resume where the previous run left off.
type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(brokers []string, topic, group string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:        brokers,
			Topic:          topic,
			GroupID:        group,
			MinBytes:       1,
			MaxBytes:       10 << 20,
			CommitInterval: time.Second,
		}),
	}
}

func (c *Consumer) Receive(ctx context.Context) (key, value []byte, err error) {
	msg, err := c.reader.ReadMessage(ctx)
	if err != nil {
		return nil, nil, err
	}
	return msg.Key, msg.Value, nil
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
