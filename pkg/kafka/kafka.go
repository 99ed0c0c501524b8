package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// Config configures a producer or consumer.
type Config struct {
	Brokers []string
	Topic   string
	GroupID string
}

func (c Config) validate() error {
	if len(c.Brokers) == 0 {
		return errors.New("kafka: at least one broker is required")
	}
	if c.Topic == "" {
		return errors.New("kafka: topic is required")
	}
	return nil
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes JSON events to one topic.
type Producer struct {
	writer messageWriter
}

// NewProducer creates a Producer. Writes are batched for at most 50ms.
func NewProducer(cfg Config) (*Producer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Producer{writer: &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}}, nil
}

// Publish sends event, keyed so one conversation stays on one partition.
func (p *Producer) Publish(ctx context.Context, key string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("kafka: marshal event: %w", err)
	}
	if err := p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: data}); err != nil {
		return fmt.Errorf("kafka: write: %w", err)
	}
	return nil
}

// Close flushes pending writes.
func (p *Producer) Close() error {
	return p.writer.Close()
}

// Handler processes one message. A returned error stops consumption without
// committing the message.
type Handler func(ctx context.Context, msg kafka.Message) error

// Consumer reads a topic as part of a consumer group.
type Consumer struct {
	reader messageReader
}

// NewConsumer creates a Consumer. GroupID is required so offsets are committed.
func NewConsumer(cfg Config) (*Consumer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.GroupID == "" {
		return nil, errors.New("kafka: group id is required")
	}
	return &Consumer{reader: kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		Topic:    cfg.Topic,
		GroupID:  cfg.GroupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})}, nil
}

// Run fetches, handles and commits messages until ctx is done or h fails.
// It returns nil on cancellation.
func (c *Consumer) Run(ctx context.Context, h Handler) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("kafka: fetch: %w", err)
		}
		if err := h(ctx, msg); err != nil {
			return fmt.Errorf("kafka: handle offset %d: %w", msg.Offset, err)
		}
		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("kafka: commit: %w", err)
		}
	}
}

// Close leaves the consumer group.
func (c *Consumer) Close() error {
	return c.reader.Close()
}

// Decode unmarshals a JSON message value into v.
func Decode(msg kafka.Message, v any) error {
	if err := json.Unmarshal(msg.Value, v); err != nil {
		return fmt.Errorf("kafka: decode offset %d: %w", msg.Offset, err)
	}
	return nil
}
