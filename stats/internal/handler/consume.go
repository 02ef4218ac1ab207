package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/aiu-lab/facility-service/pkg/kafka"
	"github.com/aiu-lab/facility-service/stats/internal/service"
)

type record func(ctx context.Context, ev kafka.Event) error

type Consumer struct {
	record   record
	log      *zap.Logger
	ready    chan struct{}
	attempts int
	backoff  time.Duration
}

type ConsumerOption func(*Consumer)

// WithRetry sets how many times a failed store is tried before the claim
// gives up, and the pause between tries.
func WithRetry(attempts int, backoff time.Duration) ConsumerOption {
	return func(c *Consumer) {
		if attempts > 0 {
			c.attempts = attempts
		}
		c.backoff = backoff
	}
}

func NewConsumer(record record, log *zap.Logger, opts ...ConsumerOption) *Consumer {
	c := &Consumer{
		record:   record,
		log:      log.Named("consumer"),
		ready:    make(chan struct{}),
		attempts: 3,
		backoff:  time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ready is closed once the first session is set up.
func (consumer *Consumer) Ready() <-chan struct{} {
	return consumer.ready
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	select {
	case <-consumer.ready:
	default:
		close(consumer.ready)
	}
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var ev kafka.Event
			if err := json.Unmarshal(message.Value, &ev); err != nil {
				consumer.log.Error("json.Unmarshal", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.store(session.Context(), ev); err != nil {
				if errors.Is(err, service.ErrInvalidEvent) {
					consumer.log.Warn("skip event", zap.String("value", string(message.Value)))
					session.MarkMessage(message, "")
					continue
				}
				// nothing past this offset may be marked; the next session
				// resumes from the last committed one
				consumer.log.Error("consumer.record", zap.Error(err), zap.Int64("offset", message.Offset))
				return fmt.Errorf("store event at offset %d: %w", message.Offset, err)
			}

			consumer.log.Debug("message claimed",
				zap.String("type", ev.Type()),
				zap.Time("timestamp", message.Timestamp),
				zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

func (consumer *Consumer) store(ctx context.Context, ev kafka.Event) error {
	var err error
	for attempt := 1; attempt <= consumer.attempts; attempt++ {
		if err = consumer.record(ctx, ev); err == nil || errors.Is(err, service.ErrInvalidEvent) {
			return err
		}
		if attempt == consumer.attempts {
			break
		}
		consumer.log.Warn("retry event", zap.Int("attempt", attempt), zap.Error(err))
		select {
		case <-time.After(consumer.backoff * time.Duration(attempt)):
		case <-ctx.Done():
			return err
		}
	}
	return err
}
