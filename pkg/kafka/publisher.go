package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/aiu-lab/facility-service/pkg/circuitbreaker"
	"go.uber.org/zap"
)

type Publisher interface {
	Publish(ctx context.Context, events ...Event)
}

type publisher struct {
	producer sarama.SyncProducer
	topic    string
	cb       circuitbreaker.CircuitBreaker
	log      *zap.Logger
}

// NewPublisher sends events synchronously behind a circuit breaker. Failures
// are logged and swallowed; the state change has already committed.
func NewPublisher(producer sarama.SyncProducer, topic string, log *zap.Logger) Publisher {
	return &publisher{
		producer: producer,
		topic:    topic,
		cb:       circuitbreaker.New(20, 10*time.Second, 0.5, 2),
		log:      log.Named("publisher"),
	}
}

func (p *publisher) Publish(_ context.Context, events ...Event) {
	for _, ev := range events {
		data, err := json.Marshal(ev)
		if err != nil {
			p.log.Warn("json.Marshal", zap.Error(err))
			continue
		}
		msg := &sarama.ProducerMessage{
			Topic: p.topic,
			Key:   sarama.StringEncoder(ev.UserName),
			Value: sarama.ByteEncoder(data),
		}
		err = p.cb.Call(func() error {
			_, _, err := p.producer.SendMessage(msg)
			return err
		})
		if err != nil {
			p.log.Warn("publish event", zap.String("type", ev.Type()), zap.Int64("id", ev.EntityID), zap.Error(err))
		}
	}
}

type nopPublisher struct{}

func NewNopPublisher() Publisher { return nopPublisher{} }

func (nopPublisher) Publish(context.Context, ...Event) {}
