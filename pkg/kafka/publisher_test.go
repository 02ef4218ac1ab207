package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/aiu-lab/facility-service/pkg/kafka"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPublisher_Publish(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var ev kafka.Event
		if err := json.Unmarshal(val, &ev); err != nil {
			return err
		}
		if ev.Type() != "rental.approve" || ev.UserName != "aigerim" {
			return errors.New("unexpected event " + ev.Type())
		}
		return nil
	})
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := kafka.NewPublisher(producer, kafka.EventsTopic, zap.NewNop())
	p.Publish(context.Background(),
		kafka.NewEvent(kafka.EntityRental, 1, "approve", "admin", "pending", "approved", "aigerim"),
		kafka.NewEvent(kafka.EntityRental, 2, "reject", "admin", "pending", "rejected", "dana"),
	)
	require.NoError(t, producer.Close())
}
