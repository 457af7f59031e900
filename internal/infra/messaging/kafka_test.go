//go:build unit

package messaging_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"parking-reservation/internal/infra/messaging"
	"parking-reservation/internal/pkg/errs"
	"parking-reservation/internal/usecase/shared"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestKafkaPublisher_PublishEncodesEvent(t *testing.T) {
	producer := mocks.NewSyncProducer(t, sarama.NewConfig())
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var got map[string]any
		if err := json.Unmarshal(val, &got); err != nil {
			return err
		}
		if got["type"] != string(shared.EventCapacityUpdated) {
			return errors.New("unexpected event type")
		}
		if _, ok := got["payload"]; !ok {
			return errors.New("payload missing")
		}
		return nil
	})

	pub := messaging.NewKafkaPublisher(producer, "slot-reservations", quiet)
	ev := shared.CapacityUpdated(6, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))

	require.NoError(t, pub.Publish(context.Background(), ev))
	require.NoError(t, pub.Close())
}

func TestKafkaPublisher_PublishFailureIsUnavailable(t *testing.T) {
	producer := mocks.NewSyncProducer(t, sarama.NewConfig())
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	pub := messaging.NewKafkaPublisher(producer, "slot-reservations", quiet)
	err := pub.Publish(context.Background(), shared.HoldsReclaimed(2, time.Now()))

	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrUnavailable))
	require.NoError(t, pub.Close())
}

func TestKafkaPublisher_CancelledContextSkipsSend(t *testing.T) {
	producer := mocks.NewSyncProducer(t, sarama.NewConfig())
	pub := messaging.NewKafkaPublisher(producer, "slot-reservations", quiet)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pub.Publish(ctx, shared.HoldsReclaimed(1, time.Now()))
	assert.ErrorIs(t, err, context.Canceled)
	require.NoError(t, pub.Close())
}

func TestNoopPublisher(t *testing.T) {
	pub := messaging.NewNoopPublisher(quiet)
	assert.NoError(t, pub.Publish(context.Background(), shared.HoldsReclaimed(1, time.Now())))
}
