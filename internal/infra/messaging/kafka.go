// Package messaging publishes reservation lifecycle events.
package messaging

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"parking-reservation/internal/pkg/config"
	"parking-reservation/internal/pkg/errs"
	"parking-reservation/internal/usecase/shared"

	"github.com/IBM/sarama"
)

func NewProducer(cfg config.KafkaConfig) (sarama.SyncProducer, error) {
	sc := sarama.NewConfig()
	sc.ClientID = cfg.ClientID
	sc.Producer.RequiredAcks = sarama.WaitForAll
	sc.Producer.Return.Successes = true
	sc.Producer.Retry.Max = 3
	sc.Producer.Timeout = 5 * time.Second

	p, err := sarama.NewSyncProducer(cfg.Brokers, sc)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "connect kafka producer"), errs.ErrUnavailable)
	}
	return p, nil
}

// KafkaPublisher writes events as JSON, keyed by slot so one slot's events
// stay ordered within a partition.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

func NewKafkaPublisher(producer sarama.SyncProducer, topic string, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, topic: topic, logger: logger}
}

func (p *KafkaPublisher) Publish(ctx context.Context, ev shared.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrapf(err, "encode %s event", ev.Type)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Value: sarama.ByteEncoder(data),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event-type"), Value: []byte(ev.Type)},
		},
		Timestamp: ev.OccurredAt,
	}
	if ev.Key != "" {
		msg.Key = sarama.StringEncoder(ev.Key)
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return errs.Mark(errs.Wrapf(err, "publish %s event", ev.Type), errs.ErrUnavailable)
	}
	p.logger.Debug("event published",
		slog.String("type", string(ev.Type)),
		slog.Int("partition", int(partition)),
		slog.Int64("offset", offset),
	)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
