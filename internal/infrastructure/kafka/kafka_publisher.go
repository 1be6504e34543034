package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

type KafkaConfig struct {
	Brokers      []string
	WriteTimeout time.Duration
}

type DefaultKafkaPublisher struct {
	writer *kafka.Writer
}

func NewDefaultKafkaPublisher(cfg KafkaConfig) *DefaultKafkaPublisher {
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 10 * time.Second
	}
	return &DefaultKafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Balancer:               &kafka.Hash{},
			WriteTimeout:           cfg.WriteTimeout,
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		},
	}
}

func (k *DefaultKafkaPublisher) Publish(ctx context.Context, topic string, msgs ...domain.Message) error {
	km := make([]kafka.Message, 0, len(msgs))
	now := time.Now()
	for _, m := range msgs {
		km = append(km, kafka.Message{
			Key:   m.Key,
			Value: m.Value,
			Time:  now,
			Topic: topic,
		})
	}
	return k.writer.WriteMessages(ctx, km...)
}

// PublishNotification writes the event keyed by user id so one user's
// notifications stay ordered within a partition.
func (k *DefaultKafkaPublisher) PublishNotification(ctx context.Context, topic string, event NotificationEvent) error {
	msg, err := notificationMessage(event)
	if err != nil {
		return err
	}
	return k.Publish(ctx, topic, msg)
}

func notificationMessage(event NotificationEvent) (domain.Message, error) {
	v, err := json.Marshal(event)
	if err != nil {
		return domain.Message{}, fmt.Errorf("marshal notification: %w", err)
	}
	return domain.Message{Key: []byte(event.UserID), Value: v}, nil
}

func (k *DefaultKafkaPublisher) Close() error {
	return k.writer.Close()
}
