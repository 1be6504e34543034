package notifier

import (
	"context"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
	publisher "github.com/LavaJover/shvark-gig-service/internal/infrastructure/kafka"
)

const publishTimeout = 5 * time.Second

// NotificationPublisher is implemented by publisher.DefaultKafkaPublisher.
type NotificationPublisher interface {
	PublishNotification(ctx context.Context, topic string, event publisher.NotificationEvent) error
}

// KafkaNotifier delivers notifications through the message bus. Publishing
// happens off the request goroutine and failures are only logged.
type KafkaNotifier struct {
	publisher NotificationPublisher
	topic     string
	log       *slog.Logger
}

func NewKafkaNotifier(pub NotificationPublisher, topic string, log *slog.Logger) *KafkaNotifier {
	return &KafkaNotifier{publisher: pub, topic: topic, log: log}
}

func (n *KafkaNotifier) Notify(ctx context.Context, userID string, eventType domain.EventType, message string, data map[string]any) {
	event := publisher.NotificationEvent{
		UserID:    userID,
		Type:      string(eventType),
		Message:   message,
		Data:      data,
		CreatedAt: time.Now().UTC(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
		defer cancel()
		if err := n.publisher.PublishNotification(ctx, n.topic, event); err != nil {
			n.log.Error("failed to publish notification", "user_id", userID, "type", eventType, "error", err)
		}
	}()
}

// LogNotifier only writes notifications to the log. It backs deployments
// without a broker.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(ctx context.Context, userID string, eventType domain.EventType, message string, data map[string]any) {
	n.log.InfoContext(ctx, "notification", "user_id", userID, "type", eventType, "message", message)
}
