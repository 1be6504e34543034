package notifier

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
	publisher "github.com/LavaJover/shvark-gig-service/internal/infrastructure/kafka"
)

type fakePublisher struct {
	mu     sync.Mutex
	topic  string
	events []publisher.NotificationEvent
	err    error
	done   chan struct{}
}

func (f *fakePublisher) PublishNotification(_ context.Context, topic string, event publisher.NotificationEvent) error {
	f.mu.Lock()
	f.topic = topic
	f.events = append(f.events, event)
	f.mu.Unlock()
	close(f.done)
	return f.err
}

var _ NotificationPublisher = (*publisher.DefaultKafkaPublisher)(nil)

func TestKafkaNotifierPublishesKeyedEvent(t *testing.T) {
	pub := &fakePublisher{done: make(chan struct{})}
	n := NewKafkaNotifier(pub, "notification-events", slog.Default())

	n.Notify(context.Background(), "user-1", domain.EventTaskApproved, "approved", map[string]any{"task_id": "t1"})

	select {
	case <-pub.done:
	case <-time.After(2 * time.Second):
		t.Fatal("notification was not published")
	}

	pub.mu.Lock()
	defer pub.mu.Unlock()
	if pub.topic != "notification-events" {
		t.Errorf("topic = %q", pub.topic)
	}
	if len(pub.events) != 1 || pub.events[0].UserID != "user-1" {
		t.Fatalf("events = %+v", pub.events)
	}
	event := pub.events[0]
	if event.Type != string(domain.EventTaskApproved) || event.Data["task_id"] != "t1" {
		t.Errorf("event = %+v", event)
	}
}

func TestKafkaNotifierSwallowsPublishErrors(t *testing.T) {
	pub := &fakePublisher{done: make(chan struct{}), err: errors.New("broker down")}
	n := NewKafkaNotifier(pub, "notification-events", slog.Default())

	n.Notify(context.Background(), "user-1", domain.EventTaskMissed, "missed", nil)

	select {
	case <-pub.done:
	case <-time.After(2 * time.Second):
		t.Fatal("notification was not attempted")
	}
}
