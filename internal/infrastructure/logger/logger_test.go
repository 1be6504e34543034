package logger

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/LavaJover/shvark-gig-service/internal/config"
	"github.com/LavaJover/shvark-gig-service/internal/domain"
)

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, _, err := New(config.LogConfig{LogLevel: "info", LogFormat: "xml"})
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, _, err := New(config.LogConfig{LogLevel: "loud"})
	if err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gig.log")
	log, closer, err := New(config.LogConfig{LogLevel: "debug", LogFormat: "text", LogOutput: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer closer.Close()
	if !log.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug level should be enabled")
	}
}

type recordingLogger struct {
	events []domain.TaskEvent
}

func (r *recordingLogger) LogTaskEvent(_ context.Context, event domain.TaskEvent) error {
	r.events = append(r.events, event)
	return nil
}

func TestSlogTaskEventLoggerForwards(t *testing.T) {
	next := &recordingLogger{}
	l := NewSlogTaskEventLogger(next, slog.Default())
	event := domain.TaskEvent{TaskID: "t1", Action: "start", ToStatus: domain.TaskInProgress}
	if err := l.LogTaskEvent(context.Background(), event); err != nil {
		t.Fatal(err)
	}
	if len(next.events) != 1 || next.events[0].TaskID != "t1" {
		t.Fatalf("events = %+v", next.events)
	}
}
