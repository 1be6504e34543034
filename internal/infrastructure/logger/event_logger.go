package logger

import (
	"context"
	"log/slog"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
	"github.com/LavaJover/shvark-gig-service/internal/infrastructure/postgres"
	"github.com/LavaJover/shvark-gig-service/internal/infrastructure/postgres/mappers"
	"gorm.io/gorm"
)

// PGTaskEventLogger appends task transitions to task_events, inside the
// caller's transaction when there is one.
type PGTaskEventLogger struct {
	db *gorm.DB
}

func NewPGTaskEventLogger(db *gorm.DB) *PGTaskEventLogger {
	return &PGTaskEventLogger{db: db}
}

func (l *PGTaskEventLogger) LogTaskEvent(ctx context.Context, event domain.TaskEvent) error {
	return postgres.Conn(ctx, l.db).Create(mappers.ToGORMTaskEvent(event)).Error
}

// SlogTaskEventLogger mirrors every task event to the structured log
// before handing it to next.
type SlogTaskEventLogger struct {
	next domain.TaskEventLogger
	log  *slog.Logger
}

func NewSlogTaskEventLogger(next domain.TaskEventLogger, log *slog.Logger) *SlogTaskEventLogger {
	return &SlogTaskEventLogger{next: next, log: log}
}

func (l *SlogTaskEventLogger) LogTaskEvent(ctx context.Context, event domain.TaskEvent) error {
	l.log.LogAttrs(ctx, slog.LevelDebug, "task event",
		slog.String("task_id", event.TaskID),
		slog.String("action", event.Action),
		slog.String("actor_id", event.ActorID),
		slog.String("from", string(event.FromStatus)),
		slog.String("to", string(event.ToStatus)),
	)
	if l.next == nil {
		return nil
	}
	return l.next.LogTaskEvent(ctx, event)
}
