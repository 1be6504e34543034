package background

import (
	"context"
	"log/slog"
	"time"
)

// TaskSweeper moves overdue in-progress tasks to missed.
type TaskSweeper interface {
	MarkMissedTasks(ctx context.Context) (int, error)
}

// GrantSweeper deactivates package grants past their expiry.
type GrantSweeper interface {
	DeactivateExpiredGrants(ctx context.Context) (int64, error)
}

type BackgroundTasks struct {
	Tasks  TaskSweeper
	Grants GrantSweeper
	Log    *slog.Logger

	SweepInterval       time.Duration
	GrantExpiryInterval time.Duration
}

func NewBackgroundTasks(tasks TaskSweeper, grants GrantSweeper, log *slog.Logger, sweepInterval, grantExpiryInterval time.Duration) *BackgroundTasks {
	return &BackgroundTasks{
		Tasks:               tasks,
		Grants:              grants,
		Log:                 log,
		SweepInterval:       sweepInterval,
		GrantExpiryInterval: grantExpiryInterval,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.every(ctx, bt.SweepInterval, bt.sweepMissedTasks)
	go bt.every(ctx, bt.GrantExpiryInterval, bt.expireGrants)
}

func (bt *BackgroundTasks) every(ctx context.Context, interval time.Duration, fn func(ctx context.Context)) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn(ctx)
		}
	}
}

func (bt *BackgroundTasks) sweepMissedTasks(ctx context.Context) {
	n, err := bt.Tasks.MarkMissedTasks(ctx)
	if err != nil {
		bt.Log.Error("missed task sweep failed", "error", err)
		return
	}
	if n > 0 {
		bt.Log.Info("tasks marked missed", "count", n)
	}
}

func (bt *BackgroundTasks) expireGrants(ctx context.Context) {
	n, err := bt.Grants.DeactivateExpiredGrants(ctx)
	if err != nil {
		bt.Log.Error("grant expiry sweep failed", "error", err)
		return
	}
	if n > 0 {
		bt.Log.Info("expired grants deactivated", "count", n)
	}
}
