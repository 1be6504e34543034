package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
)

const sweepActor = "system"

// MarkMissedTasks moves every overdue in-progress task to missed. A failure
// on one task is logged and the sweep moves on.
func (uc *DefaultTaskUsecase) MarkMissedTasks(ctx context.Context) (int, error) {
	now := uc.now()
	overdue, err := uc.TaskRepo.FindOverdueTasks(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("find overdue tasks: %w", err)
	}

	missed := 0
	for _, task := range overdue {
		if ctx.Err() != nil {
			break
		}
		if !task.IsOverdue(now) || task.AssignedTo == nil {
			continue
		}
		vendorID := *task.AssignedTo
		err := uc.applyTransition(ctx, &taskOperation{
			TaskID:    task.ID,
			Operation: "timeout",
			ActorID:   sweepActor,
			OldStatus: domain.TaskInProgress,
			Guard: domain.TaskGuard{
				Statuses: []domain.TaskStatus{domain.TaskInProgress},
				Assignee: vendorID,
			},
			Change: domain.TaskChange{Status: domain.TaskMissed},
		})
		if err != nil {
			slog.Warn("failed to mark task missed", "task_id", task.ID, "error", err)
			continue
		}
		missed++
		uc.Notifier.Notify(ctx, vendorID, domain.EventTaskMissed,
			fmt.Sprintf("Time ran out on task %q", task.Title),
			map[string]any{"task_id": task.ID, "time_limit_hours": task.TimeLimitHours})
	}

	if missed > 0 {
		uc.Metrics.RecordTasksMissed(missed)
		slog.Info("overdue tasks marked missed", "count", missed)
	}
	return missed, nil
}
