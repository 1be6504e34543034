package task

import (
	"context"
	"fmt"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
)

// taskOperation describes one guarded transition of a task.
type taskOperation struct {
	TaskID    string
	Operation string
	ActorID   string
	OldStatus domain.TaskStatus
	Guard     domain.TaskGuard
	Change    domain.TaskChange
	Note      string
}

// applyTransition runs the conditional update and records the audit event
// in one transaction. A guard mismatch is reported as ErrTaskNotAvailable.
func (uc *DefaultTaskUsecase) applyTransition(ctx context.Context, op *taskOperation) error {
	return uc.Tx.WithinTx(ctx, func(ctx context.Context) error {
		ok, err := uc.TaskRepo.TransitionTask(ctx, op.TaskID, op.Guard, op.Change)
		if err != nil {
			return fmt.Errorf("%s task %s: %w", op.Operation, op.TaskID, err)
		}
		if !ok {
			uc.Metrics.RecordTaskConflict(op.Operation)
			return domain.ErrTaskNotAvailable
		}

		event := domain.TaskEvent{
			TaskID:     op.TaskID,
			ActorID:    op.ActorID,
			Action:     op.Operation,
			FromStatus: op.OldStatus,
			ToStatus:   op.Change.Status,
			Note:       op.Note,
			CreatedAt:  uc.now(),
		}
		if op.Change.AssignedTo != nil {
			event.AssignedTo = *op.Change.AssignedTo
		} else if op.Guard.Assignee != "" {
			event.AssignedTo = op.Guard.Assignee
		}
		if err := uc.EventLogger.LogTaskEvent(ctx, event); err != nil {
			return fmt.Errorf("log %s event: %w", op.Operation, err)
		}
		return nil
	})
}

func (uc *DefaultTaskUsecase) loadTask(ctx context.Context, taskID string) (*domain.Task, error) {
	task, err := uc.TaskRepo.GetTaskByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("task %s: %w", taskID, err)
	}
	return task, nil
}
