package task

import (
	"context"
	"log/slog"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
	"github.com/LavaJover/shvark-gig-service/internal/usecase/validation"
)

// AssignTask offers an available task to one vendor. The task stays
// available until that vendor starts it.
func (uc *DefaultTaskUsecase) AssignTask(ctx context.Context, taskID, vendorID, adminID string) error {
	if vendorID == "" {
		return validation.Errorf("assignee is required")
	}
	task, err := uc.loadTask(ctx, taskID)
	if err != nil {
		return err
	}
	if task.Status != domain.TaskAvailable {
		uc.Metrics.RecordTaskConflict("assign")
		return domain.ErrTaskNotAvailable
	}

	assignee := vendorID
	err = uc.applyTransition(ctx, &taskOperation{
		TaskID:    taskID,
		Operation: "assign",
		ActorID:   adminID,
		OldStatus: domain.TaskAvailable,
		Guard:     domain.TaskGuard{Statuses: []domain.TaskStatus{domain.TaskAvailable}},
		Change: domain.TaskChange{
			Status:     domain.TaskAvailable,
			AssignedTo: &assignee,
		},
	})
	if err != nil {
		return err
	}
	task.AssignedTo = &assignee
	uc.notifyAssigned(ctx, task)
	return nil
}

// SetTaskStatus is the administrative override. Moving a task back to
// available drops its assignee; every other status needs one.
func (uc *DefaultTaskUsecase) SetTaskStatus(ctx context.Context, taskID string, status domain.TaskStatus, adminID string) error {
	if !status.Valid() {
		return validation.Errorf("unknown task status %q", status)
	}
	task, err := uc.loadTask(ctx, taskID)
	if err != nil {
		return err
	}

	now := uc.now()
	change := domain.TaskChange{Status: status}
	switch status {
	case domain.TaskAvailable:
		change.ClearAssignee = true
	case domain.TaskInProgress:
		if task.AssignedTo == nil {
			return validation.Errorf("status %s requires an assignee", status)
		}
		change.StartedAt = &now
	default:
		if task.AssignedTo == nil {
			return validation.Errorf("status %s requires an assignee", status)
		}
		if status == domain.TaskApproved || status == domain.TaskRejected || status == domain.TaskCompleted {
			change.ReviewedAt = &now
		}
	}

	err = uc.applyTransition(ctx, &taskOperation{
		TaskID:    taskID,
		Operation: "status",
		ActorID:   adminID,
		OldStatus: task.Status,
		Guard:     domain.TaskGuard{Statuses: []domain.TaskStatus{task.Status}},
		Change:    change,
		Note:      "set to " + string(status),
	})
	if err != nil {
		return err
	}
	slog.Info("task status overridden", "task_id", taskID, "from", task.Status, "to", status, "admin_id", adminID)
	return nil
}
