package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
	taskdto "github.com/LavaJover/shvark-gig-service/internal/usecase/dto/task"
	"github.com/LavaJover/shvark-gig-service/internal/usecase/validation"
	"github.com/google/uuid"
)

// CreateTask publishes a task as available. An assignee turns it into an
// offer that only that vendor may start.
func (uc *DefaultTaskUsecase) CreateTask(ctx context.Context, input *taskdto.CreateTaskInput) (*domain.Task, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if input.Reward.IsNegative() {
		return nil, validation.Errorf("reward must not be negative")
	}
	if err := validation.Amount("reward", input.Reward); err != nil {
		return nil, err
	}

	now := uc.now()
	task := &domain.Task{
		ID:             uuid.New().String(),
		Title:          input.Title,
		Description:    input.Description,
		MediaURL:       input.MediaURL,
		TimeLimitHours: input.TimeLimitHours,
		Reward:         input.Reward,
		Status:         domain.TaskAvailable,
		CreatedBy:      input.CreatedBy,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if input.AssignedTo != "" {
		assignee := input.AssignedTo
		task.AssignedTo = &assignee
	}

	if err := uc.TaskRepo.CreateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	slog.Info("task created", "task_id", task.ID, "created_by", task.CreatedBy)

	if task.AssignedTo != nil {
		uc.notifyAssigned(ctx, task)
	}
	return task, nil
}

func (uc *DefaultTaskUsecase) DeleteTask(ctx context.Context, taskID, adminID string) error {
	task, err := uc.loadTask(ctx, taskID)
	if err != nil {
		return err
	}
	err = uc.Tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := uc.TaskRepo.DeleteTask(ctx, taskID); err != nil {
			return err
		}
		return uc.EventLogger.LogTaskEvent(ctx, domain.TaskEvent{
			TaskID:     taskID,
			ActorID:    adminID,
			Action:     "delete",
			FromStatus: task.Status,
			CreatedAt:  uc.now(),
		})
	})
	if err != nil {
		return err
	}
	slog.Info("task deleted", "task_id", taskID, "admin_id", adminID)
	return nil
}

func (uc *DefaultTaskUsecase) notifyAssigned(ctx context.Context, task *domain.Task) {
	uc.Notifier.Notify(ctx, *task.AssignedTo, domain.EventTaskAssigned,
		fmt.Sprintf("New task assigned: %s", task.Title),
		map[string]any{"task_id": task.ID, "time_limit_hours": task.TimeLimitHours})
}
