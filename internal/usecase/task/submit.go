package task

import (
	"context"
	"log/slog"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
	taskdto "github.com/LavaJover/shvark-gig-service/internal/usecase/dto/task"
	"github.com/LavaJover/shvark-gig-service/internal/usecase/validation"
)

// SubmitTask hands in the work. The guard on in_progress rejects a task the
// sweep has already marked missed.
func (uc *DefaultTaskUsecase) SubmitTask(ctx context.Context, input *taskdto.SubmitTaskInput) (*domain.Task, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	task, err := uc.loadTask(ctx, input.TaskID)
	if err != nil {
		return nil, err
	}
	if task.Status != domain.TaskInProgress || !task.OwnedBy(input.VendorID) {
		uc.Metrics.RecordTaskConflict("submit")
		return nil, domain.ErrTaskNotAvailable
	}

	now := uc.now()
	err = uc.applyTransition(ctx, &taskOperation{
		TaskID:    input.TaskID,
		Operation: "submit",
		ActorID:   input.VendorID,
		OldStatus: domain.TaskInProgress,
		Guard: domain.TaskGuard{
			Statuses: []domain.TaskStatus{domain.TaskInProgress},
			Assignee: input.VendorID,
		},
		Change: domain.TaskChange{
			Status:             domain.TaskPendingReview,
			SubmittedAt:        &now,
			SubmissionURL:      &input.SubmissionURL,
			SubmissionComments: &input.Comments,
		},
	})
	if err != nil {
		return nil, err
	}

	task.Status = domain.TaskPendingReview
	task.SubmittedAt = &now
	task.SubmissionURL = input.SubmissionURL
	task.SubmissionComments = input.Comments
	task.UpdatedAt = now
	uc.Metrics.RecordTaskSubmitted()
	slog.Info("task submitted", "task_id", input.TaskID, "vendor_id", input.VendorID)
	return task, nil
}
