package task

import (
	"context"
	"errors"
	"log/slog"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
)

// StartTask claims an available task for the vendor and spends one unit of
// task quota. Quota and claim commit together: losing the claim race gives
// the unit back.
func (uc *DefaultTaskUsecase) StartTask(ctx context.Context, taskID, vendorID string) (*domain.Task, error) {
	task, err := uc.loadTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !task.ClaimableBy(vendorID) {
		uc.Metrics.RecordTaskConflict("start")
		return nil, domain.ErrTaskNotAvailable
	}

	now := uc.now()
	assignee := vendorID
	err = uc.Tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := uc.Quota.Consume(ctx, vendorID, domain.QuotaTask); err != nil {
			if errors.Is(err, domain.ErrQuotaExhausted) {
				uc.Metrics.RecordQuotaExhausted("start")
			}
			return err
		}
		return uc.applyTransition(ctx, &taskOperation{
			TaskID:    taskID,
			Operation: "start",
			ActorID:   vendorID,
			OldStatus: domain.TaskAvailable,
			Guard: domain.TaskGuard{
				Statuses:        []domain.TaskStatus{domain.TaskAvailable},
				Assignee:        vendorID,
				AllowUnassigned: true,
			},
			Change: domain.TaskChange{
				Status:     domain.TaskInProgress,
				AssignedTo: &assignee,
				StartedAt:  &now,
			},
		})
	})
	if err != nil {
		return nil, err
	}

	task.Status = domain.TaskInProgress
	task.AssignedTo = &assignee
	task.StartedAt = &now
	task.UpdatedAt = now
	uc.Metrics.RecordTaskStarted()
	slog.Info("task started", "task_id", taskID, "vendor_id", vendorID)
	return task, nil
}
