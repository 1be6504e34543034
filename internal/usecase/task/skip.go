package task

import (
	"context"
	"errors"
	"log/slog"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
)

// SkipTask releases a task the vendor was offered or is working on back to
// the pool. The skip is charged by domain.ResolveSkipCost and the counter
// that paid for it is returned.
func (uc *DefaultTaskUsecase) SkipTask(ctx context.Context, taskID, vendorID string) (domain.QuotaKind, error) {
	task, err := uc.loadTask(ctx, taskID)
	if err != nil {
		return "", err
	}

	var guard domain.TaskGuard
	switch {
	case task.Status == domain.TaskAvailable && (task.AssignedTo == nil || task.OwnedBy(vendorID)):
		guard = domain.TaskGuard{
			Statuses:        []domain.TaskStatus{domain.TaskAvailable},
			Assignee:        vendorID,
			AllowUnassigned: true,
		}
	case task.Status == domain.TaskInProgress && task.OwnedBy(vendorID):
		guard = domain.TaskGuard{
			Statuses: []domain.TaskStatus{domain.TaskInProgress},
			Assignee: vendorID,
		}
	default:
		uc.Metrics.RecordTaskConflict("skip")
		return "", domain.ErrTaskNotAvailable
	}

	var charged domain.QuotaKind
	err = uc.Tx.WithinTx(ctx, func(ctx context.Context) error {
		kind, err := uc.Quota.ChargeSkip(ctx, vendorID)
		if err != nil {
			if errors.Is(err, domain.ErrQuotaExhausted) {
				uc.Metrics.RecordQuotaExhausted("skip")
			}
			return err
		}
		charged = kind
		return uc.applyTransition(ctx, &taskOperation{
			TaskID:    taskID,
			Operation: "skip",
			ActorID:   vendorID,
			OldStatus: task.Status,
			Guard:     guard,
			Change: domain.TaskChange{
				Status:        domain.TaskAvailable,
				ClearAssignee: true,
			},
			Note: "charged " + string(kind),
		})
	})
	if err != nil {
		return "", err
	}

	uc.Metrics.RecordTaskSkipped(string(charged))
	slog.Info("task skipped", "task_id", taskID, "vendor_id", vendorID, "charged", charged)
	return charged, nil
}
