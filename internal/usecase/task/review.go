package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
	taskdto "github.com/LavaJover/shvark-gig-service/internal/usecase/dto/task"
	"github.com/LavaJover/shvark-gig-service/internal/usecase/validation"
)

const (
	decisionApprove = "approve"
	decisionReject  = "reject"
)

// ReviewTask settles a submitted task. Approval credits the reward to the
// assignee in the same transaction as the status change. Rejection is
// final.
func (uc *DefaultTaskUsecase) ReviewTask(ctx context.Context, input *taskdto.ReviewTaskInput) error {
	if err := validation.Struct(input); err != nil {
		return err
	}
	task, err := uc.loadTask(ctx, input.TaskID)
	if err != nil {
		return err
	}
	if task.Status != domain.TaskPendingReview || task.AssignedTo == nil {
		uc.Metrics.RecordTaskConflict(input.Decision)
		return domain.ErrTaskNotAvailable
	}
	vendorID := *task.AssignedTo

	now := uc.now()
	op := &taskOperation{
		TaskID:    task.ID,
		Operation: input.Decision,
		ActorID:   input.AdminID,
		OldStatus: domain.TaskPendingReview,
		Guard: domain.TaskGuard{
			Statuses: []domain.TaskStatus{domain.TaskPendingReview},
			Assignee: vendorID,
		},
		Change: domain.TaskChange{ReviewedAt: &now},
	}

	switch input.Decision {
	case decisionApprove:
		op.Change.Status = domain.TaskApproved
		err = uc.Tx.WithinTx(ctx, func(ctx context.Context) error {
			if err := uc.applyTransition(ctx, op); err != nil {
				return err
			}
			if !task.Reward.IsPositive() {
				return nil
			}
			_, err := uc.Wallet.Credit(ctx, vendorID, task.Reward, "Task reward: "+task.Title, &task.ID)
			return err
		})
	case decisionReject:
		reason := input.Reason
		op.Change.Status = domain.TaskRejected
		op.Change.RejectionReason = &reason
		op.Note = reason
		err = uc.applyTransition(ctx, op)
	default:
		return validation.Errorf("unknown decision %q", input.Decision)
	}
	if err != nil {
		return err
	}

	uc.Metrics.RecordTaskReviewed(input.Decision)
	slog.Info("task reviewed", "task_id", task.ID, "decision", input.Decision, "admin_id", input.AdminID)
	uc.notifyReviewed(ctx, task, vendorID, input.Decision, input.Reason)
	return nil
}

func (uc *DefaultTaskUsecase) notifyReviewed(ctx context.Context, task *domain.Task, vendorID, decision, reason string) {
	if decision == decisionApprove {
		msg := fmt.Sprintf("Your task %q has been approved", task.Title)
		if task.Reward.IsPositive() {
			msg += fmt.Sprintf(", ₹%s credited to your wallet", task.Reward.StringFixed(2))
		}
		uc.Notifier.Notify(ctx, vendorID, domain.EventTaskApproved, msg,
			map[string]any{"task_id": task.ID, "reward": task.Reward.String()})
		return
	}
	msg := fmt.Sprintf("Your task %q was rejected", task.Title)
	if reason != "" {
		msg += ": " + reason
	}
	uc.Notifier.Notify(ctx, vendorID, domain.EventTaskRejected, msg,
		map[string]any{"task_id": task.ID, "reason": reason})
}
