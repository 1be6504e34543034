package task

import (
	"context"
	"log/slog"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
	taskdto "github.com/LavaJover/shvark-gig-service/internal/usecase/dto/task"
	"github.com/LavaJover/shvark-gig-service/internal/usecase/validation"
)

// BulkAction applies one admin action to every id independently. Item
// failures are collected in the result and never abort the batch.
func (uc *DefaultTaskUsecase) BulkAction(ctx context.Context, input *taskdto.BulkActionInput) (*domain.BulkResult, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	var op func(id string) error
	switch domain.BulkAction(input.Action) {
	case domain.BulkApprove, domain.BulkReject:
		op = func(id string) error {
			return uc.ReviewTask(ctx, &taskdto.ReviewTaskInput{
				TaskID:   id,
				AdminID:  input.AdminID,
				Decision: input.Action,
				Reason:   input.Reason,
			})
		}
	case domain.BulkDelete:
		op = func(id string) error {
			return uc.DeleteTask(ctx, id, input.AdminID)
		}
	case domain.BulkAssign:
		op = func(id string) error {
			return uc.AssignTask(ctx, id, input.AssigneeID, input.AdminID)
		}
	case domain.BulkStatus:
		status := domain.TaskStatus(input.Status)
		if !status.Valid() {
			return nil, validation.Errorf("unknown task status %q", input.Status)
		}
		op = func(id string) error {
			return uc.SetTaskStatus(ctx, id, status, input.AdminID)
		}
	default:
		return nil, validation.Errorf("unknown bulk action %q", input.Action)
	}

	result := domain.ReduceBulk(input.TaskIDs, op)
	slog.Info("bulk task action",
		"action", input.Action,
		"admin_id", input.AdminID,
		"succeeded", len(result.Succeeded),
		"failed", len(result.Failed),
	)
	return &result, nil
}
