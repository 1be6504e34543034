package task

import (
	"context"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
	taskdto "github.com/LavaJover/shvark-gig-service/internal/usecase/dto/task"
	"github.com/LavaJover/shvark-gig-service/internal/usecase/validation"
)

func (uc *DefaultTaskUsecase) GetTask(ctx context.Context, taskID string) (*domain.Task, error) {
	return uc.loadTask(ctx, taskID)
}

// ListAvailableTasks lists what the vendor may start: unassigned tasks and
// tasks offered to them.
func (uc *DefaultTaskUsecase) ListAvailableTasks(ctx context.Context, vendorID string, page, limit int) ([]*domain.Task, int64, error) {
	return uc.TaskRepo.ListTasks(ctx, domain.TaskFilter{
		Statuses: []domain.TaskStatus{domain.TaskAvailable},
		OpenFor:  vendorID,
		Page:     page,
		Limit:    limit,
	})
}

func (uc *DefaultTaskUsecase) ListVendorTasks(ctx context.Context, vendorID string, statuses []domain.TaskStatus, page, limit int) ([]*domain.Task, int64, error) {
	return uc.TaskRepo.ListTasks(ctx, domain.TaskFilter{
		Statuses:   statuses,
		AssignedTo: vendorID,
		Page:       page,
		Limit:      limit,
	})
}

func (uc *DefaultTaskUsecase) ListTasks(ctx context.Context, input *taskdto.ListTasksInput) ([]*domain.Task, int64, error) {
	if err := validation.Struct(input); err != nil {
		return nil, 0, err
	}
	statuses := make([]domain.TaskStatus, 0, len(input.Statuses))
	for _, s := range input.Statuses {
		status := domain.TaskStatus(s)
		if !status.Valid() {
			return nil, 0, validation.Errorf("unknown task status %q", s)
		}
		statuses = append(statuses, status)
	}
	return uc.TaskRepo.ListTasks(ctx, domain.TaskFilter{
		Statuses:   statuses,
		AssignedTo: input.AssignedTo,
		Page:       input.Page,
		Limit:      input.Limit,
	})
}
