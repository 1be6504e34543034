package mappers

import (
	"github.com/LavaJover/shvark-gig-service/internal/domain"
	"github.com/LavaJover/shvark-gig-service/internal/infrastructure/postgres/models"
)

func ToDomainTask(model *models.TaskModel) *domain.Task {
	return &domain.Task{
		ID:                 model.ID,
		Title:              model.Title,
		Description:        model.Description,
		MediaURL:           model.MediaURL,
		TimeLimitHours:     model.TimeLimitHours,
		Reward:             model.Reward,
		AssignedTo:         model.AssignedTo,
		Status:             domain.TaskStatus(model.Status),
		StartedAt:          model.StartedAt,
		SubmittedAt:        model.SubmittedAt,
		ReviewedAt:         model.ReviewedAt,
		SubmissionURL:      model.SubmissionURL,
		SubmissionComments: model.SubmissionComments,
		RejectionReason:    model.RejectionReason,
		CreatedBy:          model.CreatedBy,
		CreatedAt:          model.CreatedAt,
		UpdatedAt:          model.UpdatedAt,
	}
}

func ToGORMTask(task *domain.Task) *models.TaskModel {
	return &models.TaskModel{
		ID:                 task.ID,
		Title:              task.Title,
		Description:        task.Description,
		MediaURL:           task.MediaURL,
		TimeLimitHours:     task.TimeLimitHours,
		Reward:             task.Reward,
		AssignedTo:         task.AssignedTo,
		Status:             string(task.Status),
		StartedAt:          task.StartedAt,
		SubmittedAt:        task.SubmittedAt,
		ReviewedAt:         task.ReviewedAt,
		SubmissionURL:      task.SubmissionURL,
		SubmissionComments: task.SubmissionComments,
		RejectionReason:    task.RejectionReason,
		CreatedBy:          task.CreatedBy,
		CreatedAt:          task.CreatedAt,
		UpdatedAt:          task.UpdatedAt,
	}
}

func ToGORMTaskEvent(event domain.TaskEvent) *models.TaskEventModel {
	return &models.TaskEventModel{
		TaskID:     event.TaskID,
		ActorID:    event.ActorID,
		Action:     event.Action,
		FromStatus: string(event.FromStatus),
		ToStatus:   string(event.ToStatus),
		AssignedTo: event.AssignedTo,
		Note:       event.Note,
		CreatedAt:  event.CreatedAt,
	}
}
