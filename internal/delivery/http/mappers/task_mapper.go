package mappers

import (
	"time"

	"github.com/LavaJover/shvark-gig-service/internal/delivery/http/dto/response"
	"github.com/LavaJover/shvark-gig-service/internal/domain"
)

func ToTaskResponse(task *domain.Task) response.TaskResponse {
	resp := response.TaskResponse{
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
	if task.Status == domain.TaskInProgress && task.StartedAt != nil {
		deadline := task.StartedAt.Add(time.Duration(task.TimeLimitHours) * time.Hour)
		resp.DeadlineAt = &deadline
	}
	return resp
}

func ToTaskListResponse(tasks []*domain.Task, total int64, page, limit int) response.TaskListResponse {
	out := make([]response.TaskResponse, len(tasks))
	for i, task := range tasks {
		out[i] = ToTaskResponse(task)
	}
	return response.TaskListResponse{
		Tasks: out,
		Total: total,
		Page:  page,
		Limit: limit,
	}
}
