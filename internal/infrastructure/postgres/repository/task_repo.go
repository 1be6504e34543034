package repository

import (
	"context"
	"time"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
	"github.com/LavaJover/shvark-gig-service/internal/infrastructure/postgres"
	"github.com/LavaJover/shvark-gig-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-gig-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultTaskRepository struct {
	DB *gorm.DB
}

func NewDefaultTaskRepository(db *gorm.DB) *DefaultTaskRepository {
	return &DefaultTaskRepository{DB: db}
}

func (r *DefaultTaskRepository) CreateTask(ctx context.Context, task *domain.Task) error {
	return translateError(postgres.Conn(ctx, r.DB).Create(mappers.ToGORMTask(task)).Error, "task")
}

func (r *DefaultTaskRepository) GetTaskByID(ctx context.Context, taskID string) (*domain.Task, error) {
	if err := checkID(taskID, "task"); err != nil {
		return nil, err
	}
	var model models.TaskModel
	if err := postgres.Conn(ctx, r.DB).First(&model, "id = ?", taskID).Error; err != nil {
		return nil, translateError(err, "task "+taskID)
	}
	return mappers.ToDomainTask(&model), nil
}

func (r *DefaultTaskRepository) DeleteTask(ctx context.Context, taskID string) error {
	if err := checkID(taskID, "task"); err != nil {
		return err
	}
	res := postgres.Conn(ctx, r.DB).Delete(&models.TaskModel{}, "id = ?", taskID)
	if res.Error != nil {
		return translateError(res.Error, "task "+taskID)
	}
	if res.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, "task "+taskID)
	}
	return nil
}

// TransitionTask is a compare-and-swap on the task row: the guard becomes
// part of the WHERE clause and RowsAffected tells whether it still held.
func (r *DefaultTaskRepository) TransitionTask(ctx context.Context, taskID string, guard domain.TaskGuard, change domain.TaskChange) (bool, error) {
	if err := checkID(taskID, "task"); err != nil {
		return false, err
	}
	if err := checkRefID(guard.Assignee, "assignee"); err != nil {
		return false, err
	}
	if change.AssignedTo != nil {
		if err := checkRefID(*change.AssignedTo, "assignee"); err != nil {
			return false, err
		}
	}
	query := postgres.Conn(ctx, r.DB).
		Model(&models.TaskModel{}).
		Where("id = ?", taskID)

	if len(guard.Statuses) > 0 {
		query = query.Where("status IN ?", statusStrings(guard.Statuses))
	}
	if guard.Assignee != "" {
		if guard.AllowUnassigned {
			query = query.Where("(assigned_to IS NULL OR assigned_to = ?)", guard.Assignee)
		} else {
			query = query.Where("assigned_to = ?", guard.Assignee)
		}
	}

	updates := map[string]interface{}{
		"status":     string(change.Status),
		"updated_at": time.Now(),
	}
	switch {
	case change.ClearAssignee:
		updates["assigned_to"] = nil
	case change.AssignedTo != nil:
		updates["assigned_to"] = *change.AssignedTo
	}
	if change.StartedAt != nil {
		updates["started_at"] = *change.StartedAt
	}
	if change.SubmittedAt != nil {
		updates["submitted_at"] = *change.SubmittedAt
	}
	if change.ReviewedAt != nil {
		updates["reviewed_at"] = *change.ReviewedAt
	}
	if change.SubmissionURL != nil {
		updates["submission_url"] = *change.SubmissionURL
	}
	if change.SubmissionComments != nil {
		updates["submission_comments"] = *change.SubmissionComments
	}
	if change.RejectionReason != nil {
		updates["rejection_reason"] = *change.RejectionReason
	}

	res := query.Updates(updates)
	if res.Error != nil {
		return false, translateError(res.Error, "task "+taskID)
	}
	return res.RowsAffected == 1, nil
}

func (r *DefaultTaskRepository) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, int64, error) {
	if err := checkRefID(filter.AssignedTo, "assigned_to"); err != nil {
		return nil, 0, err
	}
	if err := checkRefID(filter.OpenFor, "user"); err != nil {
		return nil, 0, err
	}
	query := postgres.Conn(ctx, r.DB).Model(&models.TaskModel{})
	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", statusStrings(filter.Statuses))
	}
	if filter.AssignedTo != "" {
		query = query.Where("assigned_to = ?", filter.AssignedTo)
	}
	if filter.OpenFor != "" {
		query = query.Where("(assigned_to IS NULL OR assigned_to = ?)", filter.OpenFor)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset, limit := pageOffset(filter.Page, filter.Limit)
	var rows []models.TaskModel
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	tasks := make([]*domain.Task, len(rows))
	for i := range rows {
		tasks[i] = mappers.ToDomainTask(&rows[i])
	}
	return tasks, total, nil
}

// FindOverdueTasks compares each row against its own time limit.
func (r *DefaultTaskRepository) FindOverdueTasks(ctx context.Context, now time.Time) ([]*domain.Task, error) {
	var rows []models.TaskModel
	if err := postgres.Conn(ctx, r.DB).
		Where("status = ? AND started_at IS NOT NULL", string(domain.TaskInProgress)).
		Where("started_at + make_interval(hours => time_limit_hours) <= ?", now).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	tasks := make([]*domain.Task, len(rows))
	for i := range rows {
		tasks[i] = mappers.ToDomainTask(&rows[i])
	}
	return tasks, nil
}

func statusStrings(statuses []domain.TaskStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
