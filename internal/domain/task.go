package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type TaskStatus string

const (
	TaskAvailable     TaskStatus = "available"
	TaskInProgress    TaskStatus = "in_progress"
	TaskPendingReview TaskStatus = "pending_review"
	TaskApproved      TaskStatus = "approved"
	TaskCompleted     TaskStatus = "completed"
	TaskRejected      TaskStatus = "rejected"
	TaskMissed        TaskStatus = "missed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskAvailable, TaskInProgress, TaskPendingReview, TaskApproved,
		TaskCompleted, TaskRejected, TaskMissed:
		return true
	}
	return false
}

type Task struct {
	ID                 string
	Title              string
	Description        string
	MediaURL           string
	TimeLimitHours     int
	Reward             decimal.Decimal
	AssignedTo         *string
	Status             TaskStatus
	StartedAt          *time.Time
	SubmittedAt        *time.Time
	ReviewedAt         *time.Time
	SubmissionURL      string
	SubmissionComments string
	RejectionReason    string
	CreatedBy          string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsOverdue is the timeout predicate: an in-progress task whose own time
// limit, in hours, has fully elapsed since it was started.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.Status != TaskInProgress || t.StartedAt == nil {
		return false
	}
	return now.Sub(*t.StartedAt) >= time.Duration(t.TimeLimitHours)*time.Hour
}

// ClaimableBy reports whether the vendor may start the task as it stands.
func (t *Task) ClaimableBy(vendorID string) bool {
	if t.Status != TaskAvailable {
		return false
	}
	return t.AssignedTo == nil || *t.AssignedTo == vendorID
}

func (t *Task) OwnedBy(vendorID string) bool {
	return t.AssignedTo != nil && *t.AssignedTo == vendorID
}

// TaskGuard is the pre-state a conditional transition must still match.
type TaskGuard struct {
	Statuses []TaskStatus
	// Assignee, when set, requires assigned_to to equal it. With
	// AllowUnassigned an unassigned row also matches.
	Assignee        string
	AllowUnassigned bool
}

// TaskChange lists the columns written by a transition. Nil pointers are
// left untouched.
type TaskChange struct {
	Status             TaskStatus
	AssignedTo         *string
	ClearAssignee      bool
	StartedAt          *time.Time
	SubmittedAt        *time.Time
	ReviewedAt         *time.Time
	SubmissionURL      *string
	SubmissionComments *string
	RejectionReason    *string
}

type TaskFilter struct {
	Statuses   []TaskStatus
	AssignedTo string
	// OpenFor lists available tasks that are unassigned or offered to this user.
	OpenFor string
	Page    int
	Limit   int
}

type TaskRepository interface {
	CreateTask(ctx context.Context, task *Task) error
	GetTaskByID(ctx context.Context, taskID string) (*Task, error)
	DeleteTask(ctx context.Context, taskID string) error
	// TransitionTask applies change only if the row still matches guard and
	// reports whether a row was updated.
	TransitionTask(ctx context.Context, taskID string, guard TaskGuard, change TaskChange) (bool, error)
	ListTasks(ctx context.Context, filter TaskFilter) ([]*Task, int64, error)
	FindOverdueTasks(ctx context.Context, now time.Time) ([]*Task, error)
}

type TaskEvent struct {
	TaskID     string
	ActorID    string
	Action     string
	FromStatus TaskStatus
	ToStatus   TaskStatus
	AssignedTo string
	Note       string
	CreatedAt  time.Time
}

type TaskEventLogger interface {
	LogTaskEvent(ctx context.Context, event TaskEvent) error
}
