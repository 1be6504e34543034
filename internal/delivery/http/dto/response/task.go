package response

import (
	"time"

	"github.com/shopspring/decimal"
)

type TaskResponse struct {
	ID                 string          `json:"id"`
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	MediaURL           string          `json:"media_url,omitempty"`
	TimeLimitHours     int             `json:"time_limit_hours"`
	Reward             decimal.Decimal `json:"reward"`
	AssignedTo         *string         `json:"assigned_to"`
	Status             string          `json:"status"`
	StartedAt          *time.Time      `json:"started_at,omitempty"`
	DeadlineAt         *time.Time      `json:"deadline_at,omitempty"`
	SubmittedAt        *time.Time      `json:"submitted_at,omitempty"`
	ReviewedAt         *time.Time      `json:"reviewed_at,omitempty"`
	SubmissionURL      string          `json:"submission_url,omitempty"`
	SubmissionComments string          `json:"submission_comments,omitempty"`
	RejectionReason    string          `json:"rejection_reason,omitempty"`
	CreatedBy          string          `json:"created_by"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

type SkipTaskResponse struct {
	TaskID  string `json:"task_id"`
	Charged string `json:"charged"`
}

type SweepResponse struct {
	Missed int `json:"missed"`
}
