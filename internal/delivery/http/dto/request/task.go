package request

import "github.com/shopspring/decimal"

type CreateTaskRequest struct {
	Title          string          `json:"title" binding:"required"`
	Description    string          `json:"description"`
	MediaURL       string          `json:"media_url"`
	TimeLimitHours int             `json:"time_limit_hours" binding:"required"`
	Reward         decimal.Decimal `json:"reward"`
	AssignedTo     string          `json:"assigned_to"`
}

type SubmitTaskRequest struct {
	SubmissionURL string `json:"submission_url" binding:"required"`
	Comments      string `json:"comments"`
}

type ReviewTaskRequest struct {
	Decision string `json:"decision" binding:"required"`
	Reason   string `json:"reason"`
}

type AssignTaskRequest struct {
	VendorID string `json:"vendor_id" binding:"required"`
}

type SetTaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type BulkActionRequest struct {
	Action     string   `json:"action" binding:"required"`
	TaskIDs    []string `json:"task_ids" binding:"required"`
	Reason     string   `json:"reason"`
	AssigneeID string   `json:"assignee_id"`
	Status     string   `json:"status"`
}
