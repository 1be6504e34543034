package taskdto

import "github.com/shopspring/decimal"

type CreateTaskInput struct {
	Title          string `validate:"required,max=200"`
	Description    string `validate:"max=5000"`
	MediaURL       string `validate:"omitempty,url"`
	TimeLimitHours int    `validate:"gte=1,lte=720"`
	Reward         decimal.Decimal
	AssignedTo     string
	CreatedBy      string `validate:"required"`
}

type SubmitTaskInput struct {
	TaskID        string `validate:"required"`
	VendorID      string `validate:"required"`
	SubmissionURL string `validate:"required,url"`
	Comments      string `validate:"max=2000"`
}

type ReviewTaskInput struct {
	TaskID   string `validate:"required"`
	AdminID  string `validate:"required"`
	Decision string `validate:"required,oneof=approve reject"`
	Reason   string `validate:"max=1000"`
}

type BulkActionInput struct {
	Action     string   `validate:"required,oneof=approve reject delete assign status"`
	TaskIDs    []string `validate:"required,min=1,max=500,dive,required"`
	AdminID    string   `validate:"required"`
	Reason     string   `validate:"max=1000"`
	AssigneeID string   `validate:"required_if=Action assign"`
	Status     string   `validate:"required_if=Action status"`
}

type ListTasksInput struct {
	Statuses   []string
	AssignedTo string
	Page       int `validate:"gte=0"`
	Limit      int `validate:"gte=0,lte=200"`
}
