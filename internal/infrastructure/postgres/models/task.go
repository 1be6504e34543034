package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TaskModel struct {
	ID                 string `gorm:"primaryKey;type:uuid"`
	Title              string `gorm:"not null"`
	Description        string
	MediaURL           string
	TimeLimitHours     int             `gorm:"not null"`
	Reward             decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	AssignedTo         *string         `gorm:"type:uuid;index"`
	Status             string          `gorm:"index;not null"`
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

func (TaskModel) TableName() string {
	return "tasks"
}

type TaskEventModel struct {
	ID         uint   `gorm:"primaryKey"`
	TaskID     string `gorm:"index;not null"`
	ActorID    string
	Action     string `gorm:"not null"`
	FromStatus string
	ToStatus   string
	AssignedTo string
	Note       string
	CreatedAt  time.Time
}

func (TaskEventModel) TableName() string {
	return "task_events"
}
