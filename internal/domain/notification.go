package domain

import "context"

type EventType string

const (
	EventTaskApproved       EventType = "task_approved"
	EventTaskRejected       EventType = "task_rejected"
	EventTaskMissed         EventType = "task_missed"
	EventTaskAssigned       EventType = "task_assigned"
	EventCommissionEarned   EventType = "commission_earned"
	EventPackageActivated   EventType = "package_activated"
	EventWithdrawalApproved EventType = "withdrawal_approved"
	EventWithdrawalRejected EventType = "withdrawal_rejected"
)

// Notifier is a fire-and-forget delivery sink. Delivery failures are the
// sink's concern and never reach the caller.
type Notifier interface {
	Notify(ctx context.Context, userID string, eventType EventType, message string, data map[string]any)
}
