package domain

import (
	"testing"
	"time"
)

func TestTaskIsOverdue(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time {
		ts := now.Add(-d)
		return &ts
	}

	tests := []struct {
		name string
		task Task
		want bool
	}{
		{"exactly at limit", Task{Status: TaskInProgress, TimeLimitHours: 4, StartedAt: at(4 * time.Hour)}, true},
		{"past limit", Task{Status: TaskInProgress, TimeLimitHours: 4, StartedAt: at(5 * time.Hour)}, true},
		{"one second short", Task{Status: TaskInProgress, TimeLimitHours: 4, StartedAt: at(4*time.Hour - time.Second)}, false},
		{"own limit not global", Task{Status: TaskInProgress, TimeLimitHours: 24, StartedAt: at(5 * time.Hour)}, false},
		{"not in progress", Task{Status: TaskPendingReview, TimeLimitHours: 1, StartedAt: at(5 * time.Hour)}, false},
		{"never started", Task{Status: TaskInProgress, TimeLimitHours: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.IsOverdue(now); got != tt.want {
				t.Errorf("IsOverdue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTaskClaimableBy(t *testing.T) {
	other := "v2"
	self := "v1"
	if !(&Task{Status: TaskAvailable}).ClaimableBy("v1") {
		t.Error("unassigned available task should be claimable")
	}
	if !(&Task{Status: TaskAvailable, AssignedTo: &self}).ClaimableBy("v1") {
		t.Error("task offered to the vendor should be claimable")
	}
	if (&Task{Status: TaskAvailable, AssignedTo: &other}).ClaimableBy("v1") {
		t.Error("task offered to someone else should not be claimable")
	}
	if (&Task{Status: TaskInProgress}).ClaimableBy("v1") {
		t.Error("in-progress task should not be claimable")
	}
}
