package domain

import (
	"testing"
	"time"
)

func TestResolveSkipCost(t *testing.T) {
	now := time.Now()
	live := now.Add(24 * time.Hour)

	tests := []struct {
		name  string
		grant *UserPackage
		want  SkipCost
	}{
		{"no grant", nil, SkipRefused},
		{"skip room", &UserPackage{IsActive: true, ExpiresAt: live, TaskLimit: 10, SkipLimit: 5, SkipsUsed: 4}, SkipChargesSkip},
		{"skips exhausted falls back to tasks", &UserPackage{IsActive: true, ExpiresAt: live, TaskLimit: 10, TasksUsed: 3, SkipLimit: 5, SkipsUsed: 5}, SkipChargesTask},
		{"zero skip allowance", &UserPackage{IsActive: true, ExpiresAt: live, TaskLimit: 10, SkipLimit: 0}, SkipChargesTask},
		{"both exhausted", &UserPackage{IsActive: true, ExpiresAt: live, TaskLimit: 10, TasksUsed: 10, SkipLimit: 5, SkipsUsed: 5}, SkipRefused},
		{"expired", &UserPackage{IsActive: true, ExpiresAt: now.Add(-time.Minute), TaskLimit: 10, SkipLimit: 5}, SkipRefused},
		{"inactive", &UserPackage{IsActive: false, ExpiresAt: live, TaskLimit: 10, SkipLimit: 5}, SkipRefused},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveSkipCost(tt.grant, now); got != tt.want {
				t.Errorf("ResolveSkipCost() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSkipCostKind(t *testing.T) {
	if SkipChargesSkip.Kind() != QuotaSkip {
		t.Error("skip charge should map to skip quota")
	}
	if SkipChargesTask.Kind() != QuotaTask {
		t.Error("task charge should map to task quota")
	}
}

func TestRemaining(t *testing.T) {
	g := &UserPackage{TaskLimit: 10, TasksUsed: 9, SkipLimit: 5, SkipsUsed: 5}
	if g.TasksRemaining() != 1 || g.SkipsRemaining() != 0 {
		t.Errorf("remaining = %d/%d, want 1/0", g.TasksRemaining(), g.SkipsRemaining())
	}
}
