package domain

import (
	"context"
	"time"
)

type QuotaKind string

const (
	QuotaTask QuotaKind = "task"
	QuotaSkip QuotaKind = "skip"
)

// UserPackage is a quota grant. TaskLimit and SkipLimit are resolved from
// the catalog row at read time.
type UserPackage struct {
	ID          string
	UserID      string
	PackageID   string
	PackageName string
	TaskLimit   int
	SkipLimit   int
	TasksUsed   int
	SkipsUsed   int
	ExpiresAt   time.Time
	IsActive    bool
	CreatedAt   time.Time
}

func (g *UserPackage) IsLive(now time.Time) bool {
	return g.IsActive && g.ExpiresAt.After(now)
}

func (g *UserPackage) HasRoom(kind QuotaKind) bool {
	switch kind {
	case QuotaTask:
		return g.TasksUsed < g.TaskLimit
	case QuotaSkip:
		return g.SkipsUsed < g.SkipLimit
	}
	return false
}

func (g *UserPackage) TasksRemaining() int {
	return max(g.TaskLimit-g.TasksUsed, 0)
}

func (g *UserPackage) SkipsRemaining() int {
	return max(g.SkipLimit-g.SkipsUsed, 0)
}

// QuotaStatus is the caller-facing view of the live grant. Grant is nil
// when the user holds none.
type QuotaStatus struct {
	Grant          *UserPackage
	TasksRemaining int
	SkipsRemaining int
}

// SkipCost is the counter a skip is charged to.
type SkipCost int

const (
	SkipRefused SkipCost = iota
	SkipChargesSkip
	SkipChargesTask
)

// ResolveSkipCost charges the skip allowance while it has room and falls
// back to the task allowance once it is exhausted.
func ResolveSkipCost(g *UserPackage, now time.Time) SkipCost {
	if g == nil || !g.IsLive(now) {
		return SkipRefused
	}
	if g.HasRoom(QuotaSkip) {
		return SkipChargesSkip
	}
	if g.HasRoom(QuotaTask) {
		return SkipChargesTask
	}
	return SkipRefused
}

func (c SkipCost) Kind() QuotaKind {
	if c == SkipChargesTask {
		return QuotaTask
	}
	return QuotaSkip
}

type UserPackageRepository interface {
	// GetActiveGrant returns the grant with is_active and expires_at > now,
	// or ErrNotFound.
	GetActiveGrant(ctx context.Context, userID string, now time.Time) (*UserPackage, error)
	ListGrantsByUser(ctx context.Context, userID string) ([]*UserPackage, error)
	DeactivateGrants(ctx context.Context, userID string) error
	CreateGrant(ctx context.Context, grant *UserPackage) error
	// ConsumeQuota increments the used counter of the live grant in one
	// conditional statement guarded by used < limit. It reports false when
	// no row matched.
	ConsumeQuota(ctx context.Context, userID string, kind QuotaKind, now time.Time) (bool, error)
	CountActiveGrantsForPackage(ctx context.Context, packageID string, now time.Time) (int64, error)
	DeactivateExpiredGrants(ctx context.Context, now time.Time) (int64, error)
}
