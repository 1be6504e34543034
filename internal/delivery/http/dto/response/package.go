package response

import (
	"time"

	"github.com/shopspring/decimal"
)

type PackageResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Type             string          `json:"type"`
	TaskLimit        int             `json:"task_limit"`
	SkipLimit        int             `json:"skip_limit"`
	ValidityDays     int             `json:"validity_days"`
	Price            decimal.Decimal `json:"price"`
	IsActive         bool            `json:"is_active"`
	DailyLimit       int             `json:"daily_limit"`
	EarnRate         decimal.Decimal `json:"earn_rate"`
	ReferralEarnRate decimal.Decimal `json:"referral_earn_rate"`
	MinFollowers     int             `json:"min_followers"`
	PrioritySupport  bool            `json:"priority_support"`
	FeaturedListing  bool            `json:"featured_listing"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type GrantResponse struct {
	ID          string    `json:"id"`
	PackageID   string    `json:"package_id"`
	PackageName string    `json:"package_name"`
	TaskLimit   int       `json:"task_limit"`
	SkipLimit   int       `json:"skip_limit"`
	TasksUsed   int       `json:"tasks_used"`
	SkipsUsed   int       `json:"skips_used"`
	ExpiresAt   time.Time `json:"expires_at"`
	IsActive    bool      `json:"is_active"`
}

// QuotaResponse has a nil Grant when the vendor holds no live package.
type QuotaResponse struct {
	Grant          *GrantResponse `json:"grant"`
	TasksRemaining int            `json:"tasks_remaining"`
	SkipsRemaining int            `json:"skips_remaining"`
}
