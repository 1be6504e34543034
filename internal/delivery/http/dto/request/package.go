package request

import "github.com/shopspring/decimal"

type PackageRequest struct {
	Name             string          `json:"name" binding:"required"`
	Type             string          `json:"type" binding:"required"`
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
}
