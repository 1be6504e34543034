package pkgdto

import "github.com/shopspring/decimal"

type PackageInput struct {
	Name             string `validate:"required,max=100"`
	Type             string `validate:"required,oneof=onsite online"`
	TaskLimit        int    `validate:"gte=1"`
	SkipLimit        int    `validate:"gte=0"`
	ValidityDays     int    `validate:"gte=1"`
	Price            decimal.Decimal
	IsActive         bool
	DailyLimit       int `validate:"gte=0"`
	EarnRate         decimal.Decimal
	ReferralEarnRate decimal.Decimal
	MinFollowers     int `validate:"gte=0"`
	PrioritySupport  bool
	FeaturedListing  bool
}
