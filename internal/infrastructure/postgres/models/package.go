package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PackageModel struct {
	ID               string          `gorm:"primaryKey;type:uuid"`
	Name             string          `gorm:"not null"`
	Type             string          `gorm:"not null"`
	TaskLimit        int             `gorm:"not null"`
	SkipLimit        int             `gorm:"not null"`
	ValidityDays     int             `gorm:"not null"`
	Price            decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	IsActive         bool            `gorm:"not null;default:true"`
	DailyLimit       int
	EarnRate         decimal.Decimal `gorm:"type:numeric(6,4)"`
	ReferralEarnRate decimal.Decimal `gorm:"type:numeric(6,4)"`
	MinFollowers     int
	PrioritySupport  bool
	FeaturedListing  bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
}

func (PackageModel) TableName() string {
	return "packages"
}

type UserPackageModel struct {
	ID        string       `gorm:"primaryKey;type:uuid"`
	UserID    string       `gorm:"type:uuid;index;not null"`
	PackageID string       `gorm:"type:uuid;index;not null"`
	Package   PackageModel `gorm:"foreignKey:PackageID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	TasksUsed int          `gorm:"not null;default:0"`
	SkipsUsed int          `gorm:"not null;default:0"`
	ExpiresAt time.Time    `gorm:"not null"`
	IsActive  bool         `gorm:"not null;default:true"`
	CreatedAt time.Time
}

func (UserPackageModel) TableName() string {
	return "user_packages"
}
