package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type UserModel struct {
	ID            string          `gorm:"primaryKey;type:uuid"`
	Name          string          `gorm:"not null"`
	Email         string          `gorm:"uniqueIndex;not null"`
	Role          string          `gorm:"not null"`
	Status        string          `gorm:"not null"`
	ReferralCode  string          `gorm:"uniqueIndex;not null"`
	ReferrerID    *string         `gorm:"type:uuid;index"`
	WalletBalance decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (UserModel) TableName() string {
	return "users"
}
