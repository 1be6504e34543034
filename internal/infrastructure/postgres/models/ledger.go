package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReferralModel struct {
	ID         string          `gorm:"primaryKey;type:uuid"`
	ReferrerID string          `gorm:"type:uuid;index;not null"`
	ReferredID string          `gorm:"type:uuid;index;not null"`
	PaymentID  string          `gorm:"type:uuid;index"`
	Level      int             `gorm:"not null"`
	Commission decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CreatedAt  time.Time
}

func (ReferralModel) TableName() string {
	return "referrals"
}

type WalletTransactionModel struct {
	ID          string          `gorm:"primaryKey;type:uuid"`
	UserID      string          `gorm:"type:uuid;index;not null"`
	Type        string          `gorm:"not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Description string
	TaskID      *string `gorm:"type:uuid"`
	CreatedAt   time.Time
}

func (WalletTransactionModel) TableName() string {
	return "wallet_transactions"
}

type WithdrawalModel struct {
	ID        string          `gorm:"primaryKey;type:uuid"`
	UserID    string          `gorm:"type:uuid;index;not null"`
	Amount    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Status    string          `gorm:"not null"`
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (WithdrawalModel) TableName() string {
	return "withdrawals"
}

type PaymentModel struct {
	ID               string `gorm:"primaryKey;type:uuid"`
	OrderID          string `gorm:"uniqueIndex;not null"`
	GatewayPaymentID string
	UserID           string          `gorm:"type:uuid;index;not null"`
	PackageID        string          `gorm:"type:uuid;not null"`
	Amount           decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Currency         string          `gorm:"not null"`
	Receipt          string
	Status           string `gorm:"not null"`
	PaidAt           *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (PaymentModel) TableName() string {
	return "payments"
}
