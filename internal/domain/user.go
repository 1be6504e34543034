package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleVendor Role = "vendor"
)

type UserStatus string

const (
	UserActive  UserStatus = "active"
	UserBlocked UserStatus = "blocked"
)

type User struct {
	ID            string
	Name          string
	Email         string
	Role          Role
	Status        UserStatus
	ReferralCode  string
	ReferrerID    *string
	WalletBalance decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Identity is the verified caller of a request.
type Identity struct {
	UserID string
	Role   Role
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, userID string) (*User, error)
	GetUserByReferralCode(ctx context.Context, code string) (*User, error)
	CountDirectReferrals(ctx context.Context, userID string) (int64, error)
	// IncreaseBalance adds amount to the denormalized wallet balance.
	IncreaseBalance(ctx context.Context, userID string, amount decimal.Decimal) error
	// DecreaseBalance subtracts amount only if the balance covers it.
	// It reports false when no row matched.
	DecreaseBalance(ctx context.Context, userID string, amount decimal.Decimal) (bool, error)
}
