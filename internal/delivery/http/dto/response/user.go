package response

import (
	"time"

	"github.com/shopspring/decimal"
)

type UserResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Role          string          `json:"role"`
	Status        string          `json:"status"`
	ReferralCode  string          `json:"referral_code"`
	ReferrerID    *string         `json:"referrer_id"`
	WalletBalance decimal.Decimal `json:"wallet_balance"`
	CreatedAt     time.Time       `json:"created_at"`
}

type RegisterResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
