package walletdto

import (
	"github.com/LavaJover/shvark-gig-service/internal/domain"
	"github.com/shopspring/decimal"
)

type WithdrawalInput struct {
	UserID string `validate:"required"`
	Amount decimal.Decimal
}

type WalletOutput struct {
	Balance      decimal.Decimal
	Transactions []*domain.WalletTransaction
	Withdrawals  []*domain.Withdrawal
}
