package request

import "github.com/shopspring/decimal"

type WithdrawalRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type RejectWithdrawalRequest struct {
	Reason string `json:"reason" binding:"required"`
}
