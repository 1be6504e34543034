package response

import (
	"time"

	"github.com/shopspring/decimal"
)

type WalletResponse struct {
	Balance      decimal.Decimal       `json:"balance"`
	Transactions []TransactionResponse `json:"transactions"`
	Withdrawals  []WithdrawalResponse  `json:"withdrawals"`
}

type TransactionResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	TaskID      *string         `json:"task_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

type WithdrawalResponse struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	Note      string          `json:"note,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// WalletCheckResponse compares the cached balance with the ledger sum.
type WalletCheckResponse struct {
	UserID     string `json:"user_id"`
	Consistent bool   `json:"consistent"`
}
