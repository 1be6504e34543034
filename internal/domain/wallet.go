package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TxCredit TransactionType = "credit"
	TxDebit  TransactionType = "debit"
)

type WalletTransaction struct {
	ID          string
	UserID      string
	Type        TransactionType
	Amount      decimal.Decimal
	Description string
	TaskID      *string
	CreatedAt   time.Time
}

type WithdrawalStatus string

const (
	WithdrawalPending  WithdrawalStatus = "pending"
	WithdrawalApproved WithdrawalStatus = "approved"
	WithdrawalRejected WithdrawalStatus = "rejected"
)

type Withdrawal struct {
	ID        string
	UserID    string
	Amount    decimal.Decimal
	Status    WithdrawalStatus
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type WalletRepository interface {
	CreateTransaction(ctx context.Context, tx *WalletTransaction) error
	ListTransactions(ctx context.Context, userID string, limit int) ([]*WalletTransaction, error)
	SumTransactions(ctx context.Context, userID string, txType TransactionType) (decimal.Decimal, error)
}

type WithdrawalRepository interface {
	CreateWithdrawal(ctx context.Context, w *Withdrawal) error
	GetWithdrawalByID(ctx context.Context, withdrawalID string) (*Withdrawal, error)
	// UpdateWithdrawalStatus moves a withdrawal out of from; false when the
	// row was no longer in from.
	UpdateWithdrawalStatus(ctx context.Context, withdrawalID string, from, to WithdrawalStatus, note string) (bool, error)
	ListWithdrawalsByUser(ctx context.Context, userID string) ([]*Withdrawal, error)
}
