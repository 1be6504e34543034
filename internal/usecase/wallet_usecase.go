package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
	"github.com/LavaJover/shvark-gig-service/internal/infrastructure/metrics"
	walletdto "github.com/LavaJover/shvark-gig-service/internal/usecase/dto/wallet"
	"github.com/LavaJover/shvark-gig-service/internal/usecase/validation"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const recentTransactionsLimit = 50

// WalletUsecase is the append-only ledger behind the cached balance.
type WalletUsecase interface {
	Credit(ctx context.Context, userID string, amount decimal.Decimal, description string, taskID *string) (*domain.WalletTransaction, error)
	Debit(ctx context.Context, userID string, amount decimal.Decimal, description string) (*domain.WalletTransaction, error)
	GetWallet(ctx context.Context, userID string) (*walletdto.WalletOutput, error)
	VerifyBalance(ctx context.Context, userID string) (bool, error)

	RequestWithdrawal(ctx context.Context, input *walletdto.WithdrawalInput) (*domain.Withdrawal, error)
	ApproveWithdrawal(ctx context.Context, withdrawalID, adminID string) error
	RejectWithdrawal(ctx context.Context, withdrawalID, adminID, reason string) error
}

type DefaultWalletUsecase struct {
	userRepo       domain.UserRepository
	walletRepo     domain.WalletRepository
	withdrawalRepo domain.WithdrawalRepository
	tx             domain.TxManager
	notifier       domain.Notifier
	metrics        *metrics.GigMetrics
	minWithdrawal  decimal.Decimal
	now            func() time.Time
}

func NewDefaultWalletUsecase(
	userRepo domain.UserRepository,
	walletRepo domain.WalletRepository,
	withdrawalRepo domain.WithdrawalRepository,
	tx domain.TxManager,
	notifier domain.Notifier,
	gigMetrics *metrics.GigMetrics,
	minWithdrawal decimal.Decimal,
) *DefaultWalletUsecase {
	return &DefaultWalletUsecase{
		userRepo:       userRepo,
		walletRepo:     walletRepo,
		withdrawalRepo: withdrawalRepo,
		tx:             tx,
		notifier:       notifier,
		metrics:        gigMetrics,
		minWithdrawal:  minWithdrawal,
		now:            time.Now,
	}
}

func (uc *DefaultWalletUsecase) Credit(ctx context.Context, userID string, amount decimal.Decimal, description string, taskID *string) (*domain.WalletTransaction, error) {
	if !amount.IsPositive() {
		return nil, validation.Errorf("credit amount must be positive")
	}
	if err := validation.Amount("credit amount", amount); err != nil {
		return nil, err
	}
	record := &domain.WalletTransaction{
		ID:          uuid.New().String(),
		UserID:      userID,
		Type:        domain.TxCredit,
		Amount:      amount,
		Description: description,
		TaskID:      taskID,
		CreatedAt:   uc.now(),
	}
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := uc.userRepo.IncreaseBalance(ctx, userID, amount); err != nil {
			return fmt.Errorf("increase balance of %s: %w", userID, err)
		}
		return uc.walletRepo.CreateTransaction(ctx, record)
	})
	if err != nil {
		return nil, err
	}
	uc.metrics.RecordWallet(string(domain.TxCredit), amount)
	return record, nil
}

// Debit decrements the balance only if it covers amount, in the same
// statement that checks it.
func (uc *DefaultWalletUsecase) Debit(ctx context.Context, userID string, amount decimal.Decimal, description string) (*domain.WalletTransaction, error) {
	if !amount.IsPositive() {
		return nil, validation.Errorf("debit amount must be positive")
	}
	if err := validation.Amount("debit amount", amount); err != nil {
		return nil, err
	}
	record := &domain.WalletTransaction{
		ID:          uuid.New().String(),
		UserID:      userID,
		Type:        domain.TxDebit,
		Amount:      amount,
		Description: description,
		CreatedAt:   uc.now(),
	}
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		ok, err := uc.userRepo.DecreaseBalance(ctx, userID, amount)
		if err != nil {
			return fmt.Errorf("decrease balance of %s: %w", userID, err)
		}
		if !ok {
			if _, err := uc.userRepo.GetUserByID(ctx, userID); err != nil {
				return err
			}
			return domain.ErrInsufficientFunds
		}
		return uc.walletRepo.CreateTransaction(ctx, record)
	})
	if err != nil {
		return nil, err
	}
	uc.metrics.RecordWallet(string(domain.TxDebit), amount)
	return record, nil
}

func (uc *DefaultWalletUsecase) GetWallet(ctx context.Context, userID string) (*walletdto.WalletOutput, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	txs, err := uc.walletRepo.ListTransactions(ctx, userID, recentTransactionsLimit)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	withdrawals, err := uc.withdrawalRepo.ListWithdrawalsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list withdrawals: %w", err)
	}
	return &walletdto.WalletOutput{
		Balance:      user.WalletBalance,
		Transactions: txs,
		Withdrawals:  withdrawals,
	}, nil
}

// VerifyBalance checks the cached balance against the ledger.
func (uc *DefaultWalletUsecase) VerifyBalance(ctx context.Context, userID string) (bool, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return false, err
	}
	credits, err := uc.walletRepo.SumTransactions(ctx, userID, domain.TxCredit)
	if err != nil {
		return false, err
	}
	debits, err := uc.walletRepo.SumTransactions(ctx, userID, domain.TxDebit)
	if err != nil {
		return false, err
	}
	return user.WalletBalance.Equal(credits.Sub(debits)), nil
}

func (uc *DefaultWalletUsecase) RequestWithdrawal(ctx context.Context, input *walletdto.WithdrawalInput) (*domain.Withdrawal, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if err := validation.Amount("amount", input.Amount); err != nil {
		return nil, err
	}
	if input.Amount.LessThan(uc.minWithdrawal) {
		return nil, fmt.Errorf("%w: minimum is %s", domain.ErrBelowMinimumWithdrawal, uc.minWithdrawal.StringFixed(2))
	}
	now := uc.now()
	withdrawal := &domain.Withdrawal{
		ID:        uuid.New().String(),
		UserID:    input.UserID,
		Amount:    input.Amount,
		Status:    domain.WithdrawalPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := uc.Debit(ctx, input.UserID, input.Amount, "Withdrawal request"); err != nil {
			return err
		}
		return uc.withdrawalRepo.CreateWithdrawal(ctx, withdrawal)
	})
	if err != nil {
		return nil, err
	}
	slog.Info("withdrawal requested", "user_id", input.UserID, "amount", input.Amount.String())
	return withdrawal, nil
}

func (uc *DefaultWalletUsecase) ApproveWithdrawal(ctx context.Context, withdrawalID, adminID string) error {
	w, err := uc.withdrawalRepo.GetWithdrawalByID(ctx, withdrawalID)
	if err != nil {
		return err
	}
	ok, err := uc.withdrawalRepo.UpdateWithdrawalStatus(ctx, withdrawalID, domain.WithdrawalPending, domain.WithdrawalApproved, "approved by "+adminID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrWithdrawalProcessed
	}
	uc.notifier.Notify(ctx, w.UserID, domain.EventWithdrawalApproved,
		fmt.Sprintf("Your withdrawal of ₹%s has been approved", w.Amount.StringFixed(2)),
		map[string]any{"withdrawal_id": w.ID, "amount": w.Amount.String()})
	return nil
}

// RejectWithdrawal returns the held amount to the wallet as a credit.
func (uc *DefaultWalletUsecase) RejectWithdrawal(ctx context.Context, withdrawalID, adminID, reason string) error {
	w, err := uc.withdrawalRepo.GetWithdrawalByID(ctx, withdrawalID)
	if err != nil {
		return err
	}
	err = uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		ok, err := uc.withdrawalRepo.UpdateWithdrawalStatus(ctx, withdrawalID, domain.WithdrawalPending, domain.WithdrawalRejected, reason)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrWithdrawalProcessed
		}
		_, err = uc.Credit(ctx, w.UserID, w.Amount, "Withdrawal refund", nil)
		return err
	})
	if err != nil {
		return err
	}
	slog.Info("withdrawal rejected", "withdrawal_id", withdrawalID, "admin_id", adminID)
	uc.notifier.Notify(ctx, w.UserID, domain.EventWithdrawalRejected,
		fmt.Sprintf("Your withdrawal of ₹%s was rejected: %s", w.Amount.StringFixed(2), reason),
		map[string]any{"withdrawal_id": w.ID, "reason": reason})
	return nil
}
