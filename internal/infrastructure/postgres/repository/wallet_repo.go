package repository

import (
	"context"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
	"github.com/LavaJover/shvark-gig-service/internal/infrastructure/postgres"
	"github.com/LavaJover/shvark-gig-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-gig-service/internal/infrastructure/postgres/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DefaultWalletRepository struct {
	DB *gorm.DB
}

func NewDefaultWalletRepository(db *gorm.DB) *DefaultWalletRepository {
	return &DefaultWalletRepository{DB: db}
}

func (r *DefaultWalletRepository) CreateTransaction(ctx context.Context, tx *domain.WalletTransaction) error {
	return translateError(postgres.Conn(ctx, r.DB).Create(mappers.ToGORMWalletTransaction(tx)).Error, "wallet transaction")
}

func (r *DefaultWalletRepository) ListTransactions(ctx context.Context, userID string, limit int) ([]*domain.WalletTransaction, error) {
	var rows []models.WalletTransactionModel
	if err := postgres.Conn(ctx, r.DB).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	txs := make([]*domain.WalletTransaction, len(rows))
	for i := range rows {
		txs[i] = mappers.ToDomainWalletTransaction(&rows[i])
	}
	return txs, nil
}

func (r *DefaultWalletRepository) SumTransactions(ctx context.Context, userID string, txType domain.TransactionType) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := postgres.Conn(ctx, r.DB).
		Model(&models.WalletTransactionModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND type = ?", userID, string(txType)).
		Scan(&sum).Error
	return sum, err
}

type DefaultWithdrawalRepository struct {
	DB *gorm.DB
}

func NewDefaultWithdrawalRepository(db *gorm.DB) *DefaultWithdrawalRepository {
	return &DefaultWithdrawalRepository{DB: db}
}

func (r *DefaultWithdrawalRepository) CreateWithdrawal(ctx context.Context, w *domain.Withdrawal) error {
	return translateError(postgres.Conn(ctx, r.DB).Create(mappers.ToGORMWithdrawal(w)).Error, "withdrawal")
}

func (r *DefaultWithdrawalRepository) GetWithdrawalByID(ctx context.Context, withdrawalID string) (*domain.Withdrawal, error) {
	if err := checkID(withdrawalID, "withdrawal"); err != nil {
		return nil, err
	}
	var model models.WithdrawalModel
	if err := postgres.Conn(ctx, r.DB).First(&model, "id = ?", withdrawalID).Error; err != nil {
		return nil, translateError(err, "withdrawal "+withdrawalID)
	}
	return mappers.ToDomainWithdrawal(&model), nil
}

func (r *DefaultWithdrawalRepository) UpdateWithdrawalStatus(ctx context.Context, withdrawalID string, from, to domain.WithdrawalStatus, note string) (bool, error) {
	if err := checkID(withdrawalID, "withdrawal"); err != nil {
		return false, err
	}
	res := postgres.Conn(ctx, r.DB).
		Model(&models.WithdrawalModel{}).
		Where("id = ? AND status = ?", withdrawalID, string(from)).
		Updates(map[string]interface{}{
			"status":     string(to),
			"note":       note,
			"updated_at": gorm.Expr("NOW()"),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *DefaultWithdrawalRepository) ListWithdrawalsByUser(ctx context.Context, userID string) ([]*domain.Withdrawal, error) {
	var rows []models.WithdrawalModel
	if err := postgres.Conn(ctx, r.DB).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.Withdrawal, len(rows))
	for i := range rows {
		out[i] = mappers.ToDomainWithdrawal(&rows[i])
	}
	return out, nil
}
