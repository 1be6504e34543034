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

type DefaultUserRepository struct {
	DB *gorm.DB
}

func NewDefaultUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{DB: db}
}

func (r *DefaultUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	model := mappers.ToGORMUser(user)
	return translateError(postgres.Conn(ctx, r.DB).Create(model).Error, "user")
}

func (r *DefaultUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if err := checkID(userID, "user"); err != nil {
		return nil, err
	}
	var model models.UserModel
	if err := postgres.Conn(ctx, r.DB).First(&model, "id = ?", userID).Error; err != nil {
		return nil, translateError(err, "user "+userID)
	}
	return mappers.ToDomainUser(&model), nil
}

func (r *DefaultUserRepository) GetUserByReferralCode(ctx context.Context, code string) (*domain.User, error) {
	var model models.UserModel
	if err := postgres.Conn(ctx, r.DB).First(&model, "referral_code = ?", code).Error; err != nil {
		return nil, translateError(err, "referral code")
	}
	return mappers.ToDomainUser(&model), nil
}

func (r *DefaultUserRepository) CountDirectReferrals(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := postgres.Conn(ctx, r.DB).
		Model(&models.UserModel{}).
		Where("referrer_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *DefaultUserRepository) IncreaseBalance(ctx context.Context, userID string, amount decimal.Decimal) error {
	if err := checkID(userID, "user"); err != nil {
		return err
	}
	res := postgres.Conn(ctx, r.DB).
		Model(&models.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"wallet_balance": gorm.Expr("wallet_balance + ?", amount),
			"updated_at":     gorm.Expr("NOW()"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, "user "+userID)
	}
	return nil
}

func (r *DefaultUserRepository) DecreaseBalance(ctx context.Context, userID string, amount decimal.Decimal) (bool, error) {
	if err := checkID(userID, "user"); err != nil {
		return false, err
	}
	res := postgres.Conn(ctx, r.DB).
		Model(&models.UserModel{}).
		Where("id = ? AND wallet_balance >= ?", userID, amount).
		Updates(map[string]interface{}{
			"wallet_balance": gorm.Expr("wallet_balance - ?", amount),
			"updated_at":     gorm.Expr("NOW()"),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
