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

type DefaultReferralRepository struct {
	DB *gorm.DB
}

func NewDefaultReferralRepository(db *gorm.DB) *DefaultReferralRepository {
	return &DefaultReferralRepository{DB: db}
}

func (r *DefaultReferralRepository) CreateReferral(ctx context.Context, referral *domain.Referral) error {
	return translateError(postgres.Conn(ctx, r.DB).Create(mappers.ToGORMReferral(referral)).Error, "referral")
}

func (r *DefaultReferralRepository) ListReferralsByReferrer(ctx context.Context, referrerID string) ([]*domain.Referral, error) {
	return r.list(postgres.Conn(ctx, r.DB).Where("referrer_id = ?", referrerID).Order("created_at DESC, level ASC"))
}

func (r *DefaultReferralRepository) ListReferralsByPayment(ctx context.Context, paymentID string) ([]*domain.Referral, error) {
	return r.list(postgres.Conn(ctx, r.DB).Where("payment_id = ?", paymentID).Order("level ASC"))
}

func (r *DefaultReferralRepository) list(query *gorm.DB) ([]*domain.Referral, error) {
	var rows []models.ReferralModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	referrals := make([]*domain.Referral, len(rows))
	for i := range rows {
		referrals[i] = mappers.ToDomainReferral(&rows[i])
	}
	return referrals, nil
}

type levelRow struct {
	Level      int
	Count      int64
	Commission decimal.Decimal
}

func (r *DefaultReferralRepository) StatsByLevel(ctx context.Context, referrerID string) ([]domain.LevelStat, error) {
	var rows []levelRow
	if err := postgres.Conn(ctx, r.DB).
		Model(&models.ReferralModel{}).
		Select("level, COUNT(*) AS count, COALESCE(SUM(commission), 0) AS commission").
		Where("referrer_id = ?", referrerID).
		Group("level").
		Order("level ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	stats := make([]domain.LevelStat, len(rows))
	for i, row := range rows {
		stats[i] = domain.LevelStat{Level: row.Level, Count: row.Count, Commission: row.Commission}
	}
	return stats, nil
}

type topRow struct {
	ReferrerID      string
	TotalCommission decimal.Decimal
	Records         int64
}

func (r *DefaultReferralRepository) TopReferrers(ctx context.Context, limit int) ([]domain.TopReferrer, error) {
	var rows []topRow
	if err := postgres.Conn(ctx, r.DB).
		Model(&models.ReferralModel{}).
		Select("referrer_id, SUM(commission) AS total_commission, COUNT(*) AS records").
		Group("referrer_id").
		Order("total_commission DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	top := make([]domain.TopReferrer, len(rows))
	for i, row := range rows {
		top[i] = domain.TopReferrer{ReferrerID: row.ReferrerID, TotalCommission: row.TotalCommission, Records: row.Records}
	}
	return top, nil
}
