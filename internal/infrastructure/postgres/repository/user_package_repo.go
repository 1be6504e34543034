package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
	"github.com/LavaJover/shvark-gig-service/internal/infrastructure/postgres"
	"github.com/LavaJover/shvark-gig-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-gig-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultUserPackageRepository struct {
	DB *gorm.DB
}

func NewDefaultUserPackageRepository(db *gorm.DB) *DefaultUserPackageRepository {
	return &DefaultUserPackageRepository{DB: db}
}

func (r *DefaultUserPackageRepository) GetActiveGrant(ctx context.Context, userID string, now time.Time) (*domain.UserPackage, error) {
	var model models.UserPackageModel
	err := postgres.Conn(ctx, r.DB).
		Preload("Package").
		Where("user_id = ? AND is_active = ? AND expires_at > ?", userID, true, now).
		Order("created_at DESC").
		First(&model).Error
	if err != nil {
		return nil, translateError(err, "active grant")
	}
	return mappers.ToDomainGrant(&model), nil
}

func (r *DefaultUserPackageRepository) ListGrantsByUser(ctx context.Context, userID string) ([]*domain.UserPackage, error) {
	var rows []models.UserPackageModel
	if err := postgres.Conn(ctx, r.DB).
		Preload("Package").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	grants := make([]*domain.UserPackage, len(rows))
	for i := range rows {
		grants[i] = mappers.ToDomainGrant(&rows[i])
	}
	return grants, nil
}

// DeactivateGrants locks the user row before clearing the active flag, so
// concurrent grants for one user queue behind each other until commit.
// It must run inside a transaction.
func (r *DefaultUserPackageRepository) DeactivateGrants(ctx context.Context, userID string) error {
	if err := checkID(userID, "user"); err != nil {
		return err
	}
	db := postgres.Conn(ctx, r.DB)
	var owner models.UserModel
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", userID).
		Take(&owner).Error
	if err != nil {
		return translateError(err, "user")
	}
	return db.Model(&models.UserPackageModel{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Update("is_active", false).Error
}

func (r *DefaultUserPackageRepository) CreateGrant(ctx context.Context, grant *domain.UserPackage) error {
	return translateError(postgres.Conn(ctx, r.DB).Omit("Package").Create(mappers.ToGORMGrant(grant)).Error, "grant")
}

// ConsumeQuota increments the counter of the newest live grant only while it
// still has room, in a single statement.
func (r *DefaultUserPackageRepository) ConsumeQuota(ctx context.Context, userID string, kind domain.QuotaKind, now time.Time) (bool, error) {
	var usedCol, limitCol string
	switch kind {
	case domain.QuotaTask:
		usedCol, limitCol = "tasks_used", "task_limit"
	case domain.QuotaSkip:
		usedCol, limitCol = "skips_used", "skip_limit"
	default:
		return false, fmt.Errorf("unknown quota kind %q", kind)
	}

	res := postgres.Conn(ctx, r.DB).
		Model(&models.UserPackageModel{}).
		Where("id = (?)", postgres.Conn(ctx, r.DB).
			Model(&models.UserPackageModel{}).
			Select("id").
			Where("user_id = ? AND is_active = ? AND expires_at > ?", userID, true, now).
			Order("created_at DESC").
			Limit(1)).
		Where(usedCol+" < (SELECT p."+limitCol+" FROM packages p WHERE p.id = user_packages.package_id)").
		Update(usedCol, gorm.Expr(usedCol+" + 1"))
	if res.Error != nil {
		return false, res.Error
	}
	switch res.RowsAffected {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, fmt.Errorf("consume quota for %s touched %d grants", userID, res.RowsAffected)
}

func (r *DefaultUserPackageRepository) CountActiveGrantsForPackage(ctx context.Context, packageID string, now time.Time) (int64, error) {
	if err := checkID(packageID, "package"); err != nil {
		return 0, err
	}
	var count int64
	err := postgres.Conn(ctx, r.DB).
		Model(&models.UserPackageModel{}).
		Where("package_id = ? AND is_active = ? AND expires_at > ?", packageID, true, now).
		Count(&count).Error
	return count, err
}

func (r *DefaultUserPackageRepository) DeactivateExpiredGrants(ctx context.Context, now time.Time) (int64, error) {
	res := postgres.Conn(ctx, r.DB).
		Model(&models.UserPackageModel{}).
		Where("is_active = ? AND expires_at <= ?", true, now).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}
