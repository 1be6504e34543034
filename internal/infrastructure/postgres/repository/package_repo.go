package repository

import (
	"context"
	"time"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
	"github.com/LavaJover/shvark-gig-service/internal/infrastructure/postgres"
	"github.com/LavaJover/shvark-gig-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-gig-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultPackageRepository struct {
	DB *gorm.DB
}

func NewDefaultPackageRepository(db *gorm.DB) *DefaultPackageRepository {
	return &DefaultPackageRepository{DB: db}
}

func (r *DefaultPackageRepository) CreatePackage(ctx context.Context, pkg *domain.Package) error {
	return translateError(postgres.Conn(ctx, r.DB).Create(mappers.ToGORMPackage(pkg)).Error, "package")
}

func (r *DefaultPackageRepository) UpdatePackage(ctx context.Context, pkg *domain.Package) error {
	if err := checkID(pkg.ID, "package"); err != nil {
		return err
	}
	model := mappers.ToGORMPackage(pkg)
	res := postgres.Conn(ctx, r.DB).
		Model(&models.PackageModel{}).
		Where("id = ? AND deleted_at IS NULL", pkg.ID).
		Select("*").
		Omit("id", "created_at", "deleted_at").
		Updates(model)
	if res.Error != nil {
		return translateError(res.Error, "package "+pkg.ID)
	}
	if res.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, "package "+pkg.ID)
	}
	return nil
}

func (r *DefaultPackageRepository) GetPackageByID(ctx context.Context, packageID string) (*domain.Package, error) {
	if err := checkID(packageID, "package"); err != nil {
		return nil, err
	}
	var model models.PackageModel
	if err := postgres.Conn(ctx, r.DB).First(&model, "id = ?", packageID).Error; err != nil {
		return nil, translateError(err, "package "+packageID)
	}
	return mappers.ToDomainPackage(&model), nil
}

func (r *DefaultPackageRepository) ListActivePackages(ctx context.Context) ([]*domain.Package, error) {
	return r.list(postgres.Conn(ctx, r.DB).Where("is_active = ? AND deleted_at IS NULL", true).Order("price ASC"))
}

func (r *DefaultPackageRepository) ListPackages(ctx context.Context) ([]*domain.Package, error) {
	return r.list(postgres.Conn(ctx, r.DB).Where("deleted_at IS NULL").Order("price ASC"))
}

func (r *DefaultPackageRepository) list(query *gorm.DB) ([]*domain.Package, error) {
	var rows []models.PackageModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	packages := make([]*domain.Package, len(rows))
	for i := range rows {
		packages[i] = mappers.ToDomainPackage(&rows[i])
	}
	return packages, nil
}

// DeletePackage is a soft delete: grants and payments keep their foreign
// keys to the row.
func (r *DefaultPackageRepository) DeletePackage(ctx context.Context, packageID string, at time.Time) error {
	if err := checkID(packageID, "package"); err != nil {
		return err
	}
	res := postgres.Conn(ctx, r.DB).
		Model(&models.PackageModel{}).
		Where("id = ? AND deleted_at IS NULL", packageID).
		Updates(map[string]any{"is_active": false, "deleted_at": at, "updated_at": at})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, "package "+packageID)
	}
	return nil
}
