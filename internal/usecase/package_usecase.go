package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
	pkgdto "github.com/LavaJover/shvark-gig-service/internal/usecase/dto/pkg"
	"github.com/LavaJover/shvark-gig-service/internal/usecase/validation"
	"github.com/google/uuid"
)

type PackageUsecase interface {
	CreatePackage(ctx context.Context, input *pkgdto.PackageInput) (*domain.Package, error)
	UpdatePackage(ctx context.Context, packageID string, input *pkgdto.PackageInput) (*domain.Package, error)
	DeletePackage(ctx context.Context, packageID string) error
	GetPackageByID(ctx context.Context, packageID string) (*domain.Package, error)
	ListActivePackages(ctx context.Context) ([]*domain.Package, error)
	ListPackages(ctx context.Context) ([]*domain.Package, error)
}

type DefaultPackageUsecase struct {
	packageRepo domain.PackageRepository
	grantRepo   domain.UserPackageRepository
	tx          domain.TxManager
	now         func() time.Time
}

func NewDefaultPackageUsecase(
	packageRepo domain.PackageRepository,
	grantRepo domain.UserPackageRepository,
	tx domain.TxManager,
) *DefaultPackageUsecase {
	return &DefaultPackageUsecase{
		packageRepo: packageRepo,
		grantRepo:   grantRepo,
		tx:          tx,
		now:         time.Now,
	}
}

func (uc *DefaultPackageUsecase) CreatePackage(ctx context.Context, input *pkgdto.PackageInput) (*domain.Package, error) {
	if err := validatePackageInput(input); err != nil {
		return nil, err
	}
	pkg := packageFromInput(input)
	pkg.ID = uuid.New().String()
	pkg.CreatedAt = uc.now()
	pkg.UpdatedAt = pkg.CreatedAt
	if err := uc.packageRepo.CreatePackage(ctx, pkg); err != nil {
		return nil, fmt.Errorf("create package: %w", err)
	}
	return pkg, nil
}

func (uc *DefaultPackageUsecase) UpdatePackage(ctx context.Context, packageID string, input *pkgdto.PackageInput) (*domain.Package, error) {
	if err := validatePackageInput(input); err != nil {
		return nil, err
	}
	existing, err := uc.GetPackageByID(ctx, packageID)
	if err != nil {
		return nil, err
	}
	pkg := packageFromInput(input)
	pkg.ID = existing.ID
	pkg.CreatedAt = existing.CreatedAt
	pkg.UpdatedAt = uc.now()
	if err := uc.packageRepo.UpdatePackage(ctx, pkg); err != nil {
		return nil, fmt.Errorf("update package %s: %w", packageID, err)
	}
	return pkg, nil
}

// DeletePackage refuses while any live grant still references the package.
// Expired grants and past payments do not block it.
func (uc *DefaultPackageUsecase) DeletePackage(ctx context.Context, packageID string) error {
	return uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := uc.GetPackageByID(ctx, packageID); err != nil {
			return err
		}
		now := uc.now()
		active, err := uc.grantRepo.CountActiveGrantsForPackage(ctx, packageID, now)
		if err != nil {
			return fmt.Errorf("count grants for package %s: %w", packageID, err)
		}
		if active > 0 {
			return domain.ErrPackageInUse
		}
		return uc.packageRepo.DeletePackage(ctx, packageID, now)
	})
}

// GetPackageByID hides deleted packages.
func (uc *DefaultPackageUsecase) GetPackageByID(ctx context.Context, packageID string) (*domain.Package, error) {
	pkg, err := uc.packageRepo.GetPackageByID(ctx, packageID)
	if err != nil {
		return nil, err
	}
	if pkg.DeletedAt != nil {
		return nil, fmt.Errorf("package %s: %w", packageID, domain.ErrNotFound)
	}
	return pkg, nil
}

func (uc *DefaultPackageUsecase) ListActivePackages(ctx context.Context) ([]*domain.Package, error) {
	return uc.packageRepo.ListActivePackages(ctx)
}

func (uc *DefaultPackageUsecase) ListPackages(ctx context.Context) ([]*domain.Package, error) {
	return uc.packageRepo.ListPackages(ctx)
}

func validatePackageInput(input *pkgdto.PackageInput) error {
	if err := validation.Struct(input); err != nil {
		return err
	}
	if input.Price.IsNegative() {
		return validation.Errorf("price must not be negative")
	}
	if err := validation.Amount("price", input.Price); err != nil {
		return err
	}
	if input.EarnRate.IsNegative() || input.ReferralEarnRate.IsNegative() {
		return validation.Errorf("earn rates must not be negative")
	}
	if err := validation.Scale("earn rate", input.EarnRate, 4); err != nil {
		return err
	}
	if err := validation.Scale("referral earn rate", input.ReferralEarnRate, 4); err != nil {
		return err
	}
	return nil
}

func packageFromInput(input *pkgdto.PackageInput) *domain.Package {
	return &domain.Package{
		Name:         input.Name,
		Type:         domain.PackageType(input.Type),
		TaskLimit:    input.TaskLimit,
		SkipLimit:    input.SkipLimit,
		ValidityDays: input.ValidityDays,
		Price:        input.Price,
		IsActive:     input.IsActive,
		Bonus: domain.PackageBonus{
			DailyLimit:       input.DailyLimit,
			EarnRate:         input.EarnRate,
			ReferralEarnRate: input.ReferralEarnRate,
			MinFollowers:     input.MinFollowers,
			PrioritySupport:  input.PrioritySupport,
			FeaturedListing:  input.FeaturedListing,
		},
	}
}
