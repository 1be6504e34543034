package mappers

import (
	"github.com/LavaJover/shvark-gig-service/internal/domain"
	"github.com/LavaJover/shvark-gig-service/internal/infrastructure/postgres/models"
)

func ToDomainPackage(model *models.PackageModel) *domain.Package {
	return &domain.Package{
		ID:           model.ID,
		Name:         model.Name,
		Type:         domain.PackageType(model.Type),
		TaskLimit:    model.TaskLimit,
		SkipLimit:    model.SkipLimit,
		ValidityDays: model.ValidityDays,
		Price:        model.Price,
		IsActive:     model.IsActive,
		Bonus: domain.PackageBonus{
			DailyLimit:       model.DailyLimit,
			EarnRate:         model.EarnRate,
			ReferralEarnRate: model.ReferralEarnRate,
			MinFollowers:     model.MinFollowers,
			PrioritySupport:  model.PrioritySupport,
			FeaturedListing:  model.FeaturedListing,
		},
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
		DeletedAt: model.DeletedAt,
	}
}

func ToGORMPackage(pkg *domain.Package) *models.PackageModel {
	return &models.PackageModel{
		ID:               pkg.ID,
		Name:             pkg.Name,
		Type:             string(pkg.Type),
		TaskLimit:        pkg.TaskLimit,
		SkipLimit:        pkg.SkipLimit,
		ValidityDays:     pkg.ValidityDays,
		Price:            pkg.Price,
		IsActive:         pkg.IsActive,
		DailyLimit:       pkg.Bonus.DailyLimit,
		EarnRate:         pkg.Bonus.EarnRate,
		ReferralEarnRate: pkg.Bonus.ReferralEarnRate,
		MinFollowers:     pkg.Bonus.MinFollowers,
		PrioritySupport:  pkg.Bonus.PrioritySupport,
		FeaturedListing:  pkg.Bonus.FeaturedListing,
		CreatedAt:        pkg.CreatedAt,
		UpdatedAt:        pkg.UpdatedAt,
		DeletedAt:        pkg.DeletedAt,
	}
}

// ToDomainGrant expects model.Package to be preloaded; limits come from it.
func ToDomainGrant(model *models.UserPackageModel) *domain.UserPackage {
	return &domain.UserPackage{
		ID:          model.ID,
		UserID:      model.UserID,
		PackageID:   model.PackageID,
		PackageName: model.Package.Name,
		TaskLimit:   model.Package.TaskLimit,
		SkipLimit:   model.Package.SkipLimit,
		TasksUsed:   model.TasksUsed,
		SkipsUsed:   model.SkipsUsed,
		ExpiresAt:   model.ExpiresAt,
		IsActive:    model.IsActive,
		CreatedAt:   model.CreatedAt,
	}
}

func ToGORMGrant(grant *domain.UserPackage) *models.UserPackageModel {
	return &models.UserPackageModel{
		ID:        grant.ID,
		UserID:    grant.UserID,
		PackageID: grant.PackageID,
		TasksUsed: grant.TasksUsed,
		SkipsUsed: grant.SkipsUsed,
		ExpiresAt: grant.ExpiresAt,
		IsActive:  grant.IsActive,
		CreatedAt: grant.CreatedAt,
	}
}
