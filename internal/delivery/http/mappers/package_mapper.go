package mappers

import (
	"github.com/LavaJover/shvark-gig-service/internal/delivery/http/dto/request"
	"github.com/LavaJover/shvark-gig-service/internal/delivery/http/dto/response"
	"github.com/LavaJover/shvark-gig-service/internal/domain"
	pkgdto "github.com/LavaJover/shvark-gig-service/internal/usecase/dto/pkg"
)

func ToPackageInput(r *request.PackageRequest) *pkgdto.PackageInput {
	return &pkgdto.PackageInput{
		Name:             r.Name,
		Type:             r.Type,
		TaskLimit:        r.TaskLimit,
		SkipLimit:        r.SkipLimit,
		ValidityDays:     r.ValidityDays,
		Price:            r.Price,
		IsActive:         r.IsActive,
		DailyLimit:       r.DailyLimit,
		EarnRate:         r.EarnRate,
		ReferralEarnRate: r.ReferralEarnRate,
		MinFollowers:     r.MinFollowers,
		PrioritySupport:  r.PrioritySupport,
		FeaturedListing:  r.FeaturedListing,
	}
}

func ToPackageResponse(pkg *domain.Package) response.PackageResponse {
	return response.PackageResponse{
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
	}
}

func ToPackageList(pkgs []*domain.Package) []response.PackageResponse {
	out := make([]response.PackageResponse, len(pkgs))
	for i, pkg := range pkgs {
		out[i] = ToPackageResponse(pkg)
	}
	return out
}

func ToGrantResponse(g *domain.UserPackage) response.GrantResponse {
	return response.GrantResponse{
		ID:          g.ID,
		PackageID:   g.PackageID,
		PackageName: g.PackageName,
		TaskLimit:   g.TaskLimit,
		SkipLimit:   g.SkipLimit,
		TasksUsed:   g.TasksUsed,
		SkipsUsed:   g.SkipsUsed,
		ExpiresAt:   g.ExpiresAt,
		IsActive:    g.IsActive,
	}
}

func ToQuotaResponse(status *domain.QuotaStatus) response.QuotaResponse {
	resp := response.QuotaResponse{
		TasksRemaining: status.TasksRemaining,
		SkipsRemaining: status.SkipsRemaining,
	}
	if status.Grant != nil {
		grant := ToGrantResponse(status.Grant)
		resp.Grant = &grant
	}
	return resp
}
