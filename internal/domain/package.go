package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type PackageType string

const (
	PackageOnsite PackageType = "onsite"
	PackageOnline PackageType = "online"
)

type Package struct {
	ID           string
	Name         string
	Type         PackageType
	TaskLimit    int
	SkipLimit    int
	ValidityDays int
	Price        decimal.Decimal
	IsActive     bool
	Bonus        PackageBonus
	CreatedAt    time.Time
	UpdatedAt    time.Time
	// DeletedAt is set once an admin removes the package. The row stays for
	// the grants and payments that reference it.
	DeletedAt *time.Time
}

// PackageBonus holds descriptive fields shown to vendors. None of them
// affect the task lifecycle.
type PackageBonus struct {
	DailyLimit       int
	EarnRate         decimal.Decimal
	ReferralEarnRate decimal.Decimal
	MinFollowers     int
	PrioritySupport  bool
	FeaturedListing  bool
}

type PackageRepository interface {
	CreatePackage(ctx context.Context, pkg *Package) error
	UpdatePackage(ctx context.Context, pkg *Package) error
	GetPackageByID(ctx context.Context, packageID string) (*Package, error)
	// ListActivePackages returns packages on sale ordered by ascending price.
	ListActivePackages(ctx context.Context) ([]*Package, error)
	ListPackages(ctx context.Context) ([]*Package, error)
	// DeletePackage takes the package off sale and hides it from listings.
	DeletePackage(ctx context.Context, packageID string, at time.Time) error
}
