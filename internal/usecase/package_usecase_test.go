package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
	pkgdto "github.com/LavaJover/shvark-gig-service/internal/usecase/dto/pkg"
)

func packageInput(name, price string) *pkgdto.PackageInput {
	return &pkgdto.PackageInput{
		Name:         name,
		Type:         "online",
		TaskLimit:    20,
		SkipLimit:    5,
		ValidityDays: 30,
		Price:        dec(price),
		IsActive:     true,
	}
}

func TestCreatePackageValidation(t *testing.T) {
	f := newFixture(t)

	bad := packageInput("Broken", "-1")
	if _, err := f.packages.CreatePackage(f.ctx, bad); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("negative price: err = %v", err)
	}
	bad = packageInput("Broken", "10")
	bad.Type = "hybrid"
	if _, err := f.packages.CreatePackage(f.ctx, bad); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("unknown type: err = %v", err)
	}
	bad = packageInput("Broken", "499.999")
	if _, err := f.packages.CreatePackage(f.ctx, bad); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("three decimal price: err = %v", err)
	}
}

func TestListActivePackagesByPrice(t *testing.T) {
	f := newFixture(t)
	for _, in := range []*pkgdto.PackageInput{
		packageInput("Gold", "2000"),
		packageInput("Bronze", "500"),
		packageInput("Silver", "1000"),
	} {
		if _, err := f.packages.CreatePackage(f.ctx, in); err != nil {
			t.Fatal(err)
		}
	}
	hidden := packageInput("Hidden", "1")
	hidden.IsActive = false
	if _, err := f.packages.CreatePackage(f.ctx, hidden); err != nil {
		t.Fatal(err)
	}

	list, err := f.packages.ListActivePackages(f.ctx)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, p := range list {
		names = append(names, p.Name)
	}
	if len(names) != 3 || names[0] != "Bronze" || names[2] != "Gold" {
		t.Fatalf("active packages = %v", names)
	}
	all, _ := f.packages.ListPackages(f.ctx)
	if len(all) != 4 {
		t.Errorf("all packages = %d, want 4", len(all))
	}
}

func TestDeletePackageInUse(t *testing.T) {
	f := newFixture(t)
	f.addUser("v1", nil)
	pkg, err := f.packages.CreatePackage(f.ctx, packageInput("Bronze", "500"))
	if err != nil {
		t.Fatal(err)
	}
	f.grant("v1", pkg.ID, 0, 0)

	if err := f.packages.DeletePackage(f.ctx, pkg.ID); !errors.Is(err, domain.ErrPackageInUse) {
		t.Fatalf("err = %v, want ErrPackageInUse", err)
	}
	if _, err := f.packages.GetPackageByID(f.ctx, pkg.ID); err != nil {
		t.Errorf("package gone after refused delete: %v", err)
	}
}

func TestDeleteUnusedPackage(t *testing.T) {
	f := newFixture(t)
	pkg, err := f.packages.CreatePackage(f.ctx, packageInput("Bronze", "500"))
	if err != nil {
		t.Fatal(err)
	}
	if err := f.packages.DeletePackage(f.ctx, pkg.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := f.packages.GetPackageByID(f.ctx, pkg.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdatePackageKeepsCreatedAt(t *testing.T) {
	f := newFixture(t)
	pkg, _ := f.packages.CreatePackage(f.ctx, packageInput("Bronze", "500"))

	in := packageInput("Bronze Plus", "550")
	updated, err := f.packages.UpdatePackage(f.ctx, pkg.ID, in)
	if err != nil {
		t.Fatal(err)
	}
	if !updated.CreatedAt.Equal(pkg.CreatedAt) || updated.Name != "Bronze Plus" {
		t.Errorf("updated = %+v", updated)
	}
}

func TestDeletePackageWithExpiredGrant(t *testing.T) {
	f := newFixture(t)
	f.addUser("v1", nil)
	pkg, err := f.packages.CreatePackage(f.ctx, packageInput("Bronze", "500"))
	if err != nil {
		t.Fatal(err)
	}
	f.grant("v1", pkg.ID, 2, 0)

	// 31 days on, the 30 day grant has lapsed but still references the row.
	later := f.now.AddDate(0, 0, 31)
	f.packages.now = func() time.Time { return later }
	if err := f.packages.DeletePackage(f.ctx, pkg.ID); err != nil {
		t.Fatalf("expired grant blocked delete: %v", err)
	}

	active, _ := f.packages.ListActivePackages(f.ctx)
	for _, p := range active {
		if p.ID == pkg.ID {
			t.Fatal("deleted package still on sale")
		}
	}
	if _, err := f.packages.UpdatePackage(f.ctx, pkg.ID, packageInput("Bronze", "600")); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("update of deleted package: err = %v", err)
	}
	grants, _ := f.quota.ListGrants(f.ctx, "v1")
	if len(grants) != 1 || grants[0].TasksUsed != 2 {
		t.Fatalf("grant history changed: %+v", grants)
	}
}
