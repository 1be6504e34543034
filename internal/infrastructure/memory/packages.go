package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
)

func (s *Store) CreatePackage(ctx context.Context, pkg *domain.Package) error {
	return s.write(ctx, func(st *state) error {
		if _, ok := st.packages[pkg.ID]; ok {
			return fmt.Errorf("%w: package %s already exists", domain.ErrValidation, pkg.ID)
		}
		st.packages[pkg.ID] = *pkg
		return nil
	})
}

func (s *Store) UpdatePackage(ctx context.Context, pkg *domain.Package) error {
	return s.write(ctx, func(st *state) error {
		old, ok := st.packages[pkg.ID]
		if !ok || old.DeletedAt != nil {
			return fmt.Errorf("package %s: %w", pkg.ID, domain.ErrNotFound)
		}
		updated := *pkg
		updated.CreatedAt = old.CreatedAt
		st.packages[pkg.ID] = updated
		return nil
	})
}

func (s *Store) GetPackageByID(_ context.Context, packageID string) (*domain.Package, error) {
	var (
		pkg domain.Package
		ok  bool
	)
	s.read(func(st *state) { pkg, ok = st.packages[packageID] })
	if !ok {
		return nil, fmt.Errorf("package %s: %w", packageID, domain.ErrNotFound)
	}
	return &pkg, nil
}

func (s *Store) ListActivePackages(ctx context.Context) ([]*domain.Package, error) {
	return s.listPackages(func(p domain.Package) bool { return p.IsActive && p.DeletedAt == nil }), nil
}

func (s *Store) ListPackages(ctx context.Context) ([]*domain.Package, error) {
	return s.listPackages(func(p domain.Package) bool { return p.DeletedAt == nil }), nil
}

func (s *Store) listPackages(keep func(domain.Package) bool) []*domain.Package {
	var out []*domain.Package
	s.read(func(st *state) {
		for _, p := range st.packages {
			if keep(p) {
				p := p
				out = append(out, &p)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Price.Equal(out[j].Price) {
			return out[i].Price.LessThan(out[j].Price)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *Store) DeletePackage(ctx context.Context, packageID string, at time.Time) error {
	return s.write(ctx, func(st *state) error {
		pkg, ok := st.packages[packageID]
		if !ok || pkg.DeletedAt != nil {
			return fmt.Errorf("package %s: %w", packageID, domain.ErrNotFound)
		}
		pkg.IsActive = false
		pkg.DeletedAt = &at
		pkg.UpdatedAt = at
		st.packages[packageID] = pkg
		return nil
	})
}

// withLimits resolves the limits of a grant from its package row.
func withLimits(st *state, g domain.UserPackage) domain.UserPackage {
	if pkg, ok := st.packages[g.PackageID]; ok {
		g.PackageName = pkg.Name
		g.TaskLimit = pkg.TaskLimit
		g.SkipLimit = pkg.SkipLimit
	}
	return g
}

func liveGrants(st *state, userID string, now time.Time) []domain.UserPackage {
	var live []domain.UserPackage
	for _, g := range st.grants {
		if g.UserID == userID && g.IsLive(now) {
			live = append(live, withLimits(st, g))
		}
	}
	sort.Slice(live, func(i, j int) bool { return live[i].CreatedAt.After(live[j].CreatedAt) })
	return live
}

func (s *Store) GetActiveGrant(_ context.Context, userID string, now time.Time) (*domain.UserPackage, error) {
	var live []domain.UserPackage
	s.read(func(st *state) { live = liveGrants(st, userID, now) })
	if len(live) == 0 {
		return nil, fmt.Errorf("active grant: %w", domain.ErrNotFound)
	}
	return &live[0], nil
}

func (s *Store) ListGrantsByUser(_ context.Context, userID string) ([]*domain.UserPackage, error) {
	var out []*domain.UserPackage
	s.read(func(st *state) {
		for _, g := range st.grants {
			if g.UserID == userID {
				g := withLimits(st, g)
				out = append(out, &g)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) DeactivateGrants(ctx context.Context, userID string) error {
	return s.write(ctx, func(st *state) error {
		for id, g := range st.grants {
			if g.UserID == userID && g.IsActive {
				g.IsActive = false
				st.grants[id] = g
			}
		}
		return nil
	})
}

func (s *Store) CreateGrant(ctx context.Context, grant *domain.UserPackage) error {
	return s.write(ctx, func(st *state) error {
		if _, ok := st.packages[grant.PackageID]; !ok {
			return fmt.Errorf("%w: grant references missing package %s", domain.ErrValidation, grant.PackageID)
		}
		if grant.IsActive {
			for _, g := range st.grants {
				if g.UserID == grant.UserID && g.IsActive {
					return fmt.Errorf("%w: user %s already holds active grant %s", domain.ErrValidation, grant.UserID, g.ID)
				}
			}
		}
		st.grants[grant.ID] = *grant
		return nil
	})
}

func (s *Store) ConsumeQuota(ctx context.Context, userID string, kind domain.QuotaKind, now time.Time) (bool, error) {
	var ok bool
	err := s.write(ctx, func(st *state) error {
		live := liveGrants(st, userID, now)
		if len(live) == 0 || !live[0].HasRoom(kind) {
			return nil
		}
		row := st.grants[live[0].ID]
		switch kind {
		case domain.QuotaTask:
			row.TasksUsed++
		case domain.QuotaSkip:
			row.SkipsUsed++
		default:
			return fmt.Errorf("unknown quota kind %q", kind)
		}
		st.grants[row.ID] = row
		ok = true
		return nil
	})
	return ok, err
}

func (s *Store) CountActiveGrantsForPackage(_ context.Context, packageID string, now time.Time) (int64, error) {
	var n int64
	s.read(func(st *state) {
		for _, g := range st.grants {
			if g.PackageID == packageID && g.IsLive(now) {
				n++
			}
		}
	})
	return n, nil
}

func (s *Store) DeactivateExpiredGrants(ctx context.Context, now time.Time) (int64, error) {
	var n int64
	err := s.write(ctx, func(st *state) error {
		for id, g := range st.grants {
			if g.IsActive && !g.ExpiresAt.After(now) {
				g.IsActive = false
				st.grants[id] = g
				n++
			}
		}
		return nil
	})
	return n, err
}
