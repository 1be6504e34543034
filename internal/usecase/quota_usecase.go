package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
	"github.com/LavaJover/shvark-gig-service/internal/infrastructure/metrics"
	"github.com/google/uuid"
)

// QuotaUsecase is the quota ledger: one live grant per user, consumed one
// unit at a time.
type QuotaUsecase interface {
	GetActiveGrant(ctx context.Context, userID string) (*domain.UserPackage, error)
	GetQuotaStatus(ctx context.Context, userID string) (*domain.QuotaStatus, error)
	Grant(ctx context.Context, userID, packageID string) (*domain.UserPackage, error)
	CanConsume(ctx context.Context, userID string, kind domain.QuotaKind) (bool, error)
	Consume(ctx context.Context, userID string, kind domain.QuotaKind) error
	ChargeSkip(ctx context.Context, userID string) (domain.QuotaKind, error)
	ListGrants(ctx context.Context, userID string) ([]*domain.UserPackage, error)
	DeactivateExpiredGrants(ctx context.Context) (int64, error)
}

type DefaultQuotaUsecase struct {
	grantRepo   domain.UserPackageRepository
	packageRepo domain.PackageRepository
	tx          domain.TxManager
	metrics     *metrics.GigMetrics
	now         func() time.Time
}

func NewDefaultQuotaUsecase(
	grantRepo domain.UserPackageRepository,
	packageRepo domain.PackageRepository,
	tx domain.TxManager,
	gigMetrics *metrics.GigMetrics,
) *DefaultQuotaUsecase {
	return &DefaultQuotaUsecase{
		grantRepo:   grantRepo,
		packageRepo: packageRepo,
		tx:          tx,
		metrics:     gigMetrics,
		now:         time.Now,
	}
}

func (uc *DefaultQuotaUsecase) GetActiveGrant(ctx context.Context, userID string) (*domain.UserPackage, error) {
	return uc.grantRepo.GetActiveGrant(ctx, userID, uc.now())
}

func (uc *DefaultQuotaUsecase) GetQuotaStatus(ctx context.Context, userID string) (*domain.QuotaStatus, error) {
	grant, err := uc.grantRepo.GetActiveGrant(ctx, userID, uc.now())
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.QuotaStatus{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &domain.QuotaStatus{
		Grant:          grant,
		TasksRemaining: grant.TasksRemaining(),
		SkipsRemaining: grant.SkipsRemaining(),
	}, nil
}

// Grant deactivates every grant the user holds and inserts a fresh one for
// the package.
func (uc *DefaultQuotaUsecase) Grant(ctx context.Context, userID, packageID string) (*domain.UserPackage, error) {
	var grant *domain.UserPackage
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		pkg, err := uc.packageRepo.GetPackageByID(ctx, packageID)
		if err != nil {
			return fmt.Errorf("package %s: %w", packageID, err)
		}
		if err := uc.grantRepo.DeactivateGrants(ctx, userID); err != nil {
			return fmt.Errorf("deactivate grants for %s: %w", userID, err)
		}
		now := uc.now()
		grant = &domain.UserPackage{
			ID:          uuid.New().String(),
			UserID:      userID,
			PackageID:   pkg.ID,
			PackageName: pkg.Name,
			TaskLimit:   pkg.TaskLimit,
			SkipLimit:   pkg.SkipLimit,
			ExpiresAt:   now.AddDate(0, 0, pkg.ValidityDays),
			IsActive:    true,
			CreatedAt:   now,
		}
		return uc.grantRepo.CreateGrant(ctx, grant)
	})
	if err != nil {
		return nil, err
	}
	uc.metrics.RecordGrant(packageID)
	slog.Info("quota granted", "user_id", userID, "package_id", packageID, "expires_at", grant.ExpiresAt)
	return grant, nil
}

// CanConsume reports whether the live grant has room for kind. A skip with
// no skip allowance left still passes when task allowance remains.
func (uc *DefaultQuotaUsecase) CanConsume(ctx context.Context, userID string, kind domain.QuotaKind) (bool, error) {
	now := uc.now()
	grant, err := uc.grantRepo.GetActiveGrant(ctx, userID, now)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if kind == domain.QuotaSkip {
		return domain.ResolveSkipCost(grant, now) != domain.SkipRefused, nil
	}
	return grant.IsLive(now) && grant.HasRoom(kind), nil
}

// Consume takes one unit of kind with a single conditional update.
func (uc *DefaultQuotaUsecase) Consume(ctx context.Context, userID string, kind domain.QuotaKind) error {
	ok, err := uc.grantRepo.ConsumeQuota(ctx, userID, kind, uc.now())
	if err != nil {
		return fmt.Errorf("consume %s quota for %s: %w", kind, userID, err)
	}
	if !ok {
		return domain.ErrQuotaExhausted
	}
	return nil
}

// ChargeSkip charges a skip according to domain.ResolveSkipCost and returns
// the counter that was incremented. A concurrent consumer can empty the
// chosen counter between the read and the update, so the decision is
// re-evaluated once.
func (uc *DefaultQuotaUsecase) ChargeSkip(ctx context.Context, userID string) (domain.QuotaKind, error) {
	for attempt := 0; attempt < 2; attempt++ {
		now := uc.now()
		grant, err := uc.grantRepo.GetActiveGrant(ctx, userID, now)
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrQuotaExhausted
		}
		if err != nil {
			return "", err
		}
		cost := domain.ResolveSkipCost(grant, now)
		if cost == domain.SkipRefused {
			return "", domain.ErrQuotaExhausted
		}
		ok, err := uc.grantRepo.ConsumeQuota(ctx, userID, cost.Kind(), now)
		if err != nil {
			return "", fmt.Errorf("charge skip for %s: %w", userID, err)
		}
		if ok {
			return cost.Kind(), nil
		}
	}
	return "", domain.ErrQuotaExhausted
}

func (uc *DefaultQuotaUsecase) ListGrants(ctx context.Context, userID string) ([]*domain.UserPackage, error) {
	return uc.grantRepo.ListGrantsByUser(ctx, userID)
}

func (uc *DefaultQuotaUsecase) DeactivateExpiredGrants(ctx context.Context) (int64, error) {
	return uc.grantRepo.DeactivateExpiredGrants(ctx, uc.now())
}
