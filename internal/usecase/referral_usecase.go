package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
	"github.com/LavaJover/shvark-gig-service/internal/infrastructure/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultTopReferrersLimit = 10

// ReferralUsecase walks the referral chain and pays commissions on package
// purchases.
type ReferralUsecase interface {
	BuildChain(ctx context.Context, buyerID string) ([]domain.ChainLink, error)
	DistributeCommissions(ctx context.Context, buyerID, paymentID string, price decimal.Decimal) ([]*domain.Referral, error)
	AnnounceCommissions(ctx context.Context, referrals []*domain.Referral)
	GetUserReferrals(ctx context.Context, userID string) ([]*domain.Referral, error)
	GetReferralStats(ctx context.Context, userID string) (*domain.ReferralStats, error)
	GetTopReferrers(ctx context.Context, limit int) ([]domain.TopReferrer, error)
}

type DefaultReferralUsecase struct {
	userRepo     domain.UserRepository
	referralRepo domain.ReferralRepository
	wallet       WalletUsecase
	tx           domain.TxManager
	notifier     domain.Notifier
	metrics      *metrics.GigMetrics
	now          func() time.Time
}

func NewDefaultReferralUsecase(
	userRepo domain.UserRepository,
	referralRepo domain.ReferralRepository,
	wallet WalletUsecase,
	tx domain.TxManager,
	notifier domain.Notifier,
	gigMetrics *metrics.GigMetrics,
) *DefaultReferralUsecase {
	return &DefaultReferralUsecase{
		userRepo:     userRepo,
		referralRepo: referralRepo,
		wallet:       wallet,
		tx:           tx,
		notifier:     notifier,
		metrics:      gigMetrics,
		now:          time.Now,
	}
}

// BuildChain returns the buyer's upline, nearest first, at most five links.
// The walk stops at the first missing or blocked ancestor.
func (uc *DefaultReferralUsecase) BuildChain(ctx context.Context, buyerID string) ([]domain.ChainLink, error) {
	buyer, err := uc.userRepo.GetUserByID(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	chain := make([]domain.ChainLink, 0, domain.MaxReferralLevel)
	next := buyer.ReferrerID
	for level := 1; level <= domain.MaxReferralLevel && next != nil; level++ {
		ancestor, err := uc.userRepo.GetUserByID(ctx, *next)
		if errors.Is(err, domain.ErrNotFound) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("load referrer at level %d: %w", level, err)
		}
		if ancestor.Status == domain.UserBlocked {
			break
		}
		chain = append(chain, domain.ChainLink{ReferrerID: ancestor.ID, Level: level})
		next = ancestor.ReferrerID
	}
	return chain, nil
}

// DistributeCommissions writes one referral row and one wallet credit per
// chain link. It joins the caller's transaction when there is one.
func (uc *DefaultReferralUsecase) DistributeCommissions(ctx context.Context, buyerID, paymentID string, price decimal.Decimal) ([]*domain.Referral, error) {
	var referrals []*domain.Referral
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		chain, err := uc.BuildChain(ctx, buyerID)
		if err != nil {
			return err
		}
		referrals = make([]*domain.Referral, 0, len(chain))
		for _, link := range chain {
			commission := domain.Commission(price, link.Level)
			referral := &domain.Referral{
				ID:         uuid.New().String(),
				ReferrerID: link.ReferrerID,
				ReferredID: buyerID,
				PaymentID:  paymentID,
				Level:      link.Level,
				Commission: commission,
				CreatedAt:  uc.now(),
			}
			if err := uc.referralRepo.CreateReferral(ctx, referral); err != nil {
				return fmt.Errorf("record level %d commission: %w", link.Level, err)
			}
			if commission.IsPositive() {
				desc := fmt.Sprintf("Level %d referral commission", link.Level)
				if _, err := uc.wallet.Credit(ctx, link.ReferrerID, commission, desc, nil); err != nil {
					return fmt.Errorf("credit level %d commission: %w", link.Level, err)
				}
			}
			referrals = append(referrals, referral)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return referrals, nil
}

// AnnounceCommissions is called after the distributing transaction commits.
func (uc *DefaultReferralUsecase) AnnounceCommissions(ctx context.Context, referrals []*domain.Referral) {
	for _, r := range referrals {
		uc.metrics.RecordCommission(r.Level, r.Commission)
		uc.notifier.Notify(ctx, r.ReferrerID, domain.EventCommissionEarned,
			fmt.Sprintf("You earned ₹%s level %d referral commission", r.Commission.StringFixed(2), r.Level),
			map[string]any{
				"referred_id": r.ReferredID,
				"payment_id":  r.PaymentID,
				"level":       r.Level,
				"commission":  r.Commission.String(),
			})
	}
}

func (uc *DefaultReferralUsecase) GetUserReferrals(ctx context.Context, userID string) ([]*domain.Referral, error) {
	return uc.referralRepo.ListReferralsByReferrer(ctx, userID)
}

func (uc *DefaultReferralUsecase) GetReferralStats(ctx context.Context, userID string) (*domain.ReferralStats, error) {
	if _, err := uc.userRepo.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}
	byLevel, err := uc.referralRepo.StatsByLevel(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("referral stats: %w", err)
	}
	direct, err := uc.userRepo.CountDirectReferrals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count direct referrals: %w", err)
	}
	stats := &domain.ReferralStats{
		TotalCommission: decimal.Zero,
		DirectReferrals: direct,
		ByLevel:         byLevel,
	}
	for _, l := range byLevel {
		stats.TotalCommission = stats.TotalCommission.Add(l.Commission)
		stats.TotalRecords += l.Count
	}
	return stats, nil
}

func (uc *DefaultReferralUsecase) GetTopReferrers(ctx context.Context, limit int) ([]domain.TopReferrer, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultTopReferrersLimit
	}
	return uc.referralRepo.TopReferrers(ctx, limit)
}
