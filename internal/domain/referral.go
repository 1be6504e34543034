package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

const MaxReferralLevel = 5

var commissionRates = [MaxReferralLevel]decimal.Decimal{
	decimal.RequireFromString("0.10"),
	decimal.RequireFromString("0.05"),
	decimal.RequireFromString("0.04"),
	decimal.RequireFromString("0.03"),
	decimal.RequireFromString("0.02"),
}

// CommissionRate is the share of a purchase price paid at the given upline
// level. Levels outside 1..5 earn nothing.
func CommissionRate(level int) decimal.Decimal {
	if level < 1 || level > MaxReferralLevel {
		return decimal.Zero
	}
	return commissionRates[level-1]
}

func Commission(price decimal.Decimal, level int) decimal.Decimal {
	return price.Mul(CommissionRate(level)).Round(2)
}

// Referral is an immutable commission record written per upline member per
// purchase.
type Referral struct {
	ID         string
	ReferrerID string
	ReferredID string
	PaymentID  string
	Level      int
	Commission decimal.Decimal
	CreatedAt  time.Time
}

type ChainLink struct {
	ReferrerID string
	Level      int
}

type ReferralStats struct {
	TotalCommission decimal.Decimal
	TotalRecords    int64
	DirectReferrals int64
	ByLevel         []LevelStat
}

type LevelStat struct {
	Level      int
	Count      int64
	Commission decimal.Decimal
}

type TopReferrer struct {
	ReferrerID      string
	TotalCommission decimal.Decimal
	Records         int64
}

type ReferralRepository interface {
	CreateReferral(ctx context.Context, referral *Referral) error
	ListReferralsByReferrer(ctx context.Context, referrerID string) ([]*Referral, error)
	ListReferralsByPayment(ctx context.Context, paymentID string) ([]*Referral, error)
	StatsByLevel(ctx context.Context, referrerID string) ([]LevelStat, error)
	TopReferrers(ctx context.Context, limit int) ([]TopReferrer, error)
}
