package response

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReferralResponse struct {
	ID         string          `json:"id"`
	ReferredID string          `json:"referred_id"`
	PaymentID  string          `json:"payment_id"`
	Level      int             `json:"level"`
	Commission decimal.Decimal `json:"commission"`
	CreatedAt  time.Time       `json:"created_at"`
}

type LevelStatResponse struct {
	Level      int             `json:"level"`
	Count      int64           `json:"count"`
	Commission decimal.Decimal `json:"commission"`
}

type ReferralStatsResponse struct {
	TotalCommission decimal.Decimal     `json:"total_commission"`
	TotalRecords    int64               `json:"total_records"`
	DirectReferrals int64               `json:"direct_referrals"`
	ByLevel         []LevelStatResponse `json:"by_level"`
}

type TopReferrerResponse struct {
	ReferrerID      string          `json:"referrer_id"`
	TotalCommission decimal.Decimal `json:"total_commission"`
	Records         int64           `json:"records"`
}
