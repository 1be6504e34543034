package paymentdto

import (
	"github.com/LavaJover/shvark-gig-service/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateOrderInput struct {
	UserID    string `validate:"required"`
	PackageID string `validate:"required"`
}

type CreateOrderOutput struct {
	OrderID     string
	KeyID       string
	Amount      decimal.Decimal
	AmountMinor int64
	Currency    string
	Receipt     string
	PackageName string
}

type ConfirmPaymentInput struct {
	UserID    string `validate:"required"`
	OrderID   string `validate:"required"`
	PaymentID string `validate:"required"`
	Signature string `validate:"required,hexadecimal"`
}

type ConfirmPaymentOutput struct {
	Grant       *domain.UserPackage
	Commissions []*domain.Referral
}
