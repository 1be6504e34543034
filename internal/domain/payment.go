package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

type Payment struct {
	ID               string
	OrderID          string
	GatewayPaymentID string
	UserID           string
	PackageID        string
	Amount           decimal.Decimal
	Currency         string
	Receipt          string
	Status           PaymentStatus
	PaidAt           *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type GatewayOrder struct {
	OrderID  string
	Amount   int64
	Currency string
	Receipt  string
}

// PaymentGateway is the external payment processor.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*GatewayOrder, error)
	VerifySignature(orderID, paymentID, signature string) bool
	KeyID() string
}

type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment *Payment) error
	GetPaymentByOrderID(ctx context.Context, orderID string) (*Payment, error)
	// MarkPaid moves a pending payment to paid; false if it was not pending.
	MarkPaid(ctx context.Context, orderID, gatewayPaymentID string, paidAt time.Time) (bool, error)
}
