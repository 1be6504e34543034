package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
	"github.com/LavaJover/shvark-gig-service/internal/infrastructure/metrics"
	paymentdto "github.com/LavaJover/shvark-gig-service/internal/usecase/dto/payment"
	"github.com/LavaJover/shvark-gig-service/internal/usecase/validation"
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"github.com/shopspring/decimal"
)

var minorUnits = decimal.NewFromInt(100)

// PaymentUsecase sells packages: it opens gateway orders and, once the
// gateway signature checks out, grants quota and pays the referral chain.
type PaymentUsecase interface {
	CreateOrder(ctx context.Context, input *paymentdto.CreateOrderInput) (*paymentdto.CreateOrderOutput, error)
	ConfirmPayment(ctx context.Context, input *paymentdto.ConfirmPaymentInput) (*paymentdto.ConfirmPaymentOutput, error)
}

type DefaultPaymentUsecase struct {
	paymentRepo domain.PaymentRepository
	packageRepo domain.PackageRepository
	gateway     domain.PaymentGateway
	quota       QuotaUsecase
	referrals   ReferralUsecase
	tx          domain.TxManager
	notifier    domain.Notifier
	metrics     *metrics.GigMetrics
	currency    string
	now         func() time.Time
}

func NewDefaultPaymentUsecase(
	paymentRepo domain.PaymentRepository,
	packageRepo domain.PackageRepository,
	gateway domain.PaymentGateway,
	quota QuotaUsecase,
	referrals ReferralUsecase,
	tx domain.TxManager,
	notifier domain.Notifier,
	gigMetrics *metrics.GigMetrics,
	currency string,
) *DefaultPaymentUsecase {
	return &DefaultPaymentUsecase{
		paymentRepo: paymentRepo,
		packageRepo: packageRepo,
		gateway:     gateway,
		quota:       quota,
		referrals:   referrals,
		tx:          tx,
		notifier:    notifier,
		metrics:     gigMetrics,
		currency:    currency,
		now:         time.Now,
	}
}

func (uc *DefaultPaymentUsecase) CreateOrder(ctx context.Context, input *paymentdto.CreateOrderInput) (*paymentdto.CreateOrderOutput, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	pkg, err := uc.packageRepo.GetPackageByID(ctx, input.PackageID)
	if err != nil {
		return nil, err
	}
	if !pkg.IsActive {
		return nil, validation.Errorf("package %s is not on sale", pkg.ID)
	}

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}
	receipt := "rcpt_" + idGenerator()
	amountMinor := pkg.Price.Mul(minorUnits).Round(0).IntPart()

	order, err := uc.gateway.CreateOrder(ctx, amountMinor, uc.currency, receipt)
	if err != nil {
		return nil, fmt.Errorf("gateway order for package %s: %w", pkg.ID, err)
	}

	now := uc.now()
	payment := &domain.Payment{
		ID:        uuid.New().String(),
		OrderID:   order.OrderID,
		UserID:    input.UserID,
		PackageID: pkg.ID,
		Amount:    pkg.Price,
		Currency:  uc.currency,
		Receipt:   receipt,
		Status:    domain.PaymentPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.paymentRepo.CreatePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("store payment: %w", err)
	}
	slog.Info("payment order created", "order_id", order.OrderID, "user_id", input.UserID, "package_id", pkg.ID)

	return &paymentdto.CreateOrderOutput{
		OrderID:     order.OrderID,
		KeyID:       uc.gateway.KeyID(),
		Amount:      pkg.Price,
		AmountMinor: amountMinor,
		Currency:    uc.currency,
		Receipt:     receipt,
		PackageName: pkg.Name,
	}, nil
}

// ConfirmPayment settles a pending payment exactly once. The grant and the
// commissions commit together with the paid status; notifications go out
// after the commit.
func (uc *DefaultPaymentUsecase) ConfirmPayment(ctx context.Context, input *paymentdto.ConfirmPaymentInput) (*paymentdto.ConfirmPaymentOutput, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if !uc.gateway.VerifySignature(input.OrderID, input.PaymentID, input.Signature) {
		slog.Warn("payment signature mismatch", "order_id", input.OrderID, "user_id", input.UserID)
		return nil, domain.ErrInvalidSignature
	}
	payment, err := uc.paymentRepo.GetPaymentByOrderID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if payment.UserID != input.UserID {
		return nil, domain.ErrForbidden
	}

	out := &paymentdto.ConfirmPaymentOutput{}
	err = uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		ok, err := uc.paymentRepo.MarkPaid(ctx, payment.OrderID, input.PaymentID, uc.now())
		if err != nil {
			return fmt.Errorf("mark order %s paid: %w", payment.OrderID, err)
		}
		if !ok {
			return domain.ErrPaymentProcessed
		}
		grant, err := uc.quota.Grant(ctx, payment.UserID, payment.PackageID)
		if err != nil {
			return err
		}
		out.Grant = grant
		commissions, err := uc.referrals.DistributeCommissions(ctx, payment.UserID, payment.ID, payment.Amount)
		if err != nil {
			return err
		}
		out.Commissions = commissions
		return nil
	})
	if err != nil {
		if !errors.Is(err, domain.ErrPaymentProcessed) {
			slog.Error("payment confirmation failed", "order_id", payment.OrderID, "error", err)
		}
		return nil, err
	}

	uc.metrics.RecordPaymentConfirmed(payment.PackageID, payment.Amount)
	uc.referrals.AnnounceCommissions(ctx, out.Commissions)
	uc.notifier.Notify(ctx, payment.UserID, domain.EventPackageActivated,
		fmt.Sprintf("Your %s package is active until %s", out.Grant.PackageName, out.Grant.ExpiresAt.Format("02 Jan 2006")),
		map[string]any{
			"package_id": payment.PackageID,
			"order_id":   payment.OrderID,
			"expires_at": out.Grant.ExpiresAt,
		})
	slog.Info("payment confirmed", "order_id", payment.OrderID, "user_id", payment.UserID, "commissions", len(out.Commissions))
	return out, nil
}
