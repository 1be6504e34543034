package repository

import (
	"context"
	"time"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
	"github.com/LavaJover/shvark-gig-service/internal/infrastructure/postgres"
	"github.com/LavaJover/shvark-gig-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-gig-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultPaymentRepository struct {
	DB *gorm.DB
}

func NewDefaultPaymentRepository(db *gorm.DB) *DefaultPaymentRepository {
	return &DefaultPaymentRepository{DB: db}
}

func (r *DefaultPaymentRepository) CreatePayment(ctx context.Context, payment *domain.Payment) error {
	return translateError(postgres.Conn(ctx, r.DB).Create(mappers.ToGORMPayment(payment)).Error, "payment")
}

func (r *DefaultPaymentRepository) GetPaymentByOrderID(ctx context.Context, orderID string) (*domain.Payment, error) {
	var model models.PaymentModel
	if err := postgres.Conn(ctx, r.DB).First(&model, "order_id = ?", orderID).Error; err != nil {
		return nil, translateError(err, "payment order "+orderID)
	}
	return mappers.ToDomainPayment(&model), nil
}

func (r *DefaultPaymentRepository) MarkPaid(ctx context.Context, orderID, gatewayPaymentID string, paidAt time.Time) (bool, error) {
	res := postgres.Conn(ctx, r.DB).
		Model(&models.PaymentModel{}).
		Where("order_id = ? AND status = ?", orderID, string(domain.PaymentPending)).
		Updates(map[string]interface{}{
			"status":             string(domain.PaymentPaid),
			"gateway_payment_id": gatewayPaymentID,
			"paid_at":            paidAt,
			"updated_at":         gorm.Expr("NOW()"),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
