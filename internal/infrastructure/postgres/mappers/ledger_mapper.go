package mappers

import (
	"github.com/LavaJover/shvark-gig-service/internal/domain"
	"github.com/LavaJover/shvark-gig-service/internal/infrastructure/postgres/models"
)

func ToDomainReferral(model *models.ReferralModel) *domain.Referral {
	return &domain.Referral{
		ID:         model.ID,
		ReferrerID: model.ReferrerID,
		ReferredID: model.ReferredID,
		PaymentID:  model.PaymentID,
		Level:      model.Level,
		Commission: model.Commission,
		CreatedAt:  model.CreatedAt,
	}
}

func ToGORMReferral(referral *domain.Referral) *models.ReferralModel {
	return &models.ReferralModel{
		ID:         referral.ID,
		ReferrerID: referral.ReferrerID,
		ReferredID: referral.ReferredID,
		PaymentID:  referral.PaymentID,
		Level:      referral.Level,
		Commission: referral.Commission,
		CreatedAt:  referral.CreatedAt,
	}
}

func ToDomainWalletTransaction(model *models.WalletTransactionModel) *domain.WalletTransaction {
	return &domain.WalletTransaction{
		ID:          model.ID,
		UserID:      model.UserID,
		Type:        domain.TransactionType(model.Type),
		Amount:      model.Amount,
		Description: model.Description,
		TaskID:      model.TaskID,
		CreatedAt:   model.CreatedAt,
	}
}

func ToGORMWalletTransaction(tx *domain.WalletTransaction) *models.WalletTransactionModel {
	return &models.WalletTransactionModel{
		ID:          tx.ID,
		UserID:      tx.UserID,
		Type:        string(tx.Type),
		Amount:      tx.Amount,
		Description: tx.Description,
		TaskID:      tx.TaskID,
		CreatedAt:   tx.CreatedAt,
	}
}

func ToDomainWithdrawal(model *models.WithdrawalModel) *domain.Withdrawal {
	return &domain.Withdrawal{
		ID:        model.ID,
		UserID:    model.UserID,
		Amount:    model.Amount,
		Status:    domain.WithdrawalStatus(model.Status),
		Note:      model.Note,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToGORMWithdrawal(w *domain.Withdrawal) *models.WithdrawalModel {
	return &models.WithdrawalModel{
		ID:        w.ID,
		UserID:    w.UserID,
		Amount:    w.Amount,
		Status:    string(w.Status),
		Note:      w.Note,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func ToDomainPayment(model *models.PaymentModel) *domain.Payment {
	return &domain.Payment{
		ID:               model.ID,
		OrderID:          model.OrderID,
		GatewayPaymentID: model.GatewayPaymentID,
		UserID:           model.UserID,
		PackageID:        model.PackageID,
		Amount:           model.Amount,
		Currency:         model.Currency,
		Receipt:          model.Receipt,
		Status:           domain.PaymentStatus(model.Status),
		PaidAt:           model.PaidAt,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	}
}

func ToGORMPayment(p *domain.Payment) *models.PaymentModel {
	return &models.PaymentModel{
		ID:               p.ID,
		OrderID:          p.OrderID,
		GatewayPaymentID: p.GatewayPaymentID,
		UserID:           p.UserID,
		PackageID:        p.PackageID,
		Amount:           p.Amount,
		Currency:         p.Currency,
		Receipt:          p.Receipt,
		Status:           string(p.Status),
		PaidAt:           p.PaidAt,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
