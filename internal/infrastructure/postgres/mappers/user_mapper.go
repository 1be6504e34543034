package mappers

import (
	"github.com/LavaJover/shvark-gig-service/internal/domain"
	"github.com/LavaJover/shvark-gig-service/internal/infrastructure/postgres/models"
)

func ToDomainUser(model *models.UserModel) *domain.User {
	return &domain.User{
		ID:            model.ID,
		Name:          model.Name,
		Email:         model.Email,
		Role:          domain.Role(model.Role),
		Status:        domain.UserStatus(model.Status),
		ReferralCode:  model.ReferralCode,
		ReferrerID:    model.ReferrerID,
		WalletBalance: model.WalletBalance,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

func ToGORMUser(user *domain.User) *models.UserModel {
	return &models.UserModel{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		Role:          string(user.Role),
		Status:        string(user.Status),
		ReferralCode:  user.ReferralCode,
		ReferrerID:    user.ReferrerID,
		WalletBalance: user.WalletBalance,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}
