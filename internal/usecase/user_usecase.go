package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
	userdto "github.com/LavaJover/shvark-gig-service/internal/usecase/dto/user"
	"github.com/LavaJover/shvark-gig-service/internal/usecase/validation"
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"github.com/shopspring/decimal"
)

const (
	referralCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	referralCodeLength   = 8
	referralCodeAttempts = 5
)

type UserUsecase interface {
	RegisterVendor(ctx context.Context, input *userdto.RegisterVendorInput) (*domain.User, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
}

type DefaultUserUsecase struct {
	userRepo         domain.UserRepository
	quota            QuotaUsecase
	tx               domain.TxManager
	starterPackageID string
	codeGenerator    func() string
	now              func() time.Time
}

func NewDefaultUserUsecase(
	userRepo domain.UserRepository,
	quota QuotaUsecase,
	tx domain.TxManager,
	starterPackageID string,
) (*DefaultUserUsecase, error) {
	codeGenerator, err := nanoid.CustomASCII(referralCodeAlphabet, referralCodeLength)
	if err != nil {
		return nil, fmt.Errorf("referral code generator: %w", err)
	}
	return &DefaultUserUsecase{
		userRepo:         userRepo,
		quota:            quota,
		tx:               tx,
		starterPackageID: starterPackageID,
		codeGenerator:    codeGenerator,
		now:              time.Now,
	}, nil
}

// RegisterVendor creates a vendor, binds the referrer named by the optional
// code and seeds the starter grant. The referrer can never change later.
func (uc *DefaultUserUsecase) RegisterVendor(ctx context.Context, input *userdto.RegisterVendorInput) (*domain.User, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	now := uc.now()
	user := &domain.User{
		ID:            uuid.New().String(),
		Name:          input.Name,
		Email:         strings.ToLower(strings.TrimSpace(input.Email)),
		Role:          domain.RoleVendor,
		Status:        domain.UserActive,
		WalletBalance: decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if input.ReferralCode != "" {
			referrer, err := uc.userRepo.GetUserByReferralCode(ctx, strings.ToUpper(input.ReferralCode))
			if errors.Is(err, domain.ErrNotFound) {
				return validation.Errorf("unknown referral code %q", input.ReferralCode)
			}
			if err != nil {
				return err
			}
			user.ReferrerID = &referrer.ID
		}

		code, err := uc.freeReferralCode(ctx)
		if err != nil {
			return err
		}
		user.ReferralCode = code
		if err := uc.userRepo.CreateUser(ctx, user); err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		if uc.starterPackageID == "" {
			return nil
		}
		_, err = uc.quota.Grant(ctx, user.ID, uc.starterPackageID)
		return err
	})
	if err != nil {
		return nil, err
	}
	slog.Info("vendor registered", "user_id", user.ID, "referred", user.ReferrerID != nil)
	return user, nil
}

func (uc *DefaultUserUsecase) freeReferralCode(ctx context.Context) (string, error) {
	for i := 0; i < referralCodeAttempts; i++ {
		code := uc.codeGenerator()
		_, err := uc.userRepo.GetUserByReferralCode(ctx, code)
		if errors.Is(err, domain.ErrNotFound) {
			return code, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", errors.New("could not allocate a unique referral code")
}

func (uc *DefaultUserUsecase) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return uc.userRepo.GetUserByID(ctx, userID)
}
