package setup

import (
	"fmt"

	"github.com/LavaJover/shvark-gig-service/internal/usecase"
	"github.com/LavaJover/shvark-gig-service/internal/usecase/task"
	"github.com/shopspring/decimal"
)

type UseCases struct {
	Quota     usecase.QuotaUsecase
	Packages  usecase.PackageUsecase
	Wallet    usecase.WalletUsecase
	Referrals usecase.ReferralUsecase
	Payments  usecase.PaymentUsecase
	Users     usecase.UserUsecase
	Tasks     task.TaskUsecase
}

func InitializeUseCases(deps *Dependencies) (*UseCases, error) {
	cfg := deps.Config
	repos := deps.Repositories

	minWithdrawal, err := decimal.NewFromString(cfg.Business.MinWithdrawal)
	if err != nil {
		return nil, fmt.Errorf("business.min_withdrawal: %w", err)
	}

	quota := usecase.NewDefaultQuotaUsecase(repos.Grants, repos.Packages, repos.Tx, deps.Metrics)
	packages := usecase.NewDefaultPackageUsecase(repos.Packages, repos.Grants, repos.Tx)
	wallet := usecase.NewDefaultWalletUsecase(
		repos.Users,
		repos.Wallet,
		repos.Withdrawals,
		repos.Tx,
		deps.Notifier,
		deps.Metrics,
		minWithdrawal,
	)
	referrals := usecase.NewDefaultReferralUsecase(
		repos.Users,
		repos.Referrals,
		wallet,
		repos.Tx,
		deps.Notifier,
		deps.Metrics,
	)
	payments := usecase.NewDefaultPaymentUsecase(
		repos.Payments,
		repos.Packages,
		deps.Gateway,
		quota,
		referrals,
		repos.Tx,
		deps.Notifier,
		deps.Metrics,
		cfg.PaymentGateway.Currency,
	)
	users, err := usecase.NewDefaultUserUsecase(repos.Users, quota, repos.Tx, cfg.Business.StarterPackageID)
	if err != nil {
		return nil, fmt.Errorf("user usecase: %w", err)
	}
	tasks := task.NewDefaultTaskUsecase(
		repos.Tasks,
		quota,
		wallet,
		repos.Tx,
		deps.Notifier,
		repos.TaskEvents,
		deps.Metrics,
	)

	return &UseCases{
		Quota:     quota,
		Packages:  packages,
		Wallet:    wallet,
		Referrals: referrals,
		Payments:  payments,
		Users:     users,
		Tasks:     tasks,
	}, nil
}
