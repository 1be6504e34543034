package mappers

import (
	"github.com/LavaJover/shvark-gig-service/internal/delivery/http/dto/response"
	"github.com/LavaJover/shvark-gig-service/internal/domain"
	paymentdto "github.com/LavaJover/shvark-gig-service/internal/usecase/dto/payment"
	walletdto "github.com/LavaJover/shvark-gig-service/internal/usecase/dto/wallet"
)

func ToWalletResponse(out *walletdto.WalletOutput) response.WalletResponse {
	resp := response.WalletResponse{
		Balance:      out.Balance,
		Transactions: make([]response.TransactionResponse, len(out.Transactions)),
		Withdrawals:  make([]response.WithdrawalResponse, len(out.Withdrawals)),
	}
	for i, tx := range out.Transactions {
		resp.Transactions[i] = response.TransactionResponse{
			ID:          tx.ID,
			Type:        string(tx.Type),
			Amount:      tx.Amount,
			Description: tx.Description,
			TaskID:      tx.TaskID,
			CreatedAt:   tx.CreatedAt,
		}
	}
	for i, w := range out.Withdrawals {
		resp.Withdrawals[i] = ToWithdrawalResponse(w)
	}
	return resp
}

func ToWithdrawalResponse(w *domain.Withdrawal) response.WithdrawalResponse {
	return response.WithdrawalResponse{
		ID:        w.ID,
		Amount:    w.Amount,
		Status:    string(w.Status),
		Note:      w.Note,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func ToReferralList(referrals []*domain.Referral) []response.ReferralResponse {
	out := make([]response.ReferralResponse, len(referrals))
	for i, r := range referrals {
		out[i] = response.ReferralResponse{
			ID:         r.ID,
			ReferredID: r.ReferredID,
			PaymentID:  r.PaymentID,
			Level:      r.Level,
			Commission: r.Commission,
			CreatedAt:  r.CreatedAt,
		}
	}
	return out
}

func ToReferralStatsResponse(stats *domain.ReferralStats) response.ReferralStatsResponse {
	resp := response.ReferralStatsResponse{
		TotalCommission: stats.TotalCommission,
		TotalRecords:    stats.TotalRecords,
		DirectReferrals: stats.DirectReferrals,
		ByLevel:         make([]response.LevelStatResponse, len(stats.ByLevel)),
	}
	for i, l := range stats.ByLevel {
		resp.ByLevel[i] = response.LevelStatResponse{Level: l.Level, Count: l.Count, Commission: l.Commission}
	}
	return resp
}

func ToTopReferrers(top []domain.TopReferrer) []response.TopReferrerResponse {
	out := make([]response.TopReferrerResponse, len(top))
	for i, t := range top {
		out[i] = response.TopReferrerResponse{
			ReferrerID:      t.ReferrerID,
			TotalCommission: t.TotalCommission,
			Records:         t.Records,
		}
	}
	return out
}

func ToCreateOrderResponse(out *paymentdto.CreateOrderOutput) response.CreateOrderResponse {
	return response.CreateOrderResponse{
		OrderID:     out.OrderID,
		KeyID:       out.KeyID,
		Amount:      out.Amount,
		AmountMinor: out.AmountMinor,
		Currency:    out.Currency,
		Receipt:     out.Receipt,
		PackageName: out.PackageName,
	}
}

func ToConfirmPaymentResponse(out *paymentdto.ConfirmPaymentOutput) response.ConfirmPaymentResponse {
	return response.ConfirmPaymentResponse{
		Grant:       ToGrantResponse(out.Grant),
		Commissions: ToReferralList(out.Commissions),
	}
}

func ToUserResponse(u *domain.User) response.UserResponse {
	return response.UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Role:          string(u.Role),
		Status:        string(u.Status),
		ReferralCode:  u.ReferralCode,
		ReferrerID:    u.ReferrerID,
		WalletBalance: u.WalletBalance,
		CreatedAt:     u.CreatedAt,
	}
}
