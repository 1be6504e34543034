package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
	"github.com/shopspring/decimal"
)

func (s *Store) CreateReferral(ctx context.Context, referral *domain.Referral) error {
	return s.write(ctx, func(st *state) error {
		for _, r := range st.referrals {
			if r.PaymentID != "" && r.PaymentID == referral.PaymentID && r.Level == referral.Level {
				return fmt.Errorf("%w: level %d commission for payment %s already recorded", domain.ErrValidation, r.Level, r.PaymentID)
			}
		}
		st.referrals = append(st.referrals, *referral)
		return nil
	})
}

func (s *Store) ListReferralsByReferrer(_ context.Context, referrerID string) ([]*domain.Referral, error) {
	out := s.filterReferrals(func(r domain.Referral) bool { return r.ReferrerID == referrerID })
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) ListReferralsByPayment(_ context.Context, paymentID string) ([]*domain.Referral, error) {
	out := s.filterReferrals(func(r domain.Referral) bool { return r.PaymentID == paymentID })
	sort.SliceStable(out, func(i, j int) bool { return out[i].Level < out[j].Level })
	return out, nil
}

func (s *Store) filterReferrals(keep func(domain.Referral) bool) []*domain.Referral {
	var out []*domain.Referral
	s.read(func(st *state) {
		for _, r := range st.referrals {
			if keep(r) {
				r := r
				out = append(out, &r)
			}
		}
	})
	return out
}

func (s *Store) StatsByLevel(_ context.Context, referrerID string) ([]domain.LevelStat, error) {
	byLevel := make(map[int]*domain.LevelStat)
	s.read(func(st *state) {
		for _, r := range st.referrals {
			if r.ReferrerID != referrerID {
				continue
			}
			ls, ok := byLevel[r.Level]
			if !ok {
				ls = &domain.LevelStat{Level: r.Level, Commission: decimal.Zero}
				byLevel[r.Level] = ls
			}
			ls.Count++
			ls.Commission = ls.Commission.Add(r.Commission)
		}
	})
	out := make([]domain.LevelStat, 0, len(byLevel))
	for _, ls := range byLevel {
		out = append(out, *ls)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Level < out[j].Level })
	return out, nil
}

func (s *Store) TopReferrers(_ context.Context, limit int) ([]domain.TopReferrer, error) {
	totals := make(map[string]*domain.TopReferrer)
	s.read(func(st *state) {
		for _, r := range st.referrals {
			t, ok := totals[r.ReferrerID]
			if !ok {
				t = &domain.TopReferrer{ReferrerID: r.ReferrerID, TotalCommission: decimal.Zero}
				totals[r.ReferrerID] = t
			}
			t.Records++
			t.TotalCommission = t.TotalCommission.Add(r.Commission)
		}
	})
	out := make([]domain.TopReferrer, 0, len(totals))
	for _, t := range totals {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].TotalCommission.Equal(out[j].TotalCommission) {
			return out[i].TotalCommission.GreaterThan(out[j].TotalCommission)
		}
		return out[i].ReferrerID < out[j].ReferrerID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) CreateTransaction(ctx context.Context, tx *domain.WalletTransaction) error {
	return s.write(ctx, func(st *state) error {
		st.walletTxs = append(st.walletTxs, *tx)
		return nil
	})
}

func (s *Store) ListTransactions(_ context.Context, userID string, limit int) ([]*domain.WalletTransaction, error) {
	var out []*domain.WalletTransaction
	s.read(func(st *state) {
		for i := len(st.walletTxs) - 1; i >= 0; i-- {
			tx := st.walletTxs[i]
			if tx.UserID != userID {
				continue
			}
			out = append(out, &tx)
			if limit > 0 && len(out) == limit {
				return
			}
		}
	})
	return out, nil
}

func (s *Store) SumTransactions(_ context.Context, userID string, txType domain.TransactionType) (decimal.Decimal, error) {
	sum := decimal.Zero
	s.read(func(st *state) {
		for _, tx := range st.walletTxs {
			if tx.UserID == userID && tx.Type == txType {
				sum = sum.Add(tx.Amount)
			}
		}
	})
	return sum, nil
}

func (s *Store) CreateWithdrawal(ctx context.Context, w *domain.Withdrawal) error {
	return s.write(ctx, func(st *state) error {
		st.withdrawals[w.ID] = *w
		return nil
	})
}

func (s *Store) GetWithdrawalByID(_ context.Context, withdrawalID string) (*domain.Withdrawal, error) {
	var (
		w  domain.Withdrawal
		ok bool
	)
	s.read(func(st *state) { w, ok = st.withdrawals[withdrawalID] })
	if !ok {
		return nil, fmt.Errorf("withdrawal %s: %w", withdrawalID, domain.ErrNotFound)
	}
	return &w, nil
}

func (s *Store) UpdateWithdrawalStatus(ctx context.Context, withdrawalID string, from, to domain.WithdrawalStatus, note string) (bool, error) {
	var ok bool
	err := s.write(ctx, func(st *state) error {
		w, found := st.withdrawals[withdrawalID]
		if !found || w.Status != from {
			return nil
		}
		w.Status = to
		w.Note = note
		w.UpdatedAt = time.Now()
		st.withdrawals[withdrawalID] = w
		ok = true
		return nil
	})
	return ok, err
}

func (s *Store) ListWithdrawalsByUser(_ context.Context, userID string) ([]*domain.Withdrawal, error) {
	var out []*domain.Withdrawal
	s.read(func(st *state) {
		for _, w := range st.withdrawals {
			if w.UserID == userID {
				w := w
				out = append(out, &w)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) CreatePayment(ctx context.Context, payment *domain.Payment) error {
	return s.write(ctx, func(st *state) error {
		if _, ok := st.payments[payment.OrderID]; ok {
			return fmt.Errorf("%w: order %s already recorded", domain.ErrValidation, payment.OrderID)
		}
		st.payments[payment.OrderID] = *payment
		return nil
	})
}

func (s *Store) GetPaymentByOrderID(_ context.Context, orderID string) (*domain.Payment, error) {
	var (
		p  domain.Payment
		ok bool
	)
	s.read(func(st *state) { p, ok = st.payments[orderID] })
	if !ok {
		return nil, fmt.Errorf("payment order %s: %w", orderID, domain.ErrNotFound)
	}
	return &p, nil
}

func (s *Store) MarkPaid(ctx context.Context, orderID, gatewayPaymentID string, paidAt time.Time) (bool, error) {
	var ok bool
	err := s.write(ctx, func(st *state) error {
		p, found := st.payments[orderID]
		if !found || p.Status != domain.PaymentPending {
			return nil
		}
		p.Status = domain.PaymentPaid
		p.GatewayPaymentID = gatewayPaymentID
		p.PaidAt = &paidAt
		p.UpdatedAt = paidAt
		st.payments[orderID] = p
		ok = true
		return nil
	})
	return ok, err
}
