package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
	"github.com/shopspring/decimal"
)

func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	return s.write(ctx, func(st *state) error {
		if _, ok := st.users[user.ID]; ok {
			return fmt.Errorf("%w: user %s already exists", domain.ErrValidation, user.ID)
		}
		for _, u := range st.users {
			if u.Email == user.Email {
				return fmt.Errorf("%w: email already registered", domain.ErrValidation)
			}
			if u.ReferralCode == user.ReferralCode {
				return fmt.Errorf("%w: referral code already taken", domain.ErrValidation)
			}
		}
		st.users[user.ID] = *user
		return nil
	})
}

func (s *Store) GetUserByID(_ context.Context, userID string) (*domain.User, error) {
	var (
		user domain.User
		ok   bool
	)
	s.read(func(st *state) { user, ok = st.users[userID] })
	if !ok {
		return nil, fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}
	return &user, nil
}

func (s *Store) GetUserByReferralCode(_ context.Context, code string) (*domain.User, error) {
	var found *domain.User
	s.read(func(st *state) {
		for _, u := range st.users {
			if u.ReferralCode == code {
				u := u
				found = &u
				return
			}
		}
	})
	if found == nil {
		return nil, fmt.Errorf("referral code: %w", domain.ErrNotFound)
	}
	return found, nil
}

func (s *Store) CountDirectReferrals(_ context.Context, userID string) (int64, error) {
	var n int64
	s.read(func(st *state) {
		for _, u := range st.users {
			if u.ReferrerID != nil && *u.ReferrerID == userID {
				n++
			}
		}
	})
	return n, nil
}

func (s *Store) IncreaseBalance(ctx context.Context, userID string, amount decimal.Decimal) error {
	return s.write(ctx, func(st *state) error {
		u, ok := st.users[userID]
		if !ok {
			return fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
		}
		u.WalletBalance = u.WalletBalance.Add(amount)
		u.UpdatedAt = time.Now()
		st.users[userID] = u
		return nil
	})
}

func (s *Store) DecreaseBalance(ctx context.Context, userID string, amount decimal.Decimal) (bool, error) {
	var ok bool
	err := s.write(ctx, func(st *state) error {
		u, found := st.users[userID]
		if !found || u.WalletBalance.LessThan(amount) {
			return nil
		}
		u.WalletBalance = u.WalletBalance.Sub(amount)
		u.UpdatedAt = time.Now()
		st.users[userID] = u
		ok = true
		return nil
	})
	return ok, err
}

// SetUserStatus is used by operators and tests to block an account.
func (s *Store) SetUserStatus(ctx context.Context, userID string, status domain.UserStatus) error {
	return s.write(ctx, func(st *state) error {
		u, ok := st.users[userID]
		if !ok {
			return fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
		}
		u.Status = status
		st.users[userID] = u
		return nil
	})
}
