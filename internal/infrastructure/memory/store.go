// Package memory keeps every repository in process memory. It backs the
// "memory" storage mode and the usecase tests.
package memory

import (
	"context"
	"sync"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
)

type txMarker struct{}

type state struct {
	users       map[string]domain.User
	packages    map[string]domain.Package
	grants      map[string]domain.UserPackage
	tasks       map[string]domain.Task
	events      []domain.TaskEvent
	referrals   []domain.Referral
	walletTxs   []domain.WalletTransaction
	withdrawals map[string]domain.Withdrawal
	payments    map[string]domain.Payment
}

func newState() state {
	return state{
		users:       make(map[string]domain.User),
		packages:    make(map[string]domain.Package),
		grants:      make(map[string]domain.UserPackage),
		tasks:       make(map[string]domain.Task),
		withdrawals: make(map[string]domain.Withdrawal),
		payments:    make(map[string]domain.Payment),
	}
}

func (s state) clone() state {
	c := newState()
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.packages {
		c.packages[k] = v
	}
	for k, v := range s.grants {
		c.grants[k] = v
	}
	for k, v := range s.tasks {
		c.tasks[k] = v
	}
	for k, v := range s.withdrawals {
		c.withdrawals[k] = v
	}
	for k, v := range s.payments {
		c.payments[k] = v
	}
	c.events = append([]domain.TaskEvent(nil), s.events...)
	c.referrals = append([]domain.Referral(nil), s.referrals...)
	c.walletTxs = append([]domain.WalletTransaction(nil), s.walletTxs...)
	return c
}

// Store implements every repository port. Transactions are serialized and
// roll back by restoring a snapshot; writes outside a transaction take the
// same lock so a rollback never discards them.
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex
	st   state
}

func NewStore() *Store {
	return &Store{st: newState()}
}

func inTx(ctx context.Context) bool {
	_, ok := ctx.Value(txMarker{}).(bool)
	return ok
}

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if inTx(ctx) {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	snapshot := s.st.clone()
	s.mu.RUnlock()

	defer func() {
		if p := recover(); p != nil {
			s.restore(snapshot)
			panic(p)
		}
		if err != nil {
			s.restore(snapshot)
		}
	}()
	return fn(context.WithValue(ctx, txMarker{}, true))
}

func (s *Store) restore(snapshot state) {
	s.mu.Lock()
	s.st = snapshot
	s.mu.Unlock()
}

func (s *Store) write(ctx context.Context, fn func(st *state) error) error {
	if !inTx(ctx) {
		s.txMu.Lock()
		defer s.txMu.Unlock()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.st)
}

func (s *Store) read(fn func(st *state)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.st)
}

func pageBounds(page, limit, total int) (int, int) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return start, end
}

var (
	_ domain.TxManager             = (*Store)(nil)
	_ domain.UserRepository        = (*Store)(nil)
	_ domain.PackageRepository     = (*Store)(nil)
	_ domain.UserPackageRepository = (*Store)(nil)
	_ domain.TaskRepository        = (*Store)(nil)
	_ domain.TaskEventLogger       = (*Store)(nil)
	_ domain.ReferralRepository    = (*Store)(nil)
	_ domain.WalletRepository      = (*Store)(nil)
	_ domain.WithdrawalRepository  = (*Store)(nil)
	_ domain.PaymentRepository     = (*Store)(nil)
)
