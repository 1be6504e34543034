package usecase

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
	"github.com/LavaJover/shvark-gig-service/internal/infrastructure/memory"
	"github.com/shopspring/decimal"
)

type sentNotification struct {
	UserID string
	Type   domain.EventType
	Data   map[string]any
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []sentNotification
}

func (n *recordingNotifier) Notify(_ context.Context, userID string, eventType domain.EventType, _ string, data map[string]any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentNotification{UserID: userID, Type: eventType, Data: data})
}

func (n *recordingNotifier) count(eventType domain.EventType) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	c := 0
	for _, s := range n.sent {
		if s.Type == eventType {
			c++
		}
	}
	return c
}

// fakeGateway accepts signatures of the form hex(orderID + "|" + paymentID).
type fakeGateway struct {
	orders int
}

func (g *fakeGateway) CreateOrder(_ context.Context, amountMinor int64, currency, receipt string) (*domain.GatewayOrder, error) {
	g.orders++
	return &domain.GatewayOrder{
		OrderID:  fmt.Sprintf("order_%d", g.orders),
		Amount:   amountMinor,
		Currency: currency,
		Receipt:  receipt,
	}, nil
}

func (g *fakeGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return signature == fakeSignature(orderID, paymentID)
}

func (g *fakeGateway) KeyID() string { return "key_test" }

func fakeSignature(orderID, paymentID string) string {
	return hex.EncodeToString([]byte(orderID + "|" + paymentID))
}

type fixture struct {
	t        *testing.T
	ctx      context.Context
	store    *memory.Store
	notifier *recordingNotifier
	gateway  *fakeGateway
	now      time.Time

	quota     *DefaultQuotaUsecase
	wallet    *DefaultWalletUsecase
	referrals *DefaultReferralUsecase
	packages  *DefaultPackageUsecase
	payments  *DefaultPaymentUsecase
	users     *DefaultUserUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	notifier := &recordingNotifier{}
	gateway := &fakeGateway{}
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	quota := NewDefaultQuotaUsecase(store, store, store, nil)
	quota.now = clock
	wallet := NewDefaultWalletUsecase(store, store, store, store, notifier, nil, decimal.NewFromInt(100))
	wallet.now = clock
	referrals := NewDefaultReferralUsecase(store, store, wallet, store, notifier, nil)
	referrals.now = clock
	packages := NewDefaultPackageUsecase(store, store, store)
	packages.now = clock
	payments := NewDefaultPaymentUsecase(store, store, gateway, quota, referrals, store, notifier, nil, "INR")
	payments.now = clock
	users, err := NewDefaultUserUsecase(store, quota, store, "")
	if err != nil {
		t.Fatal(err)
	}
	users.now = clock

	return &fixture{
		t:         t,
		ctx:       context.Background(),
		store:     store,
		notifier:  notifier,
		gateway:   gateway,
		now:       now,
		quota:     quota,
		wallet:    wallet,
		referrals: referrals,
		packages:  packages,
		payments:  payments,
		users:     users,
	}
}

func (f *fixture) addPackage(id string, taskLimit, skipLimit int, price string) *domain.Package {
	f.t.Helper()
	pkg := &domain.Package{
		ID:           id,
		Name:         "Package " + id,
		Type:         domain.PackageOnline,
		TaskLimit:    taskLimit,
		SkipLimit:    skipLimit,
		ValidityDays: 30,
		Price:        decimal.RequireFromString(price),
		IsActive:     true,
		CreatedAt:    f.now,
	}
	if err := f.store.CreatePackage(f.ctx, pkg); err != nil {
		f.t.Fatal(err)
	}
	return pkg
}

func (f *fixture) addUser(id string, referrerID *string) *domain.User {
	f.t.Helper()
	user := &domain.User{
		ID:            id,
		Name:          id,
		Email:         id + "@example.com",
		Role:          domain.RoleVendor,
		Status:        domain.UserActive,
		ReferralCode:  strings.ToUpper("REF" + id),
		ReferrerID:    referrerID,
		WalletBalance: decimal.Zero,
		CreatedAt:     f.now,
	}
	if err := f.store.CreateUser(f.ctx, user); err != nil {
		f.t.Fatal(err)
	}
	return user
}

// addChain creates users ids[0] <- ids[1] <- ... where each user was
// referred by the previous one.
func (f *fixture) addChain(ids ...string) {
	f.t.Helper()
	var prev *string
	for _, id := range ids {
		f.addUser(id, prev)
		id := id
		prev = &id
	}
}

func (f *fixture) grant(userID, packageID string, tasksUsed, skipsUsed int) *domain.UserPackage {
	f.t.Helper()
	g, err := f.quota.Grant(f.ctx, userID, packageID)
	if err != nil {
		f.t.Fatal(err)
	}
	for i := 0; i < tasksUsed; i++ {
		if err := f.quota.Consume(f.ctx, userID, domain.QuotaTask); err != nil {
			f.t.Fatal(err)
		}
	}
	for i := 0; i < skipsUsed; i++ {
		if err := f.quota.Consume(f.ctx, userID, domain.QuotaSkip); err != nil {
			f.t.Fatal(err)
		}
	}
	return g
}

func (f *fixture) balance(userID string) decimal.Decimal {
	f.t.Helper()
	u, err := f.store.GetUserByID(f.ctx, userID)
	if err != nil {
		f.t.Fatal(err)
	}
	return u.WalletBalance
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
