package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
	"github.com/shopspring/decimal"
)

func seedUser(t *testing.T, s *Store, id string, balance int64) {
	t.Helper()
	err := s.CreateUser(context.Background(), &domain.User{
		ID:            id,
		Email:         id + "@example.com",
		ReferralCode:  "CODE" + id,
		Role:          domain.RoleVendor,
		Status:        domain.UserActive,
		WalletBalance: decimal.NewFromInt(balance),
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestWithinTxRollsBackOnError(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	seedUser(t, s, "u1", 100)

	boom := errors.New("boom")
	err := s.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.IncreaseBalance(ctx, "u1", decimal.NewFromInt(50)); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
	u, _ := s.GetUserByID(ctx, "u1")
	if !u.WalletBalance.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("balance = %s, want 100", u.WalletBalance)
	}
}

func TestWithinTxNestedJoinsOuter(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	seedUser(t, s, "u1", 0)

	err := s.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.WithinTx(ctx, func(ctx context.Context) error {
			return s.IncreaseBalance(ctx, "u1", decimal.NewFromInt(10))
		}); err != nil {
			return err
		}
		return errors.New("outer fails")
	})
	if err == nil {
		t.Fatal("expected outer error")
	}
	u, _ := s.GetUserByID(ctx, "u1")
	if !u.WalletBalance.IsZero() {
		t.Fatalf("inner write survived outer rollback: %s", u.WalletBalance)
	}
}

func TestDecreaseBalanceIsConditional(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	seedUser(t, s, "u1", 100)

	ok, err := s.DecreaseBalance(ctx, "u1", decimal.NewFromInt(150))
	if err != nil || ok {
		t.Fatalf("ok=%v err=%v, want refused", ok, err)
	}
	ok, err = s.DecreaseBalance(ctx, "u1", decimal.NewFromInt(100))
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v, want applied", ok, err)
	}
}

func TestTransitionTaskGuard(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	vendor := "v1"
	other := "v2"
	if err := s.CreateTask(ctx, &domain.Task{ID: "t1", Status: domain.TaskAvailable, AssignedTo: &other}); err != nil {
		t.Fatal(err)
	}

	guard := domain.TaskGuard{
		Statuses:        []domain.TaskStatus{domain.TaskAvailable},
		Assignee:        vendor,
		AllowUnassigned: true,
	}
	ok, _ := s.TransitionTask(ctx, "t1", guard, domain.TaskChange{Status: domain.TaskInProgress, AssignedTo: &vendor})
	if ok {
		t.Fatal("task offered to another vendor must not match")
	}

	guard.Assignee = other
	ok, _ = s.TransitionTask(ctx, "t1", guard, domain.TaskChange{Status: domain.TaskInProgress, AssignedTo: &other})
	if !ok {
		t.Fatal("offered vendor should match")
	}
	task, _ := s.GetTaskByID(ctx, "t1")
	if task.Status != domain.TaskInProgress {
		t.Fatalf("status = %s", task.Status)
	}
}

func TestConsumeQuotaStopsAtLimit(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	now := time.Now()
	if err := s.CreatePackage(ctx, &domain.Package{ID: "p1", TaskLimit: 2, SkipLimit: 0, IsActive: true}); err != nil {
		t.Fatal(err)
	}
	if err := s.CreateGrant(ctx, &domain.UserPackage{ID: "g1", UserID: "u1", PackageID: "p1", ExpiresAt: now.Add(time.Hour), IsActive: true}); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2; i++ {
		if ok, _ := s.ConsumeQuota(ctx, "u1", domain.QuotaTask, now); !ok {
			t.Fatalf("consume %d refused", i)
		}
	}
	if ok, _ := s.ConsumeQuota(ctx, "u1", domain.QuotaTask, now); ok {
		t.Fatal("consume beyond limit accepted")
	}
	if ok, _ := s.ConsumeQuota(ctx, "u1", domain.QuotaSkip, now); ok {
		t.Fatal("skip with zero limit accepted")
	}
	if ok, _ := s.ConsumeQuota(ctx, "u1", domain.QuotaTask, now.Add(2*time.Hour)); ok {
		t.Fatal("expired grant consumed")
	}
}

func TestDeletePackageKeepsRowForGrants(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	now := time.Now()
	_ = s.CreatePackage(ctx, &domain.Package{ID: "p1", TaskLimit: 4, IsActive: true})
	_ = s.CreateGrant(ctx, &domain.UserPackage{ID: "g1", UserID: "u1", PackageID: "p1", ExpiresAt: now.Add(-time.Hour), IsActive: true})

	if err := s.DeletePackage(ctx, "p1", now); err != nil {
		t.Fatal(err)
	}
	if err := s.DeletePackage(ctx, "p1", now); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second delete: err = %v, want ErrNotFound", err)
	}
	if err := s.DeletePackage(ctx, "missing", now); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	all, _ := s.ListPackages(ctx)
	if len(all) != 0 {
		t.Fatalf("deleted package still listed: %d", len(all))
	}
	grants, _ := s.ListGrantsByUser(ctx, "u1")
	if len(grants) != 1 || grants[0].TaskLimit != 4 {
		t.Fatalf("grant lost its package limits: %+v", grants)
	}
}

func TestCreateGrantRefusesSecondActive(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	now := time.Now()
	_ = s.CreatePackage(ctx, &domain.Package{ID: "p1", TaskLimit: 5, IsActive: true})
	if err := s.CreateGrant(ctx, &domain.UserPackage{ID: "g1", UserID: "u1", PackageID: "p1", ExpiresAt: now.Add(time.Hour), IsActive: true}); err != nil {
		t.Fatal(err)
	}

	err := s.CreateGrant(ctx, &domain.UserPackage{ID: "g2", UserID: "u1", PackageID: "p1", ExpiresAt: now.Add(time.Hour), IsActive: true})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	if err := s.CreateGrant(ctx, &domain.UserPackage{ID: "g3", UserID: "u1", PackageID: "p1", ExpiresAt: now.Add(time.Hour)}); err != nil {
		t.Fatalf("inactive grant refused: %v", err)
	}

	if ok, _ := s.ConsumeQuota(ctx, "u1", domain.QuotaTask, now); !ok {
		t.Fatal("consume refused")
	}
	grants, _ := s.ListGrantsByUser(ctx, "u1")
	used := 0
	for _, g := range grants {
		used += g.TasksUsed
	}
	if used != 1 {
		t.Fatalf("one consume spent %d units", used)
	}
}
