package task

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
	"github.com/LavaJover/shvark-gig-service/internal/infrastructure/memory"
	"github.com/LavaJover/shvark-gig-service/internal/usecase"
	taskdto "github.com/LavaJover/shvark-gig-service/internal/usecase/dto/task"
	"github.com/shopspring/decimal"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []domain.EventType
}

func (n *recordingNotifier) Notify(_ context.Context, _ string, eventType domain.EventType, _ string, _ map[string]any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, eventType)
}

func (n *recordingNotifier) count(eventType domain.EventType) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	c := 0
	for _, e := range n.events {
		if e == eventType {
			c++
		}
	}
	return c
}

type taskFixture struct {
	t        *testing.T
	ctx      context.Context
	store    *memory.Store
	notifier *recordingNotifier
	quota    usecase.QuotaUsecase
	wallet   usecase.WalletUsecase
	uc       *DefaultTaskUsecase
	now      time.Time
}

func newTaskFixture(t *testing.T) *taskFixture {
	t.Helper()
	store := memory.NewStore()
	notifier := &recordingNotifier{}
	quota := usecase.NewDefaultQuotaUsecase(store, store, store, nil)
	wallet := usecase.NewDefaultWalletUsecase(store, store, store, store, notifier, nil, decimal.NewFromInt(100))
	uc := NewDefaultTaskUsecase(store, quota, wallet, store, notifier, store, nil)
	return &taskFixture{
		t:        t,
		ctx:      context.Background(),
		store:    store,
		notifier: notifier,
		quota:    quota,
		wallet:   wallet,
		uc:       uc,
		now:      time.Now(),
	}
}

func (f *taskFixture) vendor(id string, taskLimit, skipLimit, tasksUsed, skipsUsed int) {
	f.t.Helper()
	err := f.store.CreateUser(f.ctx, &domain.User{
		ID:            id,
		Name:          id,
		Email:         id + "@example.com",
		Role:          domain.RoleVendor,
		Status:        domain.UserActive,
		ReferralCode:  "CODE" + id,
		WalletBalance: decimal.Zero,
		CreatedAt:     f.now,
	})
	if err != nil {
		f.t.Fatal(err)
	}
	if taskLimit == 0 {
		return
	}
	pkgID := "pkg-" + id
	err = f.store.CreatePackage(f.ctx, &domain.Package{
		ID:           pkgID,
		Name:         "Plan " + id,
		Type:         domain.PackageOnline,
		TaskLimit:    taskLimit,
		SkipLimit:    skipLimit,
		ValidityDays: 30,
		Price:        decimal.NewFromInt(500),
		IsActive:     true,
	})
	if err != nil {
		f.t.Fatal(err)
	}
	if _, err := f.quota.Grant(f.ctx, id, pkgID); err != nil {
		f.t.Fatal(err)
	}
	for i := 0; i < tasksUsed; i++ {
		if err := f.quota.Consume(f.ctx, id, domain.QuotaTask); err != nil {
			f.t.Fatal(err)
		}
	}
	for i := 0; i < skipsUsed; i++ {
		if err := f.quota.Consume(f.ctx, id, domain.QuotaSkip); err != nil {
			f.t.Fatal(err)
		}
	}
}

func (f *taskFixture) task(reward string, assignee string) *domain.Task {
	f.t.Helper()
	task, err := f.uc.CreateTask(f.ctx, &taskdto.CreateTaskInput{
		Title:          "Post a review",
		Description:    "Review the product and share the link",
		TimeLimitHours: 24,
		Reward:         decimal.RequireFromString(reward),
		AssignedTo:     assignee,
		CreatedBy:      "admin",
	})
	if err != nil {
		f.t.Fatal(err)
	}
	return task
}

func (f *taskFixture) reload(taskID string) *domain.Task {
	f.t.Helper()
	task, err := f.store.GetTaskByID(f.ctx, taskID)
	if err != nil {
		f.t.Fatal(err)
	}
	return task
}

func (f *taskFixture) grant(userID string) *domain.UserPackage {
	f.t.Helper()
	g, err := f.quota.GetActiveGrant(f.ctx, userID)
	if err != nil {
		f.t.Fatal(err)
	}
	return g
}

// inReview drives a fresh task to pending_review for vendorID.
func (f *taskFixture) inReview(vendorID, reward string) *domain.Task {
	f.t.Helper()
	task := f.task(reward, "")
	if _, err := f.uc.StartTask(f.ctx, task.ID, vendorID); err != nil {
		f.t.Fatal(err)
	}
	_, err := f.uc.SubmitTask(f.ctx, &taskdto.SubmitTaskInput{
		TaskID:        task.ID,
		VendorID:      vendorID,
		SubmissionURL: "https://example.com/proof/" + task.ID,
	})
	if err != nil {
		f.t.Fatal(err)
	}
	return task
}
