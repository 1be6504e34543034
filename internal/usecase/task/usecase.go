package task

import (
	"context"
	"time"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
	"github.com/LavaJover/shvark-gig-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-gig-service/internal/usecase"
	taskdto "github.com/LavaJover/shvark-gig-service/internal/usecase/dto/task"
)

type TaskUsecase interface {
	CreateTask(ctx context.Context, input *taskdto.CreateTaskInput) (*domain.Task, error)
	DeleteTask(ctx context.Context, taskID, adminID string) error

	StartTask(ctx context.Context, taskID, vendorID string) (*domain.Task, error)
	SkipTask(ctx context.Context, taskID, vendorID string) (domain.QuotaKind, error)
	SubmitTask(ctx context.Context, input *taskdto.SubmitTaskInput) (*domain.Task, error)
	ReviewTask(ctx context.Context, input *taskdto.ReviewTaskInput) error
	AssignTask(ctx context.Context, taskID, vendorID, adminID string) error
	SetTaskStatus(ctx context.Context, taskID string, status domain.TaskStatus, adminID string) error
	BulkAction(ctx context.Context, input *taskdto.BulkActionInput) (*domain.BulkResult, error)
	MarkMissedTasks(ctx context.Context) (int, error)

	GetTask(ctx context.Context, taskID string) (*domain.Task, error)
	ListAvailableTasks(ctx context.Context, vendorID string, page, limit int) ([]*domain.Task, int64, error)
	ListVendorTasks(ctx context.Context, vendorID string, statuses []domain.TaskStatus, page, limit int) ([]*domain.Task, int64, error)
	ListTasks(ctx context.Context, input *taskdto.ListTasksInput) ([]*domain.Task, int64, error)
}

type DefaultTaskUsecase struct {
	TaskRepo    domain.TaskRepository
	Quota       usecase.QuotaUsecase
	Wallet      usecase.WalletUsecase
	Tx          domain.TxManager
	Notifier    domain.Notifier
	EventLogger domain.TaskEventLogger
	Metrics     *metrics.GigMetrics

	now func() time.Time
}

func NewDefaultTaskUsecase(
	taskRepo domain.TaskRepository,
	quota usecase.QuotaUsecase,
	wallet usecase.WalletUsecase,
	tx domain.TxManager,
	notifier domain.Notifier,
	eventLogger domain.TaskEventLogger,
	gigMetrics *metrics.GigMetrics,
) *DefaultTaskUsecase {
	return &DefaultTaskUsecase{
		TaskRepo:    taskRepo,
		Quota:       quota,
		Wallet:      wallet,
		Tx:          tx,
		Notifier:    notifier,
		EventLogger: eventLogger,
		Metrics:     gigMetrics,
		now:         time.Now,
	}
}
