package setup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-gig-service/internal/config"
	"github.com/LavaJover/shvark-gig-service/internal/domain"
	publisher "github.com/LavaJover/shvark-gig-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-gig-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-gig-service/internal/infrastructure/memory"
	"github.com/LavaJover/shvark-gig-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-gig-service/internal/infrastructure/migrate"
	"github.com/LavaJover/shvark-gig-service/internal/infrastructure/notifier"
	"github.com/LavaJover/shvark-gig-service/internal/infrastructure/payment"
	"github.com/LavaJover/shvark-gig-service/internal/infrastructure/postgres"
	"github.com/LavaJover/shvark-gig-service/internal/infrastructure/postgres/repository"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config       *config.GigConfig
	Logger       *slog.Logger
	DB           *gorm.DB
	Publisher    *publisher.DefaultKafkaPublisher
	Registry     *prometheus.Registry
	Metrics      *metrics.GigMetrics
	Repositories *Repositories
	Notifier     domain.Notifier
	Gateway      domain.PaymentGateway
}

type Repositories struct {
	Tx          domain.TxManager
	Users       domain.UserRepository
	Packages    domain.PackageRepository
	Grants      domain.UserPackageRepository
	Tasks       domain.TaskRepository
	TaskEvents  domain.TaskEventLogger
	Referrals   domain.ReferralRepository
	Wallet      domain.WalletRepository
	Withdrawals domain.WithdrawalRepository
	Payments    domain.PaymentRepository
}

func InitializeDependencies(cfg *config.GigConfig, log *slog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config:   cfg,
		Logger:   log,
		Registry: prometheus.NewRegistry(),
	}
	deps.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	deps.Metrics = metrics.NewGigMetrics(deps.Registry)

	switch cfg.GigDB.Storage {
	case "memory":
		store := memory.NewStore()
		if err := seedStarterPackage(store, cfg.Business.StarterPackageID); err != nil {
			return nil, fmt.Errorf("seed starter package: %w", err)
		}
		deps.Repositories = memoryRepositories(store, log)
	default:
		db := postgres.MustInitDB(cfg)
		if cfg.GigDB.AutoMigrate {
			if err := migrate.RunMigrations(db, cfg.GigDB.MigrationsPath); err != nil {
				return nil, fmt.Errorf("migrations: %w", err)
			}
		}
		deps.DB = db
		deps.Repositories = postgresRepositories(db, log)
	}

	if cfg.KafkaService.Host != "" {
		deps.Publisher = publisher.NewDefaultKafkaPublisher(publisher.KafkaConfig{
			Brokers: []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)},
		})
		deps.Notifier = notifier.NewKafkaNotifier(deps.Publisher, cfg.KafkaService.Topic, log)
	} else {
		log.Warn("kafka host is empty, notifications go to the log only")
		deps.Notifier = notifier.NewLogNotifier(log)
	}

	deps.Gateway = payment.NewHTTPGateway(payment.Config{
		BaseURL:   cfg.PaymentGateway.BaseURL,
		KeyID:     cfg.PaymentGateway.KeyID,
		KeySecret: cfg.PaymentGateway.KeySecret,
	})

	return deps, nil
}

func memoryRepositories(store *memory.Store, log *slog.Logger) *Repositories {
	return &Repositories{
		Tx:          store,
		Users:       store,
		Packages:    store,
		Grants:      store,
		Tasks:       store,
		TaskEvents:  logger.NewSlogTaskEventLogger(store, log),
		Referrals:   store,
		Wallet:      store,
		Withdrawals: store,
		Payments:    store,
	}
}

// seedStarterPackage mirrors migration 000002 for memory storage.
func seedStarterPackage(store *memory.Store, packageID string) error {
	if packageID == "" {
		return nil
	}
	now := time.Now().UTC()
	return store.CreatePackage(context.Background(), &domain.Package{
		ID:           packageID,
		Name:         "Starter",
		Type:         domain.PackageOnline,
		TaskLimit:    3,
		SkipLimit:    1,
		ValidityDays: 7,
		Price:        decimal.Zero,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

func postgresRepositories(db *gorm.DB, log *slog.Logger) *Repositories {
	return &Repositories{
		Tx:          postgres.NewTxManager(db),
		Users:       repository.NewDefaultUserRepository(db),
		Packages:    repository.NewDefaultPackageRepository(db),
		Grants:      repository.NewDefaultUserPackageRepository(db),
		Tasks:       repository.NewDefaultTaskRepository(db),
		TaskEvents:  logger.NewSlogTaskEventLogger(logger.NewPGTaskEventLogger(db), log),
		Referrals:   repository.NewDefaultReferralRepository(db),
		Wallet:      repository.NewDefaultWalletRepository(db),
		Withdrawals: repository.NewDefaultWithdrawalRepository(db),
		Payments:    repository.NewDefaultPaymentRepository(db),
	}
}

// Ready pings the database. Memory storage is always ready.
func (d *Dependencies) Ready(ctx context.Context) error {
	if d.DB == nil {
		return nil
	}
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (d *Dependencies) Close() error {
	var errs []error
	if d.Publisher != nil {
		errs = append(errs, d.Publisher.Close())
	}
	if d.DB != nil {
		if sqlDB, err := d.DB.DB(); err == nil {
			errs = append(errs, sqlDB.Close())
		}
	}
	return errors.Join(errs...)
}
