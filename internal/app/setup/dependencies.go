package setup

import (
	"fmt"

	"github.com/LavaJover/shvark-revenue-service/internal/config"
	"github.com/LavaJover/shvark-revenue-service/internal/domain"
	"github.com/LavaJover/shvark-revenue-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-revenue-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-revenue-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-revenue-service/internal/infrastructure/migrate"
	"github.com/LavaJover/shvark-revenue-service/internal/infrastructure/postgres"
	"github.com/LavaJover/shvark-revenue-service/internal/infrastructure/postgres/repository"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config       *config.RevenueConfig
	DB           *gorm.DB
	Publisher    *publisher.KafkaPublisher
	EventLog     *logger.PGLedgerEventLogger
	Metrics      *metrics.RevenueMetrics
	TxManager    domain.TxManager
	Repositories domain.Repositories
}

func InitializeDependencies() (*Dependencies, error) {
	cfg := config.MustLoad()

	db := postgres.MustInitDB(cfg)

	if cfg.RevenueDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.RevenueDB.MigrationsPath); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}
	}

	var kafkaPublisher *publisher.KafkaPublisher
	if cfg.KafkaService.Enabled {
		kafkaPublisher = publisher.NewKafkaPublisher(
			[]string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)},
		)
	}

	if err := db.AutoMigrate(
		&logger.WithdrawalRequestedEvent{},
		&logger.ImportCompletedEvent{},
	); err != nil {
		return nil, fmt.Errorf("audit tables: %w", err)
	}

	rateDefaults := domain.RateConfig{
		PricePerThousandViews: cfg.Ledger.PricePerThousandViews,
		PlatformFeePercent:    cfg.Ledger.PlatformFeePercent,
	}

	return &Dependencies{
		Config:       cfg,
		DB:           db,
		Publisher:    kafkaPublisher,
		EventLog:     logger.NewPGLedgerEventLogger(db),
		Metrics:      metrics.NewRevenueMetrics(),
		TxManager:    repository.NewGormTxManager(db, rateDefaults),
		Repositories: repository.NewRepositories(db, rateDefaults),
	}, nil
}
