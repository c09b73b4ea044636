package postgres

import (
	"log"

	"github.com/LavaJover/shvark-revenue-service/internal/config"
	"github.com/LavaJover/shvark-revenue-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.RevenueConfig) *gorm.DB {
	dsn := cfg.RevenueDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.TenantModel{},
		&models.ChannelModel{},
		&models.DistributionModel{},
		&models.WithdrawalModel{},
		&models.RateConfigModel{},
	)

	return db
}
