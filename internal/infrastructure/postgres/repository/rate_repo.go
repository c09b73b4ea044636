package repository

import (
	"errors"
	"time"

	"github.com/LavaJover/shvark-revenue-service/internal/domain"
	"github.com/LavaJover/shvark-revenue-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const rateConfigRowID = 1

// DefaultRateConfigRepository stores the pricing singleton as a single
// row. Defaults seed the row on first read.
type DefaultRateConfigRepository struct {
	DB       *gorm.DB
	Defaults domain.RateConfig
}

func NewDefaultRateConfigRepository(db *gorm.DB, defaults domain.RateConfig) *DefaultRateConfigRepository {
	return &DefaultRateConfigRepository{DB: db, Defaults: defaults}
}

func (r *DefaultRateConfigRepository) GetRateConfig() (*domain.RateConfig, error) {
	var rateModel models.RateConfigModel
	if err := r.DB.Where("id = ?", rateConfigRowID).First(&rateModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &domain.RateConfig{
				PricePerThousandViews: r.Defaults.PricePerThousandViews,
				PlatformFeePercent:    r.Defaults.PlatformFeePercent,
			}, nil
		}
		return nil, err
	}
	return &domain.RateConfig{
		PricePerThousandViews: rateModel.PricePerThousandViews,
		PlatformFeePercent:    rateModel.PlatformFeePercent,
	}, nil
}

func (r *DefaultRateConfigRepository) SetRateConfig(config *domain.RateConfig) error {
	rateModel := models.RateConfigModel{
		ID:                    rateConfigRowID,
		PricePerThousandViews: config.PricePerThousandViews,
		PlatformFeePercent:    config.PlatformFeePercent,
		UpdatedAt:             time.Now(),
	}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&rateModel).Error
}
