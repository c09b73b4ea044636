package models

import "time"

// RateConfigModel is a single-row table; ID is always 1.
type RateConfigModel struct {
	ID                    int `gorm:"primaryKey"`
	PricePerThousandViews float64
	PlatformFeePercent    float64
	UpdatedAt             time.Time
}

func (RateConfigModel) TableName() string {
	return "rate_config"
}
