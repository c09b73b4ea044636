package models

import "time"

type DistributionModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	ContentID string `gorm:"index:idx_distributions_content"`
	TenantID  string `gorm:"type:uuid;index:idx_distributions_tenant"`
	ViewCount int64
	Outcome   string `gorm:"index:idx_distributions_outcome"`
	CreatedAt time.Time
}

func (DistributionModel) TableName() string {
	return "distributions"
}
