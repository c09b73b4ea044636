package models

import "time"

type TenantModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	DisplayName string `gorm:"index:idx_tenants_display_name"`
	Secret      string
	Role        string `gorm:"index:idx_tenants_role"`
	SplitRatio  float64
	CreatedAt   time.Time
}

func (TenantModel) TableName() string {
	return "tenants"
}
