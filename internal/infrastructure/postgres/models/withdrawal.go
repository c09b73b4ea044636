package models

import "time"

type WithdrawalModel struct {
	ID          string `gorm:"primaryKey"`
	TenantID    string `gorm:"type:uuid;index:idx_withdrawals_tenant"`
	Amount      float64
	Status      string
	RequestedAt time.Time `gorm:"index:idx_withdrawals_requested_at"`
}

func (WithdrawalModel) TableName() string {
	return "withdrawals"
}
