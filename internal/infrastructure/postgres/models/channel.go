package models

import "time"

type ChannelModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	TenantID    string `gorm:"type:uuid;index:idx_channels_tenant"`
	Platform    string
	ExternalID  string
	DisplayName string
	CreatedAt   time.Time
}

func (ChannelModel) TableName() string {
	return "channels"
}
