package repository

import (
	"time"

	"github.com/LavaJover/shvark-revenue-service/internal/domain"
	"github.com/LavaJover/shvark-revenue-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultChannelRepository struct {
	DB *gorm.DB
}

func NewDefaultChannelRepository(db *gorm.DB) *DefaultChannelRepository {
	return &DefaultChannelRepository{DB: db}
}

func toChannelDomain(m *models.ChannelModel) *domain.Channel {
	return &domain.Channel{
		ID:          m.ID,
		TenantID:    m.TenantID,
		Platform:    domain.ChannelPlatform(m.Platform),
		ExternalID:  m.ExternalID,
		DisplayName: m.DisplayName,
	}
}

func (r *DefaultChannelRepository) CreateChannel(channel *domain.Channel) error {
	channelModel := models.ChannelModel{
		ID:          channel.ID,
		TenantID:    channel.TenantID,
		Platform:    string(channel.Platform),
		ExternalID:  channel.ExternalID,
		DisplayName: channel.DisplayName,
		CreatedAt:   time.Now(),
	}
	return r.DB.Create(&channelModel).Error
}

func (r *DefaultChannelRepository) GetChannelByID(channelID string) (*domain.Channel, error) {
	var channelModel models.ChannelModel
	if err := r.DB.Where("id = ?", channelID).First(&channelModel).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUnknownReference
		}
		return nil, err
	}
	return toChannelDomain(&channelModel), nil
}

func (r *DefaultChannelRepository) GetChannelsByTenantID(tenantID string) ([]*domain.Channel, error) {
	var channelModels []models.ChannelModel
	if err := r.DB.Where("tenant_id = ?", tenantID).Order("created_at ASC").Find(&channelModels).Error; err != nil {
		return nil, err
	}
	channels := make([]*domain.Channel, len(channelModels))
	for i := range channelModels {
		channels[i] = toChannelDomain(&channelModels[i])
	}
	return channels, nil
}

func (r *DefaultChannelRepository) GetChannels() ([]*domain.Channel, error) {
	var channelModels []models.ChannelModel
	if err := r.DB.Order("created_at ASC").Find(&channelModels).Error; err != nil {
		return nil, err
	}
	channels := make([]*domain.Channel, len(channelModels))
	for i := range channelModels {
		channels[i] = toChannelDomain(&channelModels[i])
	}
	return channels, nil
}
