package usecase

import (
	"errors"

	"github.com/LavaJover/shvark-revenue-service/internal/domain"
	"github.com/google/uuid"
)

type DefaultChannelUsecase struct {
	ChannelRepo domain.ChannelRepository
	TenantRepo  domain.TenantRepository
}

func NewDefaultChannelUsecase(channelRepo domain.ChannelRepository, tenantRepo domain.TenantRepository) *DefaultChannelUsecase {
	return &DefaultChannelUsecase{
		ChannelRepo: channelRepo,
		TenantRepo:  tenantRepo,
	}
}

// AddChannel binds a platform channel to a tenant. Duplicate
// platform+identifier pairs are tolerated; only the tenant reference is
// checked.
func (uc *DefaultChannelUsecase) AddChannel(channel *domain.Channel) error {
	if _, err := uc.TenantRepo.GetTenantByID(channel.TenantID); err != nil {
		if errors.Is(err, domain.ErrTenantNotFound) {
			return domain.ErrUnknownReference
		}
		return err
	}
	if channel.ID == "" {
		channel.ID = uuid.New().String()
	}
	if channel.Platform == "" {
		channel.Platform = domain.PlatformFromExternalID(channel.ExternalID)
	}
	return uc.ChannelRepo.CreateChannel(channel)
}

func (uc *DefaultChannelUsecase) GetChannelsByTenantID(tenantID string) ([]*domain.Channel, error) {
	return uc.ChannelRepo.GetChannelsByTenantID(tenantID)
}

func (uc *DefaultChannelUsecase) GetChannels() ([]*domain.Channel, error) {
	return uc.ChannelRepo.GetChannels()
}
