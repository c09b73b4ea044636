package domain

import "strings"

type ChannelPlatform string

const (
	PlatformYouTube ChannelPlatform = "youtube"
	PlatformTikTok  ChannelPlatform = "tiktok"
)

type Channel struct {
	ID          string
	TenantID    string
	Platform    ChannelPlatform
	ExternalID  string
	DisplayName string
}

// PlatformFromExternalID guesses the platform from the identifier shape.
// YouTube channel ids carry a "UC" prefix; everything else is treated as a
// TikTok handle. Legacy behavior kept from the batch import format, which
// has no platform column.
func PlatformFromExternalID(externalID string) ChannelPlatform {
	if strings.HasPrefix(externalID, "UC") {
		return PlatformYouTube
	}
	return PlatformTikTok
}

type ChannelRepository interface {
	CreateChannel(channel *Channel) error
	GetChannelByID(channelID string) (*Channel, error)
	GetChannelsByTenantID(tenantID string) ([]*Channel, error)
	GetChannels() ([]*Channel, error)
}

type ChannelUsecase interface {
	AddChannel(channel *Channel) error
	GetChannelsByTenantID(tenantID string) ([]*Channel, error)
	GetChannels() ([]*Channel, error)
}
