package usecase

import (
	"errors"
	"testing"

	"github.com/LavaJover/shvark-revenue-service/internal/domain"
)

func TestAddChannelRejectsUnknownTenant(t *testing.T) {
	uc := NewDefaultChannelUsecase(&fakeChannelRepo{}, &fakeTenantRepo{})

	err := uc.AddChannel(&domain.Channel{TenantID: "missing", ExternalID: "UCabc"})
	if !errors.Is(err, domain.ErrUnknownReference) {
		t.Fatalf("expected ErrUnknownReference, got %v", err)
	}
}

func TestAddChannelInfersPlatform(t *testing.T) {
	tests := []struct {
		name       string
		externalID string
		want       domain.ChannelPlatform
	}{
		{"youtube channel id", "UCabc123def", domain.PlatformYouTube},
		{"tiktok handle", "@somecreator", domain.PlatformTikTok},
		{"bare name", "somecreator", domain.PlatformTikTok},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tenants := &fakeTenantRepo{}
			tenants.CreateTenant(&domain.Tenant{ID: "t1", Role: domain.RoleTenant})
			uc := NewDefaultChannelUsecase(&fakeChannelRepo{}, tenants)

			channel := &domain.Channel{TenantID: "t1", ExternalID: tt.externalID}
			if err := uc.AddChannel(channel); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if channel.Platform != tt.want {
				t.Fatalf("got %q, want %q", channel.Platform, tt.want)
			}
			if channel.ID == "" {
				t.Fatal("expected generated ID")
			}
		})
	}
}

func TestAddChannelKeepsExplicitPlatform(t *testing.T) {
	tenants := &fakeTenantRepo{}
	tenants.CreateTenant(&domain.Tenant{ID: "t1", Role: domain.RoleTenant})
	uc := NewDefaultChannelUsecase(&fakeChannelRepo{}, tenants)

	channel := &domain.Channel{TenantID: "t1", ExternalID: "UCabc", Platform: domain.PlatformTikTok}
	if err := uc.AddChannel(channel); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if channel.Platform != domain.PlatformTikTok {
		t.Fatalf("explicit platform must win, got %q", channel.Platform)
	}
}
