package domain

import "time"

type DistributionOutcome string

const (
	OutcomeSuccess DistributionOutcome = "success"
	OutcomeFailed  DistributionOutcome = "failed"
)

// DistributionEvent is one piece of content delivered for one tenant.
// The row itself is immutable; only ViewCount moves, and only upward.
type DistributionEvent struct {
	ID        string
	ContentID string
	TenantID  string
	ViewCount int64
	Outcome   DistributionOutcome
	CreatedAt time.Time
}

type DistributionRepository interface {
	CreateDistribution(event *DistributionEvent) error
	GetDistributionByID(distributionID string) (*DistributionEvent, error)
	GetDistributionsByTenantID(tenantID string) ([]*DistributionEvent, error)
	GetDistributions() ([]*DistributionEvent, error)
	GetSuccessfulDistributionIDs() ([]string, error)
	AddViews(distributionID string, delta int64) error
}

type DistributionUsecase interface {
	CreateDistribution(event *DistributionEvent) error
	GetDistributionsByTenantID(tenantID string) ([]*DistributionEvent, error)
	GetDistributions() ([]*DistributionEvent, error)
	AddViews(distributionID string, delta int64) error
}
