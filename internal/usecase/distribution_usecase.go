package usecase

import (
	"time"

	"github.com/LavaJover/shvark-revenue-service/internal/domain"
	"github.com/google/uuid"
)

type DefaultDistributionUsecase struct {
	DistributionRepo domain.DistributionRepository
	TenantRepo       domain.TenantRepository
}

func NewDefaultDistributionUsecase(distributionRepo domain.DistributionRepository, tenantRepo domain.TenantRepository) *DefaultDistributionUsecase {
	return &DefaultDistributionUsecase{
		DistributionRepo: distributionRepo,
		TenantRepo:       tenantRepo,
	}
}

func (uc *DefaultDistributionUsecase) CreateDistribution(event *domain.DistributionEvent) error {
	if _, err := uc.TenantRepo.GetTenantByID(event.TenantID); err != nil {
		return err
	}
	if event.ViewCount < 0 {
		return domain.ErrNegativeViewDelta
	}
	if event.Outcome == "" {
		event.Outcome = domain.OutcomeSuccess
	}
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	event.CreatedAt = time.Now()
	return uc.DistributionRepo.CreateDistribution(event)
}

func (uc *DefaultDistributionUsecase) GetDistributionsByTenantID(tenantID string) ([]*domain.DistributionEvent, error) {
	return uc.DistributionRepo.GetDistributionsByTenantID(tenantID)
}

func (uc *DefaultDistributionUsecase) GetDistributions() ([]*domain.DistributionEvent, error) {
	return uc.DistributionRepo.GetDistributions()
}

// AddViews is the only mutation a distribution ever sees. Counters move
// strictly upward; a negative delta is rejected before any write.
func (uc *DefaultDistributionUsecase) AddViews(distributionID string, delta int64) error {
	if delta < 0 {
		return domain.ErrNegativeViewDelta
	}
	if delta == 0 {
		return nil
	}
	return uc.DistributionRepo.AddViews(distributionID, delta)
}
