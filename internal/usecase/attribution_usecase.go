package usecase

import (
	"github.com/LavaJover/shvark-revenue-service/internal/domain"
	"github.com/LavaJover/shvark-revenue-service/internal/usecase/attribution"
)

type TenantBalance struct {
	TenantID   string
	TotalViews int64
	Gross      float64
	Net        float64
	Withdrawn  float64
	Available  float64
}

type AttributionUsecase interface {
	GetTenantBalance(tenantID string) (*TenantBalance, error)
	GetRevenueTotals() ([]attribution.TenantRevenue, error)
}

// DefaultAttributionUsecase loads a consistent snapshot and delegates all
// math to the pure engine. Every call recomputes from scratch.
type DefaultAttributionUsecase struct {
	TxManager domain.TxManager
}

func NewDefaultAttributionUsecase(txManager domain.TxManager) *DefaultAttributionUsecase {
	return &DefaultAttributionUsecase{TxManager: txManager}
}

// loadTenantSnapshot reads everything balance math needs for one tenant
// from repositories bound to a single transaction.
func loadTenantSnapshot(r domain.Repositories, tenantID string) (attribution.Snapshot, float64, error) {
	tenant, err := r.Tenants.GetTenantByID(tenantID)
	if err != nil {
		return attribution.Snapshot{}, 0, err
	}
	rate, err := r.Rates.GetRateConfig()
	if err != nil {
		return attribution.Snapshot{}, 0, err
	}
	distributions, err := r.Distributions.GetDistributionsByTenantID(tenantID)
	if err != nil {
		return attribution.Snapshot{}, 0, err
	}
	withdrawn, err := r.Withdrawals.SumWithdrawnByTenantID(tenantID)
	if err != nil {
		return attribution.Snapshot{}, 0, err
	}
	snapshot := attribution.Snapshot{
		Tenants:       []*domain.Tenant{tenant},
		Distributions: distributions,
		Rate:          *rate,
	}
	return snapshot, withdrawn, nil
}

func (uc *DefaultAttributionUsecase) GetTenantBalance(tenantID string) (*TenantBalance, error) {
	var balance *TenantBalance
	err := uc.TxManager.Do(func(r domain.Repositories) error {
		snapshot, withdrawn, err := loadTenantSnapshot(r, tenantID)
		if err != nil {
			return err
		}
		balance = &TenantBalance{
			TenantID:   tenantID,
			TotalViews: attribution.TotalViews(snapshot, tenantID),
			Gross:      attribution.GrossRevenue(snapshot, tenantID),
			Net:        attribution.NetRevenue(snapshot, tenantID),
			Withdrawn:  withdrawn,
			Available:  attribution.AvailableBalance(snapshot, tenantID, withdrawn),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return balance, nil
}

func (uc *DefaultAttributionUsecase) GetRevenueTotals() ([]attribution.TenantRevenue, error) {
	var totals []attribution.TenantRevenue
	err := uc.TxManager.Do(func(r domain.Repositories) error {
		tenants, err := r.Tenants.GetTenants()
		if err != nil {
			return err
		}
		distributions, err := r.Distributions.GetDistributions()
		if err != nil {
			return err
		}
		rate, err := r.Rates.GetRateConfig()
		if err != nil {
			return err
		}
		totals = attribution.Totals(attribution.Snapshot{
			Tenants:       tenants,
			Distributions: distributions,
			Rate:          *rate,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return totals, nil
}
