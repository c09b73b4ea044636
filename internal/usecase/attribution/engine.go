package attribution

import "github.com/LavaJover/shvark-revenue-service/internal/domain"

// Snapshot is a point-in-time view of the registries and ledger. The
// engine is a pure projection over it: revenue is never stored anywhere,
// every figure below is recomputed from the snapshot on each call, which
// is also what makes rate edits retroactive for free.
type Snapshot struct {
	Tenants       []*domain.Tenant
	Distributions []*domain.DistributionEvent
	Rate          domain.RateConfig
}

// TenantRevenue is one aggregated line of the attribution output.
type TenantRevenue struct {
	TenantID    string
	DisplayName string
	SplitRatio  float64
	TotalViews  int64
	Gross       float64
	Net         float64
}

func (s Snapshot) tenantByID(tenantID string) *domain.Tenant {
	for _, t := range s.Tenants {
		if t.ID == tenantID {
			return t
		}
	}
	return nil
}

// TotalViews sums view counters over the tenant's successful
// distributions. Failed distributions never earn; distributions whose
// tenant was deleted or is the operator are excluded, not rewritten.
func TotalViews(s Snapshot, tenantID string) int64 {
	tenant := s.tenantByID(tenantID)
	if tenant == nil || tenant.IsOperator() {
		return 0
	}
	var views int64
	for _, d := range s.Distributions {
		if d.TenantID != tenantID || d.Outcome != domain.OutcomeSuccess {
			continue
		}
		views += d.ViewCount
	}
	return views
}

// GrossRevenue is views/1000 times the current price. Float division by
// design: no rounding happens inside derived values, only at
// presentation time, so errors never compound.
func GrossRevenue(s Snapshot, tenantID string) float64 {
	return float64(TotalViews(s, tenantID)) / 1000 * s.Rate.PricePerThousandViews
}

func NetRevenue(s Snapshot, tenantID string) float64 {
	tenant := s.tenantByID(tenantID)
	if tenant == nil || tenant.IsOperator() {
		return 0
	}
	return GrossRevenue(s, tenantID) * tenant.SplitRatio / 100
}

// PerDistributionRevenue is the gross contribution of a single
// distribution. Zero for failed outcomes and for orphaned rows.
func PerDistributionRevenue(s Snapshot, distributionID string) float64 {
	for _, d := range s.Distributions {
		if d.ID != distributionID {
			continue
		}
		if d.Outcome != domain.OutcomeSuccess {
			return 0
		}
		tenant := s.tenantByID(d.TenantID)
		if tenant == nil || tenant.IsOperator() {
			return 0
		}
		return float64(d.ViewCount) / 1000 * s.Rate.PricePerThousandViews
	}
	return 0
}

// AvailableBalance floors at zero so cumulative withdrawals can never
// drive a tenant negative, whatever the rate config did in the interim.
func AvailableBalance(s Snapshot, tenantID string, withdrawn float64) float64 {
	balance := NetRevenue(s, tenantID) - withdrawn
	if balance < 0 {
		return 0
	}
	return balance
}

// Totals aggregates revenue for every non-operator tenant, in registry
// order. This is the report backbone.
func Totals(s Snapshot) []TenantRevenue {
	totals := make([]TenantRevenue, 0, len(s.Tenants))
	for _, t := range s.Tenants {
		if t.IsOperator() {
			continue
		}
		gross := GrossRevenue(s, t.ID)
		totals = append(totals, TenantRevenue{
			TenantID:    t.ID,
			DisplayName: t.DisplayName,
			SplitRatio:  t.SplitRatio,
			TotalViews:  TotalViews(s, t.ID),
			Gross:       gross,
			Net:         gross * t.SplitRatio / 100,
		})
	}
	return totals
}
