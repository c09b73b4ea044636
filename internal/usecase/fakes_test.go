package usecase

import (
	"github.com/LavaJover/shvark-revenue-service/internal/domain"
)

// In-memory repositories backing the usecase tests. They satisfy the
// domain interfaces exactly and keep everything in slices so tests can
// assert on persisted state directly.

type fakeTenantRepo struct {
	tenants []*domain.Tenant
}

func (r *fakeTenantRepo) CreateTenant(tenant *domain.Tenant) error {
	copied := *tenant
	r.tenants = append(r.tenants, &copied)
	return nil
}

func (r *fakeTenantRepo) GetTenantByID(tenantID string) (*domain.Tenant, error) {
	for _, t := range r.tenants {
		if t.ID == tenantID {
			copied := *t
			return &copied, nil
		}
	}
	return nil, domain.ErrTenantNotFound
}

func (r *fakeTenantRepo) GetTenantByDisplayName(displayName string) (*domain.Tenant, error) {
	for _, t := range r.tenants {
		if t.DisplayName == displayName {
			copied := *t
			return &copied, nil
		}
	}
	return nil, domain.ErrTenantNotFound
}

func (r *fakeTenantRepo) GetTenants() ([]*domain.Tenant, error) {
	out := make([]*domain.Tenant, len(r.tenants))
	for i, t := range r.tenants {
		copied := *t
		out[i] = &copied
	}
	return out, nil
}

func (r *fakeTenantRepo) GetOperator() (*domain.Tenant, error) {
	for _, t := range r.tenants {
		if t.Role == domain.RoleOperator {
			copied := *t
			return &copied, nil
		}
	}
	return nil, domain.ErrTenantNotFound
}

func (r *fakeTenantRepo) UpdateSplitRatio(tenantID string, splitRatio float64) error {
	for _, t := range r.tenants {
		if t.ID == tenantID {
			t.SplitRatio = splitRatio
			return nil
		}
	}
	return domain.ErrTenantNotFound
}

func (r *fakeTenantRepo) DeleteTenant(tenantID string) error {
	for i, t := range r.tenants {
		if t.ID == tenantID {
			r.tenants = append(r.tenants[:i], r.tenants[i+1:]...)
			return nil
		}
	}
	return domain.ErrTenantNotFound
}

type fakeChannelRepo struct {
	channels []*domain.Channel
}

func (r *fakeChannelRepo) CreateChannel(channel *domain.Channel) error {
	copied := *channel
	r.channels = append(r.channels, &copied)
	return nil
}

func (r *fakeChannelRepo) GetChannelByID(channelID string) (*domain.Channel, error) {
	for _, c := range r.channels {
		if c.ID == channelID {
			copied := *c
			return &copied, nil
		}
	}
	return nil, domain.ErrUnknownReference
}

func (r *fakeChannelRepo) GetChannelsByTenantID(tenantID string) ([]*domain.Channel, error) {
	var out []*domain.Channel
	for _, c := range r.channels {
		if c.TenantID == tenantID {
			copied := *c
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeChannelRepo) GetChannels() ([]*domain.Channel, error) {
	out := make([]*domain.Channel, len(r.channels))
	for i, c := range r.channels {
		copied := *c
		out[i] = &copied
	}
	return out, nil
}

type fakeDistributionRepo struct {
	events  []*domain.DistributionEvent
	listErr error
}

func (r *fakeDistributionRepo) CreateDistribution(event *domain.DistributionEvent) error {
	copied := *event
	r.events = append(r.events, &copied)
	return nil
}

func (r *fakeDistributionRepo) GetDistributionByID(distributionID string) (*domain.DistributionEvent, error) {
	for _, e := range r.events {
		if e.ID == distributionID {
			copied := *e
			return &copied, nil
		}
	}
	return nil, domain.ErrUnknownReference
}

func (r *fakeDistributionRepo) GetDistributionsByTenantID(tenantID string) ([]*domain.DistributionEvent, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*domain.DistributionEvent
	for _, e := range r.events {
		if e.TenantID == tenantID {
			copied := *e
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeDistributionRepo) GetDistributions() ([]*domain.DistributionEvent, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*domain.DistributionEvent, len(r.events))
	for i, e := range r.events {
		copied := *e
		out[i] = &copied
	}
	return out, nil
}

func (r *fakeDistributionRepo) GetSuccessfulDistributionIDs() ([]string, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var ids []string
	for _, e := range r.events {
		if e.Outcome == domain.OutcomeSuccess {
			ids = append(ids, e.ID)
		}
	}
	return ids, nil
}

func (r *fakeDistributionRepo) AddViews(distributionID string, delta int64) error {
	for _, e := range r.events {
		if e.ID == distributionID {
			e.ViewCount += delta
			return nil
		}
	}
	return domain.ErrUnknownReference
}

type fakeWithdrawalRepo struct {
	withdrawals []*domain.Withdrawal
}

func (r *fakeWithdrawalRepo) CreateWithdrawal(withdrawal *domain.Withdrawal) error {
	copied := *withdrawal
	r.withdrawals = append(r.withdrawals, &copied)
	return nil
}

func (r *fakeWithdrawalRepo) GetWithdrawalsByTenantID(tenantID string) ([]*domain.Withdrawal, error) {
	// Most recent first, mirroring the ORDER BY in the real repo.
	var out []*domain.Withdrawal
	for i := len(r.withdrawals) - 1; i >= 0; i-- {
		if r.withdrawals[i].TenantID == tenantID {
			copied := *r.withdrawals[i]
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeWithdrawalRepo) SumWithdrawnByTenantID(tenantID string) (float64, error) {
	var sum float64
	for _, w := range r.withdrawals {
		if w.TenantID == tenantID {
			sum += w.Amount
		}
	}
	return sum, nil
}

func (r *fakeWithdrawalRepo) UpdateWithdrawalStatus(withdrawalID string, status domain.WithdrawalStatus) error {
	for _, w := range r.withdrawals {
		if w.ID == withdrawalID {
			w.Status = status
			return nil
		}
	}
	return domain.ErrUnknownReference
}

type fakeRateRepo struct {
	rate domain.RateConfig
}

func (r *fakeRateRepo) GetRateConfig() (*domain.RateConfig, error) {
	copied := r.rate
	return &copied, nil
}

func (r *fakeRateRepo) SetRateConfig(config *domain.RateConfig) error {
	r.rate = *config
	return nil
}

// fakeTxManager hands the same repositories to every caller; rollback is
// not simulated, which is enough because the usecases validate before
// writing anything.
type fakeTxManager struct {
	repos domain.Repositories
}

func (m *fakeTxManager) Do(fn func(r domain.Repositories) error) error {
	return fn(m.repos)
}

type fixture struct {
	tenants       *fakeTenantRepo
	channels      *fakeChannelRepo
	distributions *fakeDistributionRepo
	withdrawals   *fakeWithdrawalRepo
	rates         *fakeRateRepo
	tx            *fakeTxManager
}

func newFixture(rate domain.RateConfig) *fixture {
	f := &fixture{
		tenants:       &fakeTenantRepo{},
		channels:      &fakeChannelRepo{},
		distributions: &fakeDistributionRepo{},
		withdrawals:   &fakeWithdrawalRepo{},
		rates:         &fakeRateRepo{rate: rate},
	}
	f.tx = &fakeTxManager{repos: domain.Repositories{
		Tenants:       f.tenants,
		Channels:      f.channels,
		Distributions: f.distributions,
		Withdrawals:   f.withdrawals,
		Rates:         f.rates,
	}}
	return f
}
