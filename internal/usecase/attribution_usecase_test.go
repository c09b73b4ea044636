package usecase

import (
	"errors"
	"testing"

	"github.com/LavaJover/shvark-revenue-service/internal/domain"
)

func TestGetTenantBalance(t *testing.T) {
	f := newFixture(domain.RateConfig{PricePerThousandViews: 0.03, PlatformFeePercent: 30})
	f.tenants.CreateTenant(&domain.Tenant{ID: "t1", DisplayName: "Alice", Role: domain.RoleTenant, SplitRatio: 75})
	f.distributions.CreateDistribution(&domain.DistributionEvent{
		ID: "d1", TenantID: "t1", ViewCount: 1_000_000, Outcome: domain.OutcomeSuccess,
	})
	f.withdrawals.CreateWithdrawal(&domain.Withdrawal{
		ID: "w1", TenantID: "t1", Amount: 10, Status: domain.WithdrawalCompleted,
	})

	uc := NewDefaultAttributionUsecase(f.tx)
	balance, err := uc.GetTenantBalance("t1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if balance.TotalViews != 1_000_000 {
		t.Fatalf("expected 1000000 views, got %d", balance.TotalViews)
	}
	if balance.Gross != 30 {
		t.Fatalf("expected gross 30, got %v", balance.Gross)
	}
	if balance.Net != 22.5 {
		t.Fatalf("expected net 22.5, got %v", balance.Net)
	}
	if balance.Withdrawn != 10 {
		t.Fatalf("expected withdrawn 10, got %v", balance.Withdrawn)
	}
	if balance.Available != 12.5 {
		t.Fatalf("expected available 12.5, got %v", balance.Available)
	}
}

func TestGetTenantBalanceUnknownTenant(t *testing.T) {
	f := newFixture(domain.RateConfig{PricePerThousandViews: 0.03})
	uc := NewDefaultAttributionUsecase(f.tx)

	if _, err := uc.GetTenantBalance("missing"); !errors.Is(err, domain.ErrTenantNotFound) {
		t.Fatalf("expected ErrTenantNotFound, got %v", err)
	}
}

func TestGetRevenueTotalsSkipsOperator(t *testing.T) {
	f := newFixture(domain.RateConfig{PricePerThousandViews: 0.03, PlatformFeePercent: 30})
	f.tenants.CreateTenant(&domain.Tenant{ID: "op", DisplayName: "ops", Role: domain.RoleOperator})
	f.tenants.CreateTenant(&domain.Tenant{ID: "t1", DisplayName: "Alice", Role: domain.RoleTenant, SplitRatio: 75})

	uc := NewDefaultAttributionUsecase(f.tx)
	totals, err := uc.GetRevenueTotals()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(totals) != 1 {
		t.Fatalf("expected 1 row, got %d", len(totals))
	}
	if totals[0].TenantID != "t1" {
		t.Fatalf("expected t1, got %s", totals[0].TenantID)
	}
}
