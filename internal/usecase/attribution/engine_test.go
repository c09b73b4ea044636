package attribution

import (
	"math"
	"testing"

	"github.com/LavaJover/shvark-revenue-service/internal/domain"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func testSnapshot() Snapshot {
	return Snapshot{
		Tenants: []*domain.Tenant{
			{ID: "op", DisplayName: "operator", Role: domain.RoleOperator},
			{ID: "alice", DisplayName: "Alice", Role: domain.RoleTenant, SplitRatio: 75},
			{ID: "bob", DisplayName: "Bob", Role: domain.RoleTenant, SplitRatio: 50},
		},
		Distributions: []*domain.DistributionEvent{
			{ID: "d1", TenantID: "alice", ViewCount: 2000, Outcome: domain.OutcomeSuccess},
			{ID: "d2", TenantID: "alice", ViewCount: 9999, Outcome: domain.OutcomeFailed},
			{ID: "d3", TenantID: "bob", ViewCount: 1000, Outcome: domain.OutcomeSuccess},
			{ID: "d4", TenantID: "ghost", ViewCount: 5000, Outcome: domain.OutcomeSuccess},
			{ID: "d5", TenantID: "op", ViewCount: 4000, Outcome: domain.OutcomeSuccess},
		},
		Rate: domain.RateConfig{PricePerThousandViews: 0.03, PlatformFeePercent: 25},
	}
}

func TestGrossRevenue(t *testing.T) {
	s := testSnapshot()

	tests := []struct {
		name     string
		tenantID string
		want     float64
	}{
		{name: "counts only successful distributions", tenantID: "alice", want: 0.06},
		{name: "single distribution", tenantID: "bob", want: 0.03},
		{name: "operator earns nothing", tenantID: "op", want: 0},
		{name: "deleted tenant earns nothing", tenantID: "ghost", want: 0},
		{name: "unknown tenant earns nothing", tenantID: "nobody", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GrossRevenue(s, tt.tenantID)
			if !almostEqual(got, tt.want) {
				t.Fatalf("expected gross %v, got %v", tt.want, got)
			}
		})
	}
}

func TestNetRevenueAppliesSplitRatio(t *testing.T) {
	s := testSnapshot()

	if got := NetRevenue(s, "alice"); !almostEqual(got, 0.045) {
		t.Fatalf("expected net 0.045, got %v", got)
	}
	if got := NetRevenue(s, "bob"); !almostEqual(got, 0.015) {
		t.Fatalf("expected net 0.015, got %v", got)
	}
}

func TestRatioBoundaries(t *testing.T) {
	s := Snapshot{
		Tenants: []*domain.Tenant{
			{ID: "zero", Role: domain.RoleTenant, SplitRatio: 0},
			{ID: "full", Role: domain.RoleTenant, SplitRatio: 100},
		},
		Distributions: []*domain.DistributionEvent{
			{ID: "d1", TenantID: "zero", ViewCount: 1000, Outcome: domain.OutcomeSuccess},
			{ID: "d2", TenantID: "full", ViewCount: 1000, Outcome: domain.OutcomeSuccess},
		},
		Rate: domain.RateConfig{PricePerThousandViews: 1},
	}

	if got := NetRevenue(s, "zero"); !almostEqual(got, 0) {
		t.Fatalf("ratio 0 should yield net 0, got %v", got)
	}
	if got := NetRevenue(s, "full"); !almostEqual(got, 1) {
		t.Fatalf("ratio 100 should yield full gross, got %v", got)
	}
}

func TestZeroDistributionsAndZeroViews(t *testing.T) {
	s := Snapshot{
		Tenants: []*domain.Tenant{
			{ID: "idle", Role: domain.RoleTenant, SplitRatio: 50},
			{ID: "fresh", Role: domain.RoleTenant, SplitRatio: 50},
		},
		Distributions: []*domain.DistributionEvent{
			{ID: "d1", TenantID: "fresh", ViewCount: 0, Outcome: domain.OutcomeSuccess},
		},
		Rate: domain.RateConfig{PricePerThousandViews: 0.03},
	}

	if got := GrossRevenue(s, "idle"); got != 0 {
		t.Fatalf("no distributions should yield 0, got %v", got)
	}
	if got := GrossRevenue(s, "fresh"); got != 0 {
		t.Fatalf("0 views should yield 0, got %v", got)
	}
}

func TestPerDistributionRevenue(t *testing.T) {
	s := testSnapshot()

	if got := PerDistributionRevenue(s, "d1"); !almostEqual(got, 0.06) {
		t.Fatalf("expected 0.06, got %v", got)
	}
	if got := PerDistributionRevenue(s, "d2"); got != 0 {
		t.Fatalf("failed distribution must earn 0, got %v", got)
	}
	if got := PerDistributionRevenue(s, "d4"); got != 0 {
		t.Fatalf("orphaned distribution must earn 0, got %v", got)
	}
	if got := PerDistributionRevenue(s, "d5"); got != 0 {
		t.Fatalf("operator distribution must earn 0, got %v", got)
	}
	if got := PerDistributionRevenue(s, "missing"); got != 0 {
		t.Fatalf("unknown distribution must earn 0, got %v", got)
	}
}

func TestRateChangeIsRetroactive(t *testing.T) {
	s := testSnapshot()
	before := GrossRevenue(s, "alice")

	s.Rate.PricePerThousandViews = 0.06
	after := GrossRevenue(s, "alice")

	if !almostEqual(before, 0.06) || !almostEqual(after, 0.12) {
		t.Fatalf("rate change must recompute history: before=%v after=%v", before, after)
	}
}

func TestGrossRevenueMonotonicUnderGrowingViews(t *testing.T) {
	s := testSnapshot()
	prev := GrossRevenue(s, "alice")
	for i := 0; i < 50; i++ {
		s.Distributions[0].ViewCount += int64(i * 37)
		got := GrossRevenue(s, "alice")
		if got < prev {
			t.Fatalf("gross revenue decreased from %v to %v", prev, got)
		}
		prev = got
	}
}

func TestAvailableBalanceNeverNegative(t *testing.T) {
	s := testSnapshot()

	if got := AvailableBalance(s, "alice", 0); !almostEqual(got, 0.045) {
		t.Fatalf("expected 0.045, got %v", got)
	}
	if got := AvailableBalance(s, "alice", 0.045); got != 0 {
		t.Fatalf("expected 0 after full withdrawal, got %v", got)
	}
	// Withdrawn exceeding net (rate was lowered after a payout) floors
	// at zero instead of going negative.
	if got := AvailableBalance(s, "alice", 100); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestTotalsSkipsOperator(t *testing.T) {
	totals := Totals(testSnapshot())

	if len(totals) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(totals))
	}
	for _, row := range totals {
		if row.TenantID == "op" {
			t.Fatalf("operator must not appear in totals")
		}
	}
	if totals[0].TenantID != "alice" || totals[0].TotalViews != 2000 {
		t.Fatalf("unexpected first row: %+v", totals[0])
	}
	if !almostEqual(totals[0].Gross, 0.06) || !almostEqual(totals[0].Net, 0.045) {
		t.Fatalf("unexpected alice revenue: %+v", totals[0])
	}
}
