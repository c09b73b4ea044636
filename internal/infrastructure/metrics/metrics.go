package metrics

import (
	"errors"

	"github.com/LavaJover/shvark-revenue-service/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RevenueMetrics covers the ledger hot paths: withdrawal requests, batch
// imports and the traffic simulator.
type RevenueMetrics struct {
	WithdrawalsRequestedTotal prometheus.CounterVec
	WithdrawalAmountTotal     prometheus.CounterVec
	WithdrawalsRejectedTotal  prometheus.CounterVec

	ImportsTotal               prometheus.Counter
	ImportTenantsCreatedTotal  prometheus.Counter
	ImportChannelsCreatedTotal prometheus.Counter

	TrafficTicksTotal      prometheus.Counter
	TrafficTickErrorsTotal prometheus.Counter
	TrafficViewsAddedTotal prometheus.Counter
}

func NewRevenueMetrics() *RevenueMetrics {
	return &RevenueMetrics{
		WithdrawalsRequestedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "withdrawals_requested_total",
				Help: "Accepted withdrawal requests",
			},
			[]string{"tenant_id"},
		),
		WithdrawalAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "withdrawal_amount_total",
				Help: "Total amount moved into pending withdrawals",
			},
			[]string{"tenant_id"},
		),
		WithdrawalsRejectedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "withdrawals_rejected_total",
				Help: "Rejected withdrawal requests by reason",
			},
			[]string{"tenant_id", "reason"},
		),
		ImportsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "account_imports_total",
				Help: "Completed batch imports",
			},
		),
		ImportTenantsCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "account_import_tenants_created_total",
				Help: "Tenants created by batch imports",
			},
		),
		ImportChannelsCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "account_import_channels_created_total",
				Help: "Channels created by batch imports",
			},
		),
		TrafficTicksTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "traffic_ticks_total",
				Help: "Traffic simulator cycles",
			},
		),
		TrafficTickErrorsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "traffic_tick_errors_total",
				Help: "Traffic simulator cycles skipped on storage errors",
			},
		),
		TrafficViewsAddedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "traffic_views_added_total",
				Help: "View counter increments applied by the simulator",
			},
		),
	}
}

func (m *RevenueMetrics) RecordWithdrawalRequested(tenantID string, amount float64) {
	m.WithdrawalsRequestedTotal.WithLabelValues(tenantID).Inc()
	m.WithdrawalAmountTotal.WithLabelValues(tenantID).Add(amount)
}

func (m *RevenueMetrics) RecordWithdrawalRejected(tenantID string, err error) {
	reason := "internal"
	switch {
	case errors.Is(err, domain.ErrInsufficientBalance):
		reason = "insufficient_balance"
	case errors.Is(err, domain.ErrTenantNotFound):
		reason = "tenant_not_found"
	case errors.Is(err, domain.ErrOperatorImmutable):
		reason = "operator"
	}
	m.WithdrawalsRejectedTotal.WithLabelValues(tenantID, reason).Inc()
}

func (m *RevenueMetrics) RecordImport(tenantsCreated, channelsCreated int) {
	m.ImportsTotal.Inc()
	m.ImportTenantsCreatedTotal.Add(float64(tenantsCreated))
	m.ImportChannelsCreatedTotal.Add(float64(channelsCreated))
}

func (m *RevenueMetrics) RecordTrafficTick(viewsAdded int64) {
	m.TrafficTicksTotal.Inc()
	m.TrafficViewsAddedTotal.Add(float64(viewsAdded))
}

func (m *RevenueMetrics) RecordTrafficTickError() {
	m.TrafficTicksTotal.Inc()
	m.TrafficTickErrorsTotal.Inc()
}
