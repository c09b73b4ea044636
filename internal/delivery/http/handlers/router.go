package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterHandlers struct {
	Tenant       *TenantHandler
	Channel      *ChannelHandler
	Distribution *DistributionHandler
	Rate         *RateConfigHandler
	Withdrawal   *WithdrawalHandler
	Import       *ImportHandler
	Report       *ReportHandler
}

func NewRouter(h RouterHandlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("healthy"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/tenants", func(r chi.Router) {
		r.Post("/", h.Tenant.CreateTenant)
		r.Get("/", h.Tenant.GetTenants)
		r.Get("/{tenantID}", h.Tenant.GetTenant)
		r.Put("/{tenantID}/ratio", h.Tenant.EditSplitRatio)
		r.Delete("/{tenantID}", h.Tenant.DeleteTenant)
		r.Get("/{tenantID}/balance", h.Tenant.GetBalance)
		r.Get("/{tenantID}/channels", h.Channel.GetTenantChannels)
		r.Get("/{tenantID}/distributions", h.Distribution.GetTenantDistributions)
		r.Get("/{tenantID}/withdrawals", h.Withdrawal.GetTenantWithdrawals)
		r.Post("/{tenantID}/withdrawals", h.Withdrawal.RequestWithdrawal)
	})

	r.Route("/channels", func(r chi.Router) {
		r.Post("/", h.Channel.AddChannel)
		r.Get("/", h.Channel.GetChannels)
	})

	r.Route("/distributions", func(r chi.Router) {
		r.Post("/", h.Distribution.CreateDistribution)
		r.Get("/", h.Distribution.GetDistributions)
		r.Post("/{distributionID}/views", h.Distribution.AddViews)
	})

	r.Route("/rate-config", func(r chi.Router) {
		r.Get("/", h.Rate.GetRateConfig)
		r.Put("/", h.Rate.SetRateConfig)
	})

	r.Post("/imports/accounts", h.Import.ImportAccounts)
	r.Post("/withdrawals/{withdrawalID}/complete", h.Withdrawal.CompleteWithdrawal)
	r.Get("/reports/revenue", h.Report.GetRevenueReport)

	return r
}
