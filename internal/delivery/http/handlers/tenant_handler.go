package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/LavaJover/shvark-revenue-service/internal/delivery/http/dto/request"
	"github.com/LavaJover/shvark-revenue-service/internal/delivery/http/dto/response"
	"github.com/LavaJover/shvark-revenue-service/internal/domain"
	"github.com/LavaJover/shvark-revenue-service/internal/usecase"
	"github.com/go-chi/chi/v5"
)

type TenantHandler struct {
	tenantUsecase      domain.TenantUsecase
	attributionUsecase usecase.AttributionUsecase
}

func NewTenantHandler(tenantUsecase domain.TenantUsecase, attributionUsecase usecase.AttributionUsecase) *TenantHandler {
	return &TenantHandler{
		tenantUsecase:      tenantUsecase,
		attributionUsecase: attributionUsecase,
	}
}

func toTenantResponse(tenant *domain.Tenant) response.TenantResponse {
	return response.TenantResponse{
		ID:          tenant.ID,
		DisplayName: tenant.DisplayName,
		Role:        string(tenant.Role),
		SplitRatio:  tenant.SplitRatio,
		CreatedAt:   tenant.CreatedAt,
	}
}

func (h *TenantHandler) CreateTenant(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response.ErrorResponse{Error: "invalid request body"})
		return
	}
	tenant := &domain.Tenant{
		DisplayName: req.DisplayName,
		Secret:      req.Secret,
		SplitRatio:  req.SplitRatio,
		Role:        domain.RoleTenant,
	}
	if err := h.tenantUsecase.CreateTenant(tenant); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTenantResponse(tenant))
}

func (h *TenantHandler) GetTenants(w http.ResponseWriter, r *http.Request) {
	tenants, err := h.tenantUsecase.GetTenants()
	if err != nil {
		writeError(w, err)
		return
	}
	resp := make([]response.TenantResponse, len(tenants))
	for i, t := range tenants {
		resp[i] = toTenantResponse(t)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *TenantHandler) GetTenant(w http.ResponseWriter, r *http.Request) {
	tenant, err := h.tenantUsecase.GetTenantByID(chi.URLParam(r, "tenantID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTenantResponse(tenant))
}

func (h *TenantHandler) EditSplitRatio(w http.ResponseWriter, r *http.Request) {
	var req request.EditSplitRatioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response.ErrorResponse{Error: "invalid request body"})
		return
	}
	if err := h.tenantUsecase.EditSplitRatio(chi.URLParam(r, "tenantID"), req.SplitRatio); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TenantHandler) DeleteTenant(w http.ResponseWriter, r *http.Request) {
	if err := h.tenantUsecase.DeleteTenant(chi.URLParam(r, "tenantID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TenantHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.attributionUsecase.GetTenantBalance(chi.URLParam(r, "tenantID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response.BalanceResponse{
		TenantID:   balance.TenantID,
		TotalViews: balance.TotalViews,
		Gross:      balance.Gross,
		Net:        balance.Net,
		Withdrawn:  balance.Withdrawn,
		Available:  balance.Available,
	})
}
