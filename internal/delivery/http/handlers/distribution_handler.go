package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/LavaJover/shvark-revenue-service/internal/delivery/http/dto/request"
	"github.com/LavaJover/shvark-revenue-service/internal/delivery/http/dto/response"
	"github.com/LavaJover/shvark-revenue-service/internal/domain"
	"github.com/go-chi/chi/v5"
)

type DistributionHandler struct {
	distributionUsecase domain.DistributionUsecase
}

func NewDistributionHandler(distributionUsecase domain.DistributionUsecase) *DistributionHandler {
	return &DistributionHandler{distributionUsecase: distributionUsecase}
}

func toDistributionResponse(event *domain.DistributionEvent) response.DistributionResponse {
	return response.DistributionResponse{
		ID:        event.ID,
		ContentID: event.ContentID,
		TenantID:  event.TenantID,
		ViewCount: event.ViewCount,
		Outcome:   string(event.Outcome),
		CreatedAt: event.CreatedAt,
	}
}

func (h *DistributionHandler) CreateDistribution(w http.ResponseWriter, r *http.Request) {
	var req request.CreateDistributionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response.ErrorResponse{Error: "invalid request body"})
		return
	}
	event := &domain.DistributionEvent{
		ContentID: req.ContentID,
		TenantID:  req.TenantID,
		ViewCount: req.ViewCount,
		Outcome:   domain.DistributionOutcome(req.Outcome),
	}
	if err := h.distributionUsecase.CreateDistribution(event); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDistributionResponse(event))
}

func (h *DistributionHandler) GetDistributions(w http.ResponseWriter, r *http.Request) {
	events, err := h.distributionUsecase.GetDistributions()
	if err != nil {
		writeError(w, err)
		return
	}
	resp := make([]response.DistributionResponse, len(events))
	for i, e := range events {
		resp[i] = toDistributionResponse(e)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *DistributionHandler) GetTenantDistributions(w http.ResponseWriter, r *http.Request) {
	events, err := h.distributionUsecase.GetDistributionsByTenantID(chi.URLParam(r, "tenantID"))
	if err != nil {
		writeError(w, err)
		return
	}
	resp := make([]response.DistributionResponse, len(events))
	for i, e := range events {
		resp[i] = toDistributionResponse(e)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *DistributionHandler) AddViews(w http.ResponseWriter, r *http.Request) {
	var req request.AddViewsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response.ErrorResponse{Error: "invalid request body"})
		return
	}
	if err := h.distributionUsecase.AddViews(chi.URLParam(r, "distributionID"), req.Delta); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
