package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/LavaJover/shvark-revenue-service/internal/delivery/http/dto/request"
	"github.com/LavaJover/shvark-revenue-service/internal/delivery/http/dto/response"
	"github.com/LavaJover/shvark-revenue-service/internal/domain"
)

type RateConfigHandler struct {
	rateUsecase domain.RateConfigUsecase
}

func NewRateConfigHandler(rateUsecase domain.RateConfigUsecase) *RateConfigHandler {
	return &RateConfigHandler{rateUsecase: rateUsecase}
}

func (h *RateConfigHandler) GetRateConfig(w http.ResponseWriter, r *http.Request) {
	rate, err := h.rateUsecase.GetRateConfig()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response.RateConfigResponse{
		PricePerThousandViews: rate.PricePerThousandViews,
		PlatformFeePercent:    rate.PlatformFeePercent,
	})
}

func (h *RateConfigHandler) SetRateConfig(w http.ResponseWriter, r *http.Request) {
	var req request.SetRateConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response.ErrorResponse{Error: "invalid request body"})
		return
	}
	rate := &domain.RateConfig{
		PricePerThousandViews: req.PricePerThousandViews,
		PlatformFeePercent:    req.PlatformFeePercent,
	}
	if err := h.rateUsecase.SetRateConfig(rate); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
