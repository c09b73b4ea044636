package handlers

import (
	"net/http"

	"github.com/LavaJover/shvark-revenue-service/internal/delivery/http/dto/response"
	"github.com/LavaJover/shvark-revenue-service/internal/domain"
	"github.com/go-chi/chi/v5"
)

type WithdrawalHandler struct {
	withdrawalUsecase domain.WithdrawalUsecase
}

func NewWithdrawalHandler(withdrawalUsecase domain.WithdrawalUsecase) *WithdrawalHandler {
	return &WithdrawalHandler{withdrawalUsecase: withdrawalUsecase}
}

func toWithdrawalResponse(withdrawal *domain.Withdrawal) response.WithdrawalResponse {
	return response.WithdrawalResponse{
		ID:          withdrawal.ID,
		TenantID:    withdrawal.TenantID,
		Amount:      withdrawal.Amount,
		Status:      string(withdrawal.Status),
		RequestedAt: withdrawal.RequestedAt,
	}
}

// RequestWithdrawal takes no body: the amount is always the tenant's
// full available balance at this instant.
func (h *WithdrawalHandler) RequestWithdrawal(w http.ResponseWriter, r *http.Request) {
	withdrawal, err := h.withdrawalUsecase.RequestWithdrawal(chi.URLParam(r, "tenantID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toWithdrawalResponse(withdrawal))
}

func (h *WithdrawalHandler) GetTenantWithdrawals(w http.ResponseWriter, r *http.Request) {
	withdrawals, err := h.withdrawalUsecase.GetWithdrawalsByTenantID(chi.URLParam(r, "tenantID"))
	if err != nil {
		writeError(w, err)
		return
	}
	resp := make([]response.WithdrawalResponse, len(withdrawals))
	for i, wd := range withdrawals {
		resp[i] = toWithdrawalResponse(wd)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *WithdrawalHandler) CompleteWithdrawal(w http.ResponseWriter, r *http.Request) {
	if err := h.withdrawalUsecase.CompleteWithdrawal(chi.URLParam(r, "withdrawalID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
