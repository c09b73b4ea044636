package handlers

import (
	"io"
	"net/http"

	"github.com/LavaJover/shvark-revenue-service/internal/delivery/http/dto/response"
	"github.com/LavaJover/shvark-revenue-service/internal/usecase"
)

type ImportHandler struct {
	importUsecase usecase.BatchImportUsecase
}

func NewImportHandler(importUsecase usecase.BatchImportUsecase) *ImportHandler {
	return &ImportHandler{importUsecase: importUsecase}
}

// ImportAccounts takes the raw tabular payload as the request body.
func (h *ImportHandler) ImportAccounts(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, response.ErrorResponse{Error: "failed to read payload"})
		return
	}
	summary, err := h.importUsecase.ImportAccounts(string(payload))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response.ImportResponse{
		TenantsCreated:  summary.TenantsCreated,
		ChannelsCreated: summary.ChannelsCreated,
	})
}
