package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/LavaJover/shvark-revenue-service/internal/delivery/http/dto/response"
	"github.com/LavaJover/shvark-revenue-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	var malformed *domain.MalformedRowError
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrTenantNotFound), errors.Is(err, domain.ErrUnknownReference):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidConfig), errors.Is(err, domain.ErrNegativeViewDelta), errors.As(err, &malformed):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrInsufficientBalance), errors.Is(err, domain.ErrOperatorImmutable):
		status = http.StatusConflict
	}
	writeJSON(w, status, response.ErrorResponse{Error: err.Error()})
}
