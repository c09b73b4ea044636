package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/LavaJover/shvark-revenue-service/internal/delivery/http/dto/request"
	"github.com/LavaJover/shvark-revenue-service/internal/delivery/http/dto/response"
	"github.com/LavaJover/shvark-revenue-service/internal/domain"
	"github.com/go-chi/chi/v5"
)

type ChannelHandler struct {
	channelUsecase domain.ChannelUsecase
}

func NewChannelHandler(channelUsecase domain.ChannelUsecase) *ChannelHandler {
	return &ChannelHandler{channelUsecase: channelUsecase}
}

func toChannelResponse(channel *domain.Channel) response.ChannelResponse {
	return response.ChannelResponse{
		ID:          channel.ID,
		TenantID:    channel.TenantID,
		Platform:    string(channel.Platform),
		ExternalID:  channel.ExternalID,
		DisplayName: channel.DisplayName,
	}
}

func (h *ChannelHandler) AddChannel(w http.ResponseWriter, r *http.Request) {
	var req request.CreateChannelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response.ErrorResponse{Error: "invalid request body"})
		return
	}
	channel := &domain.Channel{
		TenantID:    req.TenantID,
		Platform:    domain.ChannelPlatform(req.Platform),
		ExternalID:  req.ExternalID,
		DisplayName: req.DisplayName,
	}
	if err := h.channelUsecase.AddChannel(channel); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toChannelResponse(channel))
}

func (h *ChannelHandler) GetChannels(w http.ResponseWriter, r *http.Request) {
	channels, err := h.channelUsecase.GetChannels()
	if err != nil {
		writeError(w, err)
		return
	}
	resp := make([]response.ChannelResponse, len(channels))
	for i, c := range channels {
		resp[i] = toChannelResponse(c)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ChannelHandler) GetTenantChannels(w http.ResponseWriter, r *http.Request) {
	channels, err := h.channelUsecase.GetChannelsByTenantID(chi.URLParam(r, "tenantID"))
	if err != nil {
		writeError(w, err)
		return
	}
	resp := make([]response.ChannelResponse, len(channels))
	for i, c := range channels {
		resp[i] = toChannelResponse(c)
	}
	writeJSON(w, http.StatusOK, resp)
}
