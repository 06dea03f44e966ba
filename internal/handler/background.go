package handler

import (
	"errors"
	"net/http"

	"github.com/colorpass/colorpass-go/internal/model"
	"github.com/colorpass/colorpass-go/internal/palette"
	"github.com/colorpass/colorpass-go/internal/service"
)

// BackgroundHandler handles HTTP requests for the background switcher.
type BackgroundHandler struct {
	service *service.BackgroundService
}

// NewBackgroundHandler creates a new BackgroundHandler.
func NewBackgroundHandler(svc *service.BackgroundService) *BackgroundHandler {
	return &BackgroundHandler{service: svc}
}

// HandleListColors handles GET /api/v1/colors requests.
func (h *BackgroundHandler) HandleListColors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Colors())
}

// HandleGetBackground handles GET /api/v1/background requests.
func (h *BackgroundHandler) HandleGetBackground(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Current())
}

// HandleSelectBackground handles PUT /api/v1/background requests.
func (h *BackgroundHandler) HandleSelectBackground(w http.ResponseWriter, r *http.Request) {
	var req model.SelectColorRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Select(req.Color)
	if err != nil {
		if errors.Is(err, palette.ErrUnknownColor) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
