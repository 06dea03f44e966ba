package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/colorpass/colorpass-go/internal/crypto"
	"github.com/colorpass/colorpass-go/internal/model"
	"github.com/colorpass/colorpass-go/internal/service"
)

// GeneratorHandler handles HTTP requests for password generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if r.Body != nil && r.ContentLength != 0 {
		if !decodeJSON(w, r, &req) {
			return
		}
	}

	resp, err := h.service.Generate(req)
	if err != nil {
		if isValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleGetPassword handles GET /api/v1/password requests.
func (h *GeneratorHandler) HandleGetPassword(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.State())
}

// HandleConfigure handles PUT /api/v1/password/config requests.
func (h *GeneratorHandler) HandleConfigure(w http.ResponseWriter, r *http.Request) {
	var req model.ConfigureRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Configure(req)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleRegenerate handles POST /api/v1/password/regenerate requests.
func (h *GeneratorHandler) HandleRegenerate(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Regenerate()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleCopy handles POST /api/v1/password/copy requests.
// The clipboard write is not awaited.
func (h *GeneratorHandler) HandleCopy(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusAccepted, h.service.Copy())
}

func isValidationError(err error) bool {
	return errors.Is(err, crypto.ErrLengthOutOfRange)
}

// decodeJSON reads a size-limited JSON body into v. On failure it writes the
// error response and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
