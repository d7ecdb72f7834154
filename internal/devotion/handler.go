package devotion

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/jpbalagtas/church-companion-api/pkg/response"
)

type DevotionHandler struct {
	service DevotionService
}

func NewDevotionHandler(service DevotionService) DevotionHandler {
	return DevotionHandler{service: service}
}

// GenerateHandler handles POST /devotions/generate. The body is
// optional; an empty or absent verse defaults to "Psalms 67". The
// response is always 200 with a devotion record — fallback content is
// a degraded success, not an error.
func (h *DevotionHandler) GenerateHandler(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	result := h.service.GenerateAndSave(r.Context(), req.Verse)
	response.Success(w, result, "successfully")
}

// SaveHandler handles POST /devotions/save. Storage faults and absent
// storage credentials surface as 500s, unlike the generate flow.
func (h *DevotionHandler) SaveHandler(w http.ResponseWriter, r *http.Request) {
	var rec DevotionRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	saved, err := h.service.SaveDevotion(r.Context(), &rec)
	if err != nil {
		if errors.Is(err, ErrStorageNotConfigured) {
			response.Error(w, http.StatusInternalServerError, "Storage configuration missing", err.Error())
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to save devotion", err.Error())
		return
	}

	response.Success(w, saved, "successfully")
}

// DashboardHandler handles GET /devotions/today.
func (h *DevotionHandler) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	dash, err := h.service.Dashboard(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to load devotions", err.Error())
		return
	}

	response.Success(w, dash, "successfully")
}
