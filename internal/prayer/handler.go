package prayer

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jpbalagtas/church-companion-api/pkg/response"
)

type PrayerHandler struct {
	service PrayerService
}

func NewPrayerHandler(service PrayerService) PrayerHandler {
	return PrayerHandler{service: service}
}

func (h *PrayerHandler) SubmitRequestHandler(w http.ResponseWriter, r *http.Request) {
	var body SubmitRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	req, err := h.service.SubmitRequest(r.Context(), body.RequestText, body.IsAnonymous)
	if err != nil {
		if errors.Is(err, ErrEmptyRequest) {
			response.Error(w, http.StatusBadRequest, "Missing required fields", map[string]string{
				"request_text": "request_text is required",
			})
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to submit prayer request", err.Error())
		return
	}

	response.Created(w, req, "successfully")
}

func (h *PrayerHandler) PublicRequestsHandler(w http.ResponseWriter, r *http.Request) {
	requests, err := h.service.PublicRequests(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to get prayer requests", err.Error())
		return
	}

	if requests == nil {
		requests = []PrayerRequest{}
	}

	response.Success(w, requests, "successfully")
}

func (h *PrayerHandler) MonthAssignmentsHandler(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	assignments, err := h.service.MonthAssignments(r.Context(), month)
	if err != nil {
		if errors.Is(err, ErrBadMonth) {
			response.Error(w, http.StatusBadRequest, "Invalid month", err.Error())
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to get prayer team assignments", err.Error())
		return
	}

	if assignments == nil {
		assignments = []TeamAssignment{}
	}

	response.Success(w, assignments, "successfully")
}
