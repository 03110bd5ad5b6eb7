package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"investadvisor/pkg/advisor"
)

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		AIEnabled: h.core.AIEnabled(),
	})
}

// recommend serves one portfolio recommendation. AI-path failures are
// absorbed inside the core and still produce a 200 with mock data; only
// input validation and true server faults surface as error statuses.
func (h *handler) recommend(w http.ResponseWriter, r *http.Request) {
	var payload recommendPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rec, err := h.core.Recommend(r.Context(), payload.UserInput)
	if err != nil {
		var advErr *advisor.Error
		if errors.As(err, &advErr) && advErr.Code == advisor.ErrCodeValidation {
			writeError(w, http.StatusBadRequest, advErr.Message)
			return
		}
		h.logger.Error("recommend endpoint failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, serverErrorResponse{
			Error:   "Failed to generate recommendation",
			Details: err.Error(),
		})
		return
	}

	if h.metrics != nil {
		source := advisor.SourceMock
		if rec.IsAI {
			source = advisor.SourceAI
		}
		h.metrics.RecommendationServed(source)
	}

	writeJSON(w, http.StatusOK, recommendResponse{Success: true, Data: rec})
}

func (h *handler) getInferenceLog(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	records, err := h.core.GetInferenceLog(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, records)
}
