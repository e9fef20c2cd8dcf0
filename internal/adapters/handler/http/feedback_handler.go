package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/validately/api/internal/core/domain"
	"github.com/validately/api/internal/core/ports"
)

type FeedbackHandler struct {
	feedback ports.FeedbackService
	metrics  ports.MetricsService
}

func NewFeedbackHandler(feedback ports.FeedbackService, metrics ports.MetricsService) *FeedbackHandler {
	return &FeedbackHandler{
		feedback: feedback,
		metrics:  metrics,
	}
}

type recordFeedbackRequest struct {
	Approved bool    `json:"approved"`
	Comment  *string `json:"comment,omitempty"`
}

// RecordFeedback writes a decision directly, bypassing the gesture machine.
// Used by non-swipe clients; the session decided set is not touched here.
func (h *FeedbackHandler) RecordFeedback(w http.ResponseWriter, r *http.Request) {
	cardID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, domain.ErrInvalidCardID.Error(), http.StatusBadRequest)
		return
	}

	identity, ok := identityFrom(r)
	if !ok {
		http.Error(w, "missing identity", http.StatusUnauthorized)
		return
	}

	var req recordFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	record, err := h.feedback.Record(r.Context(), ports.RecordFeedbackInput{
		CardID:        cardID,
		StakeholderID: identity,
		Approved:      req.Approved,
		Comment:       req.Comment,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(record); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func (h *FeedbackHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	cardID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, domain.ErrInvalidCardID.Error(), http.StatusBadRequest)
		return
	}

	records, err := h.feedback.ForCard(r.Context(), cardID)
	if err != nil {
		writeError(w, err)
		return
	}
	if records == nil {
		records = []*domain.Feedback{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(records); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func (h *FeedbackHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	cardID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, domain.ErrInvalidCardID.Error(), http.StatusBadRequest)
		return
	}

	metrics, err := h.metrics.MetricsFor(r.Context(), cardID)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(metrics); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
