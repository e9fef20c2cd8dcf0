package http

import (
	"encoding/json"
	"net/http"

	"github.com/validately/api/internal/core/ports"
	"github.com/validately/api/internal/core/swipe"
)

type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		service: service,
	}
}

type pointerEventRequest struct {
	// Phase is down, move or up; X is the pointer position in dp. X is
	// ignored for up events.
	Phase string  `json:"phase"`
	X     float64 `json:"x"`
}

type gestureResultResponse struct {
	Result   string `json:"result"`
	SettleMS int64  `json:"settle_ms"`
}

func gestureResult(result swipe.Result) gestureResultResponse {
	return gestureResultResponse{
		Result:   result.String(),
		SettleMS: swipe.DisplayDelay.Milliseconds(),
	}
}

func (h *ReviewHandler) Current(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(r)
	if !ok {
		http.Error(w, "missing identity", http.StatusUnauthorized)
		return
	}

	state, err := h.service.Current(r.Context(), identity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, state)
}

// PointerEvent feeds one raw pointer sample into the session's gesture
// machine. The decision itself only happens on the up phase.
func (h *ReviewHandler) PointerEvent(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(r)
	if !ok {
		http.Error(w, "missing identity", http.StatusUnauthorized)
		return
	}

	var req pointerEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	switch req.Phase {
	case "down":
		state, err := h.service.PointerDown(r.Context(), identity, req.X)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, state)
	case "move":
		state, err := h.service.PointerMove(r.Context(), identity, req.X)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, state)
	case "up":
		result, err := h.service.Release(r.Context(), identity)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, gestureResult(result))
	default:
		http.Error(w, "unknown pointer phase", http.StatusBadRequest)
	}
}

func (h *ReviewHandler) Approve(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(r)
	if !ok {
		http.Error(w, "missing identity", http.StatusUnauthorized)
		return
	}

	result, err := h.service.Approve(r.Context(), identity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, gestureResult(result))
}

func (h *ReviewHandler) Reject(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(r)
	if !ok {
		http.Error(w, "missing identity", http.StatusUnauthorized)
		return
	}

	if err := h.service.Reject(r.Context(), identity); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, gestureResult(swipe.ResultPendingComment))
}

type submitCommentRequest struct {
	Comment string `json:"comment"`
}

func (h *ReviewHandler) SubmitComment(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(r)
	if !ok {
		http.Error(w, "missing identity", http.StatusUnauthorized)
		return
	}

	var req submitCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.SubmitComment(r.Context(), identity, req.Comment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, gestureResult(result))
}

func (h *ReviewHandler) CancelComment(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(r)
	if !ok {
		http.Error(w, "missing identity", http.StatusUnauthorized)
		return
	}

	if err := h.service.CancelComment(r.Context(), identity); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ReviewHandler) ResetSession(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(r)
	if !ok {
		http.Error(w, "missing identity", http.StatusUnauthorized)
		return
	}

	if err := h.service.ResetSession(r.Context(), identity); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
