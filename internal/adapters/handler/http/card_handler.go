package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/validately/api/internal/core/domain"
	"github.com/validately/api/internal/core/ports"
)

type CardHandler struct {
	service    ports.CardService
	visibility ports.VisibilityService
}

func NewCardHandler(service ports.CardService, visibility ports.VisibilityService) *CardHandler {
	return &CardHandler{
		service:    service,
		visibility: visibility,
	}
}

type createCardRequest struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	ImageURLs         []string `json:"image_urls"`
	Category          string   `json:"category"`
	Audience          []string `json:"audience"`
	ContextParameters []string `json:"context_parameters"`
}

func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(r)
	if !ok {
		http.Error(w, "missing identity", http.StatusUnauthorized)
		return
	}

	var req createCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	input := ports.CreateCardInput{
		Title:             req.Title,
		Description:       req.Description,
		ImageURLs:         req.ImageURLs,
		Category:          domain.CardCategory(req.Category),
		CreatedBy:         identity,
		Audience:          req.Audience,
		ContextParameters: req.ContextParameters,
	}

	card, err := h.service.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(card); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// ListCards returns the cards visible to the calling actor: PMs get their
// own cards, stakeholders get the full set.
func (h *CardHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(r)
	if !ok {
		http.Error(w, "missing identity", http.StatusUnauthorized)
		return
	}

	cards, err := h.visibility.CardsVisibleTo(r.Context(), roleFrom(r), identity)
	if err != nil {
		writeError(w, err)
		return
	}
	if cards == nil {
		cards = []*domain.ValidationCard{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(cards); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func (h *CardHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "missing card id", http.StatusBadRequest)
		return
	}

	card, err := h.service.GetCard(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(card); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
